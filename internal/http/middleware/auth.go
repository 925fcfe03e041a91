package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/auth"
)

const (
	// AdminUserLocalKey is the key under which the authenticated admin's
	// username is stored in Fiber's context locals.
	AdminUserLocalKey = "admin_user"

	bearerPrefix = "Bearer "
)

// RequireAdmin gates a route group on a valid admin token. The token is read
// from the Authorization header ("Bearer <token>"). Missing and invalid
// tokens share one 403 rejection path, distinguishable only by their error
// code, and the request never reaches the store.
func RequireAdmin(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// A non-bearer Authorization header passes through unchanged and
		// fails verification as an invalid token.
		raw := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), bearerPrefix)

		username, err := tokens.Verify(raw)
		if err != nil {
			code := "INVALID_TOKEN"
			if errors.Is(err, auth.ErrMissingToken) {
				code = "MISSING_TOKEN"
			}
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"request_id": c.Locals(RequestIDLocalKey),
				"error": fiber.Map{
					"code":    code,
					"message": err.Error(),
				},
			})
		}

		c.Locals(AdminUserLocalKey, username)
		return c.Next()
	}
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
)

// The collection handlers are generic over the record type; one set serves
// experiences, education, skills, and projects. The raw request body is
// passed to the service untouched so that partial updates see exactly the
// keys the client supplied.

// ListRecords returns the collection in display order.
func ListRecords[T any, P model.RecordOf[T]](svc *service.Collection[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// CreateRecord validates and stores a new record, returning it with its
// assigned identifier.
func CreateRecord[T any, P model.RecordOf[T]](svc *service.Collection[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.Create(c.UserContext(), c.Body())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// UpdateRecord merges the supplied keys into an existing record and returns
// the full updated record.
func UpdateRecord[T any, P model.RecordOf[T]](svc *service.Collection[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.Update(c.UserContext(), c.Params("id"), c.Body())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// DeleteRecord removes a record. Deleting an absent id still reports success.
func DeleteRecord[T any, P model.RecordOf[T]](svc *service.Collection[T, P], label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": label + " deleted"})
	}
}

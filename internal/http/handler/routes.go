package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/auth"
	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
)

// Services bundles everything the route layer depends on.
type Services struct {
	Experiences *service.Collection[model.Experience, *model.Experience]
	Education   *service.Collection[model.Education, *model.Education]
	Skills      *service.Collection[model.Skill, *model.Skill]
	Projects    *service.Collection[model.Project, *model.Project]
	History     service.HistoryService
	Assets      service.AssetService
	Auth        service.AuthService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Read routes
// are public; every write route sits behind the admin token gate.
func RegisterRoutes(app *fiber.App, db *sql.DB, tokens *auth.Tokens, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/history", ListHistory(svcs.History))
	api.Get("/history-section", GetHistorySection(svcs.History))
	api.Get("/assets", ListAssets(svcs.Assets))
	api.Get("/assets/:id/url", AssetURL(svcs.Assets))

	// Login must precede the gated group in the route stack so it stays
	// reachable without a token.
	app.Post("/api/admin/login", Login(svcs.Auth))

	admin := app.Group("/api/admin", middleware.RequireAdmin(tokens))
	admin.Post("/history", CreateHistory(svcs.History))
	admin.Put("/history/:id", UpdateHistory(svcs.History))
	admin.Delete("/history/:id", DeleteHistory(svcs.History))
	admin.Put("/history-section", UpsertHistorySection(svcs.History))
	admin.Post("/assets", UploadAsset(svcs.Assets))
	admin.Delete("/assets/:id", DeleteAsset(svcs.Assets))

	registerCollection(api, admin, "experiences", "Experience", svcs.Experiences)
	registerCollection(api, admin, "education", "Education", svcs.Education)
	registerCollection(api, admin, "skills", "Skill", svcs.Skills)
	registerCollection(api, admin, "projects", "Project", svcs.Projects)
}

// registerCollection wires the shared CRUD surface for one collection: a
// public listing plus gated create/update/delete.
func registerCollection[T any, P model.RecordOf[T]](pub fiber.Router, admin fiber.Router, name, label string, svc *service.Collection[T, P]) {
	pub.Get("/"+name, ListRecords(svc))
	admin.Post("/"+name, CreateRecord(svc))
	admin.Put("/"+name+"/:id", UpdateRecord(svc))
	admin.Delete("/"+name+"/:id", DeleteRecord(svc, label))
}

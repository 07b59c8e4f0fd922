package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"representantes/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Storage routes are only mounted when fileSvc is non-nil.
func RegisterRoutes(app *fiber.App, db *sql.DB, repSvc service.RepresentanteService, fileSvc service.FileService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	reps := api.Group("/representantes")
	reps.Get("/", ListRepresentantes(repSvc))
	// before /:id so "find" is not parsed as an id
	reps.Get("/find", FindRepresentantesByNombre(repSvc))
	reps.Get("/:id", GetRepresentante(repSvc))
	reps.Post("/", CreateRepresentante(repSvc))
	reps.Put("/:id", UpdateRepresentante(repSvc))
	reps.Delete("/:id", DeleteRepresentante(repSvc))

	if fileSvc != nil {
		files := api.Group("/storage")
		files.Post("/", UploadFile(fileSvc))
		files.Get("/:name", GetFile(fileSvc))
		files.Delete("/:name", DeleteFile(fileSvc))
	}
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressController "kursusku_backend/internals/features/progress/controller"
)

// User login: progress belajar milik sendiri
func ProgressUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)

	progress := api.Group("/progress")
	progress.Post("/", ctrl.RecordCompletion)
	progress.Get("/", ctrl.GetProgress)
	progress.Post("/playback", ctrl.RecordPlayback)
}

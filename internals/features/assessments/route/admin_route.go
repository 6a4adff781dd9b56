package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentController "kursusku_backend/internals/features/assessments/controller"
)

// Admin: kelola assessment + lihat hasil
func AssessmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := assessmentController.NewAssessmentAdminController(db)

	api.Post("/courses/:courseId/assessment", ctrl.Create)
	api.Put("/assessments/:id", ctrl.Update)
	api.Get("/assessments/:id/results", ctrl.GetResults)
	api.Delete("/assessments/:id", ctrl.Delete)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentController "kursusku_backend/internals/features/assessments/controller"
)

// User login: attempt + status assessment
func AssessmentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := assessmentController.NewAssessmentController(db)

	assessments := api.Group("/assessments")
	assessments.Post("/start", ctrl.StartAttempt)
	assessments.Post("/submit", ctrl.SubmitAttempt)
	assessments.Get("/status", ctrl.GetStatus)
}

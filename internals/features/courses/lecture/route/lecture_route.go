package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lectureController "kursusku_backend/internals/features/courses/lecture/controller"
)

// Publik: daftar materi suatu kursus
func LecturePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := lectureController.NewLectureController(db)
	api.Get("/courses/:courseId/lectures", ctrl.GetByCourse)
}

// Admin: kelola materi
func LectureAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := lectureController.NewLectureController(db)

	api.Post("/courses/:courseId/lectures", ctrl.Create)
	api.Put("/lectures/:id", ctrl.Update)
	api.Delete("/lectures/:id", ctrl.Delete)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "kursusku_backend/internals/features/courses/course/controller"
)

// Publik: katalog kursus
func CoursePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", ctrl.GetAll)
	courses.Get("/:id", ctrl.GetByID)
}

// Admin: kelola kursus
func CourseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Post("/", ctrl.Create)
	courses.Put("/:id", ctrl.Update)
	courses.Delete("/:id", ctrl.Delete)
}

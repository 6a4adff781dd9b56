package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "kursusku_backend/internals/features/users/user/controller"
)

// User login: profil sendiri
func UserUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)
	api.Get("/users/me", ctrl.Me)
}

// Admin: kelola user
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", ctrl.GetAll)
	users.Put("/:id/role", ctrl.UpdateRole)
	users.Delete("/:id", ctrl.Delete)
}

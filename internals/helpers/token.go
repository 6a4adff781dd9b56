package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken mengambil user_id dari locals (diset oleh AuthMiddleware)
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak ditemukan di token")
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak valid")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User ID tidak valid")
	}
	return id, nil
}

package dto

import (
	"time"

	"kursusku_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================
type UserDTO struct {
	ID            string    `json:"id"`
	UserName      string    `json:"user_name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Subscriptions []string  `json:"subscriptions"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// ============================
// Request DTO
// ============================
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// ============================
// Converter
// ============================
func ToUserDTO(m model.UserModel) UserDTO {
	subs := make([]string, 0, len(m.UserSubscriptions))
	subs = append(subs, m.UserSubscriptions...)
	return UserDTO{
		ID:            m.ID.String(),
		UserName:      m.UserName,
		Email:         m.Email,
		Role:          m.Role,
		Subscriptions: subs,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
	}
}

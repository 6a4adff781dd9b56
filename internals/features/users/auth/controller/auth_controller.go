package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "kursusku_backend/internals/features/users/auth/service"
	userDto "kursusku_backend/internals/features/users/user/dto"
	userModel "kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type registerRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// =============================
// ➕ Register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user := userModel.UserModel{
		UserName: body.UserName,
		Email:    body.Email,
		Password: body.Password,
	}
	if err := authService.Register(ctrl.DB, &user); err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", userDto.ToUserDTO(user))
}

// =============================
// 🔑 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user, token, err := authService.Login(ctrl.DB, body.Email, body.Password)
	if err != nil {
		return err
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"user":         userDto.ToUserDTO(*user),
	})
}

// =============================
// 🚪 Logout (blacklist token)
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return fiber.NewError(fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	if err := authService.Logout(ctrl.DB, fields[1]); err != nil {
		return err
	}
	return helper.Success(c, "Logout berhasil", nil)
}

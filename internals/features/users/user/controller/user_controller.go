package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	progressModel "kursusku_backend/internals/features/progress/model"
	"kursusku_backend/internals/features/users/user/dto"
	"kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =============================
// 👤 Me (profil user login)
// =============================
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.Success(c, "Profil berhasil diambil", dto.ToUserDTO(user))
}

// =============================
// 📄 Get All Users (admin)
// =============================
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []model.UserModel
	if err := ctrl.DB.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, dto.ToUserDTO(u))
	}

	return helper.Success(c, "Daftar user berhasil diambil", fiber.Map{
		"users":      dtos,
		"pagination": helper.BuildPagination(paging, total, len(dtos)),
	})
}

// =============================
// 🔁 Update Role (admin)
// =============================
func (ctrl *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid")
	}

	var body dto.UpdateUserRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("role", body.Role)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update role")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.Success(c, "Role berhasil diperbarui", fiber.Map{"id": id, "role": body.Role})
}

// =============================
// ❌ Delete User (admin), ikut menghapus progress miliknya
// =============================
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "User ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("progress_user_id = ?", id).
			Delete(&progressModel.ProgressModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.UserModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Println("[ERROR] Gagal hapus user:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus user")
	}

	return helper.Success(c, "User beserta progress-nya berhasil dihapus", fiber.Map{"id": id})
}

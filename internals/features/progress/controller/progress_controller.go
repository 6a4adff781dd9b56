package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/progress/dto"
	progressService "kursusku_backend/internals/features/progress/service"
	userModel "kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// ensureEnrolled: user harus sudah membayar kursus sebelum menyentuh progress.
func (ctrl *ProgressController) ensureEnrolled(userID, courseID uuid.UUID) error {
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	if !user.HasSubscription(courseID) {
		return fiber.NewError(fiber.StatusForbidden, "Anda belum terdaftar di kursus ini")
	}
	return nil
}

// =============================
// ✅ Mark lecture complete
// =============================
// POST /api/u/progress
func (ctrl *ProgressController) RecordCompletion(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.RecordCompletionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	courseID := uuid.MustParse(body.CourseID)
	lectureID := uuid.MustParse(body.LectureID)

	if err := ctrl.ensureEnrolled(userID, courseID); err != nil {
		return err
	}

	count, err := progressService.RecordCompletion(ctrl.DB, userID, courseID, lectureID)
	if err != nil {
		return err
	}

	return helper.Success(c, "Progress tersimpan", fiber.Map{
		"completed_count": count,
	})
}

// =============================
// 📊 Get progress summary
// =============================
// GET /api/u/progress?course_id=...
func (ctrl *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id tidak valid")
	}

	summary, err := progressService.GetSummary(ctrl.DB, userID, courseID)
	if err != nil {
		return err
	}

	lastWatched, err := progressService.LastWatchedOf(ctrl.DB, userID, courseID)
	if err != nil {
		return err
	}

	return helper.Success(c, "Progress berhasil diambil", fiber.Map{
		"summary":      summary,
		"last_watched": lastWatched,
	})
}

// =============================
// ▶️ Record playback position (resume)
// =============================
// POST /api/u/progress/playback
func (ctrl *ProgressController) RecordPlayback(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.RecordPlaybackRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	courseID := uuid.MustParse(body.CourseID)
	lectureID := uuid.MustParse(body.LectureID)

	if err := ctrl.ensureEnrolled(userID, courseID); err != nil {
		return err
	}

	if err := progressService.RecordPlayback(ctrl.DB, userID, courseID, lectureID, body.TimestampSeconds); err != nil {
		return err
	}

	return helper.Success(c, "Posisi tonton tersimpan", nil)
}

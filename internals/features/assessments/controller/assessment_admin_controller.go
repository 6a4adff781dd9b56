package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/assessments/dto"
	"kursusku_backend/internals/features/assessments/model"
	courseModel "kursusku_backend/internals/features/courses/course/model"
	helper "kursusku_backend/internals/helpers"
)

type AssessmentAdminController struct {
	DB *gorm.DB
}

func NewAssessmentAdminController(db *gorm.DB) *AssessmentAdminController {
	return &AssessmentAdminController{DB: db}
}

// =============================
// ➕ Create assessment + soal (admin)
// =============================
// POST /api/a/courses/:courseId/assessment
func (ctrl *AssessmentAdminController) Create(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var body dto.CreateAssessmentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	for _, q := range body.Questions {
		if q.CorrectIndex >= len(q.Options) {
			return fiber.NewError(fiber.StatusBadRequest, "correct_index di luar jumlah opsi")
		}
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	// Satu assessment per kursus
	var existing int64
	if err := ctrl.DB.Model(&model.AssessmentModel{}).
		Where("assessment_course_id = ?", courseID).
		Count(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek assessment")
	}
	if existing > 0 {
		return fiber.NewError(fiber.StatusConflict, "Kursus ini sudah punya assessment")
	}

	var assessment model.AssessmentModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		assessment = model.AssessmentModel{
			AssessmentCourseID:     courseID,
			AssessmentTitle:        body.AssessmentTitle,
			AssessmentTimeLimit:    body.AssessmentTimeLimit,
			AssessmentPassingScore: body.AssessmentPassingScore,
		}
		if err := tx.Create(&assessment).Error; err != nil {
			return err
		}

		for i, q := range body.Questions {
			question := model.AssessmentQuestionModel{
				AssessmentQuestionAssessmentID: assessment.AssessmentID,
				AssessmentQuestionText:         q.Text,
				AssessmentQuestionOptions:      q.Options,
				AssessmentQuestionCorrectIndex: q.CorrectIndex,
				AssessmentQuestionPosition:     i + 1,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat assessment")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Assessment berhasil dibuat", dto.ToAssessmentDTO(assessment))
}

// =============================
// ♻️ Update assessment (admin)
// =============================
// PUT /api/a/assessments/:id
func (ctrl *AssessmentAdminController) Update(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Assessment ID tidak valid")
	}

	var body dto.UpdateAssessmentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if body.AssessmentTitle != nil {
		updates["assessment_title"] = *body.AssessmentTitle
	}
	if body.AssessmentTimeLimit != nil {
		updates["assessment_time_limit_minutes"] = *body.AssessmentTimeLimit
	}
	if body.AssessmentPassingScore != nil {
		updates["assessment_passing_score"] = *body.AssessmentPassingScore
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.AssessmentModel{}).
		Where("assessment_id = ?", assessmentID).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update assessment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Assessment tidak ditemukan")
	}

	return helper.Success(c, "Assessment berhasil diperbarui", fiber.Map{"assessment_id": assessmentID})
}

// =============================
// 📄 List hasil (admin)
// =============================
// GET /api/a/assessments/:id/results
func (ctrl *AssessmentAdminController) GetResults(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Assessment ID tidak valid")
	}

	var results []model.AssessmentResultModel
	if err := ctrl.DB.
		Where("assessment_result_assessment_id = ?", assessmentID).
		Order("assessment_result_submitted_at DESC").
		Find(&results).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil hasil")
	}

	dtos := make([]dto.ResultDTO, 0, len(results))
	for _, r := range results {
		dtos = append(dtos, dto.ToResultDTO(r))
	}
	return helper.Success(c, "Daftar hasil berhasil diambil", dtos)
}

// =============================
// ❌ Delete assessment + soal + hasil (admin)
// =============================
// DELETE /api/a/assessments/:id
func (ctrl *AssessmentAdminController) Delete(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Assessment ID tidak valid")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assessment_question_assessment_id = ?", assessmentID).
			Delete(&model.AssessmentQuestionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assessment_result_assessment_id = ?", assessmentID).
			Delete(&model.AssessmentResultModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.AssessmentModel{}, "assessment_id = ?", assessmentID)
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
			return fiber.NewError(fiber.StatusNotFound, "Assessment tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus assessment")
	}

	return helper.Success(c, "Assessment berhasil dihapus", fiber.Map{"assessment_id": assessmentID})
}

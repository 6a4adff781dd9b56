package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/assessments/dto"
	assessmentService "kursusku_backend/internals/features/assessments/service"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type AssessmentController struct {
	DB *gorm.DB
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db}
}

// =============================
// ▶️ Start attempt
// =============================
// POST /api/u/assessments/start?course_id=...
func (ctrl *AssessmentController) StartAttempt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id tidak valid")
	}

	attempt, err := assessmentService.StartAttempt(ctrl.DB, userID, courseID)
	if err != nil {
		return err
	}

	return helper.Success(c, "Attempt dimulai", attempt)
}

// =============================
// 📨 Submit attempt
// =============================
// POST /api/u/assessments/submit
func (ctrl *AssessmentController) SubmitAttempt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.SubmitAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	courseID, err := uuid.Parse(body.CourseID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id tidak valid")
	}

	result, err := assessmentService.SubmitAttempt(ctrl.DB, userID, courseID, body.Answers)
	if err != nil {
		return err
	}

	return helper.Success(c, "Jawaban dinilai", result)
}

// =============================
// 📊 Status gate + hasil terakhir
// =============================
// GET /api/u/assessments/status?course_id=...
func (ctrl *AssessmentController) GetStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "course_id tidak valid")
	}

	status, err := assessmentService.StatusOf(ctrl.DB, userID, courseID)
	if err != nil {
		return err
	}

	return helper.Success(c, "Status assessment berhasil diambil", status)
}

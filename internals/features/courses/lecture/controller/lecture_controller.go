package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "kursusku_backend/internals/features/courses/course/model"
	"kursusku_backend/internals/features/courses/lecture/dto"
	"kursusku_backend/internals/features/courses/lecture/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type LectureController struct {
	DB *gorm.DB
}

func NewLectureController(db *gorm.DB) *LectureController {
	return &LectureController{DB: db}
}

// =============================
// ➕ Create (admin), posisi diisi max+1 per course
// =============================
func (ctrl *LectureController) Create(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var body dto.CreateLectureRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.LectureContentURL == nil && body.LectureVideoID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Materi harus punya content URL atau video ID")
	}

	// Pastikan course ada
	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	var lecture model.LectureModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var maxPos int
		if err := tx.Model(&model.LectureModel{}).
			Where("lecture_course_id = ?", courseID).
			Select("COALESCE(MAX(lecture_position), 0)").
			Scan(&maxPos).Error; err != nil {
			return err
		}

		lecture = model.LectureModel{
			LectureCourseID:   courseID,
			LectureTitle:      body.LectureTitle,
			LecturePosition:   maxPos + 1,
			LectureContentURL: body.LectureContentURL,
			LectureVideoID:    body.LectureVideoID,
			LectureDuration:   body.LectureDuration,
		}
		return tx.Create(&lecture).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat materi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Materi berhasil dibuat", dto.ToLectureDTO(lecture))
}

// =============================
// 📄 Get By Course (publik, urut posisi)
// =============================
func (ctrl *LectureController) GetByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var lectures []model.LectureModel
	if err := ctrl.DB.
		Where("lecture_course_id = ?", courseID).
		Order("lecture_position ASC").
		Find(&lectures).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi")
	}

	dtos := make([]dto.LectureDTO, 0, len(lectures))
	for _, l := range lectures {
		dtos = append(dtos, dto.ToLectureDTO(l))
	}
	return helper.Success(c, "Daftar materi berhasil diambil", dtos)
}

// =============================
// ♻️ Update (admin)
// =============================
func (ctrl *LectureController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Lecture ID tidak valid")
	}

	var body dto.UpdateLectureRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if body.LectureTitle != nil {
		updates["lecture_title"] = *body.LectureTitle
	}
	if body.LectureContentURL != nil {
		updates["lecture_content_url"] = *body.LectureContentURL
	}
	if body.LectureVideoID != nil {
		updates["lecture_video_id"] = *body.LectureVideoID
	}
	if body.LectureDuration != nil {
		updates["lecture_duration_seconds"] = *body.LectureDuration
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.LectureModel{}).
		Where("lecture_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update materi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
	}

	return helper.Success(c, "Materi berhasil diperbarui", fiber.Map{"lecture_id": id})
}

// =============================
// ❌ Delete (admin)
// =============================
// Entri lama di progress_completed_lectures yang menunjuk materi terhapus
// dibiarkan (tidak di-prune); perhitungan progress mengabaikannya.
func (ctrl *LectureController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Lecture ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.LectureModel{}, "lecture_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus materi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan")
	}

	return helper.Success(c, "Materi berhasil dihapus", fiber.Map{"lecture_id": id})
}

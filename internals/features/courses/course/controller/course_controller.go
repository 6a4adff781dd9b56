package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/courses/course/dto"
	"kursusku_backend/internals/features/courses/course/model"
	lectureDto "kursusku_backend/internals/features/courses/lecture/dto"
	lectureModel "kursusku_backend/internals/features/courses/lecture/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// =============================
// 📄 Get All (publik, hanya course aktif)
// =============================
func (ctrl *CourseController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{}).Where("course_is_active = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung kursus")
	}

	var courses []model.CourseModel
	if err := q.
		Order("course_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&courses).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar kursus")
	}

	dtos := make([]dto.CourseDTO, 0, len(courses))
	for _, course := range courses {
		dtos = append(dtos, dto.ToCourseDTO(course))
	}

	return helper.Success(c, "Daftar kursus berhasil diambil", fiber.Map{
		"courses":    dtos,
		"pagination": helper.BuildPagination(paging, total, len(dtos)),
	})
}

// =============================
// 🔍 Get By ID (publik) + daftar lecture terurut
// =============================
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kursus")
	}

	var lectures []lectureModel.LectureModel
	if err := ctrl.DB.
		Where("lecture_course_id = ?", id).
		Order("lecture_position ASC").
		Find(&lectures).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi kursus")
	}

	lectureDtos := make([]lectureDto.LectureDTO, 0, len(lectures))
	for _, l := range lectures {
		lectureDtos = append(lectureDtos, lectureDto.ToLectureDTO(l))
	}

	return helper.Success(c, "Detail kursus berhasil diambil", fiber.Map{
		"course":   dto.ToCourseDTO(course),
		"lectures": lectureDtos,
	})
}

// =============================
// ➕ Create (admin)
// =============================
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	course := model.CourseModel{
		CourseTitle:       body.CourseTitle,
		CourseDescription: body.CourseDescription,
		CoursePriceIDR:    body.CoursePriceIDR,
		CourseDuration:    body.CourseDuration,
		CourseImageURL:    body.CourseImageURL,
		CourseIsActive:    true,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kursus")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kursus berhasil dibuat", dto.ToCourseDTO(course))
}

// =============================
// ♻️ Update (admin)
// =============================
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if body.CourseTitle != nil {
		updates["course_title"] = *body.CourseTitle
	}
	if body.CourseDescription != nil {
		updates["course_description"] = *body.CourseDescription
	}
	if body.CoursePriceIDR != nil {
		updates["course_price_idr"] = *body.CoursePriceIDR
	}
	if body.CourseDuration != nil {
		updates["course_duration_minutes"] = *body.CourseDuration
	}
	if body.CourseImageURL != nil {
		updates["course_image_url"] = *body.CourseImageURL
	}
	if body.CourseIsActive != nil {
		updates["course_is_active"] = *body.CourseIsActive
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctrl.DB.Model(&model.CourseModel{}).
		Where("course_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal update kursus")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
	}

	return helper.Success(c, "Kursus berhasil diperbarui", fiber.Map{"course_id": id})
}

// =============================
// ❌ Delete (admin, soft delete)
// =============================
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Course ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus kursus")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
	}

	return helper.Success(c, "Kursus berhasil dihapus", fiber.Map{"course_id": id})
}

package dto

import (
	"time"

	"kursusku_backend/internals/features/courses/course/model"
)

// ============================
// Response DTO
// ============================
type CourseDTO struct {
	CourseID          string    `json:"course_id"`
	CourseTitle       string    `json:"course_title"`
	CourseDescription string    `json:"course_description"`
	CoursePriceIDR    int       `json:"course_price_idr"`
	CourseDuration    int       `json:"course_duration_minutes"`
	CourseImageURL    *string   `json:"course_image_url,omitempty"`
	CourseIsActive    bool      `json:"course_is_active"`
	CourseCreatedAt   time.Time `json:"course_created_at"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateCourseRequest struct {
	CourseTitle       string  `json:"course_title" validate:"required,min=3,max=255"`
	CourseDescription string  `json:"course_description"`
	CoursePriceIDR    int     `json:"course_price_idr" validate:"gte=0"`
	CourseDuration    int     `json:"course_duration_minutes" validate:"gte=0"`
	CourseImageURL    *string `json:"course_image_url"`
}

type UpdateCourseRequest struct {
	CourseTitle       *string `json:"course_title" validate:"omitempty,min=3,max=255"`
	CourseDescription *string `json:"course_description"`
	CoursePriceIDR    *int    `json:"course_price_idr" validate:"omitempty,gte=0"`
	CourseDuration    *int    `json:"course_duration_minutes" validate:"omitempty,gte=0"`
	CourseImageURL    *string `json:"course_image_url"`
	CourseIsActive    *bool   `json:"course_is_active"`
}

// ============================
// Converter
// ============================
func ToCourseDTO(m model.CourseModel) CourseDTO {
	return CourseDTO{
		CourseID:          m.CourseID.String(),
		CourseTitle:       m.CourseTitle,
		CourseDescription: m.CourseDescription,
		CoursePriceIDR:    m.CoursePriceIDR,
		CourseDuration:    m.CourseDuration,
		CourseImageURL:    m.CourseImageURL,
		CourseIsActive:    m.CourseIsActive,
		CourseCreatedAt:   m.CourseCreatedAt,
	}
}

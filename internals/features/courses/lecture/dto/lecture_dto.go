package dto

import (
	"time"

	"kursusku_backend/internals/features/courses/lecture/model"
)

// ============================
// Response DTO
// ============================
type LectureDTO struct {
	LectureID         string    `json:"lecture_id"`
	LectureCourseID   string    `json:"lecture_course_id"`
	LectureTitle      string    `json:"lecture_title"`
	LecturePosition   int       `json:"lecture_position"`
	LectureContentURL *string   `json:"lecture_content_url,omitempty"`
	LectureVideoID    *string   `json:"lecture_video_id,omitempty"`
	LectureDuration   int       `json:"lecture_duration_seconds"`
	LectureCreatedAt  time.Time `json:"lecture_created_at"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateLectureRequest struct {
	LectureTitle      string  `json:"lecture_title" validate:"required,min=3,max=255"`
	LectureContentURL *string `json:"lecture_content_url" validate:"omitempty,url"`
	LectureVideoID    *string `json:"lecture_video_id" validate:"omitempty,max=64"`
	LectureDuration   int     `json:"lecture_duration_seconds" validate:"gte=0"`
}

type UpdateLectureRequest struct {
	LectureTitle      *string `json:"lecture_title" validate:"omitempty,min=3,max=255"`
	LectureContentURL *string `json:"lecture_content_url" validate:"omitempty,url"`
	LectureVideoID    *string `json:"lecture_video_id" validate:"omitempty,max=64"`
	LectureDuration   *int    `json:"lecture_duration_seconds" validate:"omitempty,gte=0"`
}

// ============================
// Converter
// ============================
func ToLectureDTO(m model.LectureModel) LectureDTO {
	return LectureDTO{
		LectureID:         m.LectureID.String(),
		LectureCourseID:   m.LectureCourseID.String(),
		LectureTitle:      m.LectureTitle,
		LecturePosition:   m.LecturePosition,
		LectureContentURL: m.LectureContentURL,
		LectureVideoID:    m.LectureVideoID,
		LectureDuration:   m.LectureDuration,
		LectureCreatedAt:  m.LectureCreatedAt,
	}
}

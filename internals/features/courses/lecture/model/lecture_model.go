package model

import (
	"time"

	"github.com/google/uuid"
)

// LectureModel: satu materi milik tepat satu course.
// LecturePosition adalah urutan tampil (diisi max+1 saat create).
type LectureModel struct {
	LectureID       uuid.UUID `gorm:"column:lecture_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"lecture_id"`
	LectureCourseID uuid.UUID `gorm:"column:lecture_course_id;type:uuid;not null;index" json:"lecture_course_id"`
	LectureTitle    string    `gorm:"column:lecture_title;type:varchar(255);not null" json:"lecture_title"`
	LecturePosition int       `gorm:"column:lecture_position;not null;default:0" json:"lecture_position"`

	// Salah satu dari dua: file upload atau id video eksternal (YouTube dsb.)
	LectureContentURL *string `gorm:"column:lecture_content_url;type:text" json:"lecture_content_url,omitempty"`
	LectureVideoID    *string `gorm:"column:lecture_video_id;type:varchar(64)" json:"lecture_video_id,omitempty"`

	LectureDuration  int        `gorm:"column:lecture_duration_seconds;not null;default:0" json:"lecture_duration_seconds"`
	LectureCreatedAt time.Time  `gorm:"column:lecture_created_at;autoCreateTime" json:"lecture_created_at"`
	LectureUpdatedAt *time.Time `gorm:"column:lecture_updated_at;autoUpdateTime" json:"lecture_updated_at,omitempty"`
}

func (LectureModel) TableName() string {
	return "lectures"
}

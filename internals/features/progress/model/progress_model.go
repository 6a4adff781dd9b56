package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ProgressModel: satu baris per pasangan (user, course).
// ProgressCompletedLectures adalah himpunan lecture_id yang sudah selesai;
// penambahan HARUS lewat array_append ber-guard ANY() supaya aman dari
// request ganda (lihat service). Entri yang menunjuk materi terhapus tidak
// di-prune, hanya diabaikan saat hitung.
type ProgressModel struct {
	ProgressID       uuid.UUID `gorm:"column:progress_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"progress_id"`
	ProgressUserID   uuid.UUID `gorm:"column:progress_user_id;type:uuid;not null;uniqueIndex:idx_progress_user_course" json:"progress_user_id"`
	ProgressCourseID uuid.UUID `gorm:"column:progress_course_id;type:uuid;not null;uniqueIndex:idx_progress_user_course" json:"progress_course_id"`

	ProgressCompletedLectures pq.StringArray `gorm:"column:progress_completed_lectures;type:uuid[];not null;default:'{}'" json:"progress_completed_lectures"`

	// {"lecture_id": "...", "timestamp_seconds": 123}, murni untuk resume playback
	ProgressLastWatched datatypes.JSON `gorm:"column:progress_last_watched;type:jsonb" json:"progress_last_watched,omitempty"`

	ProgressCreatedAt time.Time  `gorm:"column:progress_created_at;autoCreateTime" json:"progress_created_at"`
	ProgressUpdatedAt *time.Time `gorm:"column:progress_updated_at;autoUpdateTime" json:"progress_updated_at,omitempty"`
}

func (ProgressModel) TableName() string {
	return "user_progress"
}

// LastWatched adalah isi kolom progress_last_watched.
type LastWatched struct {
	LectureID        string `json:"lecture_id"`
	TimestampSeconds int    `json:"timestamp_seconds"`
}

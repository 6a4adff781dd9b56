package dto

// ============================
// Request DTO
// ============================
type RecordCompletionRequest struct {
	CourseID  string `json:"course_id" validate:"required,uuid"`
	LectureID string `json:"lecture_id" validate:"required,uuid"`
}

type RecordPlaybackRequest struct {
	CourseID         string `json:"course_id" validate:"required,uuid"`
	LectureID        string `json:"lecture_id" validate:"required,uuid"`
	TimestampSeconds int    `json:"timestamp_seconds" validate:"gte=0"`
}

// ============================
// Response DTO
// ============================
type ProgressSummaryDTO struct {
	CompletedCount int `json:"completed_count"`
	TotalLectures  int `json:"total_lectures"`
	Percentage     int `json:"percentage"`
}

type LastWatchedDTO struct {
	LectureID        string `json:"lecture_id"`
	TimestampSeconds int    `json:"timestamp_seconds"`
}

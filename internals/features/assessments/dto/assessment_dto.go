package dto

import (
	"time"

	"kursusku_backend/internals/features/assessments/model"
)

// ============================
// Response DTO
// ============================
type AssessmentDTO struct {
	AssessmentID           string    `json:"assessment_id"`
	AssessmentCourseID     string    `json:"assessment_course_id"`
	AssessmentTitle        string    `json:"assessment_title"`
	AssessmentTimeLimit    int       `json:"assessment_time_limit_minutes"`
	AssessmentPassingScore int       `json:"assessment_passing_score"`
	AssessmentCreatedAt    time.Time `json:"assessment_created_at"`
}

// AttemptQuestionDTO: soal yang dikirim ke user; indeks jawaban benar
// sengaja tidak ada di struct ini.
type AttemptQuestionDTO struct {
	QuestionID string   `json:"question_id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Position   int      `json:"position"`
}

type StartAttemptDTO struct {
	AssessmentID     string               `json:"assessment_id"`
	Title            string               `json:"title"`
	TimeLimitMinutes int                  `json:"time_limit_minutes"`
	StartedAt        time.Time            `json:"started_at"`
	Questions        []AttemptQuestionDTO `json:"questions"`
}

type SubmitResultDTO struct {
	Score  int  `json:"score"`
	Passed bool `json:"passed"`
}

type StatusDTO struct {
	State        string `json:"state"` // locked | available | cooldown | passed
	HasAttempted bool   `json:"has_attempted"`
	IsPassed     bool   `json:"is_passed"`
	Score        int    `json:"score"`
	// hanya terisi saat state == cooldown
	RetryAfterSeconds int `json:"retry_after_seconds,omitempty"`
}

type ResultDTO struct {
	ResultID    string    `json:"result_id"`
	UserID      string    `json:"user_id"`
	Score       int       `json:"score"`
	Passed      bool      `json:"passed"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ============================
// Request DTO
// ============================
type SubmitAttemptRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
	// Jawaban sejajar dengan urutan soal; nil / tidak terisi dihitung salah.
	Answers []*int `json:"answers" validate:"required"`
}

type CreateAssessmentRequest struct {
	AssessmentTitle        string                  `json:"assessment_title" validate:"required,min=3,max=255"`
	AssessmentTimeLimit    int                     `json:"assessment_time_limit_minutes" validate:"gt=0"`
	AssessmentPassingScore int                     `json:"assessment_passing_score" validate:"gte=0,lte=100"`
	Questions              []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

type UpdateAssessmentRequest struct {
	AssessmentTitle        *string `json:"assessment_title" validate:"omitempty,min=3,max=255"`
	AssessmentTimeLimit    *int    `json:"assessment_time_limit_minutes" validate:"omitempty,gt=0"`
	AssessmentPassingScore *int    `json:"assessment_passing_score" validate:"omitempty,gte=0,lte=100"`
}

type CreateQuestionRequest struct {
	Text         string   `json:"text" validate:"required"`
	Options      []string `json:"options" validate:"required,min=2"`
	CorrectIndex int      `json:"correct_index" validate:"gte=0"`
}

// ============================
// Converter
// ============================
func ToAssessmentDTO(m model.AssessmentModel) AssessmentDTO {
	return AssessmentDTO{
		AssessmentID:           m.AssessmentID.String(),
		AssessmentCourseID:     m.AssessmentCourseID.String(),
		AssessmentTitle:        m.AssessmentTitle,
		AssessmentTimeLimit:    m.AssessmentTimeLimit,
		AssessmentPassingScore: m.AssessmentPassingScore,
		AssessmentCreatedAt:    m.AssessmentCreatedAt,
	}
}

func ToAttemptQuestionDTO(q model.AssessmentQuestionModel) AttemptQuestionDTO {
	return AttemptQuestionDTO{
		QuestionID: q.AssessmentQuestionID.String(),
		Text:       q.AssessmentQuestionText,
		Options:    q.AssessmentQuestionOptions,
		Position:   q.AssessmentQuestionPosition,
	}
}

func ToResultDTO(r model.AssessmentResultModel) ResultDTO {
	return ResultDTO{
		ResultID:    r.AssessmentResultID.String(),
		UserID:      r.AssessmentResultUserID.String(),
		Score:       r.AssessmentResultScore,
		Passed:      r.AssessmentResultPassed,
		SubmittedAt: r.AssessmentResultSubmittedAt,
	}
}

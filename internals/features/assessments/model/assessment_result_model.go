package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentResultModel: append-only. Baris lama tidak pernah dimutasi;
// status pass/fail terkini diambil dari baris terakhir per user.
type AssessmentResultModel struct {
	AssessmentResultID           uuid.UUID `gorm:"column:assessment_result_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"assessment_result_id"`
	AssessmentResultAssessmentID uuid.UUID `gorm:"column:assessment_result_assessment_id;type:uuid;not null;index" json:"assessment_result_assessment_id"`
	AssessmentResultUserID       uuid.UUID `gorm:"column:assessment_result_user_id;type:uuid;not null;index" json:"assessment_result_user_id"`
	AssessmentResultScore        int       `gorm:"column:assessment_result_score;not null" json:"assessment_result_score"`
	AssessmentResultPassed       bool      `gorm:"column:assessment_result_passed;not null" json:"assessment_result_passed"`
	AssessmentResultSubmittedAt  time.Time `gorm:"column:assessment_result_submitted_at;not null" json:"assessment_result_submitted_at"`
}

func (AssessmentResultModel) TableName() string {
	return "assessment_results"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentModel: maksimal satu per course (kursus boleh tidak punya).
type AssessmentModel struct {
	AssessmentID           uuid.UUID `gorm:"column:assessment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"assessment_id"`
	AssessmentCourseID     uuid.UUID `gorm:"column:assessment_course_id;type:uuid;not null;uniqueIndex" json:"assessment_course_id"`
	AssessmentTitle        string    `gorm:"column:assessment_title;type:varchar(255);not null" json:"assessment_title"`
	AssessmentTimeLimit    int       `gorm:"column:assessment_time_limit_minutes;not null;default:30" json:"assessment_time_limit_minutes"`
	AssessmentPassingScore int       `gorm:"column:assessment_passing_score;not null;default:70" json:"assessment_passing_score"`

	AssessmentCreatedAt time.Time  `gorm:"column:assessment_created_at;autoCreateTime" json:"assessment_created_at"`
	AssessmentUpdatedAt *time.Time `gorm:"column:assessment_updated_at;autoUpdateTime" json:"assessment_updated_at,omitempty"`
}

func (AssessmentModel) TableName() string {
	return "assessments"
}

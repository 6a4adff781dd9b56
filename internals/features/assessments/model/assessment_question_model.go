package model

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentQuestionModel: soal pilihan ganda, urut berdasarkan position.
// CorrectIndex adalah indeks zero-based pada Options dan TIDAK PERNAH ikut
// dikirim ke user saat attempt (lihat dto).
type AssessmentQuestionModel struct {
	AssessmentQuestionID           uuid.UUID `gorm:"column:assessment_question_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"assessment_question_id"`
	AssessmentQuestionAssessmentID uuid.UUID `gorm:"column:assessment_question_assessment_id;type:uuid;not null;index" json:"assessment_question_assessment_id"`
	AssessmentQuestionText         string    `gorm:"column:assessment_question_text;type:text;not null" json:"assessment_question_text"`
	AssessmentQuestionOptions      []string  `gorm:"column:assessment_question_options;type:jsonb;serializer:json" json:"assessment_question_options"`
	AssessmentQuestionCorrectIndex int       `gorm:"column:assessment_question_correct_index;not null" json:"assessment_question_correct_index"`
	AssessmentQuestionPosition     int       `gorm:"column:assessment_question_position;not null;default:0" json:"assessment_question_position"`

	AssessmentQuestionCreatedAt time.Time `gorm:"column:assessment_question_created_at;autoCreateTime" json:"assessment_question_created_at"`
}

func (AssessmentQuestionModel) TableName() string {
	return "assessment_questions"
}

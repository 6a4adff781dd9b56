package dto

import (
	"time"

	"kursusku_backend/internals/features/certificates/model"
)

// ============================
// Response DTO
// ============================
type CertificateDTO struct {
	CertificateID string    `json:"certificate_id"`
	Serial        string    `json:"serial"`
	StudentName   string    `json:"student_name"`
	CourseTitle   string    `json:"course_title"`
	Score         int       `json:"score"`
	Status        string    `json:"status"`
	IssuedAt      time.Time `json:"issued_at"`
}

// ============================
// Converter
// ============================
func ToCertificateDTO(m model.CertificateModel) CertificateDTO {
	return CertificateDTO{
		CertificateID: m.CertificateID.String(),
		Serial:        m.CertificateSerial,
		StudentName:   m.CertificateStudentName,
		CourseTitle:   m.CertificateCourseTitle,
		Score:         m.CertificateScore,
		Status:        m.CertificateStatus,
		IssuedAt:      m.CertificateIssuedAt,
	}
}

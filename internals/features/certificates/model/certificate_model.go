package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CertStatusIssued  = "issued"
	CertStatusRevoked = "revoked"
)

// CertificateModel: satu per pasangan (user, course), diterbitkan lazy saat
// pertama kali diminta setelah lulus. Field snapshot dibekukan saat terbit
// supaya sertifikat tidak berubah kalau nama user / judul kursus diedit.
type CertificateModel struct {
	CertificateID     uuid.UUID `gorm:"column:certificate_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"certificate_id"`
	CertificateSerial string    `gorm:"column:certificate_serial;type:varchar(64);uniqueIndex;not null" json:"certificate_serial"`

	CertificateUserID   uuid.UUID `gorm:"column:certificate_user_id;type:uuid;not null;uniqueIndex:idx_certificate_user_course" json:"certificate_user_id"`
	CertificateCourseID uuid.UUID `gorm:"column:certificate_course_id;type:uuid;not null;uniqueIndex:idx_certificate_user_course" json:"certificate_course_id"`

	// Snapshot saat terbit
	CertificateStudentName string `gorm:"column:certificate_student_name;type:varchar(255);not null" json:"certificate_student_name"`
	CertificateCourseTitle string `gorm:"column:certificate_course_title;type:varchar(255);not null" json:"certificate_course_title"`
	CertificateScore       int    `gorm:"column:certificate_score;not null" json:"certificate_score"`

	CertificateStatus   string    `gorm:"column:certificate_status;type:varchar(16);not null;default:'issued'" json:"certificate_status"`
	CertificateIssuedAt time.Time `gorm:"column:certificate_issued_at;not null" json:"certificate_issued_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	assessmentService "kursusku_backend/internals/features/assessments/service"
	"kursusku_backend/internals/features/certificates/model"
	courseModel "kursusku_backend/internals/features/courses/course/model"
	userModel "kursusku_backend/internals/features/users/user/model"
)

const serialPrefix = "KURSUS"

// NewCertificateSerial membuat serial unik global: KURSUS-<unix ms>-<6 hex>.
// Tabrakan praktis mustahil, tapi tetap ditangkap lewat unique index dan
// di-retry (lihat IssueOrFetch).
func NewCertificateSerial(now time.Time) (string, error) {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%s", serialPrefix, now.UnixMilli(),
		strings.ToUpper(hex.EncodeToString(suffix))), nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IssueOrFetch: idempoten. 403 kalau hasil assessment terakhir belum lulus;
// kalau sudah pernah terbit dengan status issued, kembalikan apa adanya.
func IssueOrFetch(db *gorm.DB, userID, courseID uuid.UUID) (*model.CertificateModel, error) {
	passed, score, err := assessmentService.IsPassed(db, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !passed {
		return nil, fiber.NewError(fiber.StatusForbidden, "Sertifikat hanya terbit setelah lulus assessment")
	}

	var existing model.CertificateModel
	err = db.First(&existing,
		"certificate_user_id = ? AND certificate_course_id = ?", userID, courseID).Error
	if err == nil {
		if existing.CertificateStatus == model.CertStatusRevoked {
			return nil, fiber.NewError(fiber.StatusForbidden, "Sertifikat Anda telah dicabut")
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca sertifikat")
	}

	// Snapshot nama + judul saat terbit
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	var course courseModel.CourseModel
	if err := db.First(&course, "course_id = ?", courseID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Kursus tidak ditemukan")
	}

	now := time.Now().UTC()
	for attempt := 0; attempt < 3; attempt++ {
		serial, err := NewCertificateSerial(now)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat serial")
		}

		cert := model.CertificateModel{
			CertificateSerial:      serial,
			CertificateUserID:      userID,
			CertificateCourseID:    courseID,
			CertificateStudentName: user.UserName,
			CertificateCourseTitle: course.CourseTitle,
			CertificateScore:       score,
			CertificateStatus:      model.CertStatusIssued,
			CertificateIssuedAt:    now,
		}
		err = db.Create(&cert).Error
		if err == nil {
			log.Println("[SUCCESS] Sertifikat terbit:", serial)
			return &cert, nil
		}
		if isUniqueViolation(err) {
			// Bisa tabrakan serial (retry serial baru) atau balapan dengan
			// request kembar pada pasangan (user, course) yang sama.
			var raced model.CertificateModel
			if db.First(&raced,
				"certificate_user_id = ? AND certificate_course_id = ?", userID, courseID).Error == nil {
				return &raced, nil
			}
			continue
		}
		log.Println("[ERROR] Gagal menyimpan sertifikat:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan sertifikat")
	}
	return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menerbitkan sertifikat")
}

// Verify: lookup publik by serial, hanya sertifikat berstatus issued.
func Verify(db *gorm.DB, serial string) (*model.CertificateModel, error) {
	var cert model.CertificateModel
	err := db.First(&cert,
		"certificate_serial = ? AND certificate_status = ?", serial, model.CertStatusIssued).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca sertifikat")
	}
	return &cert, nil
}

// Revoke menandai sertifikat dicabut; verify publik akan berhenti mengenalinya.
func Revoke(db *gorm.DB, certificateID uuid.UUID) error {
	res := db.Model(&model.CertificateModel{}).
		Where("certificate_id = ?", certificateID).
		Update("certificate_status", model.CertStatusRevoked)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencabut sertifikat")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}
	return nil
}

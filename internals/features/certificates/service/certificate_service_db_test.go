package service

import (
	"testing"
	"time"

	assessmentModel "kursusku_backend/internals/features/assessments/model"
	"kursusku_backend/internals/features/certificates/model"
	courseModel "kursusku_backend/internals/features/courses/course/model"
	userModel "kursusku_backend/internals/features/users/user/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB membuka SQLite in-memory dengan skema minimal. DDL ditulis manual
// karena default gen_random_uuid() hanya jalan di Postgres; khusus tabel
// certificates, PK diberi default bergaya uuid supaya IssueOrFetch bisa
// membuat baris tanpa mengisi ID sendiri.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			user_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			user_subscriptions TEXT NOT NULL DEFAULT '{}',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE courses (
			course_id TEXT PRIMARY KEY,
			course_title TEXT NOT NULL,
			course_description TEXT,
			course_price_idr INTEGER NOT NULL DEFAULT 0,
			course_duration_minutes INTEGER NOT NULL DEFAULT 0,
			course_image_url TEXT,
			course_is_active BOOLEAN DEFAULT TRUE,
			course_created_at DATETIME,
			course_updated_at DATETIME,
			course_deleted_at DATETIME
		)`,
		`CREATE TABLE assessments (
			assessment_id TEXT PRIMARY KEY,
			assessment_course_id TEXT NOT NULL UNIQUE,
			assessment_title TEXT NOT NULL,
			assessment_time_limit_minutes INTEGER NOT NULL DEFAULT 30,
			assessment_passing_score INTEGER NOT NULL DEFAULT 70,
			assessment_created_at DATETIME,
			assessment_updated_at DATETIME
		)`,
		`CREATE TABLE assessment_results (
			assessment_result_id TEXT PRIMARY KEY,
			assessment_result_assessment_id TEXT NOT NULL,
			assessment_result_user_id TEXT NOT NULL,
			assessment_result_score INTEGER NOT NULL,
			assessment_result_passed BOOLEAN NOT NULL,
			assessment_result_submitted_at DATETIME NOT NULL
		)`,
		`CREATE TABLE certificates (
			certificate_id TEXT PRIMARY KEY DEFAULT (
				lower(hex(randomblob(4))) || '-' || lower(hex(randomblob(2))) || '-' ||
				lower(hex(randomblob(2))) || '-' || lower(hex(randomblob(2))) || '-' ||
				lower(hex(randomblob(6)))
			),
			certificate_serial TEXT NOT NULL UNIQUE,
			certificate_user_id TEXT NOT NULL,
			certificate_course_id TEXT NOT NULL,
			certificate_student_name TEXT NOT NULL,
			certificate_course_title TEXT NOT NULL,
			certificate_score INTEGER NOT NULL,
			certificate_status TEXT NOT NULL DEFAULT 'issued',
			certificate_issued_at DATETIME NOT NULL,
			created_at DATETIME,
			updated_at DATETIME,
			UNIQUE (certificate_user_id, certificate_course_id)
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

// seedGraduate menyiapkan user + course + assessment dan mengembalikan ID-nya.
// Kalau passed true, hasil terakhir user di assessment tersebut lulus.
func seedGraduate(t *testing.T, db *gorm.DB, passed bool, score int) (uuid.UUID, uuid.UUID) {
	t.Helper()

	u := userModel.UserModel{
		ID:                uuid.New(),
		UserName:          "Siti Rahma",
		Email:             "siti@example.com",
		Password:          "hashed",
		Role:              "user",
		UserSubscriptions: pq.StringArray{},
		IsActive:          true,
	}
	require.NoError(t, db.Create(&u).Error)

	c := courseModel.CourseModel{
		CourseID:       uuid.New(),
		CourseTitle:    "Dasar Pemrograman Go",
		CoursePriceIDR: 200000,
		CourseIsActive: true,
	}
	require.NoError(t, db.Create(&c).Error)

	a := assessmentModel.AssessmentModel{
		AssessmentID:           uuid.New(),
		AssessmentCourseID:     c.CourseID,
		AssessmentTitle:        "Ujian Akhir",
		AssessmentTimeLimit:    30,
		AssessmentPassingScore: 70,
	}
	require.NoError(t, db.Create(&a).Error)

	r := assessmentModel.AssessmentResultModel{
		AssessmentResultID:           uuid.New(),
		AssessmentResultAssessmentID: a.AssessmentID,
		AssessmentResultUserID:       u.ID,
		AssessmentResultScore:        score,
		AssessmentResultPassed:       passed,
		AssessmentResultSubmittedAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&r).Error)

	return u.ID, c.CourseID
}

func TestIssueOrFetch_BelumLulus(t *testing.T) {
	db := newTestDB(t)
	userID, courseID := seedGraduate(t, db, false, 40)

	_, err := IssueOrFetch(db, userID, courseID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)

	// Tidak ada baris sertifikat yang ikut tertulis.
	var count int64
	require.NoError(t, db.Model(&model.CertificateModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIssueOrFetch_Idempoten(t *testing.T) {
	db := newTestDB(t)
	userID, courseID := seedGraduate(t, db, true, 85)

	first, err := IssueOrFetch(db, userID, courseID)
	require.NoError(t, err)
	require.NotEmpty(t, first.CertificateSerial)
	assert.Equal(t, model.CertStatusIssued, first.CertificateStatus)
	assert.Equal(t, 85, first.CertificateScore)
	assert.Equal(t, "Siti Rahma", first.CertificateStudentName)
	assert.Equal(t, "Dasar Pemrograman Go", first.CertificateCourseTitle)

	// Panggilan ulang mengembalikan sertifikat yang sama, bukan terbit baru.
	second, err := IssueOrFetch(db, userID, courseID)
	require.NoError(t, err)
	assert.Equal(t, first.CertificateSerial, second.CertificateSerial)

	var count int64
	require.NoError(t, db.Model(&model.CertificateModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestIssueOrFetch_SudahDicabut(t *testing.T) {
	db := newTestDB(t)
	userID, courseID := seedGraduate(t, db, true, 90)

	cert, err := IssueOrFetch(db, userID, courseID)
	require.NoError(t, err)

	var stored model.CertificateModel
	require.NoError(t, db.First(&stored, "certificate_serial = ?", cert.CertificateSerial).Error)
	require.NoError(t, Revoke(db, stored.CertificateID))

	// Sertifikat dicabut tidak terbit ulang walau user masih lulus.
	_, err = IssueOrFetch(db, userID, courseID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}

func TestVerify_DicabutDanTidakDikenal(t *testing.T) {
	db := newTestDB(t)
	userID, courseID := seedGraduate(t, db, true, 80)

	cert, err := IssueOrFetch(db, userID, courseID)
	require.NoError(t, err)

	got, err := Verify(db, cert.CertificateSerial)
	require.NoError(t, err)
	assert.Equal(t, cert.CertificateSerial, got.CertificateSerial)

	var stored model.CertificateModel
	require.NoError(t, db.First(&stored, "certificate_serial = ?", cert.CertificateSerial).Error)
	require.NoError(t, Revoke(db, stored.CertificateID))

	_, err = Verify(db, cert.CertificateSerial)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	_, err = Verify(db, "KURSUS-0-TIDAKADA")
	require.Error(t, err)
	fe, ok = err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

package service

import (
	"testing"
	"time"

	"kursusku_backend/internals/features/assessments/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB membuka SQLite in-memory dengan skema minimal (DDL manual,
// karena default gen_random_uuid() di tag GORM hanya jalan di Postgres;
// test selalu mengisi ID sendiri).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
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
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedAssessment(t *testing.T, db *gorm.DB, courseID uuid.UUID) model.AssessmentModel {
	t.Helper()
	a := model.AssessmentModel{
		AssessmentID:           uuid.New(),
		AssessmentCourseID:     courseID,
		AssessmentTitle:        "Ujian Akhir",
		AssessmentTimeLimit:    30,
		AssessmentPassingScore: 70,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func seedResult(t *testing.T, db *gorm.DB, assessmentID, userID uuid.UUID, score int, passed bool, submittedAt time.Time) {
	t.Helper()
	r := model.AssessmentResultModel{
		AssessmentResultID:           uuid.New(),
		AssessmentResultAssessmentID: assessmentID,
		AssessmentResultUserID:       userID,
		AssessmentResultScore:        score,
		AssessmentResultPassed:       passed,
		AssessmentResultSubmittedAt:  submittedAt,
	}
	require.NoError(t, db.Create(&r).Error)
}

func TestAssessmentOfCourse(t *testing.T) {
	db := newTestDB(t)
	courseID := uuid.New()
	seeded := seedAssessment(t, db, courseID)

	got, err := AssessmentOfCourse(db, courseID)
	require.NoError(t, err)
	assert.Equal(t, seeded.AssessmentID, got.AssessmentID)

	_, err = AssessmentOfCourse(db, uuid.New())
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestLatestResult_BelumPernahAttempt(t *testing.T) {
	db := newTestDB(t)
	a := seedAssessment(t, db, uuid.New())

	latest, err := LatestResult(db, a.AssessmentID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestLatestResult_BarisTerbaruMenang(t *testing.T) {
	db := newTestDB(t)
	a := seedAssessment(t, db, uuid.New())
	userID := uuid.New()
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	seedResult(t, db, a.AssessmentID, userID, 40, false, base)
	seedResult(t, db, a.AssessmentID, userID, 80, true, base.Add(10*time.Minute))
	seedResult(t, db, a.AssessmentID, userID, 60, false, base.Add(5*time.Minute))

	latest, err := LatestResult(db, a.AssessmentID, userID)
	require.NoError(t, err)
	require.NotNil(t, latest)

	// Otoritatif berdasarkan submitted_at, bukan urutan insert.
	assert.Equal(t, 80, latest.AssessmentResultScore)
	assert.True(t, latest.AssessmentResultPassed)

	// Append-only: semua baris masih ada.
	var count int64
	require.NoError(t, db.Model(&model.AssessmentResultModel{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestLatestResult_TerisolasiPerUser(t *testing.T) {
	db := newTestDB(t)
	a := seedAssessment(t, db, uuid.New())
	userA := uuid.New()
	userB := uuid.New()
	now := time.Now().UTC()

	seedResult(t, db, a.AssessmentID, userA, 90, true, now)

	latest, err := LatestResult(db, a.AssessmentID, userB)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestIsPassed(t *testing.T) {
	db := newTestDB(t)
	courseID := uuid.New()
	a := seedAssessment(t, db, courseID)
	userID := uuid.New()
	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	passed, score, err := IsPassed(db, userID, courseID)
	require.NoError(t, err)
	assert.False(t, passed)
	assert.Equal(t, 0, score)

	seedResult(t, db, a.AssessmentID, userID, 85, true, base)
	passed, score, err = IsPassed(db, userID, courseID)
	require.NoError(t, err)
	assert.True(t, passed)
	assert.Equal(t, 85, score)

	// Hasil terakhir yang menentukan: gagal setelah lulus menutup gate lagi.
	seedResult(t, db, a.AssessmentID, userID, 50, false, base.Add(time.Hour))
	passed, score, err = IsPassed(db, userID, courseID)
	require.NoError(t, err)
	assert.False(t, passed)
	assert.Equal(t, 50, score)
}

package service

import (
	"testing"
	"time"

	courseModel "kursusku_backend/internals/features/courses/course/model"
	"kursusku_backend/internals/features/payments/model"
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

// newTestDB: SQLite in-memory dengan skema minimal (DDL manual karena
// default gen_random_uuid() dan kolom uuid[] hanya jalan di Postgres;
// test mengisi ID dan array sendiri).
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
		`CREATE TABLE payments (
			payment_id TEXT PRIMARY KEY,
			payment_order_id TEXT NOT NULL UNIQUE,
			payment_user_id TEXT NOT NULL,
			payment_course_id TEXT NOT NULL,
			payment_amount_idr INTEGER NOT NULL,
			payment_method TEXT,
			payment_status TEXT NOT NULL DEFAULT 'created',
			payment_enrollment_applied BOOLEAN NOT NULL DEFAULT FALSE,
			payment_paid_at DATETIME,
			payment_created_at DATETIME,
			payment_updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		ID:                uuid.New(),
		UserName:          "Budi",
		Email:             "budi@example.com",
		Password:          "hashed",
		Role:              "user",
		UserSubscriptions: pq.StringArray{},
		IsActive:          true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedCourse(t *testing.T, db *gorm.DB) courseModel.CourseModel {
	t.Helper()
	c := courseModel.CourseModel{
		CourseID:       uuid.New(),
		CourseTitle:    "Belajar Go dari Nol",
		CoursePriceIDR: 150000,
		CourseIsActive: true,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedPayment(t *testing.T, db *gorm.DB, userID, courseID uuid.UUID, status string, applied bool) model.PaymentModel {
	t.Helper()
	now := time.Now()
	p := model.PaymentModel{
		PaymentID:                uuid.New(),
		PaymentOrderID:           "KURSUS-ORD-" + uuid.NewString()[:8],
		PaymentUserID:            userID,
		PaymentCourseID:          courseID,
		PaymentAmountIDR:         150000,
		PaymentStatus:            status,
		PaymentEnrollmentApplied: applied,
	}
	if status == model.PaymentStatusSuccess {
		p.PaymentPaidAt = &now
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func markerOf(t *testing.T, db *gorm.DB, paymentID uuid.UUID) bool {
	t.Helper()
	var p model.PaymentModel
	require.NoError(t, db.First(&p, "payment_id = ?", paymentID).Error)
	return p.PaymentEnrollmentApplied
}

func requireFiberStatus(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "bukan *fiber.Error: %v", err)
	assert.Equal(t, want, fe.Code)
}

func TestActivateEnrollment_OrderTidakDikenal(t *testing.T) {
	db := newTestDB(t)

	_, _, err := ActivateEnrollment(db, "KURSUS-ORD-TIDAK-ADA")
	requireFiberStatus(t, err, fiber.StatusNotFound)
}

func TestActivateEnrollment_BelumSuccess(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	c := seedCourse(t, db)
	p := seedPayment(t, db, u.ID, c.CourseID, model.PaymentStatusCreated, false)

	_, activated, err := ActivateEnrollment(db, p.PaymentOrderID)
	requireFiberStatus(t, err, fiber.StatusPaymentRequired)
	assert.False(t, activated)
	assert.False(t, markerOf(t, db, p.PaymentID))
}

func TestActivateEnrollment_UserHilang(t *testing.T) {
	db := newTestDB(t)
	c := seedCourse(t, db)
	// Payment success menunjuk user yang tidak ada (mis. user dihapus admin
	// di antara pembayaran dan aktivasi).
	p := seedPayment(t, db, uuid.New(), c.CourseID, model.PaymentStatusSuccess, false)

	_, activated, err := ActivateEnrollment(db, p.PaymentOrderID)
	requireFiberStatus(t, err, fiber.StatusNotFound)
	assert.False(t, activated)

	// Tidak ada mutasi sama sekali: marker tetap belum di-claim.
	assert.False(t, markerOf(t, db, p.PaymentID))
}

func TestActivateEnrollment_KursusHilang(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	p := seedPayment(t, db, u.ID, uuid.New(), model.PaymentStatusSuccess, false)

	_, activated, err := ActivateEnrollment(db, p.PaymentOrderID)
	requireFiberStatus(t, err, fiber.StatusNotFound)
	assert.False(t, activated)
	assert.False(t, markerOf(t, db, p.PaymentID))
}

func TestActivateEnrollment_SudahPernahDiApply(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	c := seedCourse(t, db)
	p := seedPayment(t, db, u.ID, c.CourseID, model.PaymentStatusSuccess, true)

	updated, activated, err := ActivateEnrollment(db, p.PaymentOrderID)
	require.NoError(t, err)

	// Retry (webhook ganda / double verify) tidak mengeksekusi apa pun lagi.
	assert.False(t, activated)
	assert.True(t, updated.PaymentEnrollmentApplied)
}

func TestClaimEnrollmentMarker_HanyaSekali(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	c := seedCourse(t, db)
	p := seedPayment(t, db, u.ID, c.CourseID, model.PaymentStatusSuccess, false)

	claimed, err := ClaimEnrollmentMarker(db, p.PaymentID)
	require.NoError(t, err)
	assert.True(t, claimed)

	// Claim kedua kalah tanpa error.
	claimed, err = ClaimEnrollmentMarker(db, p.PaymentID)
	require.NoError(t, err)
	assert.False(t, claimed)

	assert.True(t, markerOf(t, db, p.PaymentID))
}

package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	assessmentModel "kursusku_backend/internals/features/assessments/model"
	certificateModel "kursusku_backend/internals/features/certificates/model"
	courseModel "kursusku_backend/internals/features/courses/course/model"
	lectureModel "kursusku_backend/internals/features/courses/lecture/model"
	paymentModel "kursusku_backend/internals/features/payments/model"
	progressModel "kursusku_backend/internals/features/progress/model"
	authModel "kursusku_backend/internals/features/users/auth/model"
	userModel "kursusku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=kursusku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate semua model feature.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&courseModel.CourseModel{},
		&lectureModel.LectureModel{},
		&progressModel.ProgressModel{},
		&assessmentModel.AssessmentModel{},
		&assessmentModel.AssessmentQuestionModel{},
		&assessmentModel.AssessmentResultModel{},
		&certificateModel.CertificateModel{},
		&paymentModel.PaymentModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool keisi & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

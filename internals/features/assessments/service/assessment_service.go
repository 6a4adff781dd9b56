package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/assessments/dto"
	"kursusku_backend/internals/features/assessments/model"
	progressService "kursusku_backend/internals/features/progress/service"
)

// AssessmentOfCourse mengambil assessment milik kursus (maks satu per kursus).
func AssessmentOfCourse(db *gorm.DB, courseID uuid.UUID) (*model.AssessmentModel, error) {
	var assessment model.AssessmentModel
	err := db.First(&assessment, "assessment_course_id = ?", courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kursus ini tidak punya assessment")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil assessment")
	}
	return &assessment, nil
}

// QuestionsOf mengambil soal terurut posisi.
func QuestionsOf(db *gorm.DB, assessmentID uuid.UUID) ([]model.AssessmentQuestionModel, error) {
	var questions []model.AssessmentQuestionModel
	err := db.
		Where("assessment_question_assessment_id = ?", assessmentID).
		Order("assessment_question_position ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil soal")
	}
	return questions, nil
}

// LatestResult mengambil hasil terakhir user (nil kalau belum pernah attempt).
func LatestResult(db *gorm.DB, assessmentID, userID uuid.UUID) (*model.AssessmentResultModel, error) {
	var result model.AssessmentResultModel
	err := db.
		Where("assessment_result_assessment_id = ? AND assessment_result_user_id = ?", assessmentID, userID).
		Order("assessment_result_submitted_at DESC").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca hasil assessment")
	}
	return &result, nil
}

// gateStateOf menggabungkan progress + hasil terakhir jadi state gate.
func gateStateOf(db *gorm.DB, courseID, userID, assessmentID uuid.UUID, now time.Time) (string, *model.AssessmentResultModel, error) {
	summary, err := progressService.GetSummary(db, userID, courseID)
	if err != nil {
		return "", nil, err
	}
	latest, err := LatestResult(db, assessmentID, userID)
	if err != nil {
		return "", nil, err
	}
	state := ResolveGateState(summary.CompletedCount, summary.TotalLectures, latest, now)
	return state, latest, nil
}

// StartAttempt membuka attempt: gagal 403 saat locked, 429 saat cooldown
// (dengan sisa detik). Soal dikirim tanpa indeks jawaban benar.
func StartAttempt(db *gorm.DB, userID, courseID uuid.UUID) (*dto.StartAttemptDTO, error) {
	assessment, err := AssessmentOfCourse(db, courseID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	state, latest, err := gateStateOf(db, courseID, userID, assessment.AssessmentID, now)
	if err != nil {
		return nil, err
	}

	switch state {
	case GateLocked:
		return nil, fiber.NewError(fiber.StatusForbidden, "Selesaikan semua materi dulu sebelum mengerjakan assessment")
	case GateCooldown:
		remaining := CooldownRemaining(latest, now)
		return nil, fiber.NewError(fiber.StatusTooManyRequests,
			fmt.Sprintf("Tunggu %d detik sebelum mencoba lagi", remaining))
	case GatePassed:
		// Sudah lulus; attempt ulang tidak diperlukan tapi tidak dilarang.
	}

	questions, err := QuestionsOf(db, assessment.AssessmentID)
	if err != nil {
		return nil, err
	}

	questionDtos := make([]dto.AttemptQuestionDTO, 0, len(questions))
	for _, q := range questions {
		questionDtos = append(questionDtos, dto.ToAttemptQuestionDTO(q))
	}

	return &dto.StartAttemptDTO{
		AssessmentID:     assessment.AssessmentID.String(),
		Title:            assessment.AssessmentTitle,
		TimeLimitMinutes: assessment.AssessmentTimeLimit,
		StartedAt:        now,
		Questions:        questionDtos,
	}, nil
}

// SubmitAttempt menilai jawaban dan menambahkan hasil baru (append-only;
// hasil lama tidak pernah diubah).
func SubmitAttempt(db *gorm.DB, userID, courseID uuid.UUID, answers []*int) (*dto.SubmitResultDTO, error) {
	assessment, err := AssessmentOfCourse(db, courseID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	state, latest, err := gateStateOf(db, courseID, userID, assessment.AssessmentID, now)
	if err != nil {
		return nil, err
	}
	if state == GateLocked {
		return nil, fiber.NewError(fiber.StatusForbidden, "Assessment masih terkunci")
	}
	if state == GateCooldown {
		remaining := CooldownRemaining(latest, now)
		return nil, fiber.NewError(fiber.StatusTooManyRequests,
			fmt.Sprintf("Tunggu %d detik sebelum mencoba lagi", remaining))
	}

	questions, err := QuestionsOf(db, assessment.AssessmentID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Assessment belum punya soal")
	}
	if len(answers) > len(questions) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Jumlah jawaban melebihi jumlah soal")
	}

	score, _ := ScoreAnswers(questions, answers)
	passed := score >= assessment.AssessmentPassingScore

	result := model.AssessmentResultModel{
		AssessmentResultAssessmentID: assessment.AssessmentID,
		AssessmentResultUserID:       userID,
		AssessmentResultScore:        score,
		AssessmentResultPassed:       passed,
		AssessmentResultSubmittedAt:  now,
	}
	if err := db.Create(&result).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan hasil assessment:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan hasil assessment")
	}

	return &dto.SubmitResultDTO{Score: score, Passed: passed}, nil
}

// StatusOf mengembalikan status gate + hasil terakhir user.
func StatusOf(db *gorm.DB, userID, courseID uuid.UUID) (*dto.StatusDTO, error) {
	assessment, err := AssessmentOfCourse(db, courseID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	state, latest, err := gateStateOf(db, courseID, userID, assessment.AssessmentID, now)
	if err != nil {
		return nil, err
	}

	status := dto.StatusDTO{State: state}
	if latest != nil {
		status.HasAttempted = true
		status.IsPassed = latest.AssessmentResultPassed
		status.Score = latest.AssessmentResultScore
	}
	if state == GateCooldown {
		status.RetryAfterSeconds = CooldownRemaining(latest, now)
	}
	return &status, nil
}

// IsPassed: gate untuk penerbitan sertifikat: hanya hasil TERAKHIR yang
// menentukan.
func IsPassed(db *gorm.DB, userID, courseID uuid.UUID) (bool, int, error) {
	assessment, err := AssessmentOfCourse(db, courseID)
	if err != nil {
		return false, 0, err
	}
	latest, err := LatestResult(db, assessment.AssessmentID, userID)
	if err != nil {
		return false, 0, err
	}
	if latest == nil {
		return false, 0, nil
	}
	return latest.AssessmentResultPassed, latest.AssessmentResultScore, nil
}

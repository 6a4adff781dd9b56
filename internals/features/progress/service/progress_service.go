package service

import (
	"encoding/json"
	"errors"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	lectureModel "kursusku_backend/internals/features/courses/lecture/model"
	"kursusku_backend/internals/features/progress/dto"
	"kursusku_backend/internals/features/progress/model"
)

/* ==========================
   Pure helpers
========================== */

// Percentage menghitung round(completed/total*100), clamp [0,100].
// total == 0 didefinisikan 0 (hindari divide-by-zero).
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(completed) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// CountLiveCompleted menghitung anggota set yang masih menunjuk materi hidup.
// Entri basi (materi sudah dihapus) tidak ikut dihitung tapi juga tidak
// dihapus dari set.
func CountLiveCompleted(completed []string, liveLectureIDs []uuid.UUID) int {
	live := make(map[string]struct{}, len(liveLectureIDs))
	for _, id := range liveLectureIDs {
		live[id.String()] = struct{}{}
	}
	n := 0
	for _, id := range completed {
		if _, ok := live[id]; ok {
			n++
		}
	}
	return n
}

/* ==========================
   DB operations
========================== */

func courseLectureIDs(db *gorm.DB, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&lectureModel.LectureModel{}).
		Where("lecture_course_id = ?", courseID).
		Pluck("lecture_id", &ids).Error
	return ids, err
}

func lectureBelongsToCourse(db *gorm.DB, courseID, lectureID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&lectureModel.LectureModel{}).
		Where("lecture_id = ? AND lecture_course_id = ?", lectureID, courseID).
		Count(&count).Error
	return count > 0, err
}

// CreateInitialProgress membuat baris progress kosong kalau belum ada.
// Dipanggil dari enrollment activation (dalam transaksi yang sama).
func CreateInitialProgress(tx *gorm.DB, userID, courseID uuid.UUID) error {
	var count int64
	if err := tx.Model(&model.ProgressModel{}).
		Where("progress_user_id = ? AND progress_course_id = ?", userID, courseID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	progress := model.ProgressModel{
		ProgressUserID:   userID,
		ProgressCourseID: courseID,
	}
	if err := tx.Create(&progress).Error; err != nil {
		return err
	}
	log.Println("[SUCCESS] Progress awal dibuat:", userID, courseID)
	return nil
}

// RecordCompletion menandai satu materi selesai. Idempoten: menandai ulang
// materi yang sudah selesai bukan error. Mengembalikan jumlah selesai terkini.
func RecordCompletion(db *gorm.DB, userID, courseID, lectureID uuid.UUID) (int, error) {
	ok, err := lectureBelongsToCourse(db, courseID, lectureID)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal validasi materi")
	}
	if !ok {
		return 0, fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan di kursus ini")
	}

	// Atomic add-to-set: guard ANY() mencegah duplikat saat request balapan.
	addToSet := func() (int64, error) {
		res := db.Exec(`
			UPDATE user_progress
			SET progress_completed_lectures = array_append(progress_completed_lectures, ?::uuid),
			    progress_updated_at = NOW()
			WHERE progress_user_id = ? AND progress_course_id = ?
			  AND NOT (?::uuid = ANY(progress_completed_lectures))`,
			lectureID, userID, courseID, lectureID)
		return res.RowsAffected, res.Error
	}

	affected, err := addToSet()
	if err != nil {
		return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan progress")
	}

	if affected == 0 {
		// Baris belum ada, atau materi memang sudah tercatat (no-op).
		var count int64
		if err := db.Model(&model.ProgressModel{}).
			Where("progress_user_id = ? AND progress_course_id = ?", userID, courseID).
			Count(&count).Error; err != nil {
			return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca progress")
		}
		if count == 0 {
			progress := model.ProgressModel{
				ProgressUserID:            userID,
				ProgressCourseID:          courseID,
				ProgressCompletedLectures: []string{lectureID.String()},
			}
			if err := db.Create(&progress).Error; err != nil {
				// Balapan dengan request lain yang baru saja membuat baris:
				// ulangi jalur update.
				if _, err2 := addToSet(); err2 != nil {
					return 0, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan progress")
				}
			}
		}
	}

	summary, err := GetSummary(db, userID, courseID)
	if err != nil {
		return 0, err
	}
	return summary.CompletedCount, nil
}

// GetSummary mengembalikan ringkasan progress; tanpa baris progress atau
// tanpa materi hasilnya nol, bukan error.
func GetSummary(db *gorm.DB, userID, courseID uuid.UUID) (dto.ProgressSummaryDTO, error) {
	zero := dto.ProgressSummaryDTO{}

	lectureIDs, err := courseLectureIDs(db, courseID)
	if err != nil {
		return zero, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil materi kursus")
	}

	var progress model.ProgressModel
	err = db.First(&progress,
		"progress_user_id = ? AND progress_course_id = ?", userID, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProgressSummaryDTO{TotalLectures: len(lectureIDs)}, nil
		}
		return zero, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca progress")
	}

	completed := CountLiveCompleted(progress.ProgressCompletedLectures, lectureIDs)
	return dto.ProgressSummaryDTO{
		CompletedCount: completed,
		TotalLectures:  len(lectureIDs),
		Percentage:     Percentage(completed, len(lectureIDs)),
	}, nil
}

// RecordPlayback meng-upsert posisi tonton terakhir; murni untuk resume,
// tidak pernah menyentuh himpunan completed.
func RecordPlayback(db *gorm.DB, userID, courseID, lectureID uuid.UUID, seconds int) error {
	ok, err := lectureBelongsToCourse(db, courseID, lectureID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal validasi materi")
	}
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Materi tidak ditemukan di kursus ini")
	}

	raw, err := json.Marshal(model.LastWatched{
		LectureID:        lectureID.String(),
		TimestampSeconds: seconds,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal encode posisi tonton")
	}

	res := db.Model(&model.ProgressModel{}).
		Where("progress_user_id = ? AND progress_course_id = ?", userID, courseID).
		Update("progress_last_watched", datatypes.JSON(raw))
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan posisi tonton")
	}
	if res.RowsAffected == 0 {
		progress := model.ProgressModel{
			ProgressUserID:      userID,
			ProgressCourseID:    courseID,
			ProgressLastWatched: raw,
		}
		if err := db.Create(&progress).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan posisi tonton")
		}
	}
	return nil
}

// LastWatchedOf membaca posisi tonton terakhir (nil kalau belum ada).
func LastWatchedOf(db *gorm.DB, userID, courseID uuid.UUID) (*dto.LastWatchedDTO, error) {
	var progress model.ProgressModel
	err := db.First(&progress,
		"progress_user_id = ? AND progress_course_id = ?", userID, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca progress")
	}
	if len(progress.ProgressLastWatched) == 0 {
		return nil, nil
	}

	var lw model.LastWatched
	if err := json.Unmarshal(progress.ProgressLastWatched, &lw); err != nil {
		return nil, nil
	}
	return &dto.LastWatchedDTO{
		LectureID:        lw.LectureID,
		TimestampSeconds: lw.TimestampSeconds,
	}, nil
}

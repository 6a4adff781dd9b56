package service

import (
	"math"
	"time"

	"kursusku_backend/internals/features/assessments/model"
)

// State gate per (user, course).
const (
	GateLocked    = "locked"
	GateAvailable = "available"
	GateCooldown  = "cooldown"
	GatePassed    = "passed"
)

// RetryCooldown: jeda wajib setelah attempt gagal sebelum boleh mencoba lagi.
// Dihitung server-side dari submitted_at hasil gagal terakhir; jangan pernah
// percaya timer di sisi client.
const RetryCooldown = 5 * time.Minute

// ResolveGateState menurunkan state gate dari progress materi dan hasil
// terakhir. Aturan:
//   - passed (terminal) kalau hasil terakhir lulus
//   - cooldown kalau hasil terakhir gagal dan jedanya belum lewat
//   - available kalau semua materi selesai (total > 0), ATAU user pernah
//     attempt (akses re-attempt tidak pernah dikunci ulang oleh perubahan
//     progress materi)
//   - locked selain itu
func ResolveGateState(completedCount, totalLectures int, latest *model.AssessmentResultModel, now time.Time) string {
	if latest != nil {
		if latest.AssessmentResultPassed {
			return GatePassed
		}
		if CooldownRemaining(latest, now) > 0 {
			return GateCooldown
		}
		return GateAvailable
	}
	if totalLectures > 0 && completedCount == totalLectures {
		return GateAvailable
	}
	return GateLocked
}

// CooldownRemaining menghitung sisa detik cooldown dari hasil terakhir.
// 0 kalau tidak sedang cooldown (lulus, belum pernah attempt, atau sudah lewat).
func CooldownRemaining(latest *model.AssessmentResultModel, now time.Time) int {
	if latest == nil || latest.AssessmentResultPassed {
		return 0
	}
	until := latest.AssessmentResultSubmittedAt.Add(RetryCooldown)
	remaining := until.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Seconds()))
}

// ScoreAnswers menilai jawaban terhadap soal terurut. Jawaban nil, indeks di
// luar opsi, atau array lebih pendek dari jumlah soal dihitung salah.
// Score = round(benar/total*100); total 0 didefinisikan score 0.
func ScoreAnswers(questions []model.AssessmentQuestionModel, answers []*int) (score int, correctCount int) {
	total := len(questions)
	if total == 0 {
		return 0, 0
	}
	for i, q := range questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		a := *answers[i]
		if a < 0 || a >= len(q.AssessmentQuestionOptions) {
			continue
		}
		if a == q.AssessmentQuestionCorrectIndex {
			correctCount++
		}
	}
	score = int(math.Round(float64(correctCount) / float64(total) * 100))
	return score, correctCount
}

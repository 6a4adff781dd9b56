package service

import (
	"testing"
	"time"

	"kursusku_backend/internals/features/assessments/model"

	"github.com/stretchr/testify/assert"
)

func failedResult(submittedAt time.Time) *model.AssessmentResultModel {
	return &model.AssessmentResultModel{
		AssessmentResultScore:       40,
		AssessmentResultPassed:      false,
		AssessmentResultSubmittedAt: submittedAt,
	}
}

func passedResult(submittedAt time.Time) *model.AssessmentResultModel {
	return &model.AssessmentResultModel{
		AssessmentResultScore:       90,
		AssessmentResultPassed:      true,
		AssessmentResultSubmittedAt: submittedAt,
	}
}

func TestResolveGateState_LockedSebelumMateriSelesai(t *testing.T) {
	now := time.Now()

	assert.Equal(t, GateLocked, ResolveGateState(0, 10, nil, now))
	assert.Equal(t, GateLocked, ResolveGateState(9, 10, nil, now))
	// Kursus tanpa materi tidak pernah membuka gate lewat progress.
	assert.Equal(t, GateLocked, ResolveGateState(0, 0, nil, now))
}

func TestResolveGateState_AvailableSetelahMateriSelesai(t *testing.T) {
	now := time.Now()

	assert.Equal(t, GateAvailable, ResolveGateState(10, 10, nil, now))
}

func TestResolveGateState_PassedTerminal(t *testing.T) {
	now := time.Now()

	// Sekali lulus tetap passed, berapapun progress materinya.
	assert.Equal(t, GatePassed, ResolveGateState(10, 10, passedResult(now.Add(-time.Hour)), now))
	assert.Equal(t, GatePassed, ResolveGateState(3, 10, passedResult(now.Add(-time.Hour)), now))
}

func TestResolveGateState_CooldownSetelahGagal(t *testing.T) {
	now := time.Now()

	assert.Equal(t, GateCooldown, ResolveGateState(10, 10, failedResult(now.Add(-time.Minute)), now))
	assert.Equal(t, GateAvailable, ResolveGateState(10, 10, failedResult(now.Add(-RetryCooldown)), now))
}

func TestResolveGateState_ReattemptTidakDikunciUlang(t *testing.T) {
	now := time.Now()

	// Pernah attempt → akses retry tidak tergantung progress materi lagi
	// (mis. admin menambah materi baru setelah attempt pertama).
	state := ResolveGateState(5, 12, failedResult(now.Add(-time.Hour)), now)
	assert.Equal(t, GateAvailable, state)
}

func TestCooldownRemaining(t *testing.T) {
	now := time.Now()

	assert.Equal(t, 0, CooldownRemaining(nil, now))
	assert.Equal(t, 0, CooldownRemaining(passedResult(now), now))
	assert.Equal(t, 0, CooldownRemaining(failedResult(now.Add(-RetryCooldown)), now))

	// Gagal 2 menit lalu → sisa 3 menit.
	remaining := CooldownRemaining(failedResult(now.Add(-2*time.Minute)), now)
	assert.Equal(t, 180, remaining)

	// Sisa pecahan detik dibulatkan ke atas.
	remaining = CooldownRemaining(failedResult(now.Add(-RetryCooldown+1500*time.Millisecond)), now)
	assert.Equal(t, 2, remaining)
}

func TestScoreAnswers(t *testing.T) {
	questions := []model.AssessmentQuestionModel{
		{AssessmentQuestionOptions: []string{"a", "b", "c"}, AssessmentQuestionCorrectIndex: 0},
		{AssessmentQuestionOptions: []string{"a", "b", "c"}, AssessmentQuestionCorrectIndex: 1},
		{AssessmentQuestionOptions: []string{"a", "b", "c", "d"}, AssessmentQuestionCorrectIndex: 3},
	}

	intp := func(v int) *int { return &v }

	t.Run("semua benar", func(t *testing.T) {
		score, correct := ScoreAnswers(questions, []*int{intp(0), intp(1), intp(3)})
		assert.Equal(t, 100, score)
		assert.Equal(t, 3, correct)
	})

	t.Run("sebagian benar dibulatkan", func(t *testing.T) {
		score, correct := ScoreAnswers(questions, []*int{intp(0), intp(1), intp(0)})
		assert.Equal(t, 67, score) // round(2/3*100)
		assert.Equal(t, 2, correct)
	})

	t.Run("jawaban nil dihitung salah", func(t *testing.T) {
		score, correct := ScoreAnswers(questions, []*int{intp(0), nil, intp(3)})
		assert.Equal(t, 67, score)
		assert.Equal(t, 2, correct)
	})

	t.Run("array jawaban lebih pendek", func(t *testing.T) {
		score, correct := ScoreAnswers(questions, []*int{intp(0)})
		assert.Equal(t, 33, score)
		assert.Equal(t, 1, correct)
	})

	t.Run("indeks di luar opsi dihitung salah", func(t *testing.T) {
		score, correct := ScoreAnswers(questions, []*int{intp(7), intp(-1), intp(3)})
		assert.Equal(t, 33, score)
		assert.Equal(t, 1, correct)
	})

	t.Run("tanpa soal", func(t *testing.T) {
		score, correct := ScoreAnswers(nil, []*int{intp(0)})
		assert.Equal(t, 0, score)
		assert.Equal(t, 0, correct)
	})
}

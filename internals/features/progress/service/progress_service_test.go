package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 10))
	assert.Equal(t, 50, Percentage(5, 10))
	assert.Equal(t, 100, Percentage(10, 10))

	// Pembulatan standar.
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 33, Percentage(1, 3))

	// Kursus tanpa materi → 0, bukan error.
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 0, Percentage(5, 0))
	assert.Equal(t, 0, Percentage(5, -1))

	// Clamp: completed bisa melebihi total saat ada entri basi.
	assert.Equal(t, 100, Percentage(15, 10))
	assert.Equal(t, 0, Percentage(-2, 10))
}

func TestCountLiveCompleted(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	deleted := uuid.New()

	live := []uuid.UUID{a, b}

	t.Run("semua hidup", func(t *testing.T) {
		n := CountLiveCompleted([]string{a.String(), b.String()}, live)
		assert.Equal(t, 2, n)
	})

	t.Run("entri basi tidak dihitung", func(t *testing.T) {
		n := CountLiveCompleted([]string{a.String(), deleted.String()}, live)
		assert.Equal(t, 1, n)
	})

	t.Run("set kosong", func(t *testing.T) {
		assert.Equal(t, 0, CountLiveCompleted(nil, live))
	})

	t.Run("tidak ada materi hidup", func(t *testing.T) {
		assert.Equal(t, 0, CountLiveCompleted([]string{a.String()}, nil))
	})
}

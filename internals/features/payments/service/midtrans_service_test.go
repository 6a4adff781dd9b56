package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSettled(t *testing.T) {
	assert.True(t, IsSettled("capture"))
	assert.True(t, IsSettled("settlement"))

	assert.False(t, IsSettled("pending"))
	assert.False(t, IsSettled("expire"))
	assert.False(t, IsSettled(""))
}

func TestIsFinalFailure(t *testing.T) {
	assert.True(t, IsFinalFailure("expire"))
	assert.True(t, IsFinalFailure("cancel"))
	assert.True(t, IsFinalFailure("deny"))
	assert.True(t, IsFinalFailure("failure"))

	// Pending bukan gagal final: masih bisa menjadi settlement.
	assert.False(t, IsFinalFailure("pending"))
	assert.False(t, IsFinalFailure("settlement"))
}

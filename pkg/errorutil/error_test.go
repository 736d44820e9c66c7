package errorutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("nil error wraps to nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil))
	})

	t.Run("tagged error passes through unchanged", func(t *testing.T) {
		e := Retriable("redis down")
		assert.Same(t, e, Wrap(e))
		assert.True(t, Wrap(e).Retryable)
	})

	t.Run("plain error defaults to non-retryable", func(t *testing.T) {
		wrapped := Wrap(errors.New("bad payload"))
		assert.False(t, wrapped.Retryable)
		assert.Equal(t, "bad payload", wrapped.Message)
	})
}

func TestTaxonomy(t *testing.T) {
	assert.True(t, Retriable("x").Retryable)
	assert.False(t, NonRetriable("x").Retryable)
	assert.Equal(t, "deep", RetriableWithDetails("x", "deep").DevDetails)
}

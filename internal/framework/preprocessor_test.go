package framework

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreProcessorRun(t *testing.T) {
	t.Run("all funcs run in order", func(t *testing.T) {
		var order []int
		pp := NewPreProcessor([]ProcessorFunc{
			func(ctx context.Context) error { order = append(order, 1); return nil },
			func(ctx context.Context) error { order = append(order, 2); return nil },
		})
		require.NoError(t, pp.Run(context.Background()))
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		var called bool
		boom := errors.New("boom")
		pp := NewPreProcessor([]ProcessorFunc{
			func(ctx context.Context) error { return boom },
			func(ctx context.Context) error { called = true; return nil },
		})
		err := pp.Run(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.False(t, called)
	})
}

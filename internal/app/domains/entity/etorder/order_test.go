package etorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("valid order starts in received state", func(t *testing.T) {
		order, err := NewOrder("o-1", 1, 0, "韭菜+2", "line")
		require.NoError(t, err)
		assert.Equal(t, OrderStatusReceived, order.Status)
		assert.Equal(t, "line", order.Source)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		_, err := NewOrder("o-1", 1, 0, "", "")
		assert.ErrorIs(t, err, ErrInvalidRawMessage)
	})

	t.Run("invalid vendor rejected", func(t *testing.T) {
		_, err := NewOrder("o-1", 0, 0, "韭菜+2", "")
		assert.ErrorIs(t, err, ErrInvalidVendorID)
	})
}

func TestOrderTransitions(t *testing.T) {
	order, err := NewOrder("o-1", 1, 0, "韭菜+2", "")
	require.NoError(t, err)

	t.Run("apply parse result moves to parsed", func(t *testing.T) {
		err := order.ApplyParseResult(&ParseResult{
			Items:        []Item{{ProductName: "韭菜", Quantity: 2}},
			CustomerName: "王小明",
		})
		require.NoError(t, err)
		assert.Equal(t, OrderStatusParsed, order.Status)
		assert.Empty(t, order.ErrorMessage)
	})

	t.Run("nil result rejected", func(t *testing.T) {
		assert.ErrorIs(t, order.ApplyParseResult(nil), ErrNilParseResult)
	})

	t.Run("mark failed keeps reason", func(t *testing.T) {
		order.MarkAsFailed("message not recognized")
		assert.Equal(t, OrderStatusFailed, order.Status)
		assert.Equal(t, "message not recognized", order.ErrorMessage)
	})
}

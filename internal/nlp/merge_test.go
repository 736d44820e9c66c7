package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeOrderItems(t *testing.T) {
	t.Run("same name summed keeping first-seen order", func(t *testing.T) {
		merged := MergeOrderItems([]OrderItem{
			{ProductName: "韭菜", Quantity: 2},
			{ProductName: "高麗菜", Quantity: 1},
			{ProductName: "韭菜", Quantity: 3},
		})
		assert.Equal(t, []OrderItem{
			{ProductName: "韭菜", Quantity: 5},
			{ProductName: "高麗菜", Quantity: 1},
		}, merged)
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		once := MergeOrderItems([]OrderItem{
			{ProductName: "韭菜", Quantity: 2},
			{ProductName: "韭菜", Quantity: 3},
		})
		assert.Equal(t, once, MergeOrderItems(once))
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, MergeOrderItems(nil))
		assert.Nil(t, MergeOrderItems([]OrderItem{}))
	})
}

package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderMessage_QuantityExpressions(t *testing.T) {
	opts := ParseOptions{Mode: ModeGroupBuy}

	t.Run("plus form single item", func(t *testing.T) {
		order, err := ParseOrderMessage("韭菜+2", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, OrderItem{ProductName: "韭菜", Quantity: 2}, order.Items[0])
		assert.Equal(t, "韭菜+2", order.RawMessage)
	})

	t.Run("multiple items keep message order", func(t *testing.T) {
		order, err := ParseOrderMessage("高麗菜+1 韭菜+2", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 2)
		assert.Equal(t, OrderItem{ProductName: "高麗菜", Quantity: 1}, order.Items[0])
		assert.Equal(t, OrderItem{ProductName: "韭菜", Quantity: 2}, order.Items[1])
	})

	t.Run("no separator form", func(t *testing.T) {
		order, err := ParseOrderMessage("韭菜2", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, OrderItem{ProductName: "韭菜", Quantity: 2}, order.Items[0])
	})

	t.Run("whitespace separator form", func(t *testing.T) {
		order, err := ParseOrderMessage("韭菜 2", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, OrderItem{ProductName: "韭菜", Quantity: 2}, order.Items[0])
	})

	t.Run("comma separated items", func(t *testing.T) {
		order, err := ParseOrderMessage("韭菜+2，高麗菜+3", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 2)
		assert.Equal(t, "韭菜", order.Items[0].ProductName)
		assert.Equal(t, "高麗菜", order.Items[1].ProductName)
	})

	t.Run("same name from overlapping patterns not duplicated", func(t *testing.T) {
		order, err := ParseOrderMessage("韭菜 2", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Len(t, order.Items, 1)
	})
}

func TestParseOrderMessage_Validation(t *testing.T) {
	opts := ParseOptions{Mode: ModeGroupBuy}

	t.Run("quantity above 999 rejected", func(t *testing.T) {
		order, err := ParseOrderMessage("韭菜+1000", opts)
		require.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("quantity zero rejected", func(t *testing.T) {
		order, err := ParseOrderMessage("韭菜+0", opts)
		require.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("name over 20 runes rejected even with valid quantity", func(t *testing.T) {
		name := strings.Repeat("菜", 21)
		order, err := ParseOrderMessage(name+"+2", opts)
		require.NoError(t, err)
		// 候选被否决后裸 "+N" 回退仍会以占位品名接住数量
		require.NotNil(t, order)
		for _, item := range order.Items {
			assert.NotEqual(t, name, item.ProductName)
		}
		assert.Equal(t, DefaultProductPlaceholder, order.Items[0].ProductName)
	})

	t.Run("empty message yields no result", func(t *testing.T) {
		order, err := ParseOrderMessage("   ", opts)
		require.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("input over limit fails fast", func(t *testing.T) {
		_, err := ParseOrderMessage(strings.Repeat("菜", MaxInputRunes+1), opts)
		assert.ErrorIs(t, err, ErrInputTooLong)
	})

	t.Run("missing mode is a hard error", func(t *testing.T) {
		_, err := ParseOrderMessage("韭菜+2", ParseOptions{})
		assert.ErrorIs(t, err, ErrInvalidMode)
	})
}

func TestParseOrderMessage_Catalog(t *testing.T) {
	opts := ParseOptions{Mode: ModeGroupBuy, Catalog: []string{"韭菜", "高麗菜"}}

	t.Run("candidate outside catalog dropped", func(t *testing.T) {
		order, err := ParseOrderMessage("蘿蔔+2", opts)
		require.NoError(t, err)
		// 目录排他：蘿蔔不产出品项，数量由裸 "+N" 回退以占位品名接住
		require.NotNil(t, order)
		for _, item := range order.Items {
			assert.NotEqual(t, "蘿蔔", item.ProductName)
		}
	})

	t.Run("candidate normalized to catalog name", func(t *testing.T) {
		order, err := ParseOrderMessage("高麗+1", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "高麗菜", order.Items[0].ProductName)
	})

	t.Run("mixed catalog and non-catalog keeps only catalog hits", func(t *testing.T) {
		order, err := ParseOrderMessage("蘿蔔+2 韭菜+1", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, OrderItem{ProductName: "韭菜", Quantity: 1}, order.Items[0])
	})
}

func TestParseOrderMessage_Fallbacks(t *testing.T) {
	t.Run("bare plus uses default product", func(t *testing.T) {
		order, err := ParseOrderMessage("+1", ParseOptions{Mode: ModeGroupBuy, DefaultProduct: "預設商品"})
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, OrderItem{ProductName: "預設商品", Quantity: 1}, order.Items[0])
	})

	t.Run("bare plus without default uses placeholder", func(t *testing.T) {
		order, err := ParseOrderMessage("+3", ParseOptions{Mode: ModeGroupBuy})
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, DefaultProductPlaceholder, order.Items[0].ProductName)
	})

	t.Run("verb phrase with trailing quantity", func(t *testing.T) {
		order, err := ParseOrderMessage("我要買牛奶3", ParseOptions{Mode: ModeGroupBuy, Catalog: []string{"牛奶"}})
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, OrderItem{ProductName: "牛奶", Quantity: 3}, order.Items[0])
	})

	t.Run("verb phrase with measure word after digits", func(t *testing.T) {
		// 数量后跟量词时形态 2/3 不命中，走动词短语规则
		order, err := ParseOrderMessage("我要蛋餅3份", ParseOptions{Mode: ModeGroupBuy})
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, OrderItem{ProductName: "蛋餅", Quantity: 3}, order.Items[0])
	})

	t.Run("chinese numerals do not match", func(t *testing.T) {
		order, err := ParseOrderMessage("我要三個蛋餅", ParseOptions{Mode: ModeGroupBuy})
		require.NoError(t, err)
		assert.Nil(t, order)
	})
}

func TestParseOrderMessage_ProxyRelaxed(t *testing.T) {
	opts := ParseOptions{Mode: ModeProxy}

	t.Run("bare want-to-buy defaults to quantity one", func(t *testing.T) {
		order, err := ParseOrderMessage("我要買牛奶", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, OrderItem{ProductName: "牛奶", Quantity: 1}, order.Items[0])
	})

	t.Run("measure word tail stripped", func(t *testing.T) {
		order, err := ParseOrderMessage("幫我買珍珠奶茶一杯", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, OrderItem{ProductName: "珍珠奶茶", Quantity: 1}, order.Items[0])
	})

	t.Run("filler only message yields nothing", func(t *testing.T) {
		order, err := ParseOrderMessage("麻煩一下謝謝", opts)
		require.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("stage B embedded digits become quantity", func(t *testing.T) {
		order, err := ParseOrderMessage("請幫我帶肉鬆麵包2回來", opts)
		require.NoError(t, err)
		require.NotNil(t, order)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.NotContains(t, order.Items[0].ProductName, "2")
	})

	t.Run("relaxed extractor never fires in groupbuy mode", func(t *testing.T) {
		order, err := ParseOrderMessage("我要買牛奶", ParseOptions{Mode: ModeGroupBuy})
		require.NoError(t, err)
		assert.Nil(t, order)
	})
}

func TestParseOrderMessage_ContactAlwaysRuns(t *testing.T) {
	order, err := ParseOrderMessage("我是王小明 韭菜+2 0912-345-678", ParseOptions{Mode: ModeGroupBuy})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "王小明", order.CustomerName)
	assert.Equal(t, "0912345678", order.CustomerPhone)
	require.Len(t, order.Items, 1)
	assert.Equal(t, OrderItem{ProductName: "韭菜", Quantity: 2}, order.Items[0])
}

package nlp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func TestExtractPostInfo_OrderDeadline(t *testing.T) {
	t.Run("hour only defaults minute to zero", func(t *testing.T) {
		info, err := ExtractPostInfo("晚上8點結單", postNow)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-15 08:00", info.OrderDeadline)
	})

	t.Run("leading zero hour kept two digits", func(t *testing.T) {
		info, err := ExtractPostInfo("09點結單", postNow)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-15 09:00", info.OrderDeadline)
	})

	t.Run("hour and minute before marker", func(t *testing.T) {
		info, err := ExtractPostInfo("8點30分收單", postNow)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-15 08:30", info.OrderDeadline)
	})

	t.Run("marker before time", func(t *testing.T) {
		info, err := ExtractPostInfo("結單時間 20:30", postNow)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-15 20:30", info.OrderDeadline)
	})

	t.Run("no marker no deadline", func(t *testing.T) {
		info, err := ExtractPostInfo("韭菜水餃好吃", postNow)
		require.NoError(t, err)
		assert.Empty(t, info.OrderDeadline)
	})
}

func TestExtractPostInfo_Deadline(t *testing.T) {
	info, err := ExtractPostInfo("截止時間：3月20日中午 要的快來", postNow)
	require.NoError(t, err)
	assert.Equal(t, "3月20日中午", info.Deadline)
}

func TestExtractPostInfo_Products(t *testing.T) {
	t.Run("priced line with unit word", func(t *testing.T) {
		info, err := ExtractPostInfo("韭菜水餃 一包 120元", postNow)
		require.NoError(t, err)
		require.Len(t, info.Products, 1)
		assert.Equal(t, PostProduct{Name: "韭菜水餃", Unit: "一包", Price: 120}, info.Products[0])
	})

	t.Run("priced line with count and measure", func(t *testing.T) {
		info, err := ExtractPostInfo("高麗菜水餃 2包 240元", postNow)
		require.NoError(t, err)
		require.Len(t, info.Products, 1)
		assert.Equal(t, PostProduct{Name: "高麗菜水餃", Unit: "2包", Price: 240}, info.Products[0])
	})

	t.Run("labeled fallback when nothing priced", func(t *testing.T) {
		info, err := ExtractPostInfo("口味：韭菜、高麗菜、鮮肉", postNow)
		require.NoError(t, err)
		require.Len(t, info.Products, 3)
		assert.Equal(t, "韭菜", info.Products[0].Name)
		assert.Equal(t, "高麗菜", info.Products[1].Name)
		assert.Equal(t, "鮮肉", info.Products[2].Name)
		assert.Zero(t, info.Products[0].Price)
	})

	t.Run("unpriced line without hint words skipped", func(t *testing.T) {
		info, err := ExtractPostInfo("運費 另計 60元", postNow)
		require.NoError(t, err)
		assert.Empty(t, info.Products)
	})
}

func TestExtractPostInfo_Description(t *testing.T) {
	t.Run("short text kept whole", func(t *testing.T) {
		info, err := ExtractPostInfo("開團啦", postNow)
		require.NoError(t, err)
		assert.Equal(t, "開團啦", info.Description)
	})

	t.Run("long text truncated to 200 runes", func(t *testing.T) {
		info, err := ExtractPostInfo(strings.Repeat("團", 250), postNow)
		require.NoError(t, err)
		assert.Equal(t, 200, len([]rune(info.Description)))
	})
}

func TestExtractPostInfo_InputGuard(t *testing.T) {
	_, err := ExtractPostInfo(strings.Repeat("團", MaxInputRunes+1), postNow)
	assert.ErrorIs(t, err, ErrInputTooLong)
}

package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPost(t *testing.T) {
	t.Run("group buy with three hits reaches full confidence", func(t *testing.T) {
		analysis, err := ClassifyPost("今天開團！韭菜水餃開團，晚上8點結單")
		require.NoError(t, err)
		assert.Equal(t, PostTypeGroupBuy, analysis.Type)
		assert.Equal(t, 1.0, analysis.Confidence)
		assert.Contains(t, analysis.Keywords, "開團")
		assert.Contains(t, analysis.Keywords, "結單")
		assert.Contains(t, analysis.Products, "水餃")
	})

	t.Run("proxy with two hits", func(t *testing.T) {
		analysis, err := ClassifyPost("下週出國，可以幫帶東西")
		require.NoError(t, err)
		assert.Equal(t, PostTypeProxy, analysis.Type)
		assert.InDelta(t, 2.0/3, analysis.Confidence, 1e-9)
	})

	t.Run("tie broken toward group buy by comment phrase", func(t *testing.T) {
		analysis, err := ClassifyPost("團購代購都有，想要的留言")
		require.NoError(t, err)
		assert.Equal(t, PostTypeGroupBuy, analysis.Type)
		assert.Equal(t, tieBreakConfidence, analysis.Confidence)
	})

	t.Run("tie broken toward proxy by travel phrase", func(t *testing.T) {
		analysis, err := ClassifyPost("收單前跟我說，明天會經過，可以幫帶")
		require.NoError(t, err)
		assert.Equal(t, PostTypeProxy, analysis.Type)
		assert.Equal(t, tieBreakConfidence, analysis.Confidence)
	})

	t.Run("tie without breaker stays unknown", func(t *testing.T) {
		analysis, err := ClassifyPost("開團 代購")
		require.NoError(t, err)
		assert.Equal(t, PostTypeUnknown, analysis.Type)
		assert.Zero(t, analysis.Confidence)
		assert.Contains(t, analysis.Keywords, "開團")
		assert.Contains(t, analysis.Keywords, "代購")
	})

	t.Run("no hits yields unknown with zero confidence", func(t *testing.T) {
		analysis, err := ClassifyPost("今天天氣真好")
		require.NoError(t, err)
		assert.Equal(t, PostTypeUnknown, analysis.Type)
		assert.Zero(t, analysis.Confidence)
		assert.Empty(t, analysis.Keywords)
	})

	t.Run("input over limit fails fast", func(t *testing.T) {
		_, err := ClassifyPost(strings.Repeat("團", MaxInputRunes+1))
		assert.ErrorIs(t, err, ErrInputTooLong)
	})
}

package svpost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzePost(t *testing.T) {
	svc := NewPostService()

	t.Run("開團貼文返回分類與表單建議", func(t *testing.T) {
		text := "本週開團！高麗菜水餃 2包 240元，週五 18:00 結單，+1 留言下單"

		analysis, info, err := svc.AnalyzePost(context.Background(), text)

		require.NoError(t, err)
		require.NotNil(t, analysis)
		assert.Equal(t, "groupbuy", string(analysis.Type))
		require.NotNil(t, info)
		assert.NotEmpty(t, info.Description)
	})

	t.Run("無法判定類型時不做信息抽取", func(t *testing.T) {
		analysis, info, err := svc.AnalyzePost(context.Background(), "今天天氣真好")

		require.NoError(t, err)
		require.NotNil(t, analysis)
		assert.Equal(t, "unknown", string(analysis.Type))
		assert.Nil(t, info)
	})
}

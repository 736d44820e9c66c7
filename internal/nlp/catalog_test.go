package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCatalog(t *testing.T) {
	t.Run("options collected from product-like fields in order", func(t *testing.T) {
		catalog := ExtractCatalog([]FormField{
			{Name: "name", Label: "姓名"},
			{Name: "flavor", Label: "口味", Options: []string{"韭菜", "高麗菜"}},
			{Name: "extra", Label: "加購商品", Options: []string{"辣油"}},
		})
		assert.Equal(t, []string{"韭菜", "高麗菜", "辣油"}, catalog)
	})

	t.Run("fields without catalog keyword ignored even with options", func(t *testing.T) {
		catalog := ExtractCatalog([]FormField{
			{Name: "pickup", Label: "取貨方式", Options: []string{"自取", "宅配"}},
		})
		assert.Nil(t, catalog)
	})

	t.Run("no fields yields nil", func(t *testing.T) {
		assert.Nil(t, ExtractCatalog(nil))
	})
}

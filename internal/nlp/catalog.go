package nlp

import "strings"

// catalogFieldKeywords 字段标签里出现这些词即视为商品类字段
var catalogFieldKeywords = []string{"商品", "口味", "品項", "種類"}

// ExtractCatalog 从表单字段描述推导已知品名清单
// 取所有标签含商品类关键词且带静态选项的字段，按字段顺序把选项原样串接；
// 不去重，规范化交给数量抽取的双向子串匹配
func ExtractCatalog(fields []FormField) []string {
	var catalog []string
	for _, f := range fields {
		if !isCatalogField(f.Label) {
			continue
		}
		catalog = append(catalog, f.Options...)
	}
	return catalog
}

func isCatalogField(label string) bool {
	for _, kw := range catalogFieldKeywords {
		if strings.Contains(label, kw) {
			return true
		}
	}
	return false
}

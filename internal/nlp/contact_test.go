package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact(t *testing.T) {
	t.Run("self introduction prefix", func(t *testing.T) {
		name, phone := ExtractContact("我是王小明 韭菜+2")
		assert.Equal(t, "王小明", name)
		assert.Empty(t, phone)
	})

	t.Run("name before plus sign", func(t *testing.T) {
		name, _ := ExtractContact("小美+2")
		assert.Equal(t, "小美", name)
	})

	t.Run("name before colon", func(t *testing.T) {
		name, _ := ExtractContact("阿華：我要兩盒")
		assert.Equal(t, "阿華", name)
	})

	t.Run("mobile number hyphens stripped", func(t *testing.T) {
		_, phone := ExtractContact("韭菜+2 0912-345-678")
		assert.Equal(t, "0912345678", phone)
	})

	t.Run("mobile number without hyphens", func(t *testing.T) {
		_, phone := ExtractContact("電話0912345678")
		assert.Equal(t, "0912345678", phone)
	})

	t.Run("landline number", func(t *testing.T) {
		_, phone := ExtractContact("公司電話 02-12345678")
		assert.Equal(t, "0212345678", phone)
	})

	t.Run("name over limit rejected", func(t *testing.T) {
		name, _ := ExtractContact("我是" + strings.Repeat("好", maxCustomerRunes+1) + " 韭菜+2")
		assert.Empty(t, name)
	})

	t.Run("plus prefix reads as name even for product text", func(t *testing.T) {
		// 行首 "X+" 一律按称呼处理，品名与称呼的区分交给调用方
		name, _ := ExtractContact("韭菜+2")
		assert.Equal(t, "韭菜", name)
	})

	t.Run("no contact present", func(t *testing.T) {
		name, phone := ExtractContact("今天天氣真好")
		assert.Empty(t, name)
		assert.Empty(t, phone)
	})
}

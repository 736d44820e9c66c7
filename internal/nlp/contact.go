package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// phonePattern 台湾手机（09 开头 10 码）或市话（区码 1-2 码 + 号码 6-8 码），
// 允许连字号；手机形态优先
var phonePattern = regexp.MustCompile(`09\d{2}-?\d{3}-?\d{3}|0\d{1,2}-?\d{6,8}`)

// customerNamePatterns 客户称呼形态，按优先级排列：
// "我是<名>" 前缀、"<名>+" 前缀、"<名>:" 前缀（半角/全角冒号）
var customerNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^我是([^\s,，。+:：]+)`),
	regexp.MustCompile(`^([^\s,，。+:：]+)\+`),
	regexp.MustCompile(`^([^\s,，。+:：]+)[:：]`),
}

// ExtractContact 从消息中抽取客户称呼与电话
// 与数量抽取互相独立：无论哪条规则产出了品项，本函数都对原始消息执行。
// 找不到时对应返回空串。
func ExtractContact(msg string) (name, phone string) {
	if m := phonePattern.FindString(msg); m != "" {
		phone = strings.ReplaceAll(m, "-", "")
	}

	for _, re := range customerNamePatterns {
		m := re.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		c := strings.TrimSpace(m[1])
		if c == "" || utf8.RuneCountInString(c) > maxCustomerRunes {
			continue
		}
		name = c
		break
	}
	return name, phone
}

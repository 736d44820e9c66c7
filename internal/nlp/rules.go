package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// extractRule 单条抽取规则
// 规则按声明顺序依次尝试，第一条产出非空结果的规则胜出
type extractRule struct {
	name    string
	extract func(msg string, opts ParseOptions) []OrderItem
}

// orderRules 订单抽取规则链（优先级即声明顺序）
var orderRules = []extractRule{
	{name: "quantity_expression", extract: extractQuantityExpressions},
	{name: "bare_plus_fallback", extract: extractBareQuantity},
	{name: "verb_phrase", extract: extractVerbPhrase},
	{name: "proxy_relaxed", extract: extractProxyRelaxed},
}

// candidate 数量表达式候选
type candidate struct {
	name string
	qty  int
}

// quantityPatterns 三种数量表达式形态，按优先级排列：
// 1. 品名+数量（显式加号，如 "韭菜+2"）
// 2. 品名紧跟数量，后接边界（行尾/空白/逗号）
// 3. 品名与数量之间有空白
// 品名字符类额外排除句号与连字号：句号按逗号同级的断句边界处理，
// 连字号排除后 "0912-345-678" 这类电话片段不会被当成品项
var quantityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([^\d\s+,，。-]+)\+(\d+)`),
	regexp.MustCompile(`([^\d\s+,，。-]+)(\d+)(?:[,，\s]|$)`),
	regexp.MustCompile(`([^\d\s+,，。-]+)\s+(\d+)(?:[,，\s]|$)`),
}

// extractQuantityExpressions 数量表达式匹配（全局，全部形态累积候选）
// 形态 2 与 3 可能命中同一段文本，靠已见品名去重；因此同一品名只取
// 首个候选，声明顺序保证加号形态优先
func extractQuantityExpressions(msg string, opts ParseOptions) []OrderItem {
	var candidates []candidate
	for _, re := range quantityPatterns {
		for _, m := range re.FindAllStringSubmatch(msg, -1) {
			qty, err := strconv.Atoi(m[2])
			if err != nil {
				continue
			}
			candidates = append(candidates, candidate{
				name: strings.TrimSpace(m[1]),
				qty:  qty,
			})
		}
	}

	seen := make(map[string]bool, len(candidates))
	var items []OrderItem
	for _, c := range candidates {
		if c.name == "" || utf8.RuneCountInString(c.name) > maxStrictNameRunes {
			continue
		}
		if c.qty < minQuantity || c.qty > maxQuantity {
			continue
		}

		name := c.name
		if len(opts.Catalog) > 0 {
			// 提供了商品清单时为排他匹配：命中则归一化为清单中的标准品名
			canonical, ok := matchCatalog(name, opts.Catalog)
			if !ok {
				continue
			}
			name = canonical
		}

		if seen[name] {
			continue
		}
		seen[name] = true
		items = append(items, OrderItem{ProductName: name, Quantity: c.qty})
	}
	return items
}

// matchCatalog 双向子串匹配：候选是清单项的子串，或清单项是候选的子串
// 首个命中的清单项胜出，返回其标准品名
func matchCatalog(name string, catalog []string) (string, bool) {
	for _, entry := range catalog {
		if entry == "" {
			continue
		}
		if strings.Contains(entry, name) || strings.Contains(name, entry) {
			return entry, true
		}
	}
	return "", false
}

// barePlusPattern 裸 "+N" 速记
var barePlusPattern = regexp.MustCompile(`\+(\d+)`)

// extractBareQuantity 裸数量回退：消息里只有 "+N"，品名用调用方默认值
func extractBareQuantity(msg string, opts ParseOptions) []OrderItem {
	m := barePlusPattern.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil || qty < minQuantity || qty > maxQuantity {
		return nil
	}
	name := opts.DefaultProduct
	if name == "" {
		name = DefaultProductPlaceholder
	}
	return []OrderItem{{ProductName: name, Quantity: qty}}
}

// verbPhrasePatterns 动词短语形态，数量紧跟品名无分隔
var verbPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`我要買([^\d\s,，。]+)(\d+)`),
	regexp.MustCompile(`買([^\d\s,，。]+)(\d+)`),
	regexp.MustCompile(`我要([^\d\s,，。]+)(\d+)`),
}

// extractVerbPhrase 动词短语抽取：首个通过校验的形态胜出，不累积多项
func extractVerbPhrase(msg string, opts ParseOptions) []OrderItem {
	for _, re := range verbPhrasePatterns {
		m := re.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		qty, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if name == "" || utf8.RuneCountInString(name) > maxStrictNameRunes {
			continue
		}
		if qty < minQuantity || qty > maxQuantity {
			continue
		}
		return []OrderItem{{ProductName: name, Quantity: qty}}
	}
	return nil
}

// proxyLoosePatterns 代购宽松形态：裸品名可带量词尾缀，数量恒为 1
var proxyLoosePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^我要買(.+?)(?:[一1]?[個份包盒瓶杯條支罐袋])?$`),
	regexp.MustCompile(`^幫我買(.+?)(?:[一1]?[個份包盒瓶杯條支罐袋])?$`),
	regexp.MustCompile(`^我想要(.+?)(?:[一1]?[個份包盒瓶杯條支罐袋])?$`),
	regexp.MustCompile(`^我要(.+?)(?:[一1]?[個份包盒瓶杯條支罐袋])?$`),
}

// proxyStopWords 语气词/填充词：捕获到的"品名"命中即否决该形态
var proxyStopWords = map[string]bool{
	"謝謝":  true,
	"一下":  true,
	"嗎":   true,
	"的":   true,
	"了":   true,
	"喔":   true,
	"好嗎":  true,
	"麻煩了": true,
}

// fillerWords 整句清洗用的填充词表
var fillerWords = []string{"麻煩", "謝謝", "請問", "請", "一下", "幫我", "的話", "喔", "嗎", "啊"}

// leadingBuyPhrases 句首购买短语，长词在前避免半截剥除
var leadingBuyPhrases = []string{"我要買", "我想買", "幫我買", "我想要", "我要", "想要", "想買", "買"}

var digitRunPattern = regexp.MustCompile(`\d+`)

// extractProxyRelaxed 代购宽松抽取，仅在代购模式且前面规则全部落空时生效
// Stage A：宽松形态直接取品名，数量 1
// Stage B：剥掉填充词与句首购买短语后，把剩余文本当品名
func extractProxyRelaxed(msg string, opts ParseOptions) []OrderItem {
	if opts.Mode != ModeProxy {
		return nil
	}

	// Stage A
	for _, re := range proxyLoosePatterns {
		m := re.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" || proxyStopWords[name] {
			continue
		}
		if utf8.RuneCountInString(name) > maxRelaxedNameRunes {
			continue
		}
		return []OrderItem{{ProductName: name, Quantity: 1}}
	}

	// Stage B
	s := msg
	for _, w := range fillerWords {
		s = strings.ReplaceAll(s, w, "")
	}
	for _, p := range leadingBuyPhrases {
		if strings.HasPrefix(s, p) {
			s = strings.TrimPrefix(s, p)
			break
		}
	}
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < 2 || n > maxRelaxedNameRunes {
		return nil
	}

	qty := 1
	if d := digitRunPattern.FindString(s); d != "" {
		if v, err := strconv.Atoi(d); err == nil && v >= minQuantity && v <= maxQuantity {
			qty = v
		}
	}
	name := strings.TrimSpace(digitRunPattern.ReplaceAllString(s, ""))
	if name == "" {
		return nil
	}
	return []OrderItem{{ProductName: name, Quantity: qty}}
}

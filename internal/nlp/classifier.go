package nlp

import (
	"strings"
	"unicode/utf8"
)

// 分类词表，按声明顺序扫描；两表互不相交
var (
	groupBuyKeywords = []string{"團購", "開團", "跟團", "收單", "結單", "預購", "下單", "接龍", "合購", "揪團"}
	proxyKeywords    = []string{"代購", "代買", "幫買", "幫帶", "帶回", "順便", "連線", "出國", "免稅", "現貨"}

	// productKeywords 通用商品词，与分类判定无关
	productKeywords = []string{"水餃", "蛋糕", "餅乾", "麵包", "滷味", "飲料", "甜點", "零食"}
)

// 平手时的倾向短语
var (
	groupBuyTieBreakers = []string{"留言"}
	proxyTieBreakers    = []string{"會經過", "要去"}
)

const tieBreakConfidence = 0.6

// ClassifyPost 判定贴文是团购还是代购
//
// 统计两张词表在全文（小写化）中的出现次数：
//   - 一方严格占多且至少命中一次 → 该类型，置信度 min(次数/3, 1)
//   - 非零平手 → 依倾向短语破平，置信度 0.6；无短语则视为无法判定
//   - 双方皆零 → unknown，置信度 0
func ClassifyPost(text string) (*PostAnalysis, error) {
	if utf8.RuneCountInString(text) > MaxInputRunes {
		return nil, ErrInputTooLong
	}

	lower := strings.ToLower(text)

	gHits, keywords := countHits(lower, groupBuyKeywords, nil)
	pHits, keywords := countHits(lower, proxyKeywords, keywords)

	analysis := &PostAnalysis{
		Type:     PostTypeUnknown,
		Keywords: keywords,
		Products: matchWords(lower, productKeywords),
	}

	switch {
	case gHits > pHits:
		analysis.Type = PostTypeGroupBuy
		analysis.Confidence = capConfidence(gHits)
	case pHits > gHits:
		analysis.Type = PostTypeProxy
		analysis.Confidence = capConfidence(pHits)
	case gHits > 0: // 非零平手
		if containsAny(lower, groupBuyTieBreakers) {
			analysis.Type = PostTypeGroupBuy
			analysis.Confidence = tieBreakConfidence
		} else if containsAny(lower, proxyTieBreakers) {
			analysis.Type = PostTypeProxy
			analysis.Confidence = tieBreakConfidence
		}
	}
	return analysis, nil
}

// countHits 统计词表总出现次数；命中的词追加进 keywords
func countHits(text string, vocab []string, keywords []string) (int, []string) {
	hits := 0
	for _, kw := range vocab {
		c := strings.Count(text, kw)
		if c == 0 {
			continue
		}
		hits += c
		keywords = append(keywords, kw)
	}
	return hits, keywords
}

func matchWords(text string, vocab []string) []string {
	var found []string
	for _, w := range vocab {
		if strings.Contains(text, w) {
			found = append(found, w)
		}
	}
	return found
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

func capConfidence(hits int) float64 {
	c := float64(hits) / 3
	if c > 1 {
		return 1
	}
	return c
}

package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const descriptionRunes = 200

// cutoffPatterns 结单时间形态，首个命中即停：
// 时+分在前，纯时在后；标记词可在时间前或后
var cutoffPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})[點:：](\d{1,2})分?\s*(?:結單|收單)`),
	regexp.MustCompile(`(\d{1,2})\s*[點時]\s*(?:結單|收單)`),
	regexp.MustCompile(`(?:結單|收單)(?:時間)?[:：]?\s*(\d{1,2})[點:：](\d{1,2})分?`),
	regexp.MustCompile(`(?:結單|收單)(?:時間)?[:：]?\s*(\d{1,2})\s*[點時]`),
}

// deadlinePatterns 一般截止日期形态，命中片段原样保留不解析
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:截止|收單|結單)(?:時間|日期)?[:：]?\s*(\d{1,2}月\d{1,2}日?[^\s,，。]*)`),
	regexp.MustCompile(`(\d{1,2}月\d{1,2}日?\s*(?:早上|中午|下午|晚上)?\d{1,2}[點:：]\d{0,2}分?)`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}\s*\d{1,2}[:：]\d{2})`),
}

// pricedProductPatterns 带价商品行形态（全局匹配）：
// 1. <品名> <规格> <价>元
// 2. <品名> <数量><量词> <价>元
var pricedProductPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([^\s,，。]+)\s+([^\s,，。\d]+)\s+(\d+)元`),
	regexp.MustCompile(`([^\s,，。]+)\s+(\d+)([包盒份顆粒入個])\s*(\d+)元`),
}

// productHintWords 带价行启发过滤：品名或规格/量词须含其一
var productHintWords = []string{"餃", "餅", "商品", "口味", "包", "顆", "盒"}

// labeledProductPatterns 无价回退：标签后整段取出按逗号切分
var labeledProductPatterns = []*regexp.Regexp{
	regexp.MustCompile(`口味[:：](.+)`),
	regexp.MustCompile(`商品[:：](.+)`),
	regexp.MustCompile(`品項[:：](.+)`),
}

var productSplitPattern = regexp.MustCompile(`[,，、]`)

// ExtractPostInfo 从贴文里抽取结单时间、截止时间与商品行
//
// now 为注入的时钟：结单时间只抽出 时:分，日期部分固定取 now 的当天。
// 已知局限：旧贴文或未来贴文在非当天处理时结单日期会漂移，这是对
// 原系统可观测行为的保留，调用方需保证贴文当天处理。
func ExtractPostInfo(text string, now time.Time) (*PostFormInfo, error) {
	if utf8.RuneCountInString(text) > MaxInputRunes {
		return nil, ErrInputTooLong
	}

	info := &PostFormInfo{
		Description: truncateRunes(text, descriptionRunes),
	}

	info.OrderDeadline = extractOrderDeadline(text, now)
	info.Deadline = extractDeadline(text)
	info.Products = extractProducts(text)

	return info, nil
}

// extractOrderDeadline 结单时间 → "2006-01-02 HH:MM"，分缺省为 "00"
func extractOrderDeadline(text string, now time.Time) string {
	for _, re := range cutoffPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		hour, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		minute := 0
		if len(m) > 2 && m[2] != "" {
			if v, err := strconv.Atoi(m[2]); err == nil {
				minute = v
			}
		}
		return fmt.Sprintf("%s %02d:%02d", now.Format("2006-01-02"), hour, minute)
	}
	return ""
}

func extractDeadline(text string) string {
	for _, re := range deadlinePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractProducts(text string) []PostProduct {
	var products []PostProduct

	for _, m := range pricedProductPatterns[0].FindAllStringSubmatch(text, -1) {
		if !containsAny(m[1], productHintWords) && !containsAny(m[2], productHintWords) {
			continue
		}
		price, _ := strconv.Atoi(m[3])
		products = append(products, PostProduct{Name: m[1], Unit: m[2], Price: price})
	}
	for _, m := range pricedProductPatterns[1].FindAllStringSubmatch(text, -1) {
		if !containsAny(m[1], productHintWords) && !containsAny(m[3], productHintWords) {
			continue
		}
		price, _ := strconv.Atoi(m[4])
		products = append(products, PostProduct{Name: m[1], Unit: m[2] + m[3], Price: price})
	}
	if len(products) > 0 {
		return products
	}

	// 带价形态全部落空时，改从标签行切分出无价商品
	for _, re := range labeledProductPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, seg := range productSplitPattern.Split(m[1], -1) {
			name := strings.TrimSpace(seg)
			if name == "" {
				continue
			}
			products = append(products, PostProduct{Name: name})
		}
		if len(products) > 0 {
			return products
		}
	}
	return nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

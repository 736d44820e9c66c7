// Package nlp 规则式订单消息解析引擎
//
// 把自由格式的中文聊天消息解析成结构化订单意向（品名+数量、客户称呼/电话），
// 并对团购/代购贴文做分类与信息抽取。全部为纯函数：无 I/O、无共享状态，
// 同一输入必得同一输出，可被任意并发调用。
package nlp

import (
	"strings"
	"unicode/utf8"
)

// ParseOrderMessage 解析一条聊天消息
//
// 规则链按优先级执行：数量表达式 → 裸 "+N" 回退 → 动词短语 →
// 代购宽松抽取（仅代购模式）。联系方式抽取与品项合并始终执行。
//
// 返回 (nil, nil) 表示消息无法解释为订单（预期情形，非错误）；
// 仅输入超长或模式非法时返回 error。
func ParseOrderMessage(raw string, opts ParseOptions) (*ParsedOrder, error) {
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(msg) > MaxInputRunes {
		return nil, ErrInputTooLong
	}
	if opts.Mode != ModeGroupBuy && opts.Mode != ModeProxy {
		return nil, ErrInvalidMode
	}

	var items []OrderItem
	for _, rule := range orderRules {
		if items = rule.extract(msg, opts); len(items) > 0 {
			break
		}
	}
	if len(items) == 0 {
		return nil, nil
	}

	name, phone := ExtractContact(msg)

	return &ParsedOrder{
		Items:         MergeOrderItems(items),
		CustomerName:  name,
		CustomerPhone: phone,
		RawMessage:    msg,
	}, nil
}

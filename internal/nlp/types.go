package nlp

import "errors"

// 错误定义
var (
	ErrInputTooLong = errors.New("input text exceeds max length")
	ErrInvalidMode  = errors.New("mode must be groupbuy or proxy")
)

// Mode 经营模式
type Mode string

const (
	// ModeGroupBuy 团购模式：消息中带明确品名和数量
	ModeGroupBuy Mode = "groupbuy"
	// ModeProxy 代购模式：消息通常只提一个商品，数量默认为 1
	ModeProxy Mode = "proxy"
)

// 抽取约束
const (
	// MaxInputRunes 输入长度上限（超过直接拒绝，防止 regex 回溯放大）
	MaxInputRunes = 5000

	minQuantity = 1
	maxQuantity = 999

	maxStrictNameRunes  = 20 // 严格抽取器品名上限
	maxRelaxedNameRunes = 30 // 代购宽松抽取器品名上限
	maxCustomerRunes    = 10 // 客户称呼上限
)

// DefaultProductPlaceholder 调用方未提供默认商品名时的占位品名
const DefaultProductPlaceholder = "未指定商品"

// OrderItem 单条订单项
type OrderItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// ParsedOrder 一条消息的解析结果
// Items 不会为空：无法解析时整个结果为 nil，不产生零项订单
type ParsedOrder struct {
	Items         []OrderItem `json:"items"`
	CustomerName  string      `json:"customer_name,omitempty"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	Source        string      `json:"source,omitempty"` // 消息来源渠道，由调用方在解析后补充
	RawMessage    string      `json:"raw_message"`
}

// ParseOptions 解析参数
type ParseOptions struct {
	Mode           Mode     // 必填，不做隐式默认
	Catalog        []string // 可选：已知品名清单，非空时为排他校验
	DefaultProduct string   // 可选：裸 "+N" 的默认商品名
}

// FormField 表单字段描述（来自表单存储，仅用于商品清单推导）
type FormField struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Options []string `json:"options,omitempty"`
}

// PostType 贴文类型
type PostType string

const (
	PostTypeGroupBuy PostType = "groupbuy"
	PostTypeProxy    PostType = "proxy"
	PostTypeUnknown  PostType = "unknown"
)

// PostAnalysis 贴文分类结果
type PostAnalysis struct {
	Type       PostType `json:"type"`
	Confidence float64  `json:"confidence"` // [0,1]
	Keywords   []string `json:"keywords,omitempty"`
	Products   []string `json:"products,omitempty"` // 命中的通用商品词，与分类判定无关
}

// PostProduct 贴文中带价的商品行
type PostProduct struct {
	Name  string `json:"name"`
	Price int    `json:"price,omitempty"` // 0 表示未标价
	Unit  string `json:"unit,omitempty"`
}

// PostFormInfo 贴文信息抽取结果
type PostFormInfo struct {
	Deadline      string        `json:"deadline,omitempty"`       // 截止时间原文片段，不做日期归一化
	OrderDeadline string        `json:"order_deadline,omitempty"` // 结单时间，格式 "2006-01-02 15:04"
	Products      []PostProduct `json:"products,omitempty"`
	Description   string        `json:"description"` // 贴文前 200 字
}

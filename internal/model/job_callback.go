package model

// ParseCallback 解析回调消息（标准化）
// 用于 Worker → API callback consumer 的消息传递
type ParseCallback struct {
	RequestID   string           `json:"request_id"`             // 对应请求的 request_id（链路追踪）
	OrderID     string           `json:"order_id"`               // 订单 ID
	VendorID    int64            `json:"vendor_id"`              // 卖家 ID
	Status      string           `json:"status"`                 // 回调状态: SUCCESS / FAILED
	ParseResult *ParseResultData `json:"parse_result,omitempty"` // 解析结果（成功时返回）
	Error       string           `json:"error,omitempty"`        // 错误信息（失败时返回）
	ProcessedAt int64            `json:"processed_at"`           // 处理时间戳（Unix timestamp）
}

// 回调状态常量
const (
	CallbackStatusSuccess = "SUCCESS" // 解析成功
	CallbackStatusFailed  = "FAILED"  // 解析失败（含消息无法识别）
)

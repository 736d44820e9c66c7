package model

// ParseJob 消息解析任务（标准化）
// 用于 API → Worker 的消息传递
type ParseJob struct {
	Payload ParseJobPayload `json:"payload"`
}

// ParseJobPayload Job 负载
type ParseJobPayload struct {
	Data ParseJobData `json:"data"`
}

// ParseJobData Job 数据层
type ParseJobData struct {
	// 元信息
	RequestID  string `json:"request_id"`  // 请求 ID（全链路追踪）
	OrgID      string `json:"org_id"`      // 组织 ID（MVP 固定为 "0"）
	ActionType string `json:"action_type"` // 动作类型，固定值 "message_parse"
	ID         string `json:"id"`          // 订单 ID

	// 业务数据
	Data ParseJobBusinessData `json:"data"`
}

// ParseJobBusinessData 消息解析业务数据
// 包含 Worker 解析所需的全部数据（避免查询 DB）
type ParseJobBusinessData struct {
	OrderID        string   `json:"order_id"`                  // 订单 ID
	VendorID       int64    `json:"vendor_id"`                 // 卖家 ID
	FormID         int64    `json:"form_id,omitempty"`         // 表单 ID（可选）
	Message        string   `json:"message"`                   // 原始聊天消息
	Source         string   `json:"source,omitempty"`          // 消息来源渠道
	Mode           string   `json:"mode"`                      // 经营模式: groupbuy / proxy
	Catalog        []string `json:"catalog,omitempty"`         // 已知品名清单（来自表单）
	DefaultProduct string   `json:"default_product,omitempty"` // 裸 "+N" 的默认商品名
}

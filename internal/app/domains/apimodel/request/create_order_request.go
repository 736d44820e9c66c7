package request

// CreateOrderRequest 创建订单请求
// 原始聊天消息进入后台解析，form_id 可选（提供时用表单选项做品名清单）
type CreateOrderRequest struct {
	VendorID int64  `json:"vendor_id" binding:"required,min=1"`
	FormID   int64  `json:"form_id"`
	Message  string `json:"message" binding:"required,max=5000"`
	Source   string `json:"source" binding:"max=50"`
}

// ListOrdersRequest 订单列表查询参数
type ListOrdersRequest struct {
	VendorID int64 `form:"vendor_id"`
	Page     int   `form:"page,default=1" binding:"min=1"`
	Limit    int   `form:"limit,default=20" binding:"min=1,max=100"`
}

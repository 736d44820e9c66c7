package request

// CreateVendorRequest 创建卖家请求
type CreateVendorRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Mode string `json:"mode" binding:"required,oneof=groupbuy proxy"`
}

package response

// VendorResponse 卖家响应
type VendorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Mode      string `json:"mode"`
	CreatedAt string `json:"created_at"`
}

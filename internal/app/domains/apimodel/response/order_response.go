package response

// OrderResponse 订单响应
type OrderResponse struct {
	ID            string              `json:"id"`
	VendorID      int64               `json:"vendor_id"`
	FormID        int64               `json:"form_id,omitempty"`
	RawMessage    string              `json:"raw_message"`
	Source        string              `json:"source,omitempty"`
	Status        string              `json:"status"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	CustomerName  string              `json:"customer_name,omitempty"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	ErrorMessage  string              `json:"error_message,omitempty"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
}

// OrderItemResponse 订单品项
type OrderItemResponse struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// OrderListResponse 订单列表响应
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

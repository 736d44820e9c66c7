package response

// FormResponse 表单响应
type FormResponse struct {
	ID            int64               `json:"id"`
	VendorID      int64               `json:"vendor_id"`
	Title         string              `json:"title"`
	Fields        []FormFieldResponse `json:"fields"`
	Deadline      string              `json:"deadline,omitempty"`
	OrderDeadline string              `json:"order_deadline,omitempty"`
	CreatedAt     string              `json:"created_at"`
}

// FormFieldResponse 表单字段
type FormFieldResponse struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Options []string `json:"options,omitempty"`
}

package request

// CreateFormRequest 创建开团表单请求
type CreateFormRequest struct {
	VendorID      int64              `json:"vendor_id" binding:"required,min=1"`
	Title         string             `json:"title" binding:"required,max=200"`
	Fields        []FormFieldRequest `json:"fields" binding:"required,min=1,dive"`
	Deadline      string             `json:"deadline"`       // 截止时间原文片段（可选，来自贴文分析）
	OrderDeadline string             `json:"order_deadline"` // 结单时间 "2006-01-02 15:04"（可选）
}

// FormFieldRequest 表单字段
type FormFieldRequest struct {
	Name    string   `json:"name" binding:"required,max=50"`
	Label   string   `json:"label" binding:"required,max=100"`
	Options []string `json:"options"`
}

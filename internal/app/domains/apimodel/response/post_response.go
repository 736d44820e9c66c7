package response

// PostAnalysisResponse 贴文分析响应
// 分类结果加表单信息建议，前端据此预填开团表单
type PostAnalysisResponse struct {
	Type       string          `json:"type"`
	Confidence float64         `json:"confidence"`
	Keywords   []string        `json:"keywords,omitempty"`
	Suggestion *FormSuggestion `json:"suggestion,omitempty"`
}

// FormSuggestion 表单信息建议
type FormSuggestion struct {
	Deadline      string                `json:"deadline,omitempty"`
	OrderDeadline string                `json:"order_deadline,omitempty"`
	Products      []PostProductResponse `json:"products,omitempty"`
	Description   string                `json:"description"`
}

// PostProductResponse 贴文中识别出的商品行
type PostProductResponse struct {
	Name  string `json:"name"`
	Price int    `json:"price,omitempty"`
	Unit  string `json:"unit,omitempty"`
}

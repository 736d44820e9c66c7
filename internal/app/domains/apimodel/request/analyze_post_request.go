package request

// AnalyzePostRequest 贴文分析请求
type AnalyzePostRequest struct {
	Text string `json:"text" binding:"required,max=5000"`
}

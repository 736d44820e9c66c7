package post

import "chatorder/internal/app/domains/services/svpost"

// Handler 贴文分析接口处理器
type Handler struct {
	postSvc *svpost.PostService
}

// NewHandler 创建贴文分析处理器
func NewHandler(postSvc *svpost.PostService) *Handler {
	return &Handler{postSvc: postSvc}
}

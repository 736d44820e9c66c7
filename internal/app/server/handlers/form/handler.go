package form

import "chatorder/internal/app/domains/services/svform"

// Handler 表单接口处理器
type Handler struct {
	formSvc *svform.FormService
}

// NewHandler 创建表单处理器
func NewHandler(formSvc *svform.FormService) *Handler {
	return &Handler{formSvc: formSvc}
}

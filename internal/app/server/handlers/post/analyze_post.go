package post

import (
	"github.com/gin-gonic/gin"

	"chatorder/internal/app/domains/apimodel/request"
	"chatorder/internal/app/domains/apimodel/response"
	"chatorder/internal/app/pkg/ginx"
)

// AnalyzePost 分析贴文类型并抽取表单信息建议
// POST /api/v1/posts/analyze
func (h *Handler) AnalyzePost(c *gin.Context) {
	var req request.AnalyzePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	analysis, info, err := h.postSvc.AnalyzePost(c.Request.Context(), req.Text)
	if err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	ginx.Success(c, response.FromPostAnalysis(analysis, info))
}

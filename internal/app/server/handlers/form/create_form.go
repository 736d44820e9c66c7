package form

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chatorder/internal/app/domains/apimodel/request"
	"chatorder/internal/app/domains/apimodel/response"
	"chatorder/internal/app/pkg/errorx"
	"chatorder/internal/app/pkg/ginx"
)

// CreateForm 创建开团表单
// POST /api/v1/forms
func (h *Handler) CreateForm(c *gin.Context) {
	var req request.CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	form, err := h.formSvc.CreateForm(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, errorx.ErrVendorNotFound) {
			ginx.NotFound(c, "vendor not found")
			return
		}
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromForm(form))
}

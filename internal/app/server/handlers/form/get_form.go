package form

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"chatorder/internal/app/domains/apimodel/response"
	"chatorder/internal/app/pkg/errorx"
	"chatorder/internal/app/pkg/ginx"
)

// GetForm 查询表单
// GET /api/v1/forms/:id
func (h *Handler) GetForm(c *gin.Context) {
	formID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || formID <= 0 {
		ginx.BadRequest(c, "invalid form id")
		return
	}

	form, err := h.formSvc.GetForm(c.Request.Context(), formID)
	if err != nil {
		if errors.Is(err, errorx.ErrFormNotFound) {
			ginx.NotFound(c, "form not found")
			return
		}
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromForm(form))
}

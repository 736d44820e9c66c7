package response

import (
	"chatorder/internal/domains/common/job"
	"chatorder/pkg/errorutil"
)

// ParseResult 解析结果（实现 ResultI 接口）
type ParseResult struct {
	ID     string           `json:"id"`
	Status string           `json:"status"`
	Data   interface{}      `json:"data"`
	Error  *errorutil.Error `json:"error,omitempty"`
}

const (
	ParseStatusSuccess = "SUCCESS"
	ParseStatusFailed  = "FAILED"
)

// NewParseResult 创建解析结果
func NewParseResult() *ParseResult {
	return &ParseResult{}
}

// Set 实现 ResultI 接口
func (r *ParseResult) Set(meta *job.Meta, err error) {
	r.ID = meta.ID
	if err != nil {
		r.Status = ParseStatusFailed
		r.Error = errorutil.Wrap(err)
	} else {
		r.Status = ParseStatusSuccess
	}
}

// GetStatus 实现 ResultI 接口
func (r *ParseResult) GetStatus() string {
	return r.Status
}

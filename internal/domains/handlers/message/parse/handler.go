package parse

import (
	"context"
	"encoding/json"
	"fmt"

	"chatorder/internal/business"
	"chatorder/internal/domains/common"
	"chatorder/internal/domains/common/job"
	"chatorder/internal/domains/common/response"
	"chatorder/internal/model"
)

// ParseHandler 消息解析 Handler
type ParseHandler struct {
	ctx     context.Context
	meta    *job.Meta
	bizData *model.ParseJobBusinessData
}

// NewParseHandler 创建解析 Handler，解析标准化 Job 消息
func NewParseHandler(ctx context.Context, meta *job.Meta, payload interface{}) (common.HandlerServ, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload failed: %w", err)
	}

	var bizData model.ParseJobBusinessData
	if err := json.Unmarshal(payloadBytes, &bizData); err != nil {
		return nil, fmt.Errorf("unmarshal business data failed: %w", err)
	}

	// 校验必填字段
	if bizData.OrderID == "" {
		return nil, fmt.Errorf("order_id is required")
	}
	if bizData.Message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if bizData.Mode == "" {
		return nil, fmt.Errorf("mode is required")
	}

	return &ParseHandler{
		ctx:     ctx,
		meta:    meta,
		bizData: &bizData,
	}, nil
}

// GetProcess 处理解析请求
func (h *ParseHandler) GetProcess() *response.Response {
	result := response.NewParseResult()

	err := h.process(result)

	resp := &response.Response{}
	resp.WrapResponse(result, h.meta, err)

	return resp
}

// process 业务处理逻辑
func (h *ParseHandler) process(result *response.ParseResult) error {
	parseService, ok := h.ctx.Value("parse_service").(*business.ParseService)
	if !ok || parseService == nil {
		return fmt.Errorf("ParseService not found in context")
	}

	input := &business.ParseInput{
		RequestID:      h.meta.RequestID,
		OrderID:        h.bizData.OrderID,
		VendorID:       h.bizData.VendorID,
		Message:        h.bizData.Message,
		Source:         h.bizData.Source,
		Mode:           h.bizData.Mode,
		Catalog:        h.bizData.Catalog,
		DefaultProduct: h.bizData.DefaultProduct,
	}

	if err := parseService.ExecuteParse(h.ctx, input); err != nil {
		return err
	}

	result.Data = h.bizData.OrderID
	return nil
}

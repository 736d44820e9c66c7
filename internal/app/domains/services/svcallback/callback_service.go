package svcallback

import (
	"context"
	"fmt"

	"chatorder/internal/app/domains/entity/etorder"
	"chatorder/internal/app/domains/modules/mdorder"
	"chatorder/internal/app/domains/modules/mdparse"
	"chatorder/internal/app/pkg/logger"
	"chatorder/internal/model"
)

// CallbackService 解析回调服务
// 落库解析结果并通过 Redis 通知 Smart Wait 中的请求
type CallbackService struct {
	orderModule *mdorder.OrderModule
	parseModule *mdparse.ParseModule
	log         logger.Logger
}

// NewCallbackService 创建回调服务
func NewCallbackService(orderModule *mdorder.OrderModule, parseModule *mdparse.ParseModule, log logger.Logger) *CallbackService {
	return &CallbackService{
		orderModule: orderModule,
		parseModule: parseModule,
		log:         log,
	}
}

// HandleCallback 处理一条解析回调
func (s *CallbackService) HandleCallback(ctx context.Context, cb *model.ParseCallback) error {
	if cb.OrderID == "" {
		return fmt.Errorf("callback missing order_id, request_id=%s", cb.RequestID)
	}

	var status string
	var errorMsg string

	switch cb.Status {
	case model.CallbackStatusSuccess:
		status = string(etorder.OrderStatusParsed)
	case model.CallbackStatusFailed:
		status = string(etorder.OrderStatusFailed)
		errorMsg = cb.Error
	default:
		return fmt.Errorf("unknown callback status %q, order_id=%s", cb.Status, cb.OrderID)
	}

	if err := s.orderModule.UpdateParseResult(ctx, cb.OrderID, cb.ParseResult, status, errorMsg); err != nil {
		return fmt.Errorf("failed to update parse result, order_id=%s: %w", cb.OrderID, err)
	}

	// 通知失败只记录：Smart Wait 侧有超时兜底，轮询仍能拿到结果
	if err := s.parseModule.NotifyParseResult(ctx, cb.OrderID, status); err != nil {
		s.log.WarnContext(ctx, "failed to notify parse result",
			"order_id", cb.OrderID, "error", err.Error())
	}

	s.log.InfoContext(ctx, "parse callback handled",
		"order_id", cb.OrderID, "status", status, "request_id", cb.RequestID)

	return nil
}

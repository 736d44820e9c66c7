package svorder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"chatorder/internal/app/domains/apimodel/request"
	"chatorder/internal/app/domains/entity/etform"
	"chatorder/internal/app/domains/entity/etorder"
	"chatorder/internal/app/domains/modules/mdorder"
	"chatorder/internal/app/domains/modules/mdparse"
	"chatorder/internal/app/pkg/errorx"
	"chatorder/internal/app/pkg/logger"
)

// MaxWaitTimeout Smart Wait 等待时长上限
const MaxWaitTimeout = 30 * time.Second

// OrderService 订单服务
// 创建订单后发布解析任务，解析结果由回调消费者异步落库
type OrderService struct {
	orderModule *mdorder.OrderModule
	parseModule *mdparse.ParseModule
	log         logger.Logger
}

// NewOrderService 创建订单服务
func NewOrderService(orderModule *mdorder.OrderModule, parseModule *mdparse.ParseModule, log logger.Logger) *OrderService {
	return &OrderService{
		orderModule: orderModule,
		parseModule: parseModule,
		log:         log,
	}
}

// CreateOrder 创建订单并发布解析任务
// wait > 0 时采用 Smart Wait：订阅结果频道等待解析完成后返回最终状态；
// 超时或不等待时返回 RECEIVED 状态，调用方轮询查询
func (s *OrderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest, wait time.Duration) (*etorder.Order, error) {
	vendor, err := s.orderModule.GetVendor(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrVendorNotFound
		}
		return nil, err
	}

	var form *etform.Form
	if req.FormID > 0 {
		form, err = s.orderModule.GetForm(ctx, req.FormID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.ErrFormNotFound
			}
			return nil, err
		}
	}

	order, err := etorder.NewOrder(uuid.NewString(), req.VendorID, req.FormID, req.Message, req.Source)
	if err != nil {
		return nil, err
	}

	if err := s.orderModule.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	// 发布失败不影响订单创建，订单停留在 RECEIVED 等待补偿或人工处理
	if err := s.parseModule.PublishParseJob(ctx, order, vendor, form); err != nil {
		s.log.WarnContext(ctx, "failed to publish parse job",
			"order_id", order.ID, "error", err.Error())
		return order, nil
	}

	if wait <= 0 {
		return order, nil
	}
	if wait > MaxWaitTimeout {
		wait = MaxWaitTimeout
	}

	if err := s.parseModule.WaitForParseResult(ctx, order.ID, wait); err != nil {
		// 超时走轮询路径，订单状态以库中为准
		s.log.InfoContext(ctx, "smart wait timed out, fall back to polling",
			"order_id", order.ID)
		return order, nil
	}

	// 收到通知后回读最终状态
	updated, err := s.orderModule.GetOrder(ctx, order.ID)
	if err != nil {
		s.log.WarnContext(ctx, "failed to reload order after parse notify",
			"order_id", order.ID, "error", err.Error())
		return order, nil
	}

	return updated, nil
}

// GetOrder 查询订单
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	order, err := s.orderModule.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// ListOrders 查询订单列表
func (s *OrderService) ListOrders(ctx context.Context, vendorID int64, page, limit int) ([]*etorder.Order, int64, error) {
	return s.orderModule.ListOrders(ctx, vendorID, page, limit)
}

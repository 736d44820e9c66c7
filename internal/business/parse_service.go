package business

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chatorder/internal/model"
	"chatorder/internal/nlp"
	"chatorder/pkg/errorutil"
	"chatorder/pkg/lmstfy"
)

// ParseInput 解析输入（全部来自 Job payload，不查 DB）
type ParseInput struct {
	RequestID      string
	OrderID        string
	VendorID       int64
	Message        string
	Source         string
	Mode           string
	Catalog        []string
	DefaultProduct string
}

// ParseService 解析服务（仅负责跑解析引擎，不涉及 DB 操作）
// 职责：执行解析 → 发送回调到 callback 队列
type ParseService struct {
	lmstfyClient  *lmstfy.Client
	callbackQueue string
}

// NewParseService 创建解析服务实例
func NewParseService(lmstfyClient *lmstfy.Client, callbackQueue string) *ParseService {
	return &ParseService{
		lmstfyClient:  lmstfyClient,
		callbackQueue: callbackQueue,
	}
}

// ExecuteParse 执行解析并发送回调
// 返回 error 仅表示回调发送失败（需要重试）；解析失败与消息无法识别
// 都作为 FAILED 回调正常送出，由 API 侧落库供人工处理
func (s *ParseService) ExecuteParse(ctx context.Context, input *ParseInput) error {
	order, parseErr := s.runEngine(input)

	callback := model.ParseCallback{
		RequestID:   input.RequestID,
		OrderID:     input.OrderID,
		VendorID:    input.VendorID,
		ProcessedAt: time.Now().Unix(),
	}

	switch {
	case parseErr != nil:
		callback.Status = model.CallbackStatusFailed
		callback.Error = parseErr.Error()
	case order == nil:
		// 无法识别不是错误：订单转人工
		callback.Status = model.CallbackStatusFailed
		callback.Error = "message not recognized"
	default:
		callback.Status = model.CallbackStatusSuccess
		callback.ParseResult = toResultData(order)
	}

	callbackJSON, err := json.Marshal(callback)
	if err != nil {
		return fmt.Errorf("failed to marshal callback: %w", err)
	}

	// ttl=0 永不过期, delay=0 立即可用
	if err := s.lmstfyClient.Publish(s.callbackQueue, callbackJSON, 0, 0); err != nil {
		return errorutil.RetriableWithDetails("failed to publish callback", err.Error())
	}

	return nil
}

// runEngine 跑解析引擎
func (s *ParseService) runEngine(input *ParseInput) (*nlp.ParsedOrder, error) {
	opts := nlp.ParseOptions{
		Mode:           nlp.Mode(input.Mode),
		Catalog:        input.Catalog,
		DefaultProduct: input.DefaultProduct,
	}

	order, err := nlp.ParseOrderMessage(input.Message, opts)
	if err != nil {
		return nil, err
	}
	if order != nil {
		order.Source = input.Source
	}
	return order, nil
}

// toResultData 领域结果转传输结构
func toResultData(order *nlp.ParsedOrder) *model.ParseResultData {
	items := make([]model.ParsedItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, model.ParsedItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	return &model.ParseResultData{
		Items:         items,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Source:        order.Source,
		RawMessage:    order.RawMessage,
	}
}

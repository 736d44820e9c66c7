package mdparse

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"chatorder/internal/app/domains/entity/etform"
	"chatorder/internal/app/domains/entity/etorder"
	"chatorder/internal/app/domains/entity/etvendor"
	"chatorder/internal/app/infra/mq/lmstfy"
	infraRedis "chatorder/internal/app/infra/persistence/redis"
	"chatorder/internal/model"
	"chatorder/internal/nlp"
)

// actionTypeMessageParse Worker 侧按此路由到消息解析处理器
const actionTypeMessageParse = "message_parse"

// ParseModule 解析任务模块
// 负责构建解析任务并发布到队列，以及 Smart Wait 订阅解析结果
type ParseModule struct {
	mqClient     *lmstfy.Client
	pubsubClient *infraRedis.PubSubClient
	queueName    string
}

// NewParseModule 创建解析任务模块
func NewParseModule(mqClient *lmstfy.Client, pubsubClient *infraRedis.PubSubClient, queueName string) *ParseModule {
	return &ParseModule{
		mqClient:     mqClient,
		pubsubClient: pubsubClient,
		queueName:    queueName,
	}
}

// PublishParseJob 构建并发布解析任务
// 任务自带消息原文、模式、品名清单，Worker 无需回查数据库
func (m *ParseModule) PublishParseJob(ctx context.Context, order *etorder.Order, vendor *etvendor.Vendor, form *etform.Form) error {
	var catalog []string
	var defaultProduct string

	if form != nil {
		fields := make([]nlp.FormField, 0, len(form.Fields))
		for _, f := range form.Fields {
			fields = append(fields, nlp.FormField{
				Name:    f.Name,
				Label:   f.Label,
				Options: f.Options,
			})
		}
		catalog = nlp.ExtractCatalog(fields)
		// 裸 "+N" 回退用表单的第一个品名兜底
		if len(catalog) > 0 {
			defaultProduct = catalog[0]
		}
	}

	job := &model.ParseJob{
		Payload: model.ParseJobPayload{
			Data: model.ParseJobData{
				RequestID:  uuid.NewString(),
				OrgID:      "0",
				ActionType: actionTypeMessageParse,
				ID:         order.ID,
				Data: model.ParseJobBusinessData{
					OrderID:        order.ID,
					VendorID:       order.VendorID,
					FormID:         order.FormID,
					Message:        order.RawMessage,
					Source:         order.Source,
					Mode:           vendor.Mode,
					Catalog:        catalog,
					DefaultProduct: defaultProduct,
				},
			},
		},
	}

	return m.mqClient.Publish(ctx, m.queueName, job)
}

// ResultChannel 解析结果通知频道名
func ResultChannel(orderID string) string {
	return fmt.Sprintf("parse:result:%s", orderID)
}

// WaitForParseResult 等待解析结果通知（Smart Wait）
// 返回 nil 表示在超时前收到通知，此时订单状态已由回调消费者落库
func (m *ParseModule) WaitForParseResult(ctx context.Context, orderID string, timeout time.Duration) error {
	_, err := m.pubsubClient.Subscribe(ctx, ResultChannel(orderID), timeout)
	return err
}

// NotifyParseResult 发布解析结果通知，唤醒 Smart Wait 中的请求
func (m *ParseModule) NotifyParseResult(ctx context.Context, orderID string, status string) error {
	return m.pubsubClient.Publish(ctx, ResultChannel(orderID), status)
}

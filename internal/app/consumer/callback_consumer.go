package consumer

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"chatorder/internal/app/domains/services/svcallback"
	"chatorder/internal/app/infra/mq/lmstfy"
	"chatorder/internal/app/pkg/logger"
	"chatorder/internal/model"
)

const (
	consumeTimeoutSec = 3   // 长轮询等待（秒）
	consumeTTRSec     = 30  // 消息处理超时（秒）
	errorBackoff      = 2 * time.Second
)

// CallbackConsumer 解析回调消费者
// 单协程循环消费回调队列，结果落库后通过 Redis 唤醒 Smart Wait
type CallbackConsumer struct {
	mqClient    *lmstfy.Client
	queue       string
	callbackSvc *svcallback.CallbackService
	log         logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCallbackConsumer 创建回调消费者
func NewCallbackConsumer(mqClient *lmstfy.Client, queue string, callbackSvc *svcallback.CallbackService, log logger.Logger) *CallbackConsumer {
	return &CallbackConsumer{
		mqClient:    mqClient,
		queue:       queue,
		callbackSvc: callbackSvc,
		log:         log,
	}
}

// Start 启动消费循环
func (c *CallbackConsumer) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.wg.Add(1)
	go c.loop(ctx)

	c.log.Info("callback consumer started", "queue", c.queue)
}

// Stop 停止消费循环并等待退出
func (c *CallbackConsumer) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	c.log.Info("callback consumer stopped", "queue", c.queue)
}

func (c *CallbackConsumer) loop(ctx context.Context) {
	defer c.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := c.mqClient.Consume(ctx, c.queue, consumeTimeoutSec, consumeTTRSec)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.log.ErrorContext(ctx, "failed to consume callback queue",
				"queue", c.queue, "error", err.Error())
			time.Sleep(errorBackoff)
			continue
		}

		if msg == nil {
			// 队列为空，继续长轮询
			continue
		}

		c.handleMessage(ctx, msg)
	}
}

// handleMessage 处理一条回调消息
// 格式非法的消息直接 ACK 丢弃，业务处理失败不 ACK，等 TTR 到期重投
func (c *CallbackConsumer) handleMessage(ctx context.Context, msg *lmstfy.Message) {
	var cb model.ParseCallback
	if err := json.Unmarshal(msg.Data, &cb); err != nil {
		c.log.ErrorContext(ctx, "invalid callback payload, discarding",
			"job_id", msg.JobID, "error", err.Error())
		c.ack(ctx, msg.JobID)
		return
	}

	if err := c.callbackSvc.HandleCallback(ctx, &cb); err != nil {
		c.log.ErrorContext(ctx, "failed to handle callback, will retry after ttr",
			"job_id", msg.JobID, "order_id", cb.OrderID, "error", err.Error())
		return
	}

	c.ack(ctx, msg.JobID)
}

func (c *CallbackConsumer) ack(ctx context.Context, jobID string) {
	if err := c.mqClient.Ack(ctx, c.queue, jobID); err != nil {
		c.log.ErrorContext(ctx, "failed to ack callback job",
			"job_id", jobID, "error", err.Error())
	}
}

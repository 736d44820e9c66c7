package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"chatorder/internal/app/config"
	"chatorder/internal/app/consumer"
	"chatorder/internal/app/domains/modules/mdorder"
	"chatorder/internal/app/domains/modules/mdparse"
	"chatorder/internal/app/domains/repo/rpform"
	"chatorder/internal/app/domains/repo/rporder"
	"chatorder/internal/app/domains/repo/rpvendor"
	"chatorder/internal/app/domains/services/svcallback"
	"chatorder/internal/app/domains/services/svform"
	"chatorder/internal/app/domains/services/svorder"
	"chatorder/internal/app/domains/services/svpost"
	"chatorder/internal/app/domains/services/svvendor"
	"chatorder/internal/app/infra/mq/lmstfy"
	infraRedis "chatorder/internal/app/infra/persistence/redis"
	"chatorder/internal/app/pkg/logger"
	"chatorder/internal/app/server/handlers/form"
	"chatorder/internal/app/server/handlers/order"
	"chatorder/internal/app/server/handlers/post"
	"chatorder/internal/app/server/handlers/vendor"
	"chatorder/internal/app/server/routers"
)

// App 组装完成的应用
type App struct {
	Engine           *gin.Engine
	CallbackConsumer *consumer.CallbackConsumer
}

// InitializeApp 依赖装配
// 连接 MySQL / Redis / Lmstfy，逐层组装 repo → module → service → handler → router
func InitializeApp(cfg *config.Config, log logger.Logger) (*App, func(), error) {
	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("connect mysql failed: %w", err)
	}

	pubsubClient, err := infraRedis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis failed: %w", err)
	}

	mqClient := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)

	// 仓储层
	vendorRepo := rpvendor.NewVendorRepository(db)
	formRepo := rpform.NewFormRepository(db)
	orderRepo := rporder.NewOrderRepository(db)

	// 模块层
	orderModule := mdorder.NewOrderModule(orderRepo, formRepo, vendorRepo)
	parseModule := mdparse.NewParseModule(mqClient, pubsubClient, cfg.Lmstfy.Queue)

	// 服务层
	vendorSvc := svvendor.NewVendorService(vendorRepo)
	formSvc := svform.NewFormService(formRepo, vendorRepo)
	orderSvc := svorder.NewOrderService(orderModule, parseModule, log)
	postSvc := svpost.NewPostService()
	callbackSvc := svcallback.NewCallbackService(orderModule, parseModule, log)

	// 回调消费者
	callbackConsumer := consumer.NewCallbackConsumer(mqClient, cfg.Lmstfy.CallbackQueue, callbackSvc, log)

	// 接口层
	handlers := &routers.Handlers{
		Vendor: vendor.NewHandler(vendorSvc),
		Form:   form.NewHandler(formSvc),
		Order:  order.NewHandler(orderSvc),
		Post:   post.NewHandler(postSvc),
	}

	engine := routers.SetupRouter(handlers, log)

	cleanup := func() {
		if err := pubsubClient.Close(); err != nil {
			log.Error("failed to close redis client", "error", err.Error())
		}
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Error("failed to close mysql connection", "error", err.Error())
			}
		}
	}

	return &App{
		Engine:           engine,
		CallbackConsumer: callbackConsumer,
	}, cleanup, nil
}

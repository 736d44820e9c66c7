package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"chatorder/internal/app/config"
	"chatorder/internal/app/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "配置文件路径")
	flag.Parse()

	log := logger.NewDefaultLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err.Error())
		os.Exit(1)
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, cleanup, err := InitializeApp(cfg, log)
	if err != nil {
		log.Error("failed to initialize app", "error", err.Error())
		os.Exit(1)
	}
	defer cleanup()

	app.CallbackConsumer.Start()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: app.Engine,
	}

	go func() {
		log.Info("api server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("api server failed", "error", err.Error())
			os.Exit(1)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	// 先停 HTTP，再停回调消费者
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", "error", err.Error())
	}

	app.CallbackConsumer.Stop()

	log.Info("shutdown complete")
}

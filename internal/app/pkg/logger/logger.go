package logger

import (
	"context"
	"log"
	"os"
)

// Logger 日志接口（key-value 风格，消费者与服务层共用）
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Debug(msg string, fields ...interface{})

	InfoContext(ctx context.Context, msg string, fields ...interface{})
	ErrorContext(ctx context.Context, msg string, fields ...interface{})
	WarnContext(ctx context.Context, msg string, fields ...interface{})
	DebugContext(ctx context.Context, msg string, fields ...interface{})
}

// DefaultLogger 默认日志实现
type DefaultLogger struct {
	logger *log.Logger
}

// NewDefaultLogger 创建默认日志
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		logger: log.New(os.Stdout, "[CHATORDER] ", log.LstdFlags),
	}
}

func (l *DefaultLogger) log(level, msg string, fields []interface{}) {
	if len(fields) == 0 {
		l.logger.Printf("[%s] %s", level, msg)
		return
	}
	l.logger.Printf("[%s] %s %v", level, msg, fields)
}

func (l *DefaultLogger) Info(msg string, fields ...interface{})  { l.log("INFO", msg, fields) }
func (l *DefaultLogger) Error(msg string, fields ...interface{}) { l.log("ERROR", msg, fields) }
func (l *DefaultLogger) Warn(msg string, fields ...interface{})  { l.log("WARN", msg, fields) }
func (l *DefaultLogger) Debug(msg string, fields ...interface{}) { l.log("DEBUG", msg, fields) }

func (l *DefaultLogger) InfoContext(ctx context.Context, msg string, fields ...interface{}) {
	l.log("INFO", msg, fields)
}

func (l *DefaultLogger) ErrorContext(ctx context.Context, msg string, fields ...interface{}) {
	l.log("ERROR", msg, fields)
}

func (l *DefaultLogger) WarnContext(ctx context.Context, msg string, fields ...interface{}) {
	l.log("WARN", msg, fields)
}

func (l *DefaultLogger) DebugContext(ctx context.Context, msg string, fields ...interface{}) {
	l.log("DEBUG", msg, fields)
}

package logx

import (
	"context"

	"go.uber.org/zap"
)

// Logger 是服务层和驱动层共用的最小日志接口：结构化字段 + ctx 透传（session/turn）。
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	WithContext(ctx context.Context) Logger
}

// Nop 丢弃全部日志，测试里用。
type Nop struct{}

func (Nop) Info(string, ...zap.Field)              {}
func (Nop) Error(string, ...zap.Field)             {}
func (Nop) Debug(string, ...zap.Field)             {}
func (Nop) Warn(string, ...zap.Field)              {}
func (n Nop) WithContext(context.Context) Logger { return n }

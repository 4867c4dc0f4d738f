// Package logger 封装zap日志初始化
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 按运行环境创建日志实例，dev环境使用彩色控制台输出
func New(env string) (*zap.Logger, error) {
	if env == "dev" {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return config.Build()
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build(
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

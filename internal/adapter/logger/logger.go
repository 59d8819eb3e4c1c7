package logger

import (
	"strings"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"

	"go.uber.org/zap"
)

type LoggerAdapter struct {
	sugar *zap.SugaredLogger
}

// NewLoggerAdapter builds a JSON production logger for env "production"
// and a console development logger otherwise.
func NewLoggerAdapter(env string) *LoggerAdapter {
	var cfg zap.Config
	switch strings.ToLower(env) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		zapLogger = zap.NewNop()
	}

	return &LoggerAdapter{sugar: zapLogger.Sugar()}
}

// NewFromZap wraps an existing zap logger, mostly for tests.
func NewFromZap(l *zap.Logger) *LoggerAdapter {
	return &LoggerAdapter{sugar: l.Sugar()}
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.sugar.Debugw(msg, toKVs(fields)...)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.sugar.Infow(msg, toKVs(fields)...)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.sugar.Warnw(msg, toKVs(fields)...)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.sugar.Errorw(msg, toKVs(fields)...)
}

func (l *LoggerAdapter) Sync() {
	_ = l.sugar.Sync()
}

func toKVs(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	kvs := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kvs = append(kvs, k, v)
	}
	return kvs
}

var _ ports.LoggerPort = (*LoggerAdapter)(nil)

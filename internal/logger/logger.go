package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New initialises a zap logger tuned for the provided environment. Every entry
// carries the service name and a per-process instance id.
func New(env, service string, opts ...zap.Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env == "development" || env == "local" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	log, err := cfg.Build(opts...)
	if err != nil {
		return nil, err
	}
	return log.With(
		zap.String("service", service),
		zap.String("instance_id", uuid.NewString()),
	), nil
}

// ZapError is a helper to avoid importing zap in every package.
func ZapError(err error) zap.Field {
	return zap.Error(err)
}

// Package observability builds the structured logger and tracer provider shared
// by every component
package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/herald-bot/internal/config"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

// NewLogger creates a zap logger. json selects the production encoder and
// console the development one.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, herr.WrapWithCode(err, herr.CodeInvalidArgument, "parse log level").
			WithMeta("level", cfg.Level)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, herr.InvalidArgumentf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, herr.Wrap(err, "build logger")
	}
	return logger.Named("herald"), nil
}

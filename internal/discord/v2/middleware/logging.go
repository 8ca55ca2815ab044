package middleware

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
	"github.com/KirkDiggler/herald-bot/internal/uuid"
)

type requestIDKey struct{}

// LoggingMiddleware logs every interaction with its route and duration
func LoggingMiddleware(logger *zap.Logger) core.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("discord")

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx)

			fields := []zap.Field{
				zap.String("route", ctx.Route()),
				zap.String("user_id", ctx.UserID),
				zap.String("guild_id", ctx.GuildID),
				zap.Duration("duration", time.Since(start)),
			}
			if id := RequestID(ctx); id != "" {
				fields = append(fields, zap.String("request_id", id))
			}
			if result != nil && result.Response != nil {
				fields = append(fields, zap.Bool("ephemeral", result.Response.Ephemeral))
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			logger.Info("interaction handled", fields...)
			return result, err
		})
	}
}

// RequestIDMiddleware tags the interaction with a generated request ID
func RequestIDMiddleware(generator uuid.Generator) core.Middleware {
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			ctx.WithValue(requestIDKey{}, generator.New())
			return next.Handle(ctx)
		})
	}
}

// RequestID returns the ID RequestIDMiddleware attached, or ""
func RequestID(ctx *core.InteractionContext) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

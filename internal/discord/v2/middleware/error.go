package middleware

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
)

const panicMessage = "❌ An unexpected error occurred. Please try again later."

// ErrorMiddleware turns handler errors into ephemeral user responses. Errors
// users caused are logged at debug; everything else at error with its cause.
func ErrorMiddleware(logger *zap.Logger) core.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("errors")

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			handlerErr := core.FromError(err)
			fields := []zap.Field{
				zap.String("route", ctx.Route()),
				zap.String("user_id", ctx.UserID),
				zap.String("guild_id", ctx.GuildID),
				zap.Int("code", handlerErr.Code),
				zap.Error(err),
			}
			if handlerErr.Code >= core.ErrorCodeInternal {
				logger.Error("handler failed", fields...)
			} else {
				logger.Debug("handler rejected request", fields...)
			}

			return &core.HandlerResult{
				Response: core.NewEphemeralResponse(handlerErr.UserMessage),
				Context:  map[string]any{"error": err},
			}, nil
		})
	}
}

// RecoveryMiddleware recovers from panics and answers with a generic error
func RecoveryMiddleware(logger *zap.Logger) core.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("recovery")

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered in handler",
						zap.String("route", ctx.Route()),
						zap.String("panic", fmt.Sprint(r)),
						zap.Stack("stack"),
					)

					result = core.Respond(core.NewEphemeralResponse(panicMessage))
					err = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}

package middleware

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
)

const tracerName = "github.com/KirkDiggler/herald-bot/internal/discord"

// TracingMiddleware opens a span per interaction. A nil provider uses the
// global one, which is a no-op until tracing is configured.
func TracingMiddleware(provider trace.TracerProvider) core.Middleware {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	tracer := provider.Tracer(tracerName)

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			spanCtx, span := tracer.Start(ctx.Context, "discord "+ctx.Route(),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("discord.route", ctx.Route()),
					attribute.String("discord.user_id", ctx.UserID),
					attribute.String("discord.guild_id", ctx.GuildID),
				),
			)
			defer span.End()

			ctx.Context = spanCtx
			result, err := next.Handle(ctx)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}

			return result, err
		})
	}
}

package core

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	// Handlers registered in the pipeline
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Error handler for uncaught errors
	errorHandler ErrorHandler

	logger *zap.Logger

	// Mutex for thread-safe handler registration
	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline(logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pipeline{
		handlers:     make([]Handler, 0),
		middleware:   make([]Middleware, 0),
		errorHandler: defaultErrorHandler,
		logger:       logger.Named("pipeline"),
	}
}

// Register adds handlers to the pipeline. Middleware added with Use before
// registration wraps them.
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		// Apply all middleware to the handler
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, wrapped)
	}
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetErrorHandler sets a custom error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

// Execute runs the pipeline for an interaction from discordgo
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return p.Dispatch(NewInteractionContext(ctx, s, i), NewDiscordResponder(s, i))
}

// Dispatch runs the first handler that accepts the interaction and sends its
// response through responder
func (p *Pipeline) Dispatch(ic *InteractionContext, responder Responder) error {
	ic.WithValue(responderKey, responder)

	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(ic) {
			continue
		}

		result, err := handler.Handle(ic)
		if err != nil {
			result = errorHandler(ic, err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result.Response); err != nil {
				return herr.Wrap(err, "failed to send response").WithMeta("route", ic.Route())
			}
		}

		return nil
	}

	p.logger.Warn("no handler for interaction", zap.String("route", ic.Route()))

	if responder.HasResponded() {
		return nil
	}
	return responder.Respond(NewEphemeralResponse("I don't know how to handle that command."))
}

func sendResponse(responder Responder, response *Response) error {
	if responder.HasResponded() {
		return responder.Edit(response)
	}
	return responder.Respond(response)
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// defaultErrorHandler shows mapped errors to the user, ephemerally
func defaultErrorHandler(_ *InteractionContext, err error) *HandlerResult {
	handlerErr := FromError(err)
	if handlerErr.ShowToUser {
		return Respond(NewEphemeralResponse(handlerErr.UserMessage))
	}

	return Respond(NewEphemeralResponse("An error occurred while processing your request."))
}

// MiddlewareChain creates a single middleware from multiple middleware
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		// Apply middleware in reverse order
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}

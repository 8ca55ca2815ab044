package core

import (
	"strings"
)

// Router groups the commands and components of one feature area. Slash
// commands route by name, so a router may own several top-level commands;
// components route by the custom ID domain.
type Router struct {
	// Domain name used for component custom IDs (e.g., "roll", "character")
	domain string

	// Handlers organized by pattern
	handlers map[string]Handler

	// Middleware specific to this router
	middleware []Middleware

	// CustomID builder for this domain
	customIDBuilder *CustomIDBuilder

	// Parent pipeline to register with
	pipeline *Pipeline
}

// NewRouter creates a new domain router
func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:          domain,
		handlers:        make(map[string]Handler),
		middleware:      make([]Middleware, 0),
		customIDBuilder: NewCustomIDBuilder(domain),
		pipeline:        pipeline,
	}
}

// Use adds middleware to this router. It applies to routes added afterwards.
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Handle registers a handler for a specific pattern
func (r *Router) Handle(pattern string, handler Handler) *Router {
	// Apply router middleware to handler
	wrapped := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}

	r.handlers[pattern] = wrapped
	return r
}

// CommandFunc registers a slash command handler function
func (r *Router) CommandFunc(name string, fn HandlerFunc) *Router {
	return r.Handle(commandPattern(name, ""), fn)
}

// SubcommandFunc registers a subcommand handler function
func (r *Router) SubcommandFunc(parent, sub string, fn HandlerFunc) *Router {
	return r.Handle(commandPattern(parent, sub), fn)
}

// ComponentFunc registers a component interaction handler function
func (r *Router) ComponentFunc(action string, fn HandlerFunc) *Router {
	return r.Handle("component:"+action, fn)
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	return &routerHandler{
		domain:   r.domain,
		handlers: r.handlers,
	}
}

// Register registers this router with the pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

// GetCustomIDBuilder returns the CustomID builder for this router
func (r *Router) GetCustomIDBuilder() *CustomIDBuilder {
	return r.customIDBuilder
}

func commandPattern(name, sub string) string {
	if sub == "" {
		return "cmd:" + name
	}
	return "cmd:" + name + ":" + sub
}

// routerHandler implements Handler for a router
type routerHandler struct {
	domain   string
	handlers map[string]Handler
}

// CanHandle checks if this router can handle the interaction
func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	return h.lookup(ctx) != nil
}

// Handle processes the interaction
func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler := h.lookup(ctx)
	if handler == nil {
		return nil, NewNotFoundError("handler")
	}
	return handler.Handle(ctx)
}

// lookup finds the exact route, falling back to wildcard patterns such as
// "cmd:character:*"
func (h *routerHandler) lookup(ctx *InteractionContext) Handler {
	pattern := h.extractPattern(ctx)
	if pattern == "" {
		return nil
	}

	if handler, ok := h.handlers[pattern]; ok {
		return handler
	}

	parts := strings.Split(pattern, ":")
	for i := len(parts) - 1; i > 0; i-- {
		if handler, ok := h.handlers[strings.Join(parts[:i], ":")+":*"]; ok {
			return handler
		}
	}

	return nil
}

// extractPattern extracts the routing pattern from the interaction
func (h *routerHandler) extractPattern(ctx *InteractionContext) string {
	if ctx.IsCommand() {
		return commandPattern(ctx.GetCommandName(), ctx.GetSubcommand())
	}

	if id := ctx.GetCustomID(); id != nil && id.Domain == h.domain {
		return "component:" + id.Action
	}

	return ""
}

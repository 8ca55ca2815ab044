package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

// MockHandler for testing
type MockHandler struct {
	canHandle bool
	result    *HandlerResult
	err       error
	called    bool
}

func (m *MockHandler) CanHandle(*InteractionContext) bool {
	return m.canHandle
}

func (m *MockHandler) Handle(*InteractionContext) (*HandlerResult, error) {
	m.called = true
	return m.result, m.err
}

func TestPipeline_Register(t *testing.T) {
	pipeline := NewPipeline(nil)

	pipeline.Register(&MockHandler{}, &MockHandler{})

	assert.Equal(t, 2, pipeline.HandlerCount())
}

func TestPipeline_DispatchRunsFirstMatch(t *testing.T) {
	pipeline := NewPipeline(nil)
	skipped := &MockHandler{canHandle: false}
	first := &MockHandler{canHandle: true, result: Respond(NewResponse("first"))}
	second := &MockHandler{canHandle: true, result: Respond(NewResponse("second"))}
	pipeline.Register(skipped, first, second)

	responder := NewMockResponder()
	err := pipeline.Dispatch(NewTestCommand("roll").Build(), responder)
	require.NoError(t, err)

	assert.False(t, skipped.called)
	assert.True(t, first.called)
	assert.False(t, second.called)
	assert.Equal(t, "first", responder.LastResponse().Content)
}

func TestPipeline_DispatchMapsErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{name: "not found shows service message", err: herr.NotFound("no active character"), contains: "No active character"},
		{name: "internal is masked", err: errors.New("pq: connection reset"), contains: "internal error"},
		{name: "handler error passes through", err: NewUserError("slow down", ErrorCodeTooMany), contains: "slow down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := NewPipeline(nil)
			pipeline.Register(&MockHandler{canHandle: true, err: tt.err})

			responder := NewMockResponder()
			require.NoError(t, pipeline.Dispatch(NewTestCommand("roll").Build(), responder))

			resp := responder.LastResponse()
			require.NotNil(t, resp)
			assert.True(t, resp.Ephemeral)
			assert.Contains(t, resp.Content, tt.contains)
			assert.NotContains(t, resp.Content, "pq:")
		})
	}
}

func TestPipeline_DispatchUnknownCommand(t *testing.T) {
	pipeline := NewPipeline(nil)
	responder := NewMockResponder()

	require.NoError(t, pipeline.Dispatch(NewTestCommand("nope").Build(), responder))
	assert.Contains(t, responder.LastResponse().Content, "don't know how to handle")
}

func TestPipeline_DispatchEditsAfterResponse(t *testing.T) {
	pipeline := NewPipeline(nil)
	pipeline.Register(&MockHandler{canHandle: true, result: Respond(NewResponse("later"))})

	responder := NewMockResponder()
	responder.Responded = true

	require.NoError(t, pipeline.Dispatch(NewTestCommand("roll").Build(), responder))
	assert.Empty(t, responder.Responses)
	require.Len(t, responder.Edits, 1)
}

func TestPipeline_DispatchSendFailure(t *testing.T) {
	pipeline := NewPipeline(nil)
	pipeline.Register(&MockHandler{canHandle: true, result: Respond(NewResponse("hi"))})

	responder := NewMockResponder()
	responder.RespondError = errors.New("discord down")

	err := pipeline.Dispatch(NewTestCommand("roll").Build(), responder)
	assert.Error(t, err)
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next Handler) Handler {
			return Wrap(next, func(ctx *InteractionContext) (*HandlerResult, error) {
				order = append(order, name)
				return next.Handle(ctx)
			})
		}
	}

	pipeline := NewPipeline(nil)
	pipeline.Use(tag("outer"), tag("inner"))
	pipeline.Register(HandlerFunc(func(*InteractionContext) (*HandlerResult, error) {
		order = append(order, "handler")
		return nil, nil
	}))

	require.NoError(t, pipeline.Dispatch(NewTestCommand("roll").Build(), NewMockResponder()))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestMiddlewareKeepsCanHandle(t *testing.T) {
	passthrough := func(next Handler) Handler {
		return Wrap(next, next.Handle)
	}

	pipeline := NewPipeline(nil)
	pipeline.Use(passthrough)
	declines := &MockHandler{canHandle: false}
	accepts := &MockHandler{canHandle: true, result: Respond(NewResponse("ok"))}
	pipeline.Register(declines, accepts)

	responder := NewMockResponder()
	require.NoError(t, pipeline.Dispatch(NewTestCommand("roll").Build(), responder))

	assert.False(t, declines.called)
	assert.True(t, accepts.called)
}

func TestContextParsesSubcommandsByType(t *testing.T) {
	ctx := NewTestCommand("character").WithSubcommand("list").Build()
	assert.Equal(t, "list", ctx.GetSubcommand())
	assert.Equal(t, "character/list", ctx.Route())

	ctx = NewTestCommand("character").
		WithSubcommand("skill").
		WithOption("skill", "Firearms").
		WithOption("dots", 3).
		Build()
	assert.Equal(t, "skill", ctx.GetSubcommand())
	assert.Equal(t, "Firearms", ctx.GetStringParam("skill"))
	assert.Equal(t, 3, ctx.GetIntParam("dots"))

	amount, ok := ctx.GetOptionalIntParam("amount")
	assert.False(t, ok)
	assert.Zero(t, amount)
}

func TestContextParsesComponents(t *testing.T) {
	ctx := NewTestComponent("roll:overreach:user_1:char_1:2").Build()

	require.NotNil(t, ctx.GetCustomID())
	assert.True(t, ctx.IsComponent())
	assert.Equal(t, "roll:overreach", ctx.Route())
	assert.Equal(t, "test-user-123", ctx.UserID)
}

func TestRouterMatchesCommandsAndComponents(t *testing.T) {
	router := NewRouter("roll", nil)
	router.CommandFunc("roll", func(*InteractionContext) (*HandlerResult, error) {
		return Respond(NewResponse("roll")), nil
	})
	router.CommandFunc("rouse", func(*InteractionContext) (*HandlerResult, error) {
		return Respond(NewResponse("rouse")), nil
	})
	router.SubcommandFunc("despair", "*", func(*InteractionContext) (*HandlerResult, error) {
		return Respond(NewResponse("despair")), nil
	})
	router.ComponentFunc("overreach", func(*InteractionContext) (*HandlerResult, error) {
		return Respond(NewResponse("button")), nil
	})
	handler := router.Build()

	tests := []struct {
		ctx  *InteractionContext
		want string
	}{
		{ctx: NewTestCommand("roll").Build(), want: "roll"},
		{ctx: NewTestCommand("rouse").Build(), want: "rouse"},
		{ctx: NewTestCommand("despair").WithSubcommand("enter").Build(), want: "despair"},
		{ctx: NewTestComponent("roll:overreach:u:c:1").Build(), want: "button"},
	}
	for _, tt := range tests {
		require.True(t, handler.CanHandle(tt.ctx), tt.ctx.Route())
		result, err := handler.Handle(tt.ctx)
		require.NoError(t, err)
		assert.Equal(t, tt.want, result.Response.Content)
	}

	assert.False(t, handler.CanHandle(NewTestCommand("danger").Build()))
	assert.False(t, handler.CanHandle(NewTestComponent("character:overreach:u").Build()))
}

func TestFromErrorValidation(t *testing.T) {
	err := herr.NewValidationBuilder().
		Field("pool", "must be between 1 and 20").
		Field("difficulty", "must be between 0 and 6").
		Build()

	handlerErr := FromError(err)
	assert.Equal(t, ErrorCodeBadRequest, handlerErr.Code)
	assert.Contains(t, handlerErr.UserMessage, "**difficulty** must be between 0 and 6")
	assert.Contains(t, handlerErr.UserMessage, "**pool** must be between 1 and 20")
	assert.Nil(t, FromError(nil))
}

func TestFromErrorUnavailable(t *testing.T) {
	handlerErr := FromError(herr.Unavailablef("redis down"))
	assert.Equal(t, ErrorCodeUnavailable, handlerErr.Code)
	assert.NotContains(t, handlerErr.UserMessage, "redis")
}

func TestFromErrorCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid argument", err: herr.InvalidArgumentf("pool must be a number"), want: ErrorCodeBadRequest},
		{name: "failed precondition", err: herr.FailedPreconditionf("no active hunter"), want: ErrorCodeBadRequest},
		{name: "not found", err: herr.NotFoundf("hunter %q not found", "Mara"), want: ErrorCodeNotFound},
		{name: "already exists", err: herr.AlreadyExistsf("hunter %q already exists", "Mara"), want: ErrorCodeConflict},
		{name: "permission denied", err: herr.PermissionDeniedf("not your hunter"), want: ErrorCodeForbidden},
		{name: "unavailable", err: herr.Unavailablef("store down"), want: ErrorCodeUnavailable},
		{name: "internal", err: herr.Internalf("boom"), want: ErrorCodeInternal},
		{name: "foreign error", err: errors.New("boom"), want: ErrorCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromError(tt.err).Code)
		})
	}
}

package nimlspdaemon

import (
	"context"

	"github.com/uber/nimlsp/src/nimlsp/internal/errors"
	"github.com/uber/nimlsp/src/nimlsp/mapper"
	"go.lsp.dev/jsonrpc2"
)

const _unknownClient = "unknown"

// answer replies with result, or with err when set. Caller mistakes are reported as InvalidRequest.
func answer(ctx context.Context, reply jsonrpc2.Replier, result interface{}, err error) error {
	if err == nil {
		return reply(ctx, result, nil)
	}
	if errors.IsBadRequest(err) {
		err = jsonrpc2.NewError(jsonrpc2.InvalidRequest, err.Error())
	}
	return reply(ctx, nil, err)
}

// Initialize starts a session. Sessions are counted per editor, as reported in clientInfo.
func (r *jsonRPCRouter) Initialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToInitializeParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	client := _unknownClient
	if params.ClientInfo != nil && params.ClientInfo.Name != "" {
		client = params.ClientInfo.Name
	}
	r.stats.Tagged(map[string]string{"client": client}).Counter("initialize").Inc(1)

	result, err := r.nimlspdaemon.Initialize(ctx, params)
	return answer(ctx, reply, result, err)
}

func (r *jsonRPCRouter) Initialized(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToInitializedParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return answer(ctx, reply, nil, r.nimlspdaemon.Initialized(ctx, params))
}

func (r *jsonRPCRouter) Shutdown(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return answer(ctx, reply, nil, r.nimlspdaemon.Shutdown(ctx))
}

// Exit ends this session, or the whole daemon after nimlsp/requestFullShutdown.
// The reply goes out first since a full shutdown closes the connection.
func (r *jsonRPCRouter) Exit(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if err := reply(ctx, nil, nil); err != nil {
		r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("reply_errors").Inc(1)
	}
	return r.nimlspdaemon.Exit(ctx)
}

func (r *jsonRPCRouter) RequestFullShutdown(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return answer(ctx, reply, nil, r.nimlspdaemon.RequestFullShutdown(ctx))
}

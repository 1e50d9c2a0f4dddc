package nimlspdaemon

import (
	"context"

	"github.com/uber/nimlsp/src/nimlsp/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

func (r *jsonRPCRouter) GotoDefinition(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDefinitionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.nimlspdaemon.GotoDefinition(ctx, params, func(result []protocol.Location) {
		r.replyAsync(ctx, reply, req, result)
	})
	return r.replyIfNotQueued(ctx, reply, err)
}

func (r *jsonRPCRouter) References(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToReferencesParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.nimlspdaemon.References(ctx, params, func(result []protocol.Location) {
		r.replyAsync(ctx, reply, req, result)
	})
	return r.replyIfNotQueued(ctx, reply, err)
}

func (r *jsonRPCRouter) DotUsages(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToTextDocumentPositionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.nimlspdaemon.DotUsages(ctx, params, func(result []protocol.Location) {
		r.replyAsync(ctx, reply, req, result)
	})
	return r.replyIfNotQueued(ctx, reply, err)
}

func (r *jsonRPCRouter) Completion(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCompletionParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.nimlspdaemon.Completion(ctx, params, func(result *protocol.CompletionList) {
		r.replyAsync(ctx, reply, req, result)
	})
	return r.replyIfNotQueued(ctx, reply, err)
}

func (r *jsonRPCRouter) DocumentHighlight(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDocumentHighlightParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.nimlspdaemon.DocumentHighlight(ctx, params, func(result []protocol.DocumentHighlight) {
		r.replyAsync(ctx, reply, req, result)
	})
	return r.replyIfNotQueued(ctx, reply, err)
}

func (r *jsonRPCRouter) DocumentSymbol(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDocumentSymbolParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.nimlspdaemon.DocumentSymbol(ctx, params, func(result []protocol.SymbolInformation) {
		r.replyAsync(ctx, reply, req, result)
	})
	return r.replyIfNotQueued(ctx, reply, err)
}

func (r *jsonRPCRouter) Hover(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToHoverParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.nimlspdaemon.Hover(ctx, params, func(result *protocol.Hover) {
		r.replyAsync(ctx, reply, req, result)
	})
	return r.replyIfNotQueued(ctx, reply, err)
}

func (r *jsonRPCRouter) SignatureHelp(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSignatureHelpParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.nimlspdaemon.SignatureHelp(ctx, params, func(result *protocol.SignatureHelp) {
		r.replyAsync(ctx, reply, req, result)
	})
	return r.replyIfNotQueued(ctx, reply, err)
}

// replyAsync sends the result of a queued query. The connection may be gone by then, which is only counted.
func (r *jsonRPCRouter) replyAsync(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, result interface{}) {
	if err := reply(ctx, result, nil); err != nil {
		r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("reply_errors").Inc(1)
	}
}

// replyIfNotQueued answers with err when the query never reached the analyzer.
func (r *jsonRPCRouter) replyIfNotQueued(ctx context.Context, reply jsonrpc2.Replier, err error) error {
	if err == nil {
		return nil
	}
	return answer(ctx, reply, nil, err)
}

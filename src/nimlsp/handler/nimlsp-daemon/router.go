package nimlspdaemon

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	controller "github.com/uber/nimlsp/src/nimlsp/controller/nimlsp-daemon"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const (
	// MethodRequestFullShutdown directs the server to shut down on the next JSON-RPC 'exit' method call.
	MethodRequestFullShutdown = "nimlsp/requestFullShutdown"
	// MethodDotUsages finds the usages of the symbol before a dot.
	MethodDotUsages = "nimlsp/dotUsages"
)

type jsonRPCRouter struct {
	nimlspdaemon controller.Controller
	uuid         uuid.UUID
	stats        tally.Scope
}

// HandleReq handles routing for a single request.
// Query methods return as soon as the query is queued, their reply is sent once the analyzer answers.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Lifecycle related methods.
	case protocol.MethodInitialize:
		return r.Initialize(ctx, reply, req)

	case protocol.MethodInitialized:
		return r.Initialized(ctx, reply, req)

	case protocol.MethodShutdown:
		return r.Shutdown(ctx, reply, req)

	case protocol.MethodExit:
		return r.Exit(ctx, reply, req)

	case MethodRequestFullShutdown:
		return r.RequestFullShutdown(ctx, reply, req)

	// Document related methods.
	case protocol.MethodTextDocumentDidOpen:
		return r.DidOpen(ctx, reply, req)

	case protocol.MethodTextDocumentDidChange:
		return r.DidChange(ctx, reply, req)

	case protocol.MethodTextDocumentDidSave:
		return r.DidSave(ctx, reply, req)

	case protocol.MethodTextDocumentDidClose:
		return r.DidClose(ctx, reply, req)

	// Code intel related methods
	case protocol.MethodTextDocumentDefinition:
		return r.GotoDefinition(ctx, reply, req)

	case protocol.MethodTextDocumentReferences:
		return r.References(ctx, reply, req)

	case MethodDotUsages:
		return r.DotUsages(ctx, reply, req)

	case protocol.MethodTextDocumentCompletion:
		return r.Completion(ctx, reply, req)

	case protocol.MethodTextDocumentDocumentHighlight:
		return r.DocumentHighlight(ctx, reply, req)

	case protocol.MethodTextDocumentDocumentSymbol:
		return r.DocumentSymbol(ctx, reply, req)

	case protocol.MethodTextDocumentHover:
		return r.Hover(ctx, reply, req)

	case protocol.MethodTextDocumentSignatureHelp:
		return r.SignatureHelp(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}

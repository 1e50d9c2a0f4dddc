package nimlspdaemon

import (
	"context"

	"github.com/uber/nimlsp/src/nimlsp/entity"
	"github.com/uber/nimlsp/src/nimlsp/internal/errors"
	"github.com/uber/nimlsp/src/nimlsp/mapper"
	"go.lsp.dev/protocol"
)

// query runs verb and hands the records of a complete answer to onRecords. Incomplete answers become onNull.
func (c *controller) query(ctx context.Context, verb entity.Verb, params protocol.TextDocumentPositionParams, onRecords func([]entity.Record), onNull func()) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}
	if !s.Initialized() {
		return errors.NotInitializedError
	}

	return c.workspace.Query(ctx, verb, params.TextDocument, params.Position, func(resp entity.Response) {
		if !resp.Complete {
			c.stats.Tagged(map[string]string{"verb": string(verb)}).Counter("incomplete_answers").Inc(1)
			onNull()
			return
		}
		onRecords(resp.Records)
	})
}

func (c *controller) GotoDefinition(ctx context.Context, params *protocol.DefinitionParams, cb func([]protocol.Location)) error {
	return c.query(ctx, entity.VerbDefinition, params.TextDocumentPositionParams, func(records []entity.Record) {
		cb(mapper.RecordsToLocations(records))
	}, func() { cb(nil) })
}

func (c *controller) References(ctx context.Context, params *protocol.ReferenceParams, cb func([]protocol.Location)) error {
	return c.query(ctx, entity.VerbUsages, params.TextDocumentPositionParams, func(records []entity.Record) {
		cb(mapper.RecordsToLocations(records))
	}, func() { cb(nil) })
}

func (c *controller) DotUsages(ctx context.Context, params *protocol.TextDocumentPositionParams, cb func([]protocol.Location)) error {
	return c.query(ctx, entity.VerbDotUsages, *params, func(records []entity.Record) {
		cb(mapper.RecordsToLocations(records))
	}, func() { cb(nil) })
}

func (c *controller) Completion(ctx context.Context, params *protocol.CompletionParams, cb func(*protocol.CompletionList)) error {
	return c.query(ctx, entity.VerbSuggestions, params.TextDocumentPositionParams, func(records []entity.Record) {
		cb(mapper.RecordsToCompletionList(records))
	}, func() { cb(nil) })
}

func (c *controller) DocumentHighlight(ctx context.Context, params *protocol.DocumentHighlightParams, cb func([]protocol.DocumentHighlight)) error {
	file, err := mapper.DocumentURIToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}
	return c.query(ctx, entity.VerbHighlight, params.TextDocumentPositionParams, func(records []entity.Record) {
		cb(mapper.RecordsToDocumentHighlights(records, file))
	}, func() { cb(nil) })
}

// DocumentSymbol asks for the outline of the whole file, so the position is irrelevant.
func (c *controller) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams, cb func([]protocol.SymbolInformation)) error {
	pos := protocol.TextDocumentPositionParams{TextDocument: params.TextDocument}
	return c.query(ctx, entity.VerbOutline, pos, func(records []entity.Record) {
		cb(mapper.RecordsToSymbolInformation(records))
	}, func() { cb(nil) })
}

func (c *controller) Hover(ctx context.Context, params *protocol.HoverParams, cb func(*protocol.Hover)) error {
	return c.query(ctx, entity.VerbDefinition, params.TextDocumentPositionParams, func(records []entity.Record) {
		cb(mapper.RecordsToHover(records))
	}, func() { cb(nil) })
}

func (c *controller) SignatureHelp(ctx context.Context, params *protocol.SignatureHelpParams, cb func(*protocol.SignatureHelp)) error {
	return c.query(ctx, entity.VerbContext, params.TextDocumentPositionParams, func(records []entity.Record) {
		cb(mapper.RecordsToSignatureHelp(records))
	}, func() { cb(nil) })
}

package nimlspdaemon

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber/nimlsp/src/nimlsp/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

var (
	_completionTriggers = []string{"."}
	_signatureTriggers  = []string{"(", ","}
)

// Initialize stores the IDE's parameters in its session and advertises the supported features.
func (c *controller) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting session from context: %w", err)
	}

	s.InitializeParams = params
	s.ProjectFile = mapper.InitializeParamsToOptions(params).ProjectFile
	s.RootPath = mapper.InitializeParamsToRootPath(params)
	if err := c.sessions.Set(ctx, s); err != nil {
		return nil, fmt.Errorf("setting updated session state: %w", err)
	}
	c.logger.Infow("session initialized", "session", s.UUID, "root", s.RootPath, "projectFile", s.ProjectFile)

	return &protocol.InitializeResult{
		ServerInfo: &protocol.ServerInfo{
			Name: _serverName,
		},
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
				Save: &protocol.SaveOptions{
					IncludeText: true,
				},
			},
			DefinitionProvider:        true,
			ReferencesProvider:        true,
			HoverProvider:             true,
			DocumentHighlightProvider: true,
			DocumentSymbolProvider:    true,
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: _completionTriggers,
			},
			SignatureHelpProvider: &protocol.SignatureHelpOptions{
				TriggerCharacters: _signatureTriggers,
			},
		},
	}, nil
}

// Initialized reports the toolchain in use to the IDE, or why it could not be found.
func (c *controller) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	cfg, err := c.toolchain.Resolve(ctx, c.suggestConfig)
	if err != nil {
		// The toolchain controller has already shown the problem to the user.
		c.logger.Warnw("toolchain unavailable", "error", err)
		return nil
	}

	version, err := c.toolchain.NimVersion(ctx, cfg.NimExecutable)
	if err != nil {
		c.logger.Warnw("probing nim version", "nim", cfg.NimExecutable, "error", err)
		version = "unknown version"
	}

	w, err := c.ideGateway.GetLogMessageWriter(ctx, _serverName)
	if err != nil {
		return fmt.Errorf("getting session log writer: %w", err)
	}
	fmt.Fprintf(w, "using %s with %s (%s)", cfg.Executable, cfg.NimExecutable, version)
	return nil
}

// Shutdown is sent just before Exit. Analyzers are shared between sessions, so nothing is released here.
func (c *controller) Shutdown(ctx context.Context) error {
	return nil
}

// Exit will be used to either clean up from an individual connection, or shutdown the whole server.
func (c *controller) Exit(ctx context.Context) error {
	c.mu.Lock()
	full := c.fullShutdown
	c.mu.Unlock()

	if full {
		c.shutdown()
		return nil
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("error during session exit: %w", err)
	}
	return c.EndSession(ctx, s.UUID)
}

// RequestFullShutdown will set the controller to treat subsequent Exit requests as requests to exit the entire process.
func (c *controller) RequestFullShutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fullShutdown = true
	return nil
}

// InitSession creates a new empty session and returns its UUID.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.ideGateway.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}

	if err := c.sessions.Set(ctx, mapper.UUIDToSession(id, conn)); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// EndSession includes any cleanup at the end of the session, during or after the last JSON-RPC request.
func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	if err := c.ideGateway.DeregisterClient(ctx, id); err != nil {
		c.logger.Error(err)
	}
	return c.sessions.Delete(ctx, id)
}

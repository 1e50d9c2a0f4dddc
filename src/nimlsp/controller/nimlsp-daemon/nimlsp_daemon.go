// Package nimlspdaemon implements the nimlsp-daemon business logic.
package nimlspdaemon

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/nimlsp/src/nimlsp/controller/documents"
	"github.com/uber/nimlsp/src/nimlsp/controller/toolchain"
	"github.com/uber/nimlsp/src/nimlsp/controller/workspace"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	ideclient "github.com/uber/nimlsp/src/nimlsp/gateway/ide-client"
	"github.com/uber/nimlsp/src/nimlsp/repository/session"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_serverName = "nimlsp"

	// Configuration keys
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"
)

// Controller orchestrates the business logic for each request.
// Query methods return once the query is queued. Their callback runs later on the scheduler goroutine
// and receives nil when the analyzer produced no answer.
type Controller interface {
	// LSP Methods defined per protocol.
	Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error)
	Initialized(ctx context.Context, params *protocol.InitializedParams) error
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error

	// Document related methods.
	DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error
	DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error
	DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error
	DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error

	// Codeintel related methods.
	GotoDefinition(ctx context.Context, params *protocol.DefinitionParams, cb func([]protocol.Location)) error
	References(ctx context.Context, params *protocol.ReferenceParams, cb func([]protocol.Location)) error
	DotUsages(ctx context.Context, params *protocol.TextDocumentPositionParams, cb func([]protocol.Location)) error
	Completion(ctx context.Context, params *protocol.CompletionParams, cb func(*protocol.CompletionList)) error
	DocumentHighlight(ctx context.Context, params *protocol.DocumentHighlightParams, cb func([]protocol.DocumentHighlight)) error
	DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams, cb func([]protocol.SymbolInformation)) error
	Hover(ctx context.Context, params *protocol.HoverParams, cb func(*protocol.Hover)) error
	SignatureHelp(ctx context.Context, params *protocol.SignatureHelpParams, cb func(*protocol.SignatureHelp)) error

	// Custom methods for use within this service.
	RequestFullShutdown(ctx context.Context) error
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, uuid uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner    fx.Shutdowner
	Sessions      session.Repository
	IdeGateway    ideclient.Gateway
	Logger        *zap.SugaredLogger
	Config        config.Provider
	SuggestConfig entity.SuggestConfig
	Stats         tally.Scope

	Documents documents.Controller
	Workspace workspace.Controller
	Toolchain toolchain.Controller
}

type controller struct {
	sessions      session.Repository
	shutdowner    fx.Shutdowner
	ideGateway    ideclient.Gateway
	logger        *zap.SugaredLogger
	suggestConfig entity.SuggestConfig
	stats         tally.Scope

	documents documents.Controller
	workspace workspace.Controller
	toolchain toolchain.Controller

	mu           sync.Mutex
	fullShutdown bool

	idleTimer   *time.Timer
	idleTimerMu sync.Mutex
	idleTimeout time.Duration
}

// New constructs a new top-level controller for the service.
func New(p Params) (Controller, error) {
	ctx := context.Background()

	var timeoutMinutesRaw int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&timeoutMinutesRaw); err != nil {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}
	if timeoutMinutesRaw < 0 {
		return nil, fmt.Errorf("idle timeout must not be negative, got %d", timeoutMinutesRaw)
	}

	c := &controller{
		sessions:      p.Sessions,
		shutdowner:    p.Shutdowner,
		ideGateway:    p.IdeGateway,
		logger:        p.Logger.With("plugin", "nimlsp-daemon"),
		suggestConfig: p.SuggestConfig,
		stats:         p.Stats,
		documents:     p.Documents,
		workspace:     p.Workspace,
		toolchain:     p.Toolchain,
		idleTimeout:   time.Duration(timeoutMinutesRaw) * time.Minute,
	}
	if err := c.refreshIdleTimer(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// refreshIdleTimer ensures that the service shuts down after a defined inactivity period with no connections.
// A zero timeout disables it.
func (c *controller) refreshIdleTimer(ctx context.Context) error {
	if c.idleTimeout == 0 {
		return nil
	}

	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	// First call starts the timer prior to the first connection.
	if c.idleTimer == nil {
		c.idleTimer = time.AfterFunc(c.idleTimeout, c.shutdown)
		return nil
	}

	// Subsequent calls stop the timer and reset it only if no connections are active.
	currentSessions, err := c.sessions.SessionCount(ctx)
	if err != nil {
		return fmt.Errorf("error resetting timeout: %w", err)
	}

	c.idleTimer.Stop()
	if currentSessions == 0 {
		c.idleTimer.Reset(c.idleTimeout)
	}
	return nil
}

func (c *controller) shutdown() {
	c.logger.Info("Shutdown signal received.")
	if err := c.shutdowner.Shutdown(); err != nil {
		c.logger.Errorw("failed to shut down", "error", err)
	}
}

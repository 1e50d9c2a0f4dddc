package nimlspdaemon

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	"github.com/uber/nimlsp/src/nimlsp/factory"
	nimerrors "github.com/uber/nimlsp/src/nimlsp/internal/errors"
	"github.com/uber/nimlsp/src/nimlsp/internal/mock/jsonrpc2mock"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func withSession(t *testing.T, deps testDeps) (context.Context, *entity.Session) {
	s := &entity.Session{UUID: factory.UUID()}
	require.NoError(t, deps.sessions.Set(context.Background(), s))
	return context.WithValue(context.Background(), entity.SessionContextKey, s.UUID), s
}

func TestInitialize(t *testing.T) {
	t.Run("stores the session options", func(t *testing.T) {
		c, deps := newTestController(t)
		ctx, s := withSession(t, deps)

		params := &protocol.InitializeParams{
			InitializationOptions: map[string]interface{}{"projectFile": "main.nim"},
			WorkspaceFolders:      []protocol.WorkspaceFolder{{URI: "file:///src/project", Name: "project"}},
		}
		result, err := c.Initialize(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, "nimlsp", result.ServerInfo.Name)
		sync, ok := result.Capabilities.TextDocumentSync.(protocol.TextDocumentSyncOptions)
		require.True(t, ok)
		assert.Equal(t, protocol.TextDocumentSyncKindFull, sync.Change)
		assert.True(t, sync.OpenClose)
		assert.Equal(t, []string{"."}, result.Capabilities.CompletionProvider.TriggerCharacters)
		assert.Equal(t, true, result.Capabilities.DefinitionProvider)

		got, err := deps.sessions.Get(ctx, s.UUID)
		require.NoError(t, err)
		assert.Same(t, params, got.InitializeParams)
		assert.True(t, got.Initialized())
		assert.Equal(t, "main.nim", got.ProjectFile)
		assert.Equal(t, "/src/project", got.RootPath)
	})

	t.Run("no session", func(t *testing.T) {
		c, _ := newTestController(t)
		_, err := c.Initialize(context.Background(), &protocol.InitializeParams{})
		assert.Error(t, err)
	})
}

func TestInitialized(t *testing.T) {
	cfg := entity.NewSuggestConfig()
	resolved := cfg
	resolved.Executable = "/opt/nim/bin/nimsuggest"
	resolved.NimExecutable = "/opt/nim/bin/nim"

	t.Run("logs the toolchain", func(t *testing.T) {
		c, deps := newTestController(t)
		ctx, _ := withSession(t, deps)
		var buf bytes.Buffer

		deps.toolchain.EXPECT().Resolve(ctx, cfg).Return(resolved, nil)
		deps.toolchain.EXPECT().NimVersion(ctx, "/opt/nim/bin/nim").Return("Nim Compiler Version 2.0.8", nil)
		deps.ideGateway.EXPECT().GetLogMessageWriter(ctx, "nimlsp").Return(&buf, nil)

		require.NoError(t, c.Initialized(ctx, &protocol.InitializedParams{}))
		assert.Equal(t, "using /opt/nim/bin/nimsuggest with /opt/nim/bin/nim (Nim Compiler Version 2.0.8)", buf.String())
	})

	t.Run("unknown version", func(t *testing.T) {
		c, deps := newTestController(t)
		var buf bytes.Buffer

		deps.toolchain.EXPECT().Resolve(gomock.Any(), cfg).Return(resolved, nil)
		deps.toolchain.EXPECT().NimVersion(gomock.Any(), "/opt/nim/bin/nim").Return("", errors.New("exit status 1"))
		deps.ideGateway.EXPECT().GetLogMessageWriter(gomock.Any(), "nimlsp").Return(&buf, nil)

		require.NoError(t, c.Initialized(context.Background(), &protocol.InitializedParams{}))
		assert.Contains(t, buf.String(), "(unknown version)")
	})

	t.Run("toolchain missing", func(t *testing.T) {
		c, deps := newTestController(t)
		deps.toolchain.EXPECT().Resolve(gomock.Any(), cfg).Return(cfg, &nimerrors.ExecutableNotFoundError{
			Setting: "nimsuggest.executable",
			Value:   "nimsuggest",
		})

		assert.NoError(t, c.Initialized(context.Background(), &protocol.InitializedParams{}))
	})

	t.Run("no log writer", func(t *testing.T) {
		c, deps := newTestController(t)
		deps.toolchain.EXPECT().Resolve(gomock.Any(), cfg).Return(resolved, nil)
		deps.toolchain.EXPECT().NimVersion(gomock.Any(), gomock.Any()).Return("Nim Compiler Version 2.0.8", nil)
		deps.ideGateway.EXPECT().GetLogMessageWriter(gomock.Any(), "nimlsp").Return(nil, errors.New("no session"))

		assert.ErrorContains(t, c.Initialized(context.Background(), &protocol.InitializedParams{}), "no session")
	})
}

func TestShutdown(t *testing.T) {
	c, _ := newTestController(t)
	assert.NoError(t, c.Shutdown(context.Background()))
}

func TestExit(t *testing.T) {
	t.Run("ends the session", func(t *testing.T) {
		c, deps := newTestController(t)
		ctx, s := withSession(t, deps)
		deps.ideGateway.EXPECT().DeregisterClient(ctx, s.UUID).Return(nil)

		require.NoError(t, c.Exit(ctx))
		_, err := deps.sessions.Get(ctx, s.UUID)
		assert.True(t, nimerrors.IsNotFound(err))
	})

	t.Run("full shutdown", func(t *testing.T) {
		c, deps := newTestController(t)
		ctx, _ := withSession(t, deps)
		deps.shutdowner.EXPECT().Shutdown().Return(nil)

		require.NoError(t, c.RequestFullShutdown(ctx))
		require.NoError(t, c.Exit(ctx))
		count, err := deps.sessions.SessionCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("no session", func(t *testing.T) {
		c, _ := newTestController(t)
		assert.Error(t, c.Exit(context.Background()))
	})
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	c, deps := newTestController(t)
	var conn jsonrpc2.Conn = jsonrpc2mock.NewMockConn(ctrl)

	var registered uuid.UUID
	deps.ideGateway.EXPECT().RegisterClient(ctx, gomock.Any(), &conn).DoAndReturn(func(_ context.Context, id uuid.UUID, _ *jsonrpc2.Conn) error {
		registered = id
		return nil
	})
	id, err := c.InitSession(ctx, &conn)
	require.NoError(t, err)
	assert.Equal(t, registered, id)

	s, err := deps.sessions.Get(ctx, id)
	require.NoError(t, err)
	assert.Same(t, &conn, s.Conn)
	assert.False(t, s.Initialized())

	t.Run("registration failure", func(t *testing.T) {
		deps.ideGateway.EXPECT().RegisterClient(ctx, gomock.Any(), &conn).Return(errors.New("nil connection"))
		_, err := c.InitSession(ctx, &conn)
		assert.Error(t, err)
	})

	deps.ideGateway.EXPECT().DeregisterClient(ctx, id).Return(errors.New("already gone"))
	require.NoError(t, c.EndSession(ctx, id))
	count, err := deps.sessions.SessionCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

package nimlspdaemon

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/nimlsp/src/nimlsp/controller/documents/documentsmock"
	"github.com/uber/nimlsp/src/nimlsp/controller/toolchain/toolchainmock"
	"github.com/uber/nimlsp/src/nimlsp/controller/workspace/workspacemock"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	"github.com/uber/nimlsp/src/nimlsp/factory"
	"github.com/uber/nimlsp/src/nimlsp/gateway/ide-client/ideclientmock"
	"github.com/uber/nimlsp/src/nimlsp/internal/mock/fxmock"
	"github.com/uber/nimlsp/src/nimlsp/repository/session"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testDeps struct {
	shutdowner *fxmock.MockShutdowner
	ideGateway *ideclientmock.MockGateway
	documents  *documentsmock.MockController
	workspace  *workspacemock.MockController
	toolchain  *toolchainmock.MockController
	sessions   session.Repository
	stats      tally.TestScope
}

func newTestDeps(t *testing.T) testDeps {
	ctrl := gomock.NewController(t)
	return testDeps{
		shutdowner: fxmock.NewMockShutdowner(ctrl),
		ideGateway: ideclientmock.NewMockGateway(ctrl),
		documents:  documentsmock.NewMockController(ctrl),
		workspace:  workspacemock.NewMockController(ctrl),
		toolchain:  toolchainmock.NewMockController(ctrl),
		sessions:   session.New(tally.NoopScope),
		stats:      tally.NewTestScope("", nil),
	}
}

func (d testDeps) params(t *testing.T, yaml string) Params {
	provider, err := config.NewYAML(config.Source(strings.NewReader(yaml)))
	require.NoError(t, err)
	return Params{
		Shutdowner:    d.shutdowner,
		Sessions:      d.sessions,
		IdeGateway:    d.ideGateway,
		Logger:        zap.NewNop().Sugar(),
		Config:        provider,
		SuggestConfig: entity.NewSuggestConfig(),
		Stats:         d.stats,
		Documents:     d.documents,
		Workspace:     d.workspace,
		Toolchain:     d.toolchain,
	}
}

func newTestController(t *testing.T) (*controller, testDeps) {
	deps := newTestDeps(t)
	c, err := New(deps.params(t, "idleTimeoutMinutes: 0"))
	require.NoError(t, err)
	return c.(*controller), deps
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		timeout time.Duration
		wantErr string
	}{
		{
			name:    "timeout configured",
			yaml:    "idleTimeoutMinutes: 60",
			timeout: time.Hour,
		},
		{
			name: "timeout disabled",
			yaml: "idleTimeoutMinutes: 0",
		},
		{
			name: "timeout missing",
			yaml: "other: true",
		},
		{
			name:    "negative timeout",
			yaml:    "idleTimeoutMinutes: -1",
			wantErr: "must not be negative",
		},
		{
			name:    "malformed timeout",
			yaml:    "idleTimeoutMinutes: soon",
			wantErr: "unable to get idle timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps(t)
			c, err := New(deps.params(t, tt.yaml))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			ctrl := c.(*controller)
			assert.Equal(t, tt.timeout, ctrl.idleTimeout)
			assert.Equal(t, tt.timeout != 0, ctrl.idleTimer != nil)
			if ctrl.idleTimer != nil {
				ctrl.idleTimer.Stop()
			}
		})
	}
}

func TestIdleTimer(t *testing.T) {
	ctx := context.Background()

	t.Run("fires without sessions", func(t *testing.T) {
		deps := newTestDeps(t)
		c := &controller{
			sessions:    deps.sessions,
			shutdowner:  deps.shutdowner,
			logger:      zap.NewNop().Sugar(),
			idleTimeout: time.Millisecond,
		}

		fired := make(chan struct{})
		deps.shutdowner.EXPECT().Shutdown().DoAndReturn(func(...fx.ShutdownOption) error {
			close(fired)
			return nil
		})
		require.NoError(t, c.refreshIdleTimer(ctx))
		select {
		case <-fired:
		case <-time.After(5 * time.Second):
			t.Fatal("idle timer did not shut down the server")
		}
	})

	t.Run("held while sessions are active", func(t *testing.T) {
		deps := newTestDeps(t)
		c := &controller{
			sessions:    deps.sessions,
			shutdowner:  deps.shutdowner,
			logger:      zap.NewNop().Sugar(),
			idleTimeout: 20 * time.Millisecond,
		}
		require.NoError(t, c.refreshIdleTimer(ctx))

		s := &entity.Session{UUID: factory.UUID()}
		require.NoError(t, deps.sessions.Set(ctx, s))
		require.NoError(t, c.refreshIdleTimer(ctx))
		time.Sleep(50 * time.Millisecond)

		fired := make(chan struct{})
		deps.shutdowner.EXPECT().Shutdown().DoAndReturn(func(...fx.ShutdownOption) error {
			close(fired)
			return nil
		})
		require.NoError(t, deps.sessions.Delete(ctx, s.UUID))
		require.NoError(t, c.refreshIdleTimer(ctx))
		select {
		case <-fired:
		case <-time.After(5 * time.Second):
			t.Fatal("idle timer did not restart")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		c := &controller{}
		assert.NoError(t, c.refreshIdleTimer(ctx))
		assert.Nil(t, c.idleTimer)
	})
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

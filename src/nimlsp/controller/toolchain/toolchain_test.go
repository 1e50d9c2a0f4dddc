package toolchain

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	"github.com/uber/nimlsp/src/nimlsp/gateway/ide-client/ideclientmock"
	nimerrors "github.com/uber/nimlsp/src/nimlsp/internal/errors"
	"github.com/uber/nimlsp/src/nimlsp/internal/executor"
	"github.com/uber/nimlsp/src/nimlsp/internal/fs/fsmock"
	"go.lsp.dev/protocol"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type testDeps struct {
	fs      *fsmock.MockNimlspFS
	gateway *ideclientmock.MockGateway
}

func newTestController(t *testing.T, execFunc func(*exec.Cmd) error) (*controller, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		fs:      fsmock.NewMockNimlspFS(ctrl),
		gateway: ideclientmock.NewMockGateway(ctrl),
	}
	c := New(Params{
		FS:         deps.fs,
		Executor:   executor.NewExecutor(executor.WithExecFunc(execFunc)),
		IdeGateway: deps.gateway,
		Logger:     zap.NewNop().Sugar(),
	}).(*controller)
	return c, deps
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("bare commands", func(t *testing.T) {
		c, deps := newTestController(t, nil)
		deps.fs.EXPECT().LookPath("nimsuggest").Return("/usr/bin/nimsuggest", nil)
		deps.fs.EXPECT().LookPath("nim").Return("/usr/bin/nim", nil)

		cfg, err := c.Resolve(ctx, entity.SuggestConfig{})
		require.NoError(t, err)
		assert.Equal(t, "/usr/bin/nimsuggest", cfg.Executable)
		assert.Equal(t, "/usr/bin/nim", cfg.NimExecutable)
		assert.Equal(t, entity.DefaultSuggestArgs, cfg.Args)
	})

	t.Run("directory and full path", func(t *testing.T) {
		c, deps := newTestController(t, nil)
		deps.fs.EXPECT().DirExists("/opt/nim/bin").Return(true, nil)
		deps.fs.EXPECT().IsExecutable("/opt/nim/bin/nimsuggest").Return(true, nil)
		deps.fs.EXPECT().Canonicalize("/opt/nim/bin/nimsuggest").Return("/opt/nim-2.0/bin/nimsuggest", nil)
		deps.fs.EXPECT().DirExists("/opt/nim/bin/nim").Return(false, nil)
		deps.fs.EXPECT().IsExecutable("/opt/nim/bin/nim").Return(true, nil)
		deps.fs.EXPECT().Canonicalize("/opt/nim/bin/nim").Return("/opt/nim-2.0/bin/nim", nil)

		cfg, err := c.Resolve(ctx, entity.SuggestConfig{Executable: "/opt/nim/bin", NimExecutable: "/opt/nim/bin/nim"})
		require.NoError(t, err)
		assert.Equal(t, "/opt/nim-2.0/bin/nimsuggest", cfg.Executable)
		assert.Equal(t, "/opt/nim-2.0/bin/nim", cfg.NimExecutable)
	})

	t.Run("missing executable is reported once per value", func(t *testing.T) {
		c, deps := newTestController(t, nil)
		deps.fs.EXPECT().LookPath("nimsuggest").Return("", exec.ErrNotFound).Times(3)
		deps.fs.EXPECT().DirExists("/opt/nimsuggest").Return(false, nil)
		deps.fs.EXPECT().IsExecutable("/opt/nimsuggest").Return(false, nil)

		var messages []string
		deps.gateway.EXPECT().BroadcastShowMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params *protocol.ShowMessageParams) error {
				assert.Equal(t, protocol.MessageTypeError, params.Type)
				messages = append(messages, params.Message)
				return nil
			}).Times(3)

		cfg := entity.SuggestConfig{Executable: "nimsuggest", CheckConfiguration: true}
		for i := 0; i < 2; i++ {
			_, err := c.Resolve(ctx, cfg)
			setting, value, ok := nimerrors.NotFoundExecutable(err)
			require.True(t, ok)
			assert.Equal(t, "nimsuggest.executable", setting)
			assert.Equal(t, "nimsuggest", value)
		}

		// A changed value is reported again.
		cfg.Executable = "/opt/nimsuggest"
		_, err := c.Resolve(ctx, cfg)
		assert.True(t, nimerrors.IsNotFound(err))

		// Going back to the first value is a change too.
		cfg.Executable = "nimsuggest"
		_, err = c.Resolve(ctx, cfg)
		assert.Error(t, err)

		require.Len(t, messages, 3)
		assert.Contains(t, messages[0], `"nimsuggest"`)
		assert.Contains(t, messages[1], `"/opt/nimsuggest"`)
	})

	t.Run("checks disabled", func(t *testing.T) {
		c, deps := newTestController(t, nil)
		deps.fs.EXPECT().LookPath("nim").Return("", exec.ErrNotFound)
		deps.fs.EXPECT().LookPath("nimsuggest").Return("/usr/bin/nimsuggest", nil)

		_, err := c.Resolve(ctx, entity.SuggestConfig{CheckConfiguration: false})
		setting, _, ok := nimerrors.NotFoundExecutable(err)
		require.True(t, ok)
		assert.Equal(t, "nimsuggest.nimExecutable", setting)
	})

	t.Run("resolving clears the report", func(t *testing.T) {
		c, deps := newTestController(t, nil)
		gomock.InOrder(
			deps.fs.EXPECT().LookPath("nimsuggest").Return("", exec.ErrNotFound),
			deps.fs.EXPECT().LookPath("nimsuggest").Return("/usr/bin/nimsuggest", nil),
			deps.fs.EXPECT().LookPath("nimsuggest").Return("", exec.ErrNotFound),
		)
		deps.fs.EXPECT().LookPath("nim").Return("/usr/bin/nim", nil)
		deps.gateway.EXPECT().BroadcastShowMessage(gomock.Any(), gomock.Any()).Return(errors.New("no IDE")).Times(2)

		cfg := entity.SuggestConfig{CheckConfiguration: true}
		_, err := c.Resolve(ctx, cfg)
		assert.Error(t, err)
		_, err = c.Resolve(ctx, cfg)
		assert.NoError(t, err)
		_, err = c.Resolve(ctx, cfg)
		assert.Error(t, err)
	})
}

func TestNimVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("probes once", func(t *testing.T) {
		runs := 0
		c, _ := newTestController(t, func(cmd *exec.Cmd) error {
			runs++
			assert.Equal(t, []string{"/usr/bin/nim", "--version"}, cmd.Args)
			_, err := cmd.Stdout.Write([]byte("Nim Compiler Version 2.0.8 [Linux: amd64]\nCompiled at 2024-07-03\n"))
			return err
		})

		for i := 0; i < 3; i++ {
			v, err := c.NimVersion(ctx, "/usr/bin/nim")
			require.NoError(t, err)
			assert.Equal(t, "Nim Compiler Version 2.0.8 [Linux: amd64]", v)
		}
		assert.Equal(t, 1, runs)
	})

	t.Run("failure is not cached", func(t *testing.T) {
		runs := 0
		c, _ := newTestController(t, func(cmd *exec.Cmd) error {
			runs++
			_, _ = cmd.Stderr.Write([]byte("permission denied\n"))
			return errors.New("exit status 126")
		})

		_, err := c.NimVersion(ctx, "/usr/bin/nim")
		assert.ErrorContains(t, err, "permission denied")
		_, err = c.NimVersion(ctx, "/usr/bin/nim")
		assert.Error(t, err)
		assert.Equal(t, 2, runs)
	})
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

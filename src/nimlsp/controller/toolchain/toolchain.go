// Package toolchain resolves the nim and nimsuggest executables named in the configuration.
package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/uber/nimlsp/src/nimlsp/entity"
	ideclient "github.com/uber/nimlsp/src/nimlsp/gateway/ide-client"
	"github.com/uber/nimlsp/src/nimlsp/internal/errors"
	"github.com/uber/nimlsp/src/nimlsp/internal/executor"
	"github.com/uber/nimlsp/src/nimlsp/internal/fs"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_settingSuggest = "nimsuggest.executable"
	_settingNim     = "nimsuggest.nimExecutable"

	_errMessage = "The %s setting %q does not point to an executable. Fix the setting and reopen the file."
)

// Controller resolves toolchain executables.
type Controller interface {
	// Resolve returns cfg with both executables replaced by runnable paths.
	// A setting may hold a path to the executable, a directory containing it, or a command found on PATH.
	Resolve(ctx context.Context, cfg entity.SuggestConfig) (entity.SuggestConfig, error)
	// NimVersion returns the first line printed by `nim --version`, probing each executable once.
	NimVersion(ctx context.Context, nimExecutable string) (string, error)
}

// Params are inbound parameters to initialize a new toolchain controller.
type Params struct {
	fx.In

	FS         fs.NimlspFS
	Executor   executor.Executor
	IdeGateway ideclient.Gateway
	Logger     *zap.SugaredLogger
}

type controller struct {
	fs         fs.NimlspFS
	executor   executor.Executor
	ideGateway ideclient.Gateway
	logger     *zap.SugaredLogger

	mu       sync.Mutex
	reported map[string]string
	versions map[string]string
}

// New creates a toolchain Controller.
func New(p Params) Controller {
	return &controller{
		fs:         p.FS,
		executor:   p.Executor,
		ideGateway: p.IdeGateway,
		logger:     p.Logger.With("plugin", "toolchain"),
		reported:   make(map[string]string),
		versions:   make(map[string]string),
	}
}

func (c *controller) Resolve(ctx context.Context, cfg entity.SuggestConfig) (entity.SuggestConfig, error) {
	cfg = cfg.WithDefaults()

	suggest, err := c.resolveSetting(ctx, _settingSuggest, cfg.Executable, entity.DefaultSuggestExecutable, cfg.CheckConfiguration)
	if err != nil {
		return cfg, err
	}
	nim, err := c.resolveSetting(ctx, _settingNim, cfg.NimExecutable, entity.DefaultNimExecutable, cfg.CheckConfiguration)
	if err != nil {
		return cfg, err
	}

	cfg.Executable = suggest
	cfg.NimExecutable = nim
	return cfg, nil
}

func (c *controller) resolveSetting(ctx context.Context, setting, value, name string, check bool) (string, error) {
	resolved, tried, ok := c.find(value, name)
	if ok {
		c.mu.Lock()
		delete(c.reported, setting)
		c.mu.Unlock()
		return resolved, nil
	}

	err := &errors.ExecutableNotFoundError{Setting: setting, Value: value, Tried: tried}
	if check && c.firstReport(setting, value) {
		c.logger.Warnw("executable not found", "setting", setting, "value", value, "tried", tried)
		if sendErr := c.ideGateway.BroadcastShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeError,
			Message: fmt.Sprintf(_errMessage, setting, value),
		}); sendErr != nil {
			c.logger.Warnw("showing configuration error", "error", sendErr)
		}
	}
	return "", err
}

// firstReport records value as reported for setting and returns false if it already was.
func (c *controller) firstReport(setting, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.reported[setting]; ok && prev == value {
		return false
	}
	c.reported[setting] = value
	return true
}

func (c *controller) find(value, name string) (resolved string, tried []string, ok bool) {
	if !strings.ContainsRune(value, '/') && !strings.ContainsRune(value, filepath.Separator) {
		tried = append(tried, value)
		p, err := c.fs.LookPath(value)
		if err != nil {
			return "", tried, false
		}
		return p, tried, true
	}

	candidate := value
	if isDir, err := c.fs.DirExists(value); err == nil && isDir {
		candidate = filepath.Join(value, executableName(name))
	}
	tried = append(tried, candidate)

	if isExec, err := c.fs.IsExecutable(candidate); err != nil || !isExec {
		return "", tried, false
	}
	canonical, err := c.fs.Canonicalize(candidate)
	if err != nil {
		return "", tried, false
	}
	return canonical, tried, true
}

func (c *controller) NimVersion(ctx context.Context, nimExecutable string) (string, error) {
	c.mu.Lock()
	v, ok := c.versions[nimExecutable]
	c.mu.Unlock()
	if ok {
		return v, nil
	}

	stdout, stderr, _, err := c.executor.Run(exec.CommandContext(ctx, nimExecutable, "--version"))
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w: %s", nimExecutable, err, strings.TrimSpace(stderr))
	}
	v = strings.TrimSpace(strings.SplitN(stdout, "\n", 2)[0])

	c.mu.Lock()
	c.versions[nimExecutable] = v
	c.mu.Unlock()

	c.logger.Infow("nim toolchain", "executable", nimExecutable, "version", v)
	return v, nil
}

func executableName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

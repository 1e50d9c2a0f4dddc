package nimsuggest

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/nimlsp/src/nimlsp/internal/executor"
	"github.com/uber/nimlsp/src/nimlsp/internal/wire"
	"go.uber.org/zap"
)

const _pathEnv = "PATH"

// launchArgs are captured once per client and never change afterwards.
type launchArgs struct {
	Executable string
	Args       []string
	Env        []string
	Dir        string
}

// newLaunchArgs builds the command line `<executable> <args...> <projectFile>` and an environment whose
// search path starts with the directory holding the nim compiler.
func newLaunchArgs(executable string, args []string, nimExecutable string, projectFile string, environ []string) launchArgs {
	cmdArgs := make([]string, 0, len(args)+1)
	cmdArgs = append(cmdArgs, args...)
	cmdArgs = append(cmdArgs, projectFile)

	return launchArgs{
		Executable: executable,
		Args:       cmdArgs,
		Env:        prefixPath(environ, toolchainDir(nimExecutable)),
		Dir:        filepath.Dir(projectFile),
	}
}

// toolchainDir returns the directory of the nim executable, or "" when it is a bare command name.
func toolchainDir(nimExecutable string) string {
	if nimExecutable == "" || filepath.Base(nimExecutable) == nimExecutable {
		return ""
	}
	return filepath.Dir(nimExecutable)
}

// prefixPath returns a copy of environ with dir prepended to the search path variable.
func prefixPath(environ []string, dir string) []string {
	env := make([]string, 0, len(environ)+1)
	found := false
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.EqualFold(key, _pathEnv) && !found && dir != "" {
			found = true
			if value == "" {
				kv = key + "=" + dir
			} else {
				kv = key + "=" + dir + string(os.PathListSeparator) + value
			}
		}
		env = append(env, kv)
	}
	if !found && dir != "" {
		env = append(env, _pathEnv+"="+dir)
	}
	return env
}

// handle is one live analyzer process.
type handle struct {
	process executor.Process
	reader  *bufio.Reader
}

// query writes a single request and reads back exactly one response.
// It reports false when the process went away before the response was complete.
func (h *handle) query(payload []byte) ([]byte, bool) {
	if _, err := h.process.Stdin().Write(payload); err != nil {
		return nil, false
	}
	return wire.ReadResponse(h.reader)
}

// supervisor owns the analyzer process of a single client.
// The failure counter is only touched by the worker goroutine.
type supervisor struct {
	launch   launchArgs
	executor executor.Executor
	stderr   io.Writer
	logger   *zap.SugaredLogger
	stats    tally.Scope

	failures int
	spawned  int

	mu     sync.Mutex
	handle *handle
	closed bool
}

func newSupervisor(launch launchArgs, ex executor.Executor, stderr io.Writer, logger *zap.SugaredLogger, stats tally.Scope) *supervisor {
	return &supervisor{
		launch:   launch,
		executor: ex,
		stderr:   stderr,
		logger:   logger,
		stats:    stats,
	}
}

// ensureAlive returns the current handle when its process is still running, otherwise it spawns a new one.
// A failed spawn increments the failure counter. A successful one leaves the counter untouched.
func (s *supervisor) ensureAlive() (*handle, bool) {
	s.mu.Lock()
	current, closed := s.handle, s.closed
	s.mu.Unlock()

	if closed {
		return nil, false
	}
	if current != nil {
		if !current.process.Exited() {
			return current, true
		}
		s.logger.Warnw("nimsuggest exited, restarting", "pid", current.process.Pid())
		s.kill(current)
	}

	cmd := exec.Command(s.launch.Executable, s.launch.Args...)
	cmd.Dir = s.launch.Dir
	cmd.Stderr = s.stderr

	s.stats.Counter("spawns").Inc(1)
	p, err := s.executor.Start(cmd, s.launch.Env)
	if err != nil {
		s.failures++
		s.stats.Counter("spawn_failures").Inc(1)
		s.logger.Warnw("failed to start nimsuggest", "error", err, "failures", s.failures)
		return nil, false
	}

	h := &handle{process: p, reader: bufio.NewReader(p.Stdout())}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		if err := p.Kill(); err != nil {
			s.logger.Warnw("failed to kill nimsuggest", "error", err)
		}
		return nil, false
	}
	s.handle = h
	s.mu.Unlock()

	if s.spawned > 0 {
		s.stats.Counter("restarts").Inc(1)
	}
	s.spawned++
	s.logger.Infow("nimsuggest started", "pid", p.Pid())
	return h, true
}

// kill terminates h if it is still the current handle. Killing a handle twice is a no-op.
func (s *supervisor) kill(h *handle) {
	if h == nil {
		return
	}

	s.mu.Lock()
	if s.handle != h {
		s.mu.Unlock()
		return
	}
	s.handle = nil
	s.mu.Unlock()

	if err := h.process.Kill(); err != nil {
		s.logger.Warnw("failed to kill nimsuggest", "pid", h.process.Pid(), "error", err)
	}
}

// shutdown kills the current process and prevents any further spawn. Safe to call from any goroutine.
func (s *supervisor) shutdown() {
	s.mu.Lock()
	s.closed = true
	h := s.handle
	s.mu.Unlock()

	s.kill(h)
}

package executor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides a module to inject using fx.
var Module = fx.Provide(func(logger *zap.SugaredLogger) Executor {
	return NewExecutor(WithLogger(logger.With("plugin", "executor")))
})

// Executor wraps the execution of "os/exec".Cmd's to allow adding logs to each exec and makes it easier to test.
type Executor interface {
	// Run - logs and executes the Cmd specified overriding its Stdout/Stderr to return their content
	Run(cmd *exec.Cmd) (stdout string, stderr string, exitCode int, err error)
	// Start - logs and starts the Cmd specified as a long-lived process that is talked to over stdin/stdout.
	// Stderr is left as configured on cmd.
	Start(cmd *exec.Cmd, env []string) (Process, error)
}

// Process is a running child started by Executor.Start.
type Process interface {
	// Stdin is the write end of the process's standard input.
	Stdin() io.Writer
	// Stdout is the read end of the process's standard output. Reads return io.EOF once the process is gone.
	Stdout() io.Reader
	// Exited reports whether the process has terminated.
	Exited() bool
	// Kill terminates the process if it is still running and releases its pipes. Safe to call repeatedly.
	Kill() error
	// Pid returns the operating system process id.
	Pid() int
}

// executorImp implements Executor
type executorImp struct {
	Logger *zap.SugaredLogger
	// ExecFunc may be nil to use executorImp in tests.
	ExecFunc func(e *exec.Cmd) error
}

// Option defines options to customize executorImp's behavior
type Option func(*executorImp)

// WithLogger overrides the default noop logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(executor *executorImp) {
		executor.Logger = logger
	}
}

// WithExecFunc provides customized exec behavior for Run
func WithExecFunc(execFunc func(e *exec.Cmd) error) Option {
	return func(executor *executorImp) {
		executor.ExecFunc = execFunc
	}
}

// NewExecutor - creates a new executorImp with a noop logger and a default executor function
func NewExecutor(opts ...Option) Executor {
	executor := &executorImp{
		Logger:   zap.NewNop().Sugar(),
		ExecFunc: func(cmd *exec.Cmd) error { return cmd.Run() },
	}
	for _, opt := range opts {
		opt(executor)
	}
	return executor
}

// Run - logs the Path/Args and calls ExecFunc if it is set.
func (l *executorImp) Run(cmd *exec.Cmd) (stdout string, stderr string, exitCode int, err error) {
	if err := l.logCommand(cmd); err != nil {
		return "", "", -1, err
	}

	if l.ExecFunc == nil {
		l.Logger.Warn("missing ExecFunc - skipped execution")
		return "", "", 0, nil
	}

	var stdoutB, stderrB bytes.Buffer
	cmd.Stdout = &stdoutB
	cmd.Stderr = &stderrB
	err = l.ExecFunc(cmd)

	return stdoutB.String(), stderrB.String(), cmd.ProcessState.ExitCode(), err
}

// Start - logs the Path/Args and starts the process with piped stdin and stdout.
func (l *executorImp) Start(cmd *exec.Cmd, env []string) (Process, error) {
	if err := l.logCommand(cmd); err != nil {
		return nil, err
	}
	cmd.Env = env

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}

	// The read end is owned here rather than by exec, so Wait never closes it while a response is being read
	// and buffered output written before exit stays readable.
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	cmd.Stdout = stdoutW

	if err := cmd.Start(); err != nil {
		stdin.Close()
		stdoutR.Close()
		stdoutW.Close()
		return nil, err
	}
	stdoutW.Close()

	p := &process{
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdoutR,
		done:   make(chan struct{}),
	}
	go p.wait(l.Logger)
	return p, nil
}

// Logs the command specified: Path, Dir, Args, Stdin (if available)
func (l *executorImp) logCommand(cmd *exec.Cmd) error {
	logKeysAndValues := []interface{}{
		"Path", cmd.Path,
		"Dir", cmd.Dir,
		"Args", cmd.Args[1:], // First arg is always the command itself
	}

	if cmd.Stdin != nil {
		stdinBytes, err := io.ReadAll(cmd.Stdin)
		if err != nil {
			return err
		}
		logKeysAndValues = append(logKeysAndValues, "Stdin", string(stdinBytes))
		cmd.Stdin = bytes.NewReader(stdinBytes)
	}

	l.Logger.Infow("Exec", logKeysAndValues...)
	return nil
}

type process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *os.File
	done   chan struct{}

	killOnce sync.Once
	killErr  error
}

func (p *process) wait(logger *zap.SugaredLogger) {
	err := p.cmd.Wait()
	close(p.done)
	logger.Infow("process exited", "pid", p.cmd.Process.Pid, "exitCode", p.cmd.ProcessState.ExitCode(), "error", err)
}

func (p *process) Stdin() io.Writer { return p.stdin }

func (p *process) Stdout() io.Reader { return p.stdout }

func (p *process) Pid() int { return p.cmd.Process.Pid }

func (p *process) Exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (p *process) Kill() error {
	p.killOnce.Do(func() {
		if !p.Exited() {
			if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
				p.killErr = err
			}
		}
		p.stdin.Close()
		p.stdout.Close()
	})
	return p.killErr
}

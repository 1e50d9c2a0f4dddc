package nimsuggest

import (
	"bufio"
	"errors"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/uber/nimlsp/src/nimlsp/internal/executor"
)

// respondFunc produces the analyzer output for one request line. Returning crash ends the process
// right after the output is written.
type respondFunc func(p *fakeProcess, line string) (out string, crash bool)

func answer(out string) respondFunc {
	return func(*fakeProcess, string) (string, bool) { return out, false }
}

// fakeAnalyzer is an executor.Executor whose processes are goroutines speaking over in-memory pipes.
type fakeAnalyzer struct {
	mu         sync.Mutex
	respond    respondFunc
	failStarts int
	starts     int
	cmds       []*exec.Cmd
	envs       [][]string
	processes  []*fakeProcess
}

var _ executor.Executor = (*fakeAnalyzer)(nil)

func (f *fakeAnalyzer) Run(*exec.Cmd) (string, string, int, error) {
	return "", "", 0, nil
}

func (f *fakeAnalyzer) Start(cmd *exec.Cmd, env []string) (executor.Process, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.starts++
	f.cmds = append(f.cmds, cmd)
	f.envs = append(f.envs, env)
	if f.failStarts < 0 || f.starts <= f.failStarts {
		return nil, errors.New("exec: \"nimsuggest\": executable file not found in $PATH")
	}

	p := newFakeProcess(len(f.processes) + 1)
	f.processes = append(f.processes, p)
	go p.serve(f.respond)
	return p, nil
}

func (f *fakeAnalyzer) startCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts
}

func (f *fakeAnalyzer) process(i int) *fakeProcess {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processes[i]
}

type fakeProcess struct {
	pid     int
	stdinR  *io.PipeReader
	stdinW  *io.PipeWriter
	stdoutR *io.PipeReader
	stdoutW *io.PipeWriter

	done     chan struct{}
	exitOnce sync.Once
	kills    atomic.Int32

	mu    sync.Mutex
	lines []string
}

func newFakeProcess(pid int) *fakeProcess {
	p := &fakeProcess{pid: pid, done: make(chan struct{})}
	p.stdinR, p.stdinW = io.Pipe()
	p.stdoutR, p.stdoutW = io.Pipe()
	return p
}

func (p *fakeProcess) serve(respond respondFunc) {
	defer p.exit()
	r := bufio.NewReader(p.stdinR)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		p.mu.Lock()
		p.lines = append(p.lines, line)
		p.mu.Unlock()

		out, crash := respond(p, line)
		if out != "" {
			if _, err := io.WriteString(p.stdoutW, out); err != nil {
				return
			}
		}
		if crash {
			return
		}
	}
}

// exit simulates the process terminating on its own.
func (p *fakeProcess) exit() {
	p.exitOnce.Do(func() {
		close(p.done)
		p.stdoutW.Close()
		p.stdinR.Close()
	})
}

func (p *fakeProcess) received() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.lines...)
}

func (p *fakeProcess) Stdin() io.Writer  { return p.stdinW }
func (p *fakeProcess) Stdout() io.Reader { return p.stdoutR }
func (p *fakeProcess) Pid() int          { return p.pid }

func (p *fakeProcess) Exited() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (p *fakeProcess) Kill() error {
	p.kills.Add(1)
	p.exit()
	p.stdinW.Close()
	p.stdoutR.Close()
	return nil
}

// Package nimsuggest supervises one nimsuggest process per project and serializes queries against it.
package nimsuggest

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/uber-go/tally"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	"github.com/uber/nimlsp/src/nimlsp/internal/executor"
	"github.com/uber/nimlsp/src/nimlsp/internal/logwriter"
	"github.com/uber/nimlsp/src/nimlsp/internal/mainthread"
	"github.com/uber/nimlsp/src/nimlsp/internal/wire"
	"go.uber.org/zap"
)

// Client queries the nimsuggest process of a single project.
// No method blocks on the analyzer, every result is delivered to the callback through the scheduler.
type Client interface {
	FindDefinition(sourceFile, overlayFile string, line, column int, cb entity.Callback)
	FindUsages(sourceFile, overlayFile string, line, column int, cb entity.Callback)
	FindDotUsages(sourceFile, overlayFile string, line, column int, cb entity.Callback)
	GetSuggestions(sourceFile, overlayFile string, line, column int, cb entity.Callback)
	GetContext(sourceFile, overlayFile string, line, column int, cb entity.Callback)
	GetHighlights(sourceFile, overlayFile string, line, column int, cb entity.Callback)
	GetOutline(sourceFile, overlayFile string, line, column int, cb entity.Callback)

	// RunCommand encodes and queues an arbitrary verb. Lines are 1-based and columns 0-based, as nimsuggest counts them.
	RunCommand(verb entity.Verb, sourceFile, overlayFile string, line, column int, cb entity.Callback)
	// Stop fails queued requests, kills the process and waits for the worker to exit.
	// When ctx expires first the process is killed to interrupt the in-flight request.
	Stop(ctx context.Context) error
	// Running reports whether the worker is serving requests.
	Running() bool
	State() State
	ProjectFile() string
}

// Params configure a Client.
type Params struct {
	// ProjectFile is the canonical path of the project handed to nimsuggest.
	ProjectFile string
	// Config must have its executables resolved already.
	Config    entity.SuggestConfig
	Executor  executor.Executor
	Scheduler mainthread.Scheduler
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	// Environ is the base environment of the analyzer, os.Environ() when nil.
	Environ []string
	// OnExhausted is scheduled once when the client stops after too many failed spawns.
	OnExhausted func(projectFile string, failures int)
}

type client struct {
	projectFile     string
	maxFailures     int
	responseTimeout time.Duration
	onExhausted     func(string, int)

	scheduler  mainthread.Scheduler
	logger     *zap.SugaredLogger
	stats      tally.Scope
	stderr     *logwriter.Writer
	supervisor *supervisor
	queue      *requestQueue

	// mu guards state transitions so that starting the worker cannot race a stop.
	mu    sync.Mutex
	state State
	done  chan struct{}
}

// New creates an idle Client. The analyzer is started by the first request.
func New(p Params) Client {
	cfg := p.Config.WithDefaults()
	environ := p.Environ
	if environ == nil {
		environ = os.Environ()
	}
	stats := p.Stats
	if stats == nil {
		stats = tally.NoopScope
	}
	logger := p.Logger.With("plugin", "nimsuggest", "project", p.ProjectFile)
	stderr := logwriter.New(p.Logger, "plugin", "nimsuggest-stderr", "project", p.ProjectFile)

	return &client{
		projectFile:     p.ProjectFile,
		maxFailures:     cfg.MaxFailures,
		responseTimeout: cfg.ResponseTimeout,
		onExhausted:     p.OnExhausted,
		scheduler:       p.Scheduler,
		logger:          logger,
		stats:           stats,
		stderr:          stderr,
		supervisor: newSupervisor(
			newLaunchArgs(cfg.Executable, cfg.Args, cfg.NimExecutable, p.ProjectFile, environ),
			p.Executor,
			stderr,
			logger,
			stats,
		),
		queue: newRequestQueue(),
		done:  make(chan struct{}),
	}
}

func (c *client) FindDefinition(sourceFile, overlayFile string, line, column int, cb entity.Callback) {
	c.RunCommand(entity.VerbDefinition, sourceFile, overlayFile, line, column, cb)
}

func (c *client) FindUsages(sourceFile, overlayFile string, line, column int, cb entity.Callback) {
	c.RunCommand(entity.VerbUsages, sourceFile, overlayFile, line, column, cb)
}

func (c *client) FindDotUsages(sourceFile, overlayFile string, line, column int, cb entity.Callback) {
	c.RunCommand(entity.VerbDotUsages, sourceFile, overlayFile, line, column, cb)
}

func (c *client) GetSuggestions(sourceFile, overlayFile string, line, column int, cb entity.Callback) {
	c.RunCommand(entity.VerbSuggestions, sourceFile, overlayFile, line, column, cb)
}

func (c *client) GetContext(sourceFile, overlayFile string, line, column int, cb entity.Callback) {
	c.RunCommand(entity.VerbContext, sourceFile, overlayFile, line, column, cb)
}

func (c *client) GetHighlights(sourceFile, overlayFile string, line, column int, cb entity.Callback) {
	c.RunCommand(entity.VerbHighlight, sourceFile, overlayFile, line, column, cb)
}

func (c *client) GetOutline(sourceFile, overlayFile string, line, column int, cb entity.Callback) {
	c.RunCommand(entity.VerbOutline, sourceFile, overlayFile, line, column, cb)
}

func (c *client) RunCommand(verb entity.Verb, sourceFile, overlayFile string, line, column int, cb entity.Callback) {
	if !verb.Valid() {
		c.logger.Warnw("unknown verb, failing request", "verb", verb)
		c.fail(request{verb: verb, cb: cb})
		return
	}

	req := request{
		verb:    verb,
		payload: wire.Encode(verb, sourceFile, overlayFile, line, column),
		cb:      cb,
	}
	c.stats.Counter("requests").Inc(1)

	c.mu.Lock()
	if c.state == StateIdle {
		c.state = StateRunning
		go c.run()
	}
	accepted := c.queue.enqueue(req)
	c.mu.Unlock()

	if !accepted {
		c.logger.Debugw("client stopped, failing request", "verb", verb)
		c.fail(req)
	}
}

func (c *client) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateIdle {
		c.state = StateStopped
		c.queue.stop()
		c.supervisor.shutdown()
		close(c.done)
		c.mu.Unlock()
		return nil
	}
	c.queue.stop()
	c.mu.Unlock()

	var err error
	select {
	case <-c.done:
	case <-ctx.Done():
		c.logger.Warnw("worker did not stop in time, killing nimsuggest", "error", ctx.Err())
		c.supervisor.shutdown()
		<-c.done
		err = ctx.Err()
	}
	c.stderr.Flush()
	return err
}

func (c *client) Running() bool {
	return c.State() == StateRunning
}

func (c *client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *client) ProjectFile() string {
	return c.projectFile
}

func (c *client) setState(s State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}

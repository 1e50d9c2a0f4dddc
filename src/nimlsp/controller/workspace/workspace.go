// Package workspace routes queries to the analyzer client of the project a document belongs to.
package workspace

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/uber-go/tally"
	"github.com/uber/nimlsp/src/nimlsp/controller/documents"
	"github.com/uber/nimlsp/src/nimlsp/controller/toolchain"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	ideclient "github.com/uber/nimlsp/src/nimlsp/gateway/ide-client"
	"github.com/uber/nimlsp/src/nimlsp/internal/errors"
	"github.com/uber/nimlsp/src/nimlsp/internal/executor"
	"github.com/uber/nimlsp/src/nimlsp/internal/fs"
	"github.com/uber/nimlsp/src/nimlsp/internal/mainthread"
	"github.com/uber/nimlsp/src/nimlsp/internal/nimsuggest"
	"github.com/uber/nimlsp/src/nimlsp/mapper"
	"github.com/uber/nimlsp/src/nimlsp/repository/project"
	"github.com/uber/nimlsp/src/nimlsp/repository/session"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_debounceTimeout = 200 * time.Millisecond
	_stopTimeout     = 5 * time.Second
)

// _projectConfigExts are the files whose changes alter how nimsuggest sees a project.
var _projectConfigExts = map[string]bool{
	".nims":   true,
	".cfg":    true,
	".nimble": true,
}

// Controller runs queries against the analyzer of the project owning a document.
type Controller interface {
	// Query sends verb at pos in doc to the project's analyzer. cb always runs on the scheduler goroutine.
	// An error means the query was never queued and cb will not be called.
	Query(ctx context.Context, verb entity.Verb, doc protocol.TextDocumentIdentifier, pos protocol.Position, cb entity.Callback) error
	// ProjectFile returns the canonical project file that sourceFile is analyzed as part of.
	ProjectFile(ctx context.Context, sourceFile string) (string, error)
	// RestartProject stops the client of projectFile so the next query starts a fresh analyzer.
	RestartProject(ctx context.Context, projectFile string) error
	// StopAll stops every client.
	StopAll(ctx context.Context) error
}

// Params are inbound parameters to initialize a new workspace controller.
type Params struct {
	fx.In

	Config     entity.SuggestConfig
	FS         fs.NimlspFS
	Executor   executor.Executor
	Scheduler  mainthread.Scheduler
	Toolchain  toolchain.Controller
	Documents  documents.Controller
	Projects   project.Repository
	Sessions   session.Repository
	IdeGateway ideclient.Gateway
	Lifecycle  fx.Lifecycle
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

type controller struct {
	config     entity.SuggestConfig
	fs         fs.NimlspFS
	executor   executor.Executor
	scheduler  mainthread.Scheduler
	toolchain  toolchain.Controller
	documents  documents.Controller
	projects   project.Repository
	sessions   session.Repository
	ideGateway ideclient.Gateway
	logger     *zap.SugaredLogger
	stats      tally.Scope

	// newClient may be replaced in tests.
	newClient func(p nimsuggest.Params) nimsuggest.Client

	watcher     *fsnotify.Watcher
	watchCloser chan bool
	watchDone   chan struct{}
	// watched maps a directory to the project files inside it.
	watchMu sync.Mutex
	watched map[string]map[string]bool

	debounceTimeout time.Duration
	debounceMu      sync.Mutex
	debounceTimers  map[string]*time.Timer
}

// New creates a workspace Controller.
func New(p Params) (Controller, error) {
	c := &controller{
		config:          p.Config,
		fs:              p.FS,
		executor:        p.Executor,
		scheduler:       p.Scheduler,
		toolchain:       p.Toolchain,
		documents:       p.Documents,
		projects:        p.Projects,
		sessions:        p.Sessions,
		ideGateway:      p.IdeGateway,
		logger:          p.Logger.With("plugin", "workspace"),
		stats:           p.Stats.SubScope("workspace"),
		newClient:       nimsuggest.New,
		watchCloser:     make(chan bool, 1),
		watchDone:       make(chan struct{}),
		watched:         make(map[string]map[string]bool),
		debounceTimeout: _debounceTimeout,
		debounceTimers:  make(map[string]*time.Timer),
	}

	if p.Config.WatchProjectConfig {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("failed to create fs watcher for project configuration: %w", err)
		}
		c.watcher = watcher
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go c.handleChanges(c.watchCloser)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := c.StopAll(ctx)
			c.watchCloser <- true
			select {
			case <-c.watchDone:
			case <-ctx.Done():
				err = multierr.Append(err, ctx.Err())
			}
			return err
		},
	})
	return c, nil
}

func (c *controller) Query(ctx context.Context, verb entity.Verb, doc protocol.TextDocumentIdentifier, pos protocol.Position, cb entity.Callback) error {
	sourceFile, overlay, release, err := c.documents.Overlay(ctx, doc)
	if err != nil {
		return err
	}

	projectFile, err := c.ProjectFile(ctx, sourceFile)
	if err != nil {
		release()
		return err
	}

	client, err := c.client(ctx, projectFile)
	if err != nil {
		release()
		if _, _, missing := errors.NotFoundExecutable(err); missing {
			// The IDE has already been told once, every query on a missing toolchain answers null.
			c.stats.Tagged(map[string]string{"verb": string(verb)}).Counter("unavailable").Inc(1)
			c.scheduler.Schedule(func() { cb(entity.Response{}) })
			return nil
		}
		return err
	}

	line, column := mapper.PositionToSuggest(pos)
	c.stats.Tagged(map[string]string{"verb": string(verb)}).Counter("queries").Inc(1)
	client.RunCommand(verb, sourceFile, overlay, line, column, func(resp entity.Response) {
		release()
		cb(resp)
	})
	return nil
}

// ProjectFile prefers the configured project file, then the one the IDE passed on initialize.
// Without either every source file is its own project.
func (c *controller) ProjectFile(ctx context.Context, sourceFile string) (string, error) {
	projectFile := c.config.ProjectFile
	if projectFile == "" {
		if s, err := c.sessions.GetFromContext(ctx); err == nil {
			projectFile = s.ProjectFile
			if projectFile != "" && !filepath.IsAbs(projectFile) && s.RootPath != "" {
				projectFile = filepath.Join(s.RootPath, projectFile)
			}
		}
	}
	if projectFile == "" {
		projectFile = sourceFile
	}

	canonical, err := c.fs.Canonicalize(projectFile)
	if err != nil {
		return "", fmt.Errorf("canonicalizing project file %q: %w", projectFile, err)
	}
	return canonical, nil
}

func (c *controller) client(ctx context.Context, projectFile string) (nimsuggest.Client, error) {
	cfg, err := c.toolchain.Resolve(ctx, c.config)
	if err != nil {
		return nil, err
	}

	client, created := c.projects.GetOrCreate(ctx, projectFile, func(projectFile string) nimsuggest.Client {
		return c.newClient(nimsuggest.Params{
			ProjectFile: projectFile,
			Config:      cfg,
			Executor:    c.executor,
			Scheduler:   c.scheduler,
			Logger:      c.logger,
			Stats:       c.stats.SubScope("nimsuggest"),
			OnExhausted: c.onExhausted,
		})
	})
	if created {
		c.logger.Infow("created nimsuggest client", "project", projectFile, "executable", cfg.Executable)
		c.watch(projectFile)
	}
	return client, nil
}

// onExhausted runs on the scheduler goroutine.
func (c *controller) onExhausted(projectFile string, failures int) {
	err := &errors.ClientStoppedError{ProjectFile: projectFile, Failures: failures}
	c.logger.Errorw("nimsuggest client stopped", "error", err)
	if err := c.ideGateway.BroadcastShowMessage(context.Background(), &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeError,
		Message: err.Error(),
	}); err != nil {
		c.logger.Warnw("failed to notify IDEs", "error", err)
	}
}

func (c *controller) RestartProject(ctx context.Context, projectFile string) error {
	client, err := c.projects.Delete(ctx, projectFile)
	if err != nil {
		return err
	}
	c.logger.Infow("restarting nimsuggest client", "project", projectFile)
	c.stats.Counter("restarts").Inc(1)
	return client.Stop(ctx)
}

func (c *controller) StopAll(ctx context.Context) error {
	var err error
	for _, client := range c.projects.All(ctx) {
		if _, delErr := c.projects.Delete(ctx, client.ProjectFile()); delErr != nil {
			err = multierr.Append(err, delErr)
			continue
		}
		err = multierr.Append(err, client.Stop(ctx))
	}
	return err
}

func (c *controller) watch(projectFile string) {
	if c.watcher == nil {
		return
	}
	dir := filepath.Dir(projectFile)

	c.watchMu.Lock()
	defer c.watchMu.Unlock()

	projects, ok := c.watched[dir]
	if !ok {
		if err := c.watcher.Add(dir); err != nil {
			c.logger.Warnw("failed to watch project directory", "dir", dir, "error", err)
			return
		}
		projects = make(map[string]bool)
		c.watched[dir] = projects
	}
	projects[projectFile] = true
}

func (c *controller) projectsIn(dir string) []string {
	c.watchMu.Lock()
	defer c.watchMu.Unlock()

	var files []string
	for f := range c.watched[dir] {
		files = append(files, f)
	}
	return files
}

func isProjectConfigEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return _projectConfigExts[filepath.Ext(event.Name)]
}

// handleDebounce collapses bursts of events on one directory into a single restart.
func (c *controller) handleDebounce(event fsnotify.Event) {
	dir := filepath.Dir(event.Name)

	c.debounceMu.Lock()
	defer c.debounceMu.Unlock()

	if timer, exists := c.debounceTimers[dir]; exists {
		timer.Stop()
	}
	c.debounceTimers[dir] = time.AfterFunc(c.debounceTimeout, func() {
		c.debounceMu.Lock()
		delete(c.debounceTimers, dir)
		c.debounceMu.Unlock()

		c.restartDir(dir, event.Name)
	})
}

func (c *controller) restartDir(dir string, changed string) {
	ctx, cancel := context.WithTimeout(context.Background(), _stopTimeout)
	defer cancel()

	for _, projectFile := range c.projectsIn(dir) {
		err := c.RestartProject(ctx, projectFile)
		if err != nil && !errors.IsNotFound(err) {
			c.logger.Warnw("failed to restart nimsuggest client", "project", projectFile, "changed", changed, "error", err)
		}
	}
}

func (c *controller) handleChanges(closer chan bool) {
	defer close(c.watchDone)
	if c.watcher == nil {
		c.logger.Info("project configuration watching disabled")
		<-closer
		return
	}

	for {
		select {
		case event := <-c.watcher.Events:
			if !isProjectConfigEvent(event) {
				continue
			}
			c.handleDebounce(event)
		case err := <-c.watcher.Errors:
			c.logger.Warnf("Failure in project configuration watcher: %v", err)
		case <-closer:
			c.debounceMu.Lock()
			for _, timer := range c.debounceTimers {
				timer.Stop()
			}
			c.debounceTimers = make(map[string]*time.Timer)
			c.debounceMu.Unlock()

			if err := c.watcher.Close(); err != nil {
				c.logger.Warnf("Failed to close project configuration watcher: %v", err)
			}
			return
		}
	}
}

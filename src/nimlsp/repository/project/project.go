// Package project holds the analyzer client of every project, keyed by canonical project file path.
package project

import (
	"context"
	"sort"
	"sync"

	"github.com/uber-go/tally"
	"github.com/uber/nimlsp/src/nimlsp/internal/errors"
	"github.com/uber/nimlsp/src/nimlsp/internal/nimsuggest"
)

// Factory constructs the client of a project file.
type Factory func(projectFile string) nimsuggest.Client

// Repository enforces at most one live client per project file.
type Repository interface {
	// GetOrCreate returns the client of projectFile, constructing it with factory when none exists
	// or when the existing one has stopped for good. created reports whether factory was called.
	GetOrCreate(ctx context.Context, projectFile string, factory Factory) (client nimsuggest.Client, created bool)
	// Delete removes the client of projectFile and returns it so the caller can stop it.
	Delete(ctx context.Context, projectFile string) (nimsuggest.Client, error)
	All(ctx context.Context) []nimsuggest.Client
	Count(ctx context.Context) int
}

type repository struct {
	mu      sync.Mutex
	clients map[string]nimsuggest.Client
	stats   tally.Scope
}

// New returns an empty project Repository.
func New(stats tally.Scope) Repository {
	return &repository{
		clients: make(map[string]nimsuggest.Client),
		stats:   stats,
	}
}

func (r *repository) GetOrCreate(ctx context.Context, projectFile string, factory Factory) (nimsuggest.Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[projectFile]; ok && !c.State().Terminal() {
		return c, false
	}

	c := factory(projectFile)
	r.clients[projectFile] = c
	r.updateGauge()
	return c, true
}

func (r *repository) Delete(ctx context.Context, projectFile string) (nimsuggest.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[projectFile]
	if !ok {
		return nil, &errors.ProjectNotFoundError{ProjectFile: projectFile}
	}
	delete(r.clients, projectFile)
	r.updateGauge()
	return c, nil
}

// All returns the clients ordered by project file.
func (r *repository) All(ctx context.Context) []nimsuggest.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.clients))
	for k := range r.clients {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	all := make([]nimsuggest.Client, 0, len(keys))
	for _, k := range keys {
		all = append(all, r.clients[k])
	}
	return all
}

func (r *repository) Count(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.clients)
}

func (r *repository) updateGauge() {
	r.stats.Gauge("active_clients").Update(float64(len(r.clients)))
}

// Package mainthread provides the single goroutine on which all query callbacks run.
// Background workers never call back into caller code directly, they hand results to a Scheduler.
package mainthread

import (
	"context"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides a Scheduler whose loop lives for the duration of the fx application.
var Module = fx.Provide(New)

// Scheduler runs functions on a single goroutine, one at a time, in the order they were scheduled.
type Scheduler interface {
	// Schedule queues fn without blocking the caller.
	// Functions scheduled after the loop stopped run right away on the caller's goroutine.
	Schedule(fn func())
}

// Loop is a Scheduler backed by an unbounded FIFO and one goroutine.
type Loop struct {
	logger *zap.SugaredLogger

	mu      sync.Mutex
	pending []func()
	started bool
	closed  bool
	wake    chan struct{}
	done    chan struct{}
}

// Params define values to be used by the scheduler loop.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
}

// New creates a Scheduler that starts and stops with the application.
func New(p Params) Scheduler {
	l := NewLoop(p.Logger)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			l.Start()
			return nil
		},
		OnStop: l.Stop,
	})
	return l
}

// NewLoop creates a loop that has not been started.
func NewLoop(logger *zap.SugaredLogger) *Loop {
	return &Loop{
		logger: logger.With("plugin", "mainthread"),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Start begins running scheduled functions. Starting twice or after Stop does nothing.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started || l.closed {
		return
	}
	l.started = true
	go l.run()
}

// Schedule implements Scheduler.
func (l *Loop) Schedule(fn func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.logger.Warn("callback scheduled after shutdown, running it inline")
		l.invoke(fn)
		return
	}
	l.pending = append(l.pending, fn)
	select {
	case l.wake <- struct{}{}:
	default:
	}
	l.mu.Unlock()
}

// Stop runs every function already scheduled, then ends the loop.
// A loop that was never started runs them on the caller's goroutine.
func (l *Loop) Stop(ctx context.Context) error {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.wake)
	}
	started := l.started
	l.mu.Unlock()

	if !started {
		for _, fn := range l.take() {
			l.invoke(fn)
		}
		return nil
	}

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		_, open := <-l.wake
		for _, fn := range l.take() {
			l.invoke(fn)
		}
		if !open {
			return
		}
	}
}

func (l *Loop) take() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fns := l.pending
	l.pending = nil
	return fns
}

func (l *Loop) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Errorw("callback panicked", "panic", r)
		}
	}()
	fn()
}

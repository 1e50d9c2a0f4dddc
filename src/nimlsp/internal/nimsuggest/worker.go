package nimsuggest

import (
	"sync"
	"time"

	"github.com/uber/nimlsp/src/nimlsp/entity"
	"github.com/uber/nimlsp/src/nimlsp/internal/wire"
)

// State is the lifecycle state of a client's worker.
type State int32

// Worker states. A client only ever moves forward through them.
const (
	StateIdle State = iota
	StateRunning
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Terminal reports whether a client in this state will never serve another request.
func (s State) Terminal() bool {
	return s == StateDraining || s == StateStopped
}

// run is the worker loop. It is the only goroutine that talks to the analyzer process.
func (c *client) run() {
	defer close(c.done)
	c.logger.Infow("worker started")

	for {
		req, ok := c.queue.dequeue()
		if !ok {
			break
		}
		if !c.serve(req) {
			break
		}
	}

	c.setState(StateDraining)
	pending := c.queue.drain()
	for _, req := range pending {
		c.fail(req)
	}
	c.supervisor.shutdown()
	c.setState(StateStopped)
	c.logger.Infow("worker stopped", "drained", len(pending))
}

// serve handles a single request. It returns false once the failure budget is spent.
func (c *client) serve(req request) bool {
	h, ok := c.supervisor.ensureAlive()
	if !ok {
		c.fail(req)
		if c.supervisor.failures >= c.maxFailures {
			c.exhausted()
			return false
		}
		return true
	}

	var deadline *responseDeadline
	if c.responseTimeout > 0 {
		deadline = newResponseDeadline(c.responseTimeout, func() {
			c.logger.Warnw("nimsuggest did not answer in time, killing it", "verb", req.verb, "timeout", c.responseTimeout)
			c.supervisor.kill(h)
		})
	}
	raw, complete := h.query(req.payload)
	deadline.answered()

	resp := entity.Response{Raw: raw, Complete: complete}
	if complete {
		resp.Records = wire.Decode(raw)
	} else {
		c.stats.Counter("incomplete_responses").Inc(1)
		c.logger.Warnw("nimsuggest died mid-response", "verb", req.verb, "raw", string(raw))
		c.supervisor.kill(h)
	}
	c.deliver(req.cb, resp)
	return true
}

// exhausted marks the client as permanently stopped and emits the single budget notification.
func (c *client) exhausted() {
	c.queue.stop()
	failures := c.supervisor.failures
	c.stats.Counter("budget_exhausted").Inc(1)
	c.logger.Errorw("nimsuggest failed to start too many times, giving up", "failures", failures)
	if c.onExhausted != nil {
		c.scheduler.Schedule(func() { c.onExhausted(c.projectFile, failures) })
	}
}

// fail answers req with the null response.
func (c *client) fail(req request) {
	c.stats.Counter("failed_requests").Inc(1)
	c.deliver(req.cb, entity.Response{})
}

// deliver hands resp to the scheduler. Callbacks never run on the worker goroutine.
func (c *client) deliver(cb entity.Callback, resp entity.Response) {
	if cb == nil {
		return
	}
	c.scheduler.Schedule(func() { cb(resp) })
}

// responseDeadline runs onExpire once the timeout elapses unless the response was read first.
type responseDeadline struct {
	mu       sync.Mutex
	done     bool
	timer    *time.Timer
	onExpire func()
}

func newResponseDeadline(timeout time.Duration, onExpire func()) *responseDeadline {
	d := &responseDeadline{onExpire: onExpire}
	d.timer = time.AfterFunc(timeout, d.expire)
	return d
}

func (d *responseDeadline) expire() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		return
	}
	d.done = true
	d.onExpire()
}

// answered disarms the deadline. A nil deadline is a no-op.
func (d *responseDeadline) answered() {
	if d == nil {
		return
	}
	d.mu.Lock()
	d.done = true
	d.mu.Unlock()
	d.timer.Stop()
}

package nimsuggest

import (
	"sync"

	"github.com/uber/nimlsp/src/nimlsp/entity"
)

// request is an encoded query and the callback that receives its response.
type request struct {
	verb    entity.Verb
	payload []byte
	cb      entity.Callback
}

// requestQueue is an unbounded FIFO with many producers and the worker as its only consumer.
// Stopping it acts as a sentinel that is delivered ahead of any queued request.
type requestQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	items   []request
	stopped bool
}

func newRequestQueue() *requestQueue {
	q := &requestQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// enqueue appends r without blocking. It returns false once the queue has been stopped.
func (q *requestQueue) enqueue(r request) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return false
	}
	q.items = append(q.items, r)
	q.cond.Signal()
	return true
}

// dequeue blocks until a request is available. It returns false when the stop sentinel is received.
func (q *requestQueue) dequeue() (request, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.stopped {
		q.cond.Wait()
	}
	if q.stopped {
		return request{}, false
	}
	r := q.items[0]
	q.items[0] = request{}
	q.items = q.items[1:]
	return r, true
}

// stop delivers the sentinel. Later calls to enqueue are rejected.
func (q *requestQueue) stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopped = true
	q.cond.Broadcast()
}

// drain removes and returns every request still queued, oldest first.
func (q *requestQueue) drain() []request {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

func (q *requestQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

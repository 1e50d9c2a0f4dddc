package nimsuggest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/nimlsp/src/nimlsp/entity"
)

func TestRequestQueue(t *testing.T) {
	t.Run("fifo", func(t *testing.T) {
		q := newRequestQueue()
		require.True(t, q.enqueue(request{verb: entity.VerbDefinition}))
		require.True(t, q.enqueue(request{verb: entity.VerbUsages}))
		assert.Equal(t, 2, q.len())

		r, ok := q.dequeue()
		require.True(t, ok)
		assert.Equal(t, entity.VerbDefinition, r.verb)
		r, ok = q.dequeue()
		require.True(t, ok)
		assert.Equal(t, entity.VerbUsages, r.verb)
		assert.Zero(t, q.len())
	})

	t.Run("dequeue blocks until enqueue", func(t *testing.T) {
		q := newRequestQueue()
		got := make(chan entity.Verb)
		go func() {
			r, _ := q.dequeue()
			got <- r.verb
		}()

		select {
		case <-got:
			t.Fatal("dequeue returned on an empty queue")
		case <-time.After(20 * time.Millisecond):
		}
		q.enqueue(request{verb: entity.VerbOutline})
		assert.Equal(t, entity.VerbOutline, <-got)
	})

	t.Run("stop takes priority over queued requests", func(t *testing.T) {
		q := newRequestQueue()
		q.enqueue(request{verb: entity.VerbDefinition})
		q.enqueue(request{verb: entity.VerbContext})
		q.stop()

		_, ok := q.dequeue()
		assert.False(t, ok)
		assert.False(t, q.enqueue(request{verb: entity.VerbHighlight}))

		drained := q.drain()
		require.Len(t, drained, 2)
		assert.Equal(t, entity.VerbDefinition, drained[0].verb)
		assert.Equal(t, entity.VerbContext, drained[1].verb)
		assert.Empty(t, q.drain())
	})

	t.Run("stop wakes a blocked consumer", func(t *testing.T) {
		q := newRequestQueue()
		done := make(chan bool)
		go func() {
			_, ok := q.dequeue()
			done <- ok
		}()
		q.stop()
		assert.False(t, <-done)
	})
}

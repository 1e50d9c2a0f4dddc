package project

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/nimlsp/src/nimlsp/internal/errors"
	"github.com/uber/nimlsp/src/nimlsp/internal/nimsuggest"
	"github.com/uber/nimlsp/src/nimlsp/internal/nimsuggest/nimsuggestmock"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	stats := tally.NewTestScope("", nil)
	repo := New(stats)

	first := nimsuggestmock.NewMockClient(ctrl)
	calls := 0
	factory := func(c nimsuggest.Client) Factory {
		return func(projectFile string) nimsuggest.Client {
			calls++
			assert.Equal(t, "/src/app.nim", projectFile)
			return c
		}
	}

	got, created := repo.GetOrCreate(ctx, "/src/app.nim", factory(first))
	assert.True(t, created)
	assert.Same(t, first, got)

	t.Run("live client is reused", func(t *testing.T) {
		first.EXPECT().State().Return(nimsuggest.StateRunning)
		got, created := repo.GetOrCreate(ctx, "/src/app.nim", factory(nil))
		assert.False(t, created)
		assert.Same(t, first, got)
		assert.Equal(t, 1, calls)
	})

	t.Run("stopped client is replaced", func(t *testing.T) {
		second := nimsuggestmock.NewMockClient(ctrl)
		first.EXPECT().State().Return(nimsuggest.StateStopped)
		got, created := repo.GetOrCreate(ctx, "/src/app.nim", factory(second))
		assert.True(t, created)
		assert.Same(t, second, got)
		assert.Equal(t, 1, repo.Count(ctx))
	})

	assert.Equal(t, float64(1), stats.Snapshot().Gauges()["active_clients+"].Value())
}

func TestGetOrCreateIsExclusive(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := New(tally.NoopScope)

	c := nimsuggestmock.NewMockClient(ctrl)
	c.EXPECT().State().Return(nimsuggest.StateIdle).AnyTimes()

	var (
		mu    sync.Mutex
		calls int
		wg    sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.GetOrCreate(ctx, "/src/app.nim", func(string) nimsuggest.Client {
				mu.Lock()
				calls++
				mu.Unlock()
				return c
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	stats := tally.NewTestScope("", nil)
	repo := New(stats)

	_, err := repo.Delete(ctx, "/src/app.nim")
	var nf *errors.ProjectNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "/src/app.nim", nf.ProjectFile)

	a := nimsuggestmock.NewMockClient(ctrl)
	b := nimsuggestmock.NewMockClient(ctrl)
	repo.GetOrCreate(ctx, "/src/b.nim", func(string) nimsuggest.Client { return b })
	repo.GetOrCreate(ctx, "/src/a.nim", func(string) nimsuggest.Client { return a })

	all := repo.All(ctx)
	require.Len(t, all, 2)
	assert.Same(t, a, all[0])
	assert.Same(t, b, all[1])

	removed, err := repo.Delete(ctx, "/src/a.nim")
	require.NoError(t, err)
	assert.Same(t, a, removed)
	assert.Equal(t, 1, repo.Count(ctx))
	assert.Equal(t, float64(1), stats.Snapshot().Gauges()["active_clients+"].Value())

	_, err = repo.Delete(ctx, "/src/a.nim")
	assert.True(t, errors.IsNotFound(err))
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

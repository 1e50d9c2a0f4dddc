package mapper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	"github.com/uber/nimlsp/src/nimlsp/factory"
	"github.com/uber/nimlsp/src/nimlsp/internal/errors"
	"go.lsp.dev/protocol"
)

func TestSessionModelRoundTrip(t *testing.T) {
	s := &entity.Session{
		UUID:             factory.UUID(),
		InitializeParams: &protocol.InitializeParams{ProcessID: 12},
		ProjectFile:      "/src/app.nim",
		RootPath:         "/src",
	}
	got, err := ModelToSession(SessionToModel(s))
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestUUIDToSession(t *testing.T) {
	id := factory.UUID()
	s := UUIDToSession(id, nil)
	assert.Equal(t, id, s.UUID)
	assert.False(t, s.Initialized())
}

func TestContextToSessionUUID(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		id := factory.UUID()
		got, err := ContextToSessionUUID(context.WithValue(context.Background(), entity.SessionContextKey, id))
		assert.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ContextToSessionUUID(context.Background())
		assert.ErrorIs(t, err, errors.NoSessionError)
	})
}

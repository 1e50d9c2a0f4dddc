package nimlspdaemon

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/nimlsp/src/nimlsp/controller/nimlsp-daemon/nimlspdaemonmock"
	"github.com/uber/nimlsp/src/nimlsp/factory"
	"github.com/uber/nimlsp/src/nimlsp/internal/jsonrpcfx"
	"github.com/uber/nimlsp/src/nimlsp/internal/jsonrpcfx/jsonrpcfxmock"
	"github.com/uber/nimlsp/src/nimlsp/internal/mock/jsonrpc2mock"
	"github.com/uber/nimlsp/src/nimlsp/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := nimlspdaemonmock.NewMockController(ctrl)

	t.Run("registers with the listener", func(t *testing.T) {
		jsonRPCMock := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)
		var registered jsonrpcfx.ConnectionManager
		jsonRPCMock.EXPECT().RegisterConnectionManager(gomock.Any()).DoAndReturn(func(m jsonrpcfx.ConnectionManager) error {
			registered = m
			return nil
		})

		h, err := New(c, jsonRPCMock, tally.NewTestScope("testing", nil))
		require.NoError(t, err)
		assert.Same(t, h, registered)
	})

	t.Run("registration failure", func(t *testing.T) {
		jsonRPCMock := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)
		jsonRPCMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(errors.New("already registered"))

		_, err := New(c, jsonRPCMock, tally.NewTestScope("testing", nil))
		assert.ErrorContains(t, err, "already registered")
	})
}

func TestNewConnection(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	c := nimlspdaemonmock.NewMockController(ctrl)
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))

	mgr := jsonRPCConnectionManager{
		stats: testScope,
		ctrl:  c,
	}

	mockConn := jsonrpc2mock.NewMockConn(ctrl)
	var conn jsonrpc2.Conn = mockConn

	t.Run("create success", func(t *testing.T) {
		id := factory.UUID()
		c.EXPECT().InitSession(gomock.Any(), &conn).Return(id, nil)
		router, err := mgr.NewConnection(ctx, &conn)
		assert.NoError(t, err)
		assert.IsType(t, &jsonRPCRouter{}, router)
		assert.Equal(t, id, router.UUID())
		assert.Equal(t, int64(1), testScope.Snapshot().Counters()["testing.connections+"].Value())
	})

	t.Run("create failure", func(t *testing.T) {
		c.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("error"))
		_, err := mgr.NewConnection(ctx, &conn)
		assert.Error(t, err)
	})
}

func TestRemoveConnection(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	c := nimlspdaemonmock.NewMockController(ctrl)
	id := factory.UUID()
	c.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(id, nil)
	c.EXPECT().EndSession(gomock.Any(), id).Do(func(ctx context.Context, id uuid.UUID) error {
		resultID, err := mapper.ContextToSessionUUID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, id, resultID)
		return nil
	})

	mgr := jsonRPCConnectionManager{
		stats: tally.NewTestScope("testing", nil),
		ctrl:  c,
	}

	mockConn := jsonrpc2mock.NewMockConn(ctrl)
	var conn jsonrpc2.Conn = mockConn
	router, err := mgr.NewConnection(ctx, &conn)
	require.NoError(t, err)

	mgr.RemoveConnection(ctx, router.UUID())
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newMockReplier() jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		return err
	}
}

type recordedReply struct {
	calls  int
	result interface{}
	err    error
}

func (r *recordedReply) replier() jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		r.calls++
		r.result = result
		r.err = err
		return nil
	}
}

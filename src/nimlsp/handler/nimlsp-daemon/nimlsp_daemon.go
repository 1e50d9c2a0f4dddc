// Package nimlspdaemon implements the nimlsp-daemon JSON-RPC handlers.
package nimlspdaemon

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	controller "github.com/uber/nimlsp/src/nimlsp/controller/nimlsp-daemon"
	"github.com/uber/nimlsp/src/nimlsp/entity"
	"github.com/uber/nimlsp/src/nimlsp/internal/jsonrpcfx"
	"go.lsp.dev/jsonrpc2"
)

// Handler accepts IDE connections on behalf of the JSON-RPC listener.
type Handler interface {
	jsonrpcfx.ConnectionManager
}

// New constructs a new nimlsp-daemon Handler and registers it with the listener.
func New(ctrl controller.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, stats tally.Scope) (Handler, error) {
	c := &jsonRPCConnectionManager{
		ctrl:  ctrl,
		stats: stats.SubScope("json_rpc"),
	}
	if err := jsonrpcmod.RegisterConnectionManager(c); err != nil {
		return nil, fmt.Errorf("registering connection manager: %w", err)
	}
	return c, nil
}

type jsonRPCConnectionManager struct {
	ctrl  controller.Controller
	stats tally.Scope
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router jsonrpcfx.Router, err error) {
	id, err := c.ctrl.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}
	c.stats.Counter("connections").Inc(1)

	return &jsonRPCRouter{
		nimlspdaemon: c.ctrl,
		uuid:         id,
		stats:        c.stats,
	}, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure session is removed even if no Exit call has been received.
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.ctrl.EndSession(ctx, id)
}

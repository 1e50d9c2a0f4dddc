package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type sessionContextKeyType string

// SessionContextKey is the context key holding the UUID of the IDE connection a request arrived on.
const SessionContextKey sessionContextKeyType = "SessionUUID"

// Session is a single IDE connection.
type Session struct {
	UUID             uuid.UUID
	InitializeParams *protocol.InitializeParams
	Conn             *jsonrpc2.Conn
	// ProjectFile is the project requested by the IDE through initializationOptions, if any.
	ProjectFile string
	// RootPath is the first workspace folder reported at initialize.
	RootPath string
}

// Initialized reports whether the IDE has sent initialize on this connection.
func (s *Session) Initialized() bool {
	return s.InitializeParams != nil
}

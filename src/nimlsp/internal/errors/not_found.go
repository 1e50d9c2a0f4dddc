package errors

import (
	stderr "errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"go.lsp.dev/protocol"
)

// ExecutableNotFoundError indicates that a configured tool could not be resolved to a runnable file.
type ExecutableNotFoundError struct {
	// Setting is the configuration key the value came from.
	Setting string
	Value   string
	Tried   []string
}

// Error is an implementation of the error interface.
func (n *ExecutableNotFoundError) Error() string {
	if len(n.Tried) == 0 {
		return fmt.Sprintf("%s executable %q could not be found", n.Setting, n.Value)
	}
	return fmt.Sprintf("%s executable %q could not be found (tried %s)", n.Setting, n.Value, strings.Join(n.Tried, ", "))
}

// NotFoundExecutable returns the missing setting value and true if ExecutableNotFoundError is part of the error chain.
func NotFoundExecutable(e error) (setting string, value string, ok bool) {
	var nf *ExecutableNotFoundError
	if !stderr.As(e, &nf) {
		return "", "", false
	}
	return nf.Setting, nf.Value, true
}

// ProjectNotFoundError indicates that no analyzer client exists for a project.
type ProjectNotFoundError struct {
	ProjectFile string
}

// Error is an implementation of the error interface.
func (n *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q not found", n.ProjectFile)
}

// DocumentNotFoundError indicates that a document is not open.
type DocumentNotFoundError struct {
	Document protocol.TextDocumentIdentifier
}

// Error is an implementation of the error interface.
func (n *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document %q not found", n.Document.URI)
}

// UUIDNotFoundError indicates that no session exists for an id.
type UUIDNotFoundError struct {
	UUID uuid.UUID
}

// Error is an implementation of the error interface.
func (n *UUIDNotFoundError) Error() string {
	return fmt.Sprintf("session %q not found", n.UUID)
}

// IsNotFound reports whether the error chain holds any of the not found errors of this package.
func IsNotFound(e error) bool {
	var (
		exe *ExecutableNotFoundError
		prj *ProjectNotFoundError
		doc *DocumentNotFoundError
		ses *UUIDNotFoundError
	)
	return stderr.As(e, &exe) || stderr.As(e, &prj) || stderr.As(e, &doc) || stderr.As(e, &ses)
}

package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// NoSessionError reports that a request arrived outside of an IDE connection.
	NoSessionError = New("no session found in context")
	// NotInitializedError reports a request received before initialize.
	NotInitializedError = New("server not initialized")
)

// IsBadRequest reports whether the error is a bad request from the caller.
func IsBadRequest(e error) bool {
	return stderr.Is(e, NoSessionError) || stderr.Is(e, NotInitializedError)
}

package errors

import "fmt"

// ClientStoppedError indicates that the analyzer of a project gave up and no longer answers queries.
type ClientStoppedError struct {
	ProjectFile string
	Failures    int
}

// Error is an implementation of the error interface.
func (c *ClientStoppedError) Error() string {
	return fmt.Sprintf("nimsuggest for %q stopped after %d failed starts", c.ProjectFile, c.Failures)
}

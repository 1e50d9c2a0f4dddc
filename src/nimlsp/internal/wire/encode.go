// Package wire implements the nimsuggest line protocol: request encoding, response framing and decoding.
package wire

import (
	"fmt"

	"github.com/uber/nimlsp/src/nimlsp/entity"
)

// Encode formats a query as a single command line, including the trailing CRLF.
// Line and column are written as given. An empty overlay sends the query against the file on disk.
func Encode(verb entity.Verb, sourceFile, overlayFile string, line, column int) []byte {
	if overlayFile != "" {
		return []byte(fmt.Sprintf("%s\t\"%s\";\"%s\":%d:%d\r\n", verb, sourceFile, overlayFile, line, column))
	}
	return []byte(fmt.Sprintf("%s\t\"%s\":%d:%d\r\n", verb, sourceFile, line, column))
}

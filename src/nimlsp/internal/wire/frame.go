package wire

import (
	"bytes"
	"io"
)

var (
	_terminatorLF   = []byte("\n\n")
	_terminatorCRLF = []byte("\r\n\r\n")
)

// ReadResponse reads a single response, one byte at a time, until the blank line that ends it.
// The response length is unknown up front, so the tail of the buffer is checked after every byte.
// It reports false when the stream ended or failed before the terminator: the analyzer died mid-response
// and the returned bytes are partial output, useful only for diagnostics.
func ReadResponse(r io.ByteReader) ([]byte, bool) {
	var buf bytes.Buffer
	for {
		b, err := r.ReadByte()
		if err != nil {
			return buf.Bytes(), false
		}
		buf.WriteByte(b)
		if b == '\n' && terminated(buf.Bytes()) {
			return buf.Bytes(), true
		}
	}
}

func terminated(buf []byte) bool {
	return bytes.HasSuffix(buf, _terminatorLF) || bytes.HasSuffix(buf, _terminatorCRLF)
}

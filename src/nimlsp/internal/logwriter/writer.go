// Package logwriter adapts a zap logger to io.Writer so child process output lands in the daemon log.
package logwriter

import (
	"bytes"
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Writer logs every complete line written to it. A trailing partial line is held until its newline
// arrives or Flush is called.
type Writer struct {
	logger *zap.Logger
	level  zapcore.Level

	mu      sync.Mutex
	partial []byte
}

var _ io.Writer = (*Writer)(nil)

// New creates a Writer that logs at info level, tagging every line with keysAndValues.
func New(logger *zap.SugaredLogger, keysAndValues ...interface{}) *Writer {
	return NewWithLevel(logger, zapcore.InfoLevel, keysAndValues...)
}

// NewWithLevel creates a Writer that logs at the given level.
func NewWithLevel(logger *zap.SugaredLogger, level zapcore.Level, keysAndValues ...interface{}) *Writer {
	return &Writer{
		logger: logger.With(keysAndValues...).Desugar(),
		level:  level,
	}
}

// Write implements io.Writer. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data := append(w.partial, p...)
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		w.emit(data[:i])
		data = data[i+1:]
	}
	w.partial = append([]byte(nil), data...)
	return len(p), nil
}

// Flush logs any buffered partial line.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.emit(w.partial)
	w.partial = nil
}

func (w *Writer) emit(line []byte) {
	line = bytes.TrimRight(line, "\r")
	if len(line) == 0 {
		return
	}
	if ce := w.logger.Check(w.level, string(line)); ce != nil {
		ce.Write()
	}
}

package core

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/zap/zapcore"
)

func stringsReader(s string) io.Reader {
	return strings.NewReader(s)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name          string
		loggingConfig string
		expectedLevel zapcore.Level
		expectError   bool
	}{
		{
			name: "info level json encoding",
			loggingConfig: `
logging:
  level: info
  development: false
  encoding: json
  outputPaths:
    - stdout
`,
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name: "debug level console encoding",
			loggingConfig: `
logging:
  level: debug
  development: true
  encoding: console
`,
			expectedLevel: zapcore.DebugLevel,
		},
		{
			name: "error level default encoding",
			loggingConfig: `
logging:
  level: error
  outputPaths:
    - stderr
`,
			expectedLevel: zapcore.ErrorLevel,
		},
		{
			name: "invalid level",
			loggingConfig: `
logging:
  level: invalid
`,
			expectError: true,
		},
		{
			name: "unopenable output",
			loggingConfig: `
logging:
  level: info
  outputPaths:
    - /nonexistent/dir/nimlsp.log
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := config.NewYAML(config.Source(stringsReader(tt.loggingConfig)))
			require.NoError(t, err)

			sugar, err := NewSugaredLogger(provider)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, sugar)
				return
			}
			require.NoError(t, err)
			logger := NewLogger(sugar)
			assert.True(t, logger.Core().Enabled(tt.expectedLevel))
			if tt.expectedLevel > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.expectedLevel-1))
			}
		})
	}
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nimlsp.log")
	provider, err := config.NewYAML(config.Source(stringsReader("logging:\n  level: info\n  outputPaths:\n    - " + path + "\n")))
	require.NoError(t, err)

	sugar, err := NewSugaredLogger(provider)
	require.NoError(t, err)
	sugar.Infow("hello", "plugin", "test")
	require.NoError(t, sugar.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"hello"`)
	assert.Contains(t, string(content), `"plugin":"test"`)
}

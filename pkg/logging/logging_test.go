package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		enabled  []zapcore.Level
		disabled []zapcore.Level
	}{
		{
			name:     "quiet",
			enabled:  []zapcore.Level{zapcore.WarnLevel, zapcore.ErrorLevel},
			disabled: []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel},
		},
		{
			name:    "verbose",
			verbose: true,
			enabled: []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(tt.verbose, "codedump", "test")
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Same(t, logger, Logger)
			assert.Same(t, logger, zap.L())

			for _, lvl := range tt.enabled {
				assert.True(t, logger.Core().Enabled(lvl), "level %s", lvl)
			}
			for _, lvl := range tt.disabled {
				assert.False(t, logger.Core().Enabled(lvl), "level %s", lvl)
			}
		})
	}
}

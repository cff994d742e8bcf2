package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New("WARN")
	require.NoError(t, err)
	assert.True(t, log.Desugar().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))

	_, err = New("loud")
	assert.Error(t, err)
}

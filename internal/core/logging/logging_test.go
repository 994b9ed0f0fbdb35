package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	release, err := New("catalog-pricing", "release")
	require.NoError(t, err)
	require.False(t, release.Core().Enabled(zapcore.DebugLevel))
	require.True(t, release.Core().Enabled(zapcore.InfoLevel))

	debug, err := New("catalog-pricing", "debug")
	require.NoError(t, err)
	require.True(t, debug.Core().Enabled(zapcore.DebugLevel))
}

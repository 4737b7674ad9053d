package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultLogIsUsable(t *testing.T) {
	require.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Debugln("message before Init")
	})
}

func TestInit(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	tests := []struct {
		level   string
		wantErr bool
	}{
		{level: "debug"},
		{level: "info"},
		{level: "warn"},
		{level: "error"},
		{level: "fatal"},
		{level: "verbose", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			err := Init(tc.level)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, Sync())
		})
	}
}

func TestInitSetsLevel(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	require.NoError(t, Init("warn"))

	assert.False(t, Log.Desugar().Core().Enabled(zap.InfoLevel))
	assert.True(t, Log.Desugar().Core().Enabled(zap.WarnLevel))
}

package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/w33/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"info":  zapcore.InfoLevel,
		"DEBUG": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"Error": zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("verbose")
	require.Error(t, err)
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w33.log")
	l, err := logging.New(logging.Config{Level: "debug", Format: logging.FormatJSON, OutputPaths: []string{path}})
	require.NoError(t, err)
	l.Debug("stage complete", zap.String("stage", "points"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"stage":"points"`)
	assert.Contains(t, string(data), `"msg":"stage complete"`)
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := logging.New(logging.Config{Format: "xml"})
	require.Error(t, err)
	_, err = logging.New(logging.Config{Level: "loud"})
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	l := logging.Nop()
	require.NotNil(t, l)
	l.Info("discarded")
}

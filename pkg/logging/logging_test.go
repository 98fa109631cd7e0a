package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestGetLogFilePath(t *testing.T) {
	stateDir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", stateDir)
	xdg.Reload()

	got := getLogFilePath()
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, filepath.Join(stateDir, "ezlink", "ezlink.log"), got)
}

func TestSetupLoggerWithOptions_WritesFileAndConsole(t *testing.T) {
	stateDir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", stateDir)
	xdg.Reload()

	original := log.Logger
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(originalLevel)
	})

	var console bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 1, File: true, MaxSizeMB: 1, Console: &console})

	logger := GetLogger("test")
	logger.Info().Str("source", "/tmp/a").Msg("link created")

	assert.Contains(t, console.String(), "link created")

	content, err := os.ReadFile(filepath.Join(stateDir, "ezlink", "ezlink.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"component":"test"`)
	assert.Contains(t, string(content), `"source":"/tmp/a"`)
}

func TestSetupLoggerWithOptions_ConsoleOnly(t *testing.T) {
	original := log.Logger
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(originalLevel)
	})

	var console bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 0, File: false, Console: &console})

	logger := GetLogger("test")
	logger.Info().Msg("hidden at warn level")
	logger.Warn().Msg("shown at warn level")

	out := console.String()
	assert.False(t, strings.Contains(out, "hidden at warn level"))
	assert.Contains(t, out, "shown at warn level")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	originalLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "merge")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"merge"`)
}

package logging

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// setStateHome points XDG_STATE_HOME at dir for the test. xdg caches
// the environment at init, so it must be reloaded both ways.
func setStateHome(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestSetupLoggerLevels(t *testing.T) {
	setStateHome(t, t.TempDir())

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel())
	}
}

func TestGetLogFilePath(t *testing.T) {
	stateHome := t.TempDir()
	setStateHome(t, stateHome)

	assert.Equal(t, filepath.Join(stateHome, "snowland", "snowland.log"), getLogFilePath())
}

func TestSetupLoggerWritesLogFile(t *testing.T) {
	stateHome := t.TempDir()
	setStateHome(t, stateHome)

	SetupLogger(1)
	log.Info().Msg("hello from the test")

	assert.FileExists(t, filepath.Join(stateHome, "snowland", "snowland.log"))
}

func TestSetupLogFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "snowland.log")

	f, err := setupLogFile(path)
	assert.NoError(t, err)
	if f != nil {
		_ = f.Close()
	}
	assert.FileExists(t, path)
}

func TestGetLoggerComponent(t *testing.T) {
	logger := GetLogger("assets.fonts")
	// Just verify we get a usable logger back
	logger.Debug().Msg("noop")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	origLogger := log.Logger
	origLevel := zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	}()

	LogDuration(time.Now().Add(-5*time.Millisecond), "download fonts")

	assert.Contains(t, buf.String(), "download fonts")
	assert.Contains(t, buf.String(), "duration")
}

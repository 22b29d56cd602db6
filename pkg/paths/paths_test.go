package paths

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaths(t *testing.T) (Paths, string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv(EnvStateFile, "")
	t.Setenv(EnvBackupDir, "")
	t.Setenv(EnvConfigDir, "")

	p, err := New()
	require.NoError(t, err)
	return p, home
}

func TestDefaults(t *testing.T) {
	p, home := newTestPaths(t)

	assert.Equal(t, home, p.Home())
	assert.Equal(t, filepath.Join(home, ".config"), p.ConfigRoot())
	assert.Equal(t, filepath.Join(home, ".config", "waybar"), p.ConfigDest("waybar"))
	assert.Equal(t, filepath.Join(home, ".config", "snowland", "snowland.toml"), p.UserConfigFile())
	assert.Equal(t, filepath.Join(home, ".local", "state", "snowland", "state"), p.StateFilePath())
	assert.Equal(t, filepath.Join(home, "snowland_backups"), p.BackupDir())
	assert.Equal(t, filepath.Join(home, ".local", "share", "fonts"), p.FontsDir())
	assert.Equal(t, filepath.Join(home, ".themes"), p.ThemesDir())
	assert.Equal(t, filepath.Join(home, ".local", "share", "icons"), p.IconsDir())
	assert.Equal(t, filepath.Join(home, ".config", "hypr", "hyprpaper.conf"), p.WallpaperConfigFile())
	assert.Equal(t, filepath.Join(home, "Pictures", "wallpapers", "snowland.png"), p.DefaultWallpaperPath())
}

func TestEnvOverrides(t *testing.T) {
	p, home := newTestPaths(t)

	t.Setenv(EnvStateFile, "~/custom/state")
	assert.Equal(t, filepath.Join(home, "custom", "state"), p.StateFilePath())

	t.Setenv(EnvBackupDir, "/tmp/backups")
	assert.Equal(t, "/tmp/backups", p.BackupDir())

	t.Setenv(EnvConfigDir, "/etc/snowland")
	assert.Equal(t, "/etc/snowland/snowland.toml", p.UserConfigFile())
}

func TestXDGOverrides(t *testing.T) {
	p, _ := newTestPaths(t)

	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	assert.Equal(t, "/xdg/config/fuzzel", p.ConfigDest("fuzzel"))

	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	assert.Equal(t, "/xdg/data/fonts", p.FontsDir())
	assert.Equal(t, "/xdg/data/icons", p.IconsDir())

	t.Setenv("XDG_STATE_HOME", "/xdg/state")
	assert.Equal(t, "/xdg/state/snowland/state", p.StateFilePath())
}

func TestLogFilePath(t *testing.T) {
	p, _ := newTestPaths(t)

	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	want := filepath.Join(stateHome, "snowland", "snowland.log")
	assert.Equal(t, want, LogFile())
	assert.Equal(t, want, p.LogFilePath())
}

func TestBackupRoot(t *testing.T) {
	p, home := newTestPaths(t)

	ts := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	want := filepath.Join(home, "snowland_backups", "config_2025-01-02_15-04-05")
	assert.Equal(t, want, p.BackupRoot(ts))
}

func TestIsInsideHome(t *testing.T) {
	p, home := newTestPaths(t)

	assert.True(t, p.IsInsideHome(home))
	assert.True(t, p.IsInsideHome(filepath.Join(home, ".local", "share", "fonts")))
	assert.True(t, p.IsInsideHome("~/.themes"))
	assert.False(t, p.IsInsideHome("/usr/share/fonts"))
	assert.False(t, p.IsInsideHome(filepath.Join(home, "..")))
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/u", ExpandHome("~", "/home/u"))
	assert.Equal(t, "/home/u/x", ExpandHome("~/x", "/home/u"))
	assert.Equal(t, "/abs/x", ExpandHome("/abs/x", "/home/u"))
	assert.Equal(t, "rel/x", ExpandHome("rel/x", "/home/u"))
}

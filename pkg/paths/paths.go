// Package paths provides centralized path handling for snowland.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/snowland-wm/snowland/pkg/errors"
)

// Environment variable names
const (
	// EnvStateFile overrides the install-state file location
	EnvStateFile = "SNOWLAND_STATE_FILE"

	// EnvBackupDir overrides the backup root directory
	EnvBackupDir = "SNOWLAND_BACKUP_DIR"

	// EnvConfigDir overrides the snowland config directory
	EnvConfigDir = "SNOWLAND_CONFIG_DIR"
)

// Default directories and files
const (
	// SnowlandDirName is the directory name for snowland-specific files
	SnowlandDirName = "snowland"

	// BackupDirName is the backup directory name under the home directory
	BackupDirName = "snowland_backups"

	// BackupPrefix prefixes each per-run backup root
	BackupPrefix = "config_"

	// BackupTimeLayout is the second-resolution timestamp used in backup names
	BackupTimeLayout = "2006-01-02_15-04-05"

	// StateFileName is the install-state file name
	StateFileName = "state"

	// ConfigFileName is the user configuration file name
	ConfigFileName = "snowland.toml"

	// LogFileName is the name of the log file
	LogFileName = "snowland.log"
)

// Paths provides centralized path management for snowland
type Paths interface {
	Home() string
	ConfigRoot() string
	ConfigDest(name string) string
	SnowlandConfigDir() string
	UserConfigFile() string
	StateFilePath() string
	BackupDir() string
	BackupRoot(ts time.Time) string
	FontsDir() string
	ThemesDir() string
	IconsDir() string
	WallpaperConfigFile() string
	DefaultWallpaperPath() string
	LogFilePath() string
	IsInsideHome(path string) bool
}

type paths struct {
	home string
}

// New creates a new Paths instance rooted at the current user's home
// directory.
func New() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot determine home directory")
	}
	return &paths{home: home}, nil
}

func (p *paths) Home() string {
	return p.home
}

// ConfigRoot returns the user config root, usually ~/.config.
func (p *paths) ConfigRoot() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(p.home, ".config")
}

// ConfigDest returns the destination for a named config directory,
// e.g. ConfigDest("waybar") -> ~/.config/waybar.
func (p *paths) ConfigDest(name string) string {
	return filepath.Join(p.ConfigRoot(), name)
}

// SnowlandConfigDir returns the directory holding snowland.toml.
// SNOWLAND_CONFIG_DIR overrides the XDG default.
func (p *paths) SnowlandConfigDir() string {
	if v := os.Getenv(EnvConfigDir); v != "" {
		return ExpandHome(v, p.home)
	}
	return filepath.Join(p.ConfigRoot(), SnowlandDirName)
}

func (p *paths) UserConfigFile() string {
	return filepath.Join(p.SnowlandConfigDir(), ConfigFileName)
}

// StateFilePath returns the install-state file location.
// SNOWLAND_STATE_FILE overrides the XDG state default.
func (p *paths) StateFilePath() string {
	if v := os.Getenv(EnvStateFile); v != "" {
		return ExpandHome(v, p.home)
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return filepath.Join(v, SnowlandDirName, StateFileName)
	}
	return filepath.Join(p.home, ".local", "state", SnowlandDirName, StateFileName)
}

// BackupDir returns the directory holding all per-run backup roots.
func (p *paths) BackupDir() string {
	if v := os.Getenv(EnvBackupDir); v != "" {
		return ExpandHome(v, p.home)
	}
	return filepath.Join(p.home, BackupDirName)
}

// BackupRoot returns the per-run backup root for the given timestamp,
// e.g. ~/snowland_backups/config_2025-01-02_15-04-05.
func (p *paths) BackupRoot(ts time.Time) string {
	return filepath.Join(p.BackupDir(), BackupPrefix+ts.Format(BackupTimeLayout))
}

// FontsDir returns the user font directory, ~/.local/share/fonts.
func (p *paths) FontsDir() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "fonts")
	}
	return filepath.Join(p.home, ".local", "share", "fonts")
}

// ThemesDir returns the user GTK theme directory, ~/.themes.
func (p *paths) ThemesDir() string {
	return filepath.Join(p.home, ".themes")
}

// IconsDir returns the user icon theme directory, ~/.local/share/icons.
func (p *paths) IconsDir() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return filepath.Join(v, "icons")
	}
	return filepath.Join(p.home, ".local", "share", "icons")
}

// WallpaperConfigFile returns the hyprpaper config consulted when
// resolving where the wallpaper should be installed.
func (p *paths) WallpaperConfigFile() string {
	return filepath.Join(p.ConfigRoot(), "hypr", "hyprpaper.conf")
}

// DefaultWallpaperPath is the fallback when no wallpaper config exists.
func (p *paths) DefaultWallpaperPath() string {
	return filepath.Join(p.home, "Pictures", "wallpapers", "snowland.png")
}

// LogFilePath returns the snowland log file location in the XDG state dir.
func (p *paths) LogFilePath() string {
	return LogFile()
}

// LogFile returns the snowland log file location in the XDG state dir.
// A package-level function because logging needs it before any Paths
// value exists. xdg reads the environment at init; tests that change
// XDG_STATE_HOME must call xdg.Reload first.
func LogFile() string {
	return filepath.Join(xdg.StateHome, SnowlandDirName, LogFileName)
}

// IsInsideHome reports whether path is inside the user's home directory.
// Asset installers refuse to write outside the home unless escalation is
// explicitly configured.
func (p *paths) IsInsideHome(path string) bool {
	abs, err := filepath.Abs(ExpandHome(path, p.home))
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(p.home, abs)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}

// ExpandHome expands a leading ~ or ~/ in path to the given home directory.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

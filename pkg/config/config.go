// Package config loads the snowland configuration.
//
// Configuration is layered: embedded defaults, then the user file at
// ~/.config/snowland/snowland.toml, then SNOWLAND_* environment variables.
package config

import (
	_ "embed"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/paths"
)

//go:embed snowland.toml
var defaultConfig []byte

// Config is the effective snowland configuration.
type Config struct {
	Install InstallConfig `koanf:"install" toml:"install"`
	Assets  AssetsConfig  `koanf:"assets" toml:"assets"`
	Updates UpdatesConfig `koanf:"updates" toml:"updates"`
	Menu    MenuConfig    `koanf:"menu" toml:"menu"`
}

// InstallConfig selects which bundled config directories get installed.
type InstallConfig struct {
	Items     []string `koanf:"items" toml:"items"`
	SourceDir string   `koanf:"source_dir" toml:"source_dir"`
}

// AssetsConfig configures the font/theme/wallpaper installers.
type AssetsConfig struct {
	EscalateIfOutsideHome bool            `koanf:"escalate_if_outside_home" toml:"escalate_if_outside_home"`
	Fonts                 FontConfig      `koanf:"fonts" toml:"fonts"`
	GtkTheme              ThemeConfig     `koanf:"gtk_theme" toml:"gtk_theme"`
	IconTheme             ThemeConfig     `koanf:"icon_theme" toml:"icon_theme"`
	Wallpaper             WallpaperConfig `koanf:"wallpaper" toml:"wallpaper"`
}

// FontConfig describes the font archive and which file types to install.
type FontConfig struct {
	URL        string   `koanf:"url" toml:"url"`
	Extensions []string `koanf:"extensions" toml:"extensions"`
	Target     string   `koanf:"target" toml:"target,omitempty"`
}

// ThemeConfig describes a theme archive: Dir is the expected path inside
// the extracted tree, Name the directory name it is installed under.
type ThemeConfig struct {
	URL    string `koanf:"url" toml:"url"`
	Dir    string `koanf:"dir" toml:"dir"`
	Name   string `koanf:"name" toml:"name"`
	Target string `koanf:"target" toml:"target,omitempty"`
}

// WallpaperConfig describes the wallpaper archive and the image inside it.
type WallpaperConfig struct {
	URL  string `koanf:"url" toml:"url"`
	File string `koanf:"file" toml:"file"`
}

// UpdatesConfig configures the Waybar update counter.
type UpdatesConfig struct {
	Primary    string   `koanf:"primary" toml:"primary"`
	AurHelpers []string `koanf:"aur_helpers" toml:"aur_helpers"`
}

// MenuConfig configures the Waybar menu dispatcher.
type MenuConfig struct {
	Pickers       []string `koanf:"pickers" toml:"pickers"`
	ScreenshotDir string   `koanf:"screenshot_dir" toml:"screenshot_dir"`
}

// Load returns the effective configuration: defaults, then the user
// file if present, then SNOWLAND_* environment variables.
func Load(p paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	userFile := p.UserConfigFile()
	if _, err := os.Stat(userFile); err == nil {
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", userFile)
		}
		logger.Debug().Str("path", userFile).Msg("Loaded user config")
	}

	// SNOWLAND_UPDATES_PRIMARY=paru -> updates.primary=paru
	if err := k.Load(env.Provider("SNOWLAND_", ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, "SNOWLAND_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}

// rawBytesProvider implements koanf.Provider over an in-memory byte slice
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}

package assets

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/filesystem"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/paths"
)

// InstallWallpaper downloads the wallpaper archive and places the
// configured image where the hyprpaper config expects it. An existing
// image at that path is kept as a timestamped sibling.
func (i *Installer) InstallWallpaper(cfg config.WallpaperConfig) error {
	return i.installWallpaperAt(cfg, time.Now())
}

func (i *Installer) installWallpaperAt(cfg config.WallpaperConfig, now time.Time) error {
	logger := logging.GetLogger("assets")
	dest := i.wallpaperDest()

	return i.withScratch(func(scratch string) error {
		extracted, err := i.fetchAndExtract(cfg.URL, scratch)
		if err != nil {
			return err
		}

		src := filepath.Join(extracted, filepath.FromSlash(cfg.File))
		if _, err := os.Stat(src); err != nil {
			return errors.Newf(errors.ErrAssetNotFound, "archive does not contain %s", cfg.File)
		}

		escalated, err := i.ensureTarget(filepath.Dir(dest))
		if err != nil {
			return err
		}

		if _, err := i.FileSystem.Lstat(dest); err == nil {
			sibling := timestampSuffix(dest, now)
			if err := i.FileSystem.Rename(dest, sibling); err != nil {
				return errors.Wrapf(err, errors.ErrBackupFailed, "failed to back up %s", dest)
			}
			logger.Info().Str("backup", sibling).Msg("Kept previous wallpaper")
		}

		if escalated {
			if err := i.place(src, dest, true); err != nil {
				return err
			}
		} else if err := filesystem.CopyFile(i.FileSystem, src, dest); err != nil {
			return err
		}

		logger.Info().Str("dest", dest).Msg("Installed wallpaper")
		return nil
	})
}

// wallpaperDest resolves where the wallpaper should live by reading the
// hyprpaper config; without one, a default under ~/Pictures is used.
func (i *Installer) wallpaperDest() string {
	confFile := i.Paths.WallpaperConfigFile()
	data, err := i.FileSystem.ReadFile(confFile)
	if err != nil {
		return i.Paths.DefaultWallpaperPath()
	}

	if path := parseHyprpaperWallpaper(string(data)); path != "" {
		return paths.ExpandHome(path, i.Paths.Home())
	}
	return i.Paths.DefaultWallpaperPath()
}

// parseHyprpaperWallpaper extracts the first wallpaper path from a
// hyprpaper config. "wallpaper = MON,path" lines win over "preload =
// path" lines.
func parseHyprpaperWallpaper(conf string) string {
	var preload string
	for _, line := range strings.Split(conf, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "wallpaper":
			// monitor,path; the monitor part may be empty
			if _, path, ok := strings.Cut(value, ","); ok {
				path = strings.TrimSpace(path)
				if path != "" {
					return path
				}
			}
		case "preload":
			if preload == "" && value != "" {
				preload = value
			}
		}
	}
	return preload
}

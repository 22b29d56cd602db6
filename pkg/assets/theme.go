package assets

import (
	"os"
	"path/filepath"

	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/logging"
)

// InstallGtkTheme installs the configured GTK theme under ~/.themes/<name>.
func (i *Installer) InstallGtkTheme(cfg config.ThemeConfig) error {
	return i.installTheme(cfg, i.resolveTarget(cfg.Target, i.Paths.ThemesDir()), "gtk theme")
}

// InstallIconTheme installs the configured icon theme under
// ~/.local/share/icons/<name>.
func (i *Installer) InstallIconTheme(cfg config.ThemeConfig) error {
	return i.installTheme(cfg, i.resolveTarget(cfg.Target, i.Paths.IconsDir()), "icon theme")
}

// installTheme downloads the archive, locates cfg.Dir inside the
// extracted tree and installs it as <target>/<cfg.Name>. Only a prior
// theme of the same name is replaced.
func (i *Installer) installTheme(cfg config.ThemeConfig, target, kind string) error {
	logger := logging.GetLogger("assets")

	return i.withScratch(func(scratch string) error {
		extracted, err := i.fetchAndExtract(cfg.URL, scratch)
		if err != nil {
			return err
		}

		themeDir := filepath.Join(extracted, filepath.FromSlash(cfg.Dir))
		if info, err := os.Stat(themeDir); err != nil || !info.IsDir() {
			return errors.Newf(errors.ErrAssetNotFound, "archive does not contain expected directory %s", cfg.Dir)
		}

		escalated, err := i.ensureTarget(target)
		if err != nil {
			return err
		}

		dst := filepath.Join(target, cfg.Name)
		if escalated {
			if err := i.Runner.Run("sudo", "rm", "-rf", dst); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove %s with sudo", dst)
			}
		} else if err := i.FileSystem.RemoveAll(dst); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to remove %s", dst)
		}

		if err := i.place(themeDir, dst, escalated); err != nil {
			return err
		}

		logger.Info().Str("name", cfg.Name).Str("target", dst).Msgf("Installed %s", kind)
		return nil
	})
}

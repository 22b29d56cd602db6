package assets

import (
	"path/filepath"

	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/filesystem"
	"github.com/snowland-wm/snowland/pkg/logging"
)

// InstallFonts downloads the configured font archive and installs every
// matching font file into the user font directory. Same-named files are
// replaced; other fonts already present are untouched. The font cache
// refresh is best effort.
func (i *Installer) InstallFonts(cfg config.FontConfig) error {
	logger := logging.GetLogger("assets")
	target := i.resolveTarget(cfg.Target, i.Paths.FontsDir())

	err := i.withScratch(func(scratch string) error {
		extracted, err := i.fetchAndExtract(cfg.URL, scratch)
		if err != nil {
			return err
		}

		fonts, err := findByExtensions(extracted, cfg.Extensions)
		if err != nil {
			return err
		}
		if len(fonts) == 0 {
			return errors.Newf(errors.ErrAssetNotFound, "no font files matching %v in archive", cfg.Extensions)
		}

		escalated, err := i.ensureTarget(target)
		if err != nil {
			return err
		}

		for _, font := range fonts {
			dst := filepath.Join(target, filepath.Base(font))
			if escalated {
				if err := i.place(font, dst, true); err != nil {
					return err
				}
				continue
			}
			if err := filesystem.CopyFile(i.FileSystem, font, dst); err != nil {
				return err
			}
		}

		logger.Info().Int("fonts", len(fonts)).Str("target", target).Msg("Installed fonts")
		return nil
	})
	if err != nil {
		return err
	}

	if err := i.Runner.Run("fc-cache", "-f"); err != nil {
		logger.Warn().Err(err).Msg("fc-cache refresh failed; fonts may need a re-login")
	}
	return nil
}

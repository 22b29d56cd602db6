// Package install implements the config-directory installer: back up any
// existing destination into the run's timestamped backup root, then
// replace it with the bundled version.
package install

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/snowland-wm/snowland/pkg/backup"
	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/filesystem"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/paths"
	"github.com/snowland-wm/snowland/pkg/types"
)

// Options holds options for the config-install command.
type Options struct {
	// Items are the config directories to install.
	Items []types.InstallItem
	// BackupDir is the directory holding per-run backup roots.
	BackupDir string
	// Now stamps the backup root; the zero value means time.Now().
	Now time.Time
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// ItemsFromConfig resolves the configured item names into InstallItems.
// baseDir anchors a relative source_dir (usually the snowland checkout).
func ItemsFromConfig(cfg config.InstallConfig, p paths.Paths, baseDir string) []types.InstallItem {
	sourceDir := cfg.SourceDir
	if !filepath.IsAbs(sourceDir) {
		sourceDir = filepath.Join(baseDir, sourceDir)
	}

	items := make([]types.InstallItem, 0, len(cfg.Items))
	for _, name := range cfg.Items {
		items = append(items, types.InstallItem{
			Name:   name,
			Source: filepath.Join(sourceDir, name),
			Dest:   p.ConfigDest(name),
		})
	}
	return items
}

// InstallConfigs installs every item, backing up pre-existing
// destinations into one timestamped backup root for this run.
//
// A missing bundled source skips that item with a warning; it never
// fails the run. Item order is immaterial.
func InstallConfigs(opts Options) (*types.InstallResult, error) {
	logger := logging.GetLogger("install")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	run := backup.NewRun(fs, opts.BackupDir, now, paths.BackupTimeLayout, paths.BackupPrefix)
	result := &types.InstallResult{}

	for _, item := range opts.Items {
		itemResult, err := installOne(fs, logger, run, item)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, itemResult)
	}

	if run.Created() {
		result.BackupRoot = run.Root()
	}

	logger.Info().
		Int("items", len(result.Items)).
		Str("backupRoot", result.BackupRoot).
		Msg("Config installation finished")
	return result, nil
}

func installOne(fs types.FS, logger zerolog.Logger, run *backup.Run, item types.InstallItem) (types.ItemResult, error) {
	result := types.ItemResult{Item: item}

	if _, err := fs.Stat(item.Source); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("item", item.Name).Str("source", item.Source).
				Msg("Bundled source missing, skipping item")
			result.Status = types.ItemSkipped
			return result, nil
		}
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", item.Source)
	}

	if _, err := fs.Lstat(item.Dest); err == nil {
		backupPath, err := run.Add(item.Name, item.Dest)
		if err != nil {
			return result, err
		}
		result.BackupPath = backupPath

		if err := fs.RemoveAll(item.Dest); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot remove %s", item.Dest)
		}
	}

	if err := filesystem.CopyDir(fs, item.Source, item.Dest); err != nil {
		return result, err
	}

	logger.Info().Str("item", item.Name).Str("dest", item.Dest).Msg("Installed config")
	result.Status = types.ItemInstalled
	return result, nil
}

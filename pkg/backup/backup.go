// Package backup creates the per-run timestamped backup root.
//
// One backup root exists per installer invocation; it is created lazily
// on the first destination that actually pre-exists, so declined or
// fresh installs leave no empty directories behind. Backups are never
// consulted programmatically afterward; restoration is manual.
package backup

import (
	"path/filepath"
	"time"

	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/filesystem"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/types"
)

// Run is one install run's backup root.
type Run struct {
	fs      types.FS
	root    string
	created bool
}

// NewRun prepares a backup root for this invocation. The timestamp has
// second resolution, which is collision-free with one root per run.
func NewRun(fs types.FS, backupDir string, now time.Time, layout, prefix string) *Run {
	return &Run{
		fs:   fs,
		root: filepath.Join(backupDir, prefix+now.Format(layout)),
	}
}

// Root returns the backup root path. It may not exist yet; see Created.
func (r *Run) Root() string {
	return r.root
}

// Created reports whether anything was backed up this run.
func (r *Run) Created() bool {
	return r.created
}

// Add copies src verbatim to <root>/<name>, creating the root on first
// use, and returns the backup path.
func (r *Run) Add(name, src string) (string, error) {
	logger := logging.GetLogger("backup")

	if !r.created {
		if err := r.fs.MkdirAll(r.root, 0755); err != nil {
			return "", errors.Wrapf(err, errors.ErrBackupFailed, "failed to create backup root %s", r.root)
		}
		r.created = true
		logger.Info().Str("root", r.root).Msg("Created backup root")
	}

	dst := filepath.Join(r.root, name)
	if err := filesystem.CopyDir(r.fs, src, dst); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupFailed, "failed to back up %s", src)
	}

	logger.Info().Str("from", src).Str("to", dst).Msg("Backed up existing config")
	return dst, nil
}

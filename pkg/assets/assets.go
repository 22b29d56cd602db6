// Package assets installs remote assets: fonts, GTK theme, icon theme
// and wallpaper. Each installer downloads an archive into a scratch
// directory, extracts it, filters the content and copies it into a
// user-level target. The scratch directory is removed on every exit
// path. A failing installer fails its own step only.
package assets

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/filesystem"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/paths"
	"github.com/snowland-wm/snowland/pkg/types"
)

// Installer holds the pieces shared by all asset installers.
type Installer struct {
	// Paths resolves the user-level target directories.
	Paths paths.Paths
	// Runner invokes fc-cache and, when escalation is enabled, sudo.
	Runner types.CommandRunner
	// Client fetches the remote archives.
	Client *http.Client
	// Escalate enables the privileged-copy branch for targets outside
	// the home directory. Off by default; the default target resolution
	// never leaves the home.
	Escalate bool
	// FileSystem allows injecting a filesystem for testing.
	FileSystem types.FS
}

// New creates an Installer with a download client using a sane timeout.
func New(p paths.Paths, runner types.CommandRunner) *Installer {
	return &Installer{
		Paths:      p,
		Runner:     runner,
		Client:     &http.Client{Timeout: 2 * time.Minute},
		FileSystem: filesystem.NewOS(),
	}
}

// withScratch runs fn with an exclusively-owned temporary directory that
// is removed when fn returns, successful or not.
func (i *Installer) withScratch(fn func(scratch string) error) error {
	scratch, err := os.MkdirTemp("", "snowland-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create scratch directory")
	}
	defer func() {
		_ = os.RemoveAll(scratch)
	}()

	return fn(scratch)
}

// download fetches url into dir and returns the local archive path.
func (i *Installer) download(url, dir string) (string, error) {
	logger := logging.GetLogger("assets")
	logger.Info().Str("url", url).Msg("Downloading archive")
	defer logging.LogDuration(time.Now(), "download "+url)

	resp, err := i.Client.Get(url)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDownloadFailed, "failed to fetch %s", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Newf(errors.ErrDownloadFailed, "fetching %s: HTTP %d", url, resp.StatusCode)
	}

	name := filepath.Base(strings.TrimSuffix(url, "/"))
	if name == "." || name == "/" {
		name = "archive"
	}
	dest := filepath.Join(dir, name)

	out, err := os.Create(dest)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to create %s", dest)
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", errors.Wrapf(err, errors.ErrDownloadFailed, "failed to save %s", url)
	}

	return dest, nil
}

// fetchAndExtract downloads url and extracts the archive under scratch,
// returning the extraction root.
func (i *Installer) fetchAndExtract(url, scratch string) (string, error) {
	archive, err := i.download(url, scratch)
	if err != nil {
		return "", err
	}

	extractDir := filepath.Join(scratch, "extracted")
	if err := os.MkdirAll(extractDir, 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrDirCreate, "failed to create extraction directory")
	}

	if err := Extract(archive, extractDir); err != nil {
		return "", err
	}
	return extractDir, nil
}

// ensureTarget creates the target directory, refusing targets outside
// the home directory unless escalation is enabled. It reports whether
// privileged copying must be used.
func (i *Installer) ensureTarget(target string) (escalated bool, err error) {
	if i.Paths.IsInsideHome(target) {
		if err := i.FileSystem.MkdirAll(target, 0755); err != nil {
			return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", target)
		}
		return false, nil
	}

	if !i.Escalate {
		return false, errors.Newf(errors.ErrPermission,
			"target %s is outside the home directory; set assets.escalate_if_outside_home to allow this", target)
	}

	if err := i.Runner.Run("sudo", "mkdir", "-p", target); err != nil {
		return true, errors.Wrapf(err, errors.ErrPermission, "failed to create %s with sudo", target)
	}
	return true, nil
}

// place copies src (file or directory) to dst, going through sudo when
// the target required escalation.
func (i *Installer) place(src, dst string, escalated bool) error {
	if escalated {
		if err := i.Runner.Run("sudo", "cp", "-r", src, dst); err != nil {
			return errors.Wrapf(err, errors.ErrFileCopy, "failed to copy %s with sudo", src)
		}
		return nil
	}
	return filesystem.CopyDir(i.FileSystem, src, dst)
}

// resolveTarget picks the configured override, expanded, or the default.
func (i *Installer) resolveTarget(override, def string) string {
	if override == "" {
		return def
	}
	return paths.ExpandHome(override, i.Paths.Home())
}

// findByExtensions walks root and returns all files matching one of the
// given extensions (case-insensitive).
func findByExtensions(root string, extensions []string) ([]string, error) {
	var matches []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range extensions {
			if ext == strings.ToLower(want) {
				matches = append(matches, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to scan %s", root)
	}
	return matches, nil
}

// timestampSuffix formats ts for sibling-file backups, preserving the
// original extension: wall.png -> wall_20250102-150405.png.
func timestampSuffix(path string, ts time.Time) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%s%s", stem, ts.Format("20060102-150405"), ext)
}

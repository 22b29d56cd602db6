package assets

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/snowland-wm/snowland/pkg/errors"
)

// Extract unpacks a .zip, .tar.gz or .tgz archive into dir. Entries that
// would escape dir are rejected.
func Extract(archive, dir string) error {
	switch {
	case strings.HasSuffix(archive, ".zip"):
		return extractZip(archive, dir)
	case strings.HasSuffix(archive, ".tar.gz"), strings.HasSuffix(archive, ".tgz"):
		return extractTarGz(archive, dir)
	default:
		return errors.Newf(errors.ErrExtractFailed, "unsupported archive format: %s", filepath.Base(archive))
	}
}

// safeJoin joins name under dir, refusing path traversal.
func safeJoin(dir, name string) (string, error) {
	dest := filepath.Join(dir, name)
	if !strings.HasPrefix(dest, filepath.Clean(dir)+string(os.PathSeparator)) {
		return "", errors.Newf(errors.ErrExtractFailed, "archive entry escapes extraction dir: %s", name)
	}
	return dest, nil
}

func extractZip(archive, dir string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return errors.Wrapf(err, errors.ErrExtractFailed, "failed to open %s", archive)
	}
	defer func() {
		_ = r.Close()
	}()

	for _, f := range r.File {
		dest, err := safeJoin(dir, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrExtractFailed, "failed to create %s", dest)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrExtractFailed, "failed to create %s", filepath.Dir(dest))
		}

		rc, err := f.Open()
		if err != nil {
			return errors.Wrapf(err, errors.ErrExtractFailed, "failed to read %s", f.Name)
		}
		err = writeEntry(dest, rc, f.Mode())
		_ = rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func extractTarGz(archive, dir string) error {
	f, err := os.Open(archive)
	if err != nil {
		return errors.Wrapf(err, errors.ErrExtractFailed, "failed to open %s", archive)
	}
	defer func() {
		_ = f.Close()
	}()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, errors.ErrExtractFailed, "failed to decompress %s", archive)
	}
	defer func() {
		_ = gz.Close()
	}()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, errors.ErrExtractFailed, "failed to read %s", archive)
		}

		dest, err := safeJoin(dir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dest, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrExtractFailed, "failed to create %s", dest)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrExtractFailed, "failed to create %s", filepath.Dir(dest))
			}
			if err := writeEntry(dest, tr, os.FileMode(hdr.Mode)); err != nil {
				return err
			}
		default:
			// symlinks and special files are not useful in font/theme
			// archives and are skipped
		}
	}
}

func writeEntry(dest string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrExtractFailed, "failed to create %s", dest)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrExtractFailed, "failed to write %s", dest)
	}
	return out.Close()
}

package filesystem

import (
	"path/filepath"

	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/types"
)

// CopyFile copies a single file, preserving its mode.
func CopyFile(fs types.FS, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}

	data, err := fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}

	if err := fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(dst))
	}

	if err := fs.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "cannot write %s", dst)
	}

	return nil
}

// CopyDir copies a directory tree verbatim. Symlinks inside the tree are
// not followed; they are skipped.
func CopyDir(fs types.FS, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}
	if !info.IsDir() {
		return CopyFile(fs, src, dst)
	}

	if err := fs.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dst)
	}

	entries, err := fs.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			if err := CopyDir(fs, srcPath, dstPath); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := CopyFile(fs, srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

package common

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// FilePerm is the mode of every file bonemap writes.
const FilePerm = 0o644

// WriteFileAtomic writes data via a temp file in the same directory, then
// renames it over path. A failed write leaves any existing file at path untouched.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}

	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, "failed to write temp file")
	}

	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, "failed to chmod temp file")
	}

	if err := f.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}

	if err := os.Rename(tmp, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp file")
	}

	return nil
}

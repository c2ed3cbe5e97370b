// Package output writes transformation results to files without leaving a
// half-written target behind.
package output

import (
	"github.com/tednaleid/encdec/config"
	"os"
	"path/filepath"
)

// AtomicWriter writes to a temp file next to the target and renames it into place on Commit.
type AtomicWriter struct {
	targetPath string
	tempPath   string
	tempFile   *os.File
	mode       os.FileMode
	committed  bool
}

const newFileMode os.FileMode = 0o644

// NewAtomicWriter fails if the target exists and allowOverwrite is false.
// The temp file lives in the target's directory so the rename stays on one filesystem.
// An overwritten target keeps its permission bits.
func NewAtomicWriter(targetPath string, allowOverwrite bool) (*AtomicWriter, error) {
	mode := newFileMode
	if info, err := os.Stat(targetPath); err == nil {
		if !allowOverwrite {
			return nil, config.NewIOError(targetPath, os.ErrExist)
		}
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(targetPath)
	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(targetPath)+".*.tmp")
	if err != nil {
		return nil, config.NewIOError(targetPath, err)
	}

	return &AtomicWriter{
		targetPath: targetPath,
		tempPath:   tempFile.Name(),
		tempFile:   tempFile,
		mode:       mode,
	}, nil
}

func (w *AtomicWriter) Write(p []byte) (int, error) {
	return w.tempFile.Write(p)
}

func (w *AtomicWriter) Commit() error {
	if w.committed {
		return nil
	}

	if err := w.tempFile.Chmod(w.mode); err != nil {
		w.Abort()
		return config.NewIOError(w.targetPath, err)
	}

	if err := w.tempFile.Sync(); err != nil {
		w.Abort()
		return config.NewIOError(w.targetPath, err)
	}

	if err := w.tempFile.Close(); err != nil {
		os.Remove(w.tempPath)
		return config.NewIOError(w.targetPath, err)
	}

	if err := os.Rename(w.tempPath, w.targetPath); err != nil {
		os.Remove(w.tempPath)
		return config.NewIOError(w.targetPath, err)
	}

	w.committed = true
	return nil
}

// Abort drops the temp file, it is a no-op after a successful Commit.
func (w *AtomicWriter) Abort() {
	if w.committed {
		return
	}
	w.tempFile.Close()
	os.Remove(w.tempPath)
}

func WriteFileAtomic(path string, data []byte, allowOverwrite bool) error {
	writer, err := NewAtomicWriter(path, allowOverwrite)
	if err != nil {
		return err
	}
	defer writer.Abort()

	if _, err := writer.Write(data); err != nil {
		return config.NewIOError(path, err)
	}

	return writer.Commit()
}

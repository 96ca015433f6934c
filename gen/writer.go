package gen

import (
	"os"
	"path/filepath"

	"github.com/qaforge/qaforge/config"
	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/logger"
)

// Writer persists generated artifacts under the output directory with
// timestamped names. A run that cannot write any one of its files fails
// as a whole; already written files from the same run are left in place
// for inspection.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory
func (w *Writer) Dir() string {
	return w.dir
}

// WriteAll stamps each artifact's file name and writes it to disk,
// creating the output directory on first use.
func (w *Writer) WriteAll(artifacts []Artifact, stamp string) error {
	if err := os.MkdirAll(w.dir, config.DefaultDirPermissions); err != nil {
		return errors.Mark(errors.Wrapf(err, "failed to create output directory %s", w.dir), errors.ErrWriteFault)
	}

	for i := range artifacts {
		a := &artifacts[i]
		a.FileName = FileName(a.Kind, stamp, a.Format)
		path := filepath.Join(w.dir, a.FileName)

		if err := os.WriteFile(path, a.Body, 0o644); err != nil {
			return errors.Mark(errors.Wrapf(err, "failed to write artifact %s", a.FileName), errors.ErrWriteFault)
		}
		logger.Debugw("Artifact written", "file", a.FileName, "bytes", len(a.Body))
	}
	return nil
}

// Open returns the on-disk path for name if it exists under the output
// directory. The name is reduced to its base to keep lookups inside the
// directory.
func (w *Writer) Open(name string) (string, error) {
	base := filepath.Base(name)
	path := filepath.Join(w.dir, base)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFoundError("file %s", base)
		}
		return "", errors.Wrapf(err, "failed to stat %s", base)
	}
	return path, nil
}

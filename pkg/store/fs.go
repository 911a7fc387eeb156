package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FS stores content as plain files under a root directory. This is the
// default backend: a vault of notes that any editor can open.
type FS struct {
	root string
}

// NewFS returns a store rooted at dir. The directory does not need to
// exist yet; Write creates missing parents.
func NewFS(dir string) *FS {
	return &FS{root: dir}
}

func (f *FS) Read(path string) (string, error) {
	data, err := os.ReadFile(f.join(path))
	if err != nil {
		return "", errors.Wrapf(err, "read %q", path)
	}
	return string(data), nil
}

func (f *FS) Exists(path string) (bool, error) {
	_, err := os.Stat(f.join(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "stat %q", path)
}

func (f *FS) Write(path, content string) error {
	full := f.join(path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return errors.Wrapf(err, "create directory for %q", path)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "write %q", path)
	}
	return nil
}

// Close is a no-op; the filesystem holds no connection state.
func (f *FS) Close() error { return nil }

func (f *FS) join(path string) string {
	return filepath.Join(f.root, path)
}

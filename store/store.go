// Package store resolves attachment sources to their content.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// ErrNotFound is returned when a source key has no content.
var ErrNotFound = errors.New("attachment source not found")

// Lookup is a read-only mapping from attachment source to content.
type Lookup interface {
	Get(key string) ([]byte, error)
}

var (
	_ Lookup = Map(nil)
	_ Lookup = (*Dir)(nil)
)

// Map is an in-memory Lookup.
type Map map[string][]byte

func (m Map) Get(key string) ([]byte, error) {
	b, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
	}

	return b, nil
}

// Dir reads attachments from an allure-results directory, where each
// attachment is a file named after its source.
type Dir struct {
	fs.FS
	root string
}

// NewDir returns a Dir rooted at root.
func NewDir(root string) *Dir {
	return &Dir{FS: os.DirFS(root), root: root}
}

// FromFS wraps an existing file system, e.g. an embed.FS or fstest.MapFS.
func FromFS(fsys fs.FS) *Dir {
	return &Dir{FS: fsys, root: "."}
}

func (d *Dir) RootDir() string {
	return d.root
}

func (d *Dir) Get(key string) ([]byte, error) {
	// sources are flat file names; anything else can't be an attachment
	if key == "" || path.Base(key) != key || !fs.ValidPath(key) {
		return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
	}

	b, err := fs.ReadFile(d.FS, key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", key, ErrNotFound)
		}

		return nil, fmt.Errorf("fs.ReadFile: %w", err)
	}

	return b, nil
}

package config

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is what the loader needs to find and read config files.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

type osFileSystem struct{}

func (osFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (osFileSystem) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is discovered or given by the user
	return os.ReadFile(path)
}

// Mounted serves an fs.FS, such as fstest.MapFS, as if it were mounted at Root.
// Paths outside Root do not exist.
type Mounted struct {
	Root string
	FS   fs.FS
}

// Mount creates a FileSystem answering absolute paths below root from fsys.
func Mount(root string, fsys fs.FS) *Mounted {
	return &Mounted{Root: filepath.Clean(root), FS: fsys}
}

// Stat returns file info for the given path.
func (m *Mounted) Stat(path string) (fs.FileInfo, error) {
	name, err := m.name("stat", path)
	if err != nil {
		return nil, err
	}
	return fs.Stat(m.FS, name)
}

// ReadFile reads the entire file at path.
func (m *Mounted) ReadFile(path string) ([]byte, error) {
	name, err := m.name("read", path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(m.FS, name)
}

// name converts path to a name inside the mounted fs.FS.
func (m *Mounted) name(op, path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.Root, path)
	}
	rel, err := filepath.Rel(m.Root, filepath.Clean(path))
	if err != nil || !filepath.IsLocal(rel) {
		return "", &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}
	return filepath.ToSlash(rel), nil
}

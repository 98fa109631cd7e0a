package testutil

import (
	"io"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/ezlink/pkg/types"
)

// FaultyFS wraps a types.FS and fails selected operations on selected paths.
// Operation names match the types.FS method names ("Symlink", "RemoveAll", ...).
type FaultyFS struct {
	types.FS

	mu       sync.Mutex
	failures map[string]error
	calls    map[string]int
}

// NewFaultyFS wraps inner with no failures configured
func NewFaultyFS(inner types.FS) *FaultyFS {
	return &FaultyFS{
		FS:       inner,
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
}

// FailOn makes op fail with err whenever it is called for path
func (f *FaultyFS) FailOn(op, path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[key(op, path)] = err
	return f
}

// Calls returns how many times op was called, on any path
func (f *FaultyFS) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func key(op, path string) string {
	return op + "\x00" + filepath.Clean(path)
}

func (f *FaultyFS) check(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	if err, ok := f.failures[key(op, path)]; ok {
		return &fs.PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check("Stat", name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check("Lstat", name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.check("ReadFile", name); err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.check("WriteFile", name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) Open(name string) (io.ReadCloser, error) {
	if err := f.check("Open", name); err != nil {
		return nil, err
	}
	return f.FS.Open(name)
}

func (f *FaultyFS) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	if err := f.check("Create", name); err != nil {
		return nil, err
	}
	return f.FS.Create(name, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.check("MkdirAll", path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check("ReadDir", name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) Symlink(oldname, newname string) error {
	if err := f.check("Symlink", newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultyFS) SymlinkFile(oldname, newname string) error {
	if err := f.check("SymlinkFile", newname); err != nil {
		return err
	}
	return f.FS.SymlinkFile(oldname, newname)
}

func (f *FaultyFS) SymlinkDir(oldname, newname string) error {
	if err := f.check("SymlinkDir", newname); err != nil {
		return err
	}
	return f.FS.SymlinkDir(oldname, newname)
}

func (f *FaultyFS) Readlink(name string) (string, error) {
	if err := f.check("Readlink", name); err != nil {
		return "", err
	}
	return f.FS.Readlink(name)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.check("Remove", name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) RemoveAll(path string) error {
	if err := f.check("RemoveAll", path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

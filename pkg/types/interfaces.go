package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for link operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Streaming access for copies. Create truncates an existing file.
	Open(name string) (io.ReadCloser, error)
	Create(name string, perm fs.FileMode) (io.WriteCloser, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	//
	// Symlink lets the platform pick the link kind. SymlinkFile and
	// SymlinkDir force it; on Unix all three behave the same.
	Symlink(oldname, newname string) error
	SymlinkFile(oldname, newname string) error
	SymlinkDir(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

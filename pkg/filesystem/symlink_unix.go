//go:build !windows

package filesystem

import "os"

// symlinkKind creates a symlink; Unix links carry no file/dir distinction
func symlinkKind(oldname, newname string, _ bool) error {
	return os.Symlink(oldname, newname)
}

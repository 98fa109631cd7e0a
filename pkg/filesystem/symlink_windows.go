//go:build windows

package filesystem

import (
	"os"

	"golang.org/x/sys/windows"
)

// Allows creation without elevation when Developer Mode is enabled.
const symbolicLinkFlagAllowUnprivilegedCreate = 0x2

// symlinkKind creates a file or directory symbolic link regardless of what
// the target currently is. os.Symlink picks the kind from the target.
func symlinkKind(oldname, newname string, dir bool) error {
	target, err := windows.UTF16PtrFromString(oldname)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}
	link, err := windows.UTF16PtrFromString(newname)
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}

	var flags uint32
	if dir {
		flags |= windows.SYMBOLIC_LINK_FLAG_DIRECTORY
	}

	err = windows.CreateSymbolicLink(link, target, flags|symbolicLinkFlagAllowUnprivilegedCreate)
	if err != nil {
		// Older Windows builds reject the unprivileged flag outright.
		err = windows.CreateSymbolicLink(link, target, flags)
	}
	if err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}
	return nil
}

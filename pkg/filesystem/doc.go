// Package filesystem provides filesystem implementations for ezlink.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed test filesystem.
package filesystem

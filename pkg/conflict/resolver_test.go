// pkg/conflict/resolver_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test destination conflict detection and prompt descriptions

package conflict_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ezlink/pkg/conflict"
	ezerrors "github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/filesystem"
	"github.com/arthur-debert/ezlink/pkg/testutil"
	"github.com/arthur-debert/ezlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	root := testutil.TempDir(t)
	file := testutil.CreateFile(t, root, "file.txt", "content")
	dir := testutil.CreateDir(t, root, "dir")

	r := conflict.NewResolver(filesystem.NewOS())

	tests := []struct {
		name string
		path string
		want types.ConflictState
	}{
		{"missing destination", filepath.Join(root, "missing"), types.NoConflict},
		{"missing parent", filepath.Join(root, "a", "b", "c"), types.NoConflict},
		{"existing file", file, types.DestinationExists},
		{"existing directory", dir, types.DestinationExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Symlinks(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	target := testutil.CreateDir(t, root, "target")
	live := filepath.Join(root, "live")
	dangling := filepath.Join(root, "dangling")
	testutil.CreateSymlink(t, target, live)
	testutil.CreateSymlink(t, filepath.Join(root, "gone"), dangling)

	r := conflict.NewResolver(filesystem.NewOS())

	got, err := r.Resolve(live)
	require.NoError(t, err)
	assert.Equal(t, types.DestinationExists, got)

	got, err = r.Resolve(dangling)
	require.NoError(t, err)
	assert.Equal(t, types.DestinationExists, got, "dangling links still occupy the path")
}

func TestResolve_IOError(t *testing.T) {
	fs := testutil.NewFaultyFS(filesystem.NewMemoryFS())
	fs.FailOn("Lstat", "/dest", os.ErrPermission)

	r := conflict.NewResolver(fs)

	_, err := r.Resolve("/dest")
	require.Error(t, err)
	assert.True(t, ezerrors.IsErrorCode(err, ezerrors.ErrIO))
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestDescribe(t *testing.T) {
	root := testutil.TempDir(t)
	testutil.CreateTree(t, root, map[string]string{
		"full/y.txt": "y",
		"full/z.txt": "z",
		"one/only":   "1",
		"empty/":     "",
	})
	file := testutil.CreateFile(t, root, "file.txt", "content")

	r := conflict.NewResolver(filesystem.NewOS())

	assert.Equal(t, filepath.Join(root, "full")+" is a directory with 2 entries.", r.Describe(filepath.Join(root, "full")))
	assert.Equal(t, filepath.Join(root, "one")+" is a directory with 1 entry.", r.Describe(filepath.Join(root, "one")))
	assert.Equal(t, filepath.Join(root, "empty")+" is a directory with 0 entries.", r.Describe(filepath.Join(root, "empty")))
	assert.Contains(t, r.Describe(file), "is a file")
	assert.Equal(t, "", r.Describe(filepath.Join(root, "missing")))
}

func TestDescribe_Symlink(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	target := testutil.CreateDir(t, root, "target")
	link := filepath.Join(root, "link")
	testutil.CreateSymlink(t, target, link)

	r := conflict.NewResolver(filesystem.NewOS())
	assert.Equal(t, link+" is a symlink to "+target+".", r.Describe(link))
}

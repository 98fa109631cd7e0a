// pkg/linker/linker_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test symlink creation, kind resolution and parent cleanup

package linker_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ezlink/pkg/errors"
	"github.com/arthur-debert/ezlink/pkg/filesystem"
	"github.com/arthur-debert/ezlink/pkg/linker"
	"github.com/arthur-debert/ezlink/pkg/testutil"
	"github.com/arthur-debert/ezlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLink_AutoResolution(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	dir := testutil.CreateDir(t, root, "a")
	testutil.CreateFile(t, dir, "x.txt", "x")
	file := testutil.CreateFile(t, root, "notes.txt", "notes")

	c := linker.NewCreator(filesystem.NewOS())

	tests := []struct {
		name   string
		source string
		want   types.SymlinkType
	}{
		{"directory source", dir, types.SymlinkDirectory},
		{"file source", file, types.SymlinkFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := filepath.Join(root, "links", filepath.Base(tt.source))

			got, err := c.CreateLink(tt.source, dest, types.SymlinkAuto)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			testutil.AssertSymlink(t, dest, tt.source)
		})
	}

	testutil.AssertFileContent(t, filepath.Join(root, "links", "a", "x.txt"), "x")
}

func TestCreateLink_ForcedKindIsReturned(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	dir := testutil.CreateDir(t, root, "a")

	c := linker.NewCreator(filesystem.NewOS())

	// symlink(2) does not care about the kind, so a mismatch still links on Unix
	got, err := c.CreateLink(dir, filepath.Join(root, "b"), types.SymlinkFile)
	require.NoError(t, err)
	assert.Equal(t, types.SymlinkFile, got)
	testutil.AssertSymlink(t, filepath.Join(root, "b"), dir)
}

func TestCreateLink_CreatesParents(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	src := testutil.CreateDir(t, root, "a")
	dest := filepath.Join(root, "x", "y", "z", "b")

	_, err := linker.NewCreator(filesystem.NewOS()).CreateLink(src, dest, types.SymlinkAuto)
	require.NoError(t, err)

	assert.True(t, testutil.DirExists(t, filepath.Join(root, "x", "y", "z")))
	testutil.AssertSymlink(t, dest, src)
}

func TestCreateLink_DestinationOccupied(t *testing.T) {
	testutil.SkipOnWindows(t)

	root := testutil.TempDir(t)
	src := testutil.CreateDir(t, root, "a")
	dest := testutil.CreateFile(t, root, "b", "in the way")

	_, err := linker.NewCreator(filesystem.NewOS()).CreateLink(src, dest, types.SymlinkAuto)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.Contains(t, errors.Cause(err), "file exists")

	testutil.AssertFileContent(t, dest, "in the way")
}

func TestCreateLink_FailureRemovesCreatedParents(t *testing.T) {
	root := testutil.TempDir(t)
	src := testutil.CreateDir(t, root, "a")
	existing := testutil.CreateDir(t, root, "keep")
	dest := filepath.Join(existing, "new", "deeper", "b")

	fs := testutil.NewFaultyFS(filesystem.NewOS())
	fs.FailOn("SymlinkDir", dest, os.ErrPermission)

	kind, err := linker.NewCreator(fs).CreateLink(src, dest, types.SymlinkAuto)
	require.Error(t, err)
	assert.Equal(t, types.SymlinkDirectory, kind)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))

	testutil.AssertNotExists(t, filepath.Join(existing, "new"))
	assert.True(t, testutil.DirExists(t, existing), "pre-existing parents are kept")
}

func TestCreateLink_MissingSourceWithAuto(t *testing.T) {
	root := testutil.TempDir(t)

	_, err := linker.NewCreator(filesystem.NewOS()).
		CreateLink(filepath.Join(root, "missing"), filepath.Join(root, "b"), types.SymlinkAuto)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	testutil.AssertNotExists(t, filepath.Join(root, "b"))
}

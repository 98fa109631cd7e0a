// Package testutil provides utilities for testing ezlink components.
//
// Key components:
//   - File helpers (CreateFile, CreateDir, CreateTree, CreateSymlink) for real
//     directories created under t.TempDir()
//   - Assertions over files and symlinks (AssertFileContent, AssertSymlink)
//   - FaultyFS: a types.FS wrapper that fails selected operations, used to
//     drive the IO error paths of the merge and link steps
//
// Usage guidelines:
//   - Prefer real temp directories for symlink behaviour
//   - Use filesystem.NewMemoryFS() when only file contents matter
//   - All test data should be defined inline, not in external files
package testutil

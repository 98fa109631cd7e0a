// Package linker creates the symlink at the destination.
//
// The link kind is either forced by the caller or, for SymlinkAuto,
// picked by looking at the source when the link is made. On Windows the
// kind decides whether the directory flag is passed to CreateSymbolicLink;
// elsewhere both kinds are the same symlink(2) call.
package linker

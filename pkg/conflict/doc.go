// Package conflict decides whether a link request can go straight to link
// creation or has to stop and ask before touching an existing destination.
//
// The check is made with Lstat: a file, a directory, a symlink and a
// dangling symlink all count as "something is in the way".
package conflict

// Package merge folds an existing destination directory into the source
// directory so the destination path can be replaced by a link.
//
// Known limitation: colliding paths are overwritten by the destination's
// copy (last writer wins). Collisions are reported in the MergeReport and
// logged at warn level but never rejected. There is no rollback; a failure
// part way leaves the files copied so far in the source and the destination
// untouched.
package merge

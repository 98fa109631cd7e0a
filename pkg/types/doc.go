// Package types defines the data model shared by the link-provisioning
// engine and its presentation shells: link requests, symlink kinds,
// conflict and engine states, outcomes and history entries, as well as the
// FS interface every filesystem-touching component is written against.
package types

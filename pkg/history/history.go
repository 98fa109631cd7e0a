// Package history keeps the most recent successful links of an engine.
// It lives in memory only and is gone when the process exits.
package history

import "github.com/arthur-debert/ezlink/pkg/types"

// Capacity is the number of entries kept; older entries are evicted first
const Capacity = 5

// Log is a bounded FIFO of successful links, oldest first
type Log struct {
	entries []types.HistoryEntry
}

// New returns an empty log
func New() *Log {
	return &Log{entries: make([]types.HistoryEntry, 0, Capacity)}
}

// Record appends a link, evicting the oldest entry past Capacity.
// Identical pairs are recorded again.
func (l *Log) Record(source, destination string) {
	l.entries = append(l.entries, types.HistoryEntry{Source: source, Destination: destination})
	if over := len(l.entries) - Capacity; over > 0 {
		l.entries = append(l.entries[:0:0], l.entries[over:]...)
	}
}

// Items returns a copy of the entries, most recent last
func (l *Log) Items() []types.HistoryEntry {
	out := make([]types.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries
func (l *Log) Len() int {
	return len(l.entries)
}

// Package audit keeps a bounded, time-ordered record of successfully executed
// write statements. The buffer is a fixed-capacity ring: when full, the single
// oldest entry is evicted to admit a new one.
package audit

import (
	"sync"
	"time"
)

// Entry records one successfully executed write.
type Entry struct {
	ConnectionID string
	Verb         string
	Duration     time.Duration
	RowsAffected int64
	Timestamp    time.Time
}

// Log is safe for concurrent use. When disabled, Record is a no-op, List is
// always empty, and Clear returns 0.
type Log struct {
	mu      sync.Mutex
	enabled bool
	buf     []Entry
	head    int // index of the oldest entry
	count   int
}

// New creates a Log with the given fixed capacity. Panics if capacity <= 0.
func New(enabled bool, capacity int) *Log {
	if capacity <= 0 {
		panic("audit: capacity must be > 0")
	}
	return &Log{enabled: enabled, buf: make([]Entry, capacity)}
}

// Record appends an entry, evicting the oldest one first when the buffer is
// at capacity.
func (l *Log) Record(e Entry) {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.count == len(l.buf) {
		l.buf[l.head] = e
		l.head = (l.head + 1) % len(l.buf)
		return
	}
	l.buf[(l.head+l.count)%len(l.buf)] = e
	l.count++
}

// List returns at most limit entries, most recent first. A limit <= 0 yields
// an empty slice.
func (l *Log) List(limit int) []Entry {
	if limit <= 0 || !l.enabled {
		return []Entry{}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	n := l.count
	if limit < n {
		n = limit
	}
	out := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		idx := (l.head + l.count - 1 - i) % len(l.buf)
		out = append(out, l.buf[idx])
	}
	return out
}

// Clear empties the buffer and returns the number of entries discarded.
func (l *Log) Clear() int {
	if !l.enabled {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	n := l.count
	l.head = 0
	l.count = 0
	return n
}

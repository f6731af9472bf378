// Package limits holds the process-wide result shaping limits: the maximum
// number of rows returned per read and the maximum characters retained per
// text field. Both are mutable at runtime and apply to future reads only.
package limits

import "sync/atomic"

// Limits is a pair of atomically-updated shared cells. Readers never observe
// torn values; last writer wins.
type Limits struct {
	maxQueryRows   atomic.Int64
	maxFieldLength atomic.Int64
}

// New creates Limits with the given initial values.
func New(maxQueryRows, maxFieldLength int) *Limits {
	l := &Limits{}
	l.maxQueryRows.Store(int64(maxQueryRows))
	l.maxFieldLength.Store(int64(maxFieldLength))
	return l
}

// MaxQueryRows returns the current row cap.
func (l *Limits) MaxQueryRows() int {
	return int(l.maxQueryRows.Load())
}

// MaxFieldLength returns the current per-field character cap.
func (l *Limits) MaxFieldLength() int {
	return int(l.maxFieldLength.Load())
}

// SetMaxQueryRows replaces the row cap and returns the previous value.
// The caller validates that rows > 0.
func (l *Limits) SetMaxQueryRows(rows int) int {
	return int(l.maxQueryRows.Swap(int64(rows)))
}

// SetMaxFieldLength replaces the field cap and returns the previous value.
// The caller validates that length > 0.
func (l *Limits) SetMaxFieldLength(length int) int {
	return int(l.maxFieldLength.Swap(int64(length)))
}

package mymcp

import (
	"fmt"

	"github.com/ashersu/mysql-mcp/internal/dberr"
)

// SetMaxQueryRows replaces the per-read row cap and returns the previous
// value. Applies to future reads only.
func (m *MySQLMcp) SetMaxQueryRows(rows int) (int, error) {
	if rows <= 0 {
		return 0, fmt.Errorf("%w: rows must be > 0", dberr.ErrInvalidArgument)
	}
	return m.limits.SetMaxQueryRows(rows), nil
}

// SetMaxFieldLength replaces the per-field character cap and returns the
// previous value. Applies to future reads only.
func (m *MySQLMcp) SetMaxFieldLength(length int) (int, error) {
	if length <= 0 {
		return 0, fmt.Errorf("%w: length must be > 0", dberr.ErrInvalidArgument)
	}
	return m.limits.SetMaxFieldLength(length), nil
}

// ResultLimitConfig returns the current result shaping limits.
func (m *MySQLMcp) ResultLimitConfig() ResultLimits {
	return ResultLimits{
		MaxQueryRows:   m.limits.MaxQueryRows(),
		MaxFieldLength: m.limits.MaxFieldLength(),
	}
}

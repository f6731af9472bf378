package mymcp

import "github.com/ashersu/mysql-mcp/internal/dberr"

// Error kinds returned by the engine. Classify failures with errors.Is; the
// concrete messages carry detail but the kinds are the stable contract.
var (
	// ErrInvalidArgument marks malformed or missing caller input.
	ErrInvalidArgument = dberr.ErrInvalidArgument
	// ErrUnknownHandle marks a connectionId with no live connection.
	ErrUnknownHandle = dberr.ErrUnknownHandle
	// ErrConnectionUnavailable marks an endpoint that failed the round-trip
	// probe at creation time.
	ErrConnectionUnavailable = dberr.ErrConnectionUnavailable
	// ErrStatementNotAllowed marks a statement rejected by the write gate or
	// the read-only query path.
	ErrStatementNotAllowed = dberr.ErrStatementNotAllowed
	// ErrWritesDisabled marks a write attempted while the global switch is
	// off. Matches ErrStatementNotAllowed as well.
	ErrWritesDisabled = dberr.ErrWritesDisabled
	// ErrExecutionFailed marks a driver-level failure of an otherwise
	// permitted statement.
	ErrExecutionFailed = dberr.ErrExecutionFailed
)

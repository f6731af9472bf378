// Package dberr defines the error kinds shared by the connection registry,
// write gate, result shaper, and tool facade. Callers classify failures with
// errors.Is; messages carry the operation-specific detail.
package dberr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a missing mandatory creation parameter or a
	// non-positive limit value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownHandle marks an operation against an absent or already-closed
	// connectionId.
	ErrUnknownHandle = errors.New("unknown connectionId")

	// ErrConnectionUnavailable marks a validation probe failure at creation
	// time. No handle is issued when creation fails with this kind.
	ErrConnectionUnavailable = errors.New("cannot establish connection")

	// ErrStatementNotAllowed marks a statement rejected by shape: a non-SELECT
	// on the read path, or a non-whitelisted verb on the write path.
	ErrStatementNotAllowed = errors.New("statement not allowed")

	// ErrExecutionFailed marks a driver-level failure during an otherwise
	// permitted execution.
	ErrExecutionFailed = errors.New("execution failed")
)

// ErrWritesDisabled is raised when the global write switch is off. It wraps
// ErrStatementNotAllowed so errors.Is matches both kinds.
var ErrWritesDisabled = fmt.Errorf("%w: write operations disabled", ErrStatementNotAllowed)

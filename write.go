package mymcp

import (
	"context"
	"fmt"
	"time"

	"github.com/ashersu/mysql-mcp/internal/audit"
	"github.com/ashersu/mysql-mcp/internal/dberr"
	"github.com/ashersu/mysql-mcp/internal/writegate"
)

// ExecuteUpdate runs a non-SELECT statement on the given connection and
// returns the affected row count. The statement must pass the global write
// switch AND the first-keyword whitelist; on success one audit entry is
// recorded. A driver-level failure produces no audit entry.
func (m *MySQLMcp) ExecuteUpdate(ctx context.Context, connectionID, statement string) (int64, error) {
	if !m.gate.Enabled() {
		return 0, dberr.ErrWritesDisabled
	}
	res, err := m.registry.Get(connectionID)
	if err != nil {
		return 0, err
	}
	verb := writegate.Classify(statement)
	if !m.gate.Allowed(verb) {
		return 0, fmt.Errorf("%w: SQL verb not allowed: %s", dberr.ErrStatementNotAllowed, verb)
	}

	startTime := time.Now()
	result, err := res.DB().ExecContext(ctx, statement)
	if err != nil {
		return 0, fmt.Errorf("%w: update failed: %v", dberr.ErrExecutionFailed, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: affected rows unavailable: %v", dberr.ErrExecutionFailed, err)
	}
	duration := time.Since(startTime)

	m.audit.Record(audit.Entry{
		ConnectionID: connectionID,
		Verb:         verb,
		Duration:     duration,
		RowsAffected: affected,
		Timestamp:    time.Now(),
	})
	m.logger.Info().
		Str("connection_id", connectionID).
		Str("verb", verb).
		Int64("affected_rows", affected).
		Dur("duration", duration).
		Msg("AUDIT write")

	return affected, nil
}

// EnableWriteOperations turns the global write switch on. Returns true only
// if the state actually changed.
func (m *MySQLMcp) EnableWriteOperations() bool {
	return m.gate.Enable()
}

// DisableWriteOperations turns the global write switch off. Returns true only
// if the state actually changed.
func (m *MySQLMcp) DisableWriteOperations() bool {
	return m.gate.Disable()
}

// IsWriteEnabled reports the current state of the global write switch.
func (m *MySQLMcp) IsWriteEnabled() bool {
	return m.gate.Enabled()
}

// ListWriteWhitelist returns the permitted write keywords, sorted
// lexicographically.
func (m *MySQLMcp) ListWriteWhitelist() []string {
	return m.gate.List()
}

// AddAllowedWriteCommand inserts a keyword into the write whitelist. Returns
// false if it was already present.
func (m *MySQLMcp) AddAllowedWriteCommand(keyword string) bool {
	return m.gate.Add(keyword)
}

// RemoveAllowedWriteCommand deletes a keyword from the write whitelist.
// Returns false if it was absent.
func (m *MySQLMcp) RemoveAllowedWriteCommand(keyword string) bool {
	return m.gate.Remove(keyword)
}

// ListWriteAudit returns at most limit audit entries, most recent first.
func (m *MySQLMcp) ListWriteAudit(limit int) []AuditEntry {
	recorded := m.audit.List(limit)
	entries := make([]AuditEntry, len(recorded))
	for i, e := range recorded {
		entries[i] = AuditEntry{
			Timestamp:    e.Timestamp.UnixMilli(),
			ConnectionID: e.ConnectionID,
			Verb:         e.Verb,
			DurationMs:   e.Duration.Milliseconds(),
			AffectedRows: e.RowsAffected,
		}
	}
	return entries
}

// ClearWriteAudit empties the audit buffer and returns the number of entries
// discarded.
func (m *MySQLMcp) ClearWriteAudit() int {
	return m.audit.Clear()
}

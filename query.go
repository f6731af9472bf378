package mymcp

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/ashersu/mysql-mcp/internal/shaper"
)

// Query executes a SELECT statement on the given connection and returns
// shaped rows bounded by the current result limits. Non-SELECT statements are
// rejected before any connection is touched.
func (m *MySQLMcp) Query(ctx context.Context, connectionID, query string) (*QueryOutput, error) {
	res, err := m.registry.Get(connectionID)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	result, err := shaper.Query(ctx, res.DB(), query, m.limits.MaxQueryRows(), m.limits.MaxFieldLength())
	if err != nil {
		m.logger.Error().
			Err(err).
			Str("connection_id", connectionID).
			Msg("query error")
		return nil, err
	}

	m.logger.Info().
		Str("connection_id", connectionID).
		Str("sql", truncateForLog(query, 200)).
		Dur("duration", time.Since(startTime)).
		Int("row_count", len(result.Rows)).
		Msg("query executed")

	return &QueryOutput{Columns: result.Columns, Rows: result.Rows}, nil
}

// truncateForLog truncates a string for log output to avoid oversized log entries.
func truncateForLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	truncateAt := maxLen
	for truncateAt > 0 && !utf8.RuneStart(s[truncateAt]) {
		truncateAt--
	}
	return s[:truncateAt] + "...[truncated]"
}

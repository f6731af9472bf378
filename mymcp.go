package mymcp

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashersu/mysql-mcp/internal/audit"
	"github.com/ashersu/mysql-mcp/internal/limits"
	"github.com/ashersu/mysql-mcp/internal/registry"
	"github.com/ashersu/mysql-mcp/internal/writegate"
)

// MySQLMcp is the core engine composing the connection registry, write gate,
// result shaper, and audit log into the tool surface exposed over MCP.
// All exported methods are safe for concurrent use from multiple goroutines.
type MySQLMcp struct {
	registry *registry.Registry
	gate     *writegate.Gate
	audit    *audit.Log
	limits   *limits.Limits
	logger   zerolog.Logger
}

// New creates a new MySQLMcp instance. Panics on invalid config; zero-valued
// fields take the documented defaults.
func New(config Config, logger zerolog.Logger) *MySQLMcp {
	if config.Audit.MaxEntries < 0 {
		panic("mymcp: audit.max_entries must be >= 0")
	}
	if config.Limits.MaxQueryRows < 0 {
		panic("mymcp: limits.max_query_rows must be >= 0")
	}
	if config.Limits.MaxFieldLength < 0 {
		panic("mymcp: limits.max_field_length must be >= 0")
	}

	maxAudit := config.Audit.MaxEntries
	if maxAudit == 0 {
		maxAudit = defaultMaxAuditEntries
	}
	maxRows := config.Limits.MaxQueryRows
	if maxRows == 0 {
		maxRows = defaultMaxQueryRows
	}
	maxField := config.Limits.MaxFieldLength
	if maxField == 0 {
		maxField = defaultMaxFieldLength
	}
	whitelist := config.Write.Whitelist
	if whitelist == nil {
		whitelist = DefaultWhitelist()
	}

	return &MySQLMcp{
		registry: registry.New(logger),
		gate:     writegate.New(config.Write.Enabled, whitelist),
		audit:    audit.New(!config.Audit.Disabled, maxAudit),
		limits:   limits.New(maxRows, maxField),
		logger:   logger,
	}
}

// Close releases every live connection pool. Accepts context for API
// forward-compatibility; pool teardown itself is not cancellable.
func (m *MySQLMcp) Close(ctx context.Context) {
	m.registry.CloseAll()
}

// msDuration converts a millisecond count into a timeout value, treating
// non-positive input as "use the default" (zero).
func msDuration(ms int64) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

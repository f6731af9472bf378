package mymcp

import (
	"context"

	"github.com/ashersu/mysql-mcp/internal/registry"
)

// CreateConnection opens a pooled connection to a new endpoint using the
// default timeout policy and returns its connectionId plus the canonical URL
// (credentials redacted). The pool is validated with a round-trip probe
// before the handle is issued.
func (m *MySQLMcp) CreateConnection(ctx context.Context, input CreateConnectionInput) (*CreateConnectionOutput, error) {
	return m.createConnection(ctx, input, PoolTimeouts{})
}

// CreateConnectionAdvanced is CreateConnection with explicit pool timeout
// overrides. Overrides <= 0 fall back to the defaults.
func (m *MySQLMcp) CreateConnectionAdvanced(ctx context.Context, input CreateConnectionInput, timeouts PoolTimeouts) (*CreateConnectionOutput, error) {
	return m.createConnection(ctx, input, timeouts)
}

func (m *MySQLMcp) createConnection(ctx context.Context, input CreateConnectionInput, timeouts PoolTimeouts) (*CreateConnectionOutput, error) {
	res, err := m.registry.Create(ctx, registry.Params{
		Host:     input.Host,
		Port:     input.Port,
		Database: input.Database,
		Username: input.Username,
		Password: input.Password,
		Extra:    input.Params,
		Timeouts: registry.Timeouts{
			Connect:     msDuration(timeouts.ConnectionTimeoutMs),
			Idle:        msDuration(timeouts.IdleTimeoutMs),
			MaxLifetime: msDuration(timeouts.MaxLifetimeMs),
		},
	})
	if err != nil {
		return nil, err
	}
	return &CreateConnectionOutput{ConnectionID: res.Handle(), URL: res.URL()}, nil
}

// ListConnections returns a snapshot of the live connections in creation
// order. Not a live view.
func (m *MySQLMcp) ListConnections() []ConnectionEntry {
	snapshot := m.registry.List()
	entries := make([]ConnectionEntry, len(snapshot))
	for i, e := range snapshot {
		entries[i] = ConnectionEntry{ConnectionID: e.ConnectionID, URL: e.URL}
	}
	return entries
}

// CloseConnection releases the pool for a handle. Returns true exactly once
// per successful create; false for unknown or already-closed handles.
func (m *MySQLMcp) CloseConnection(connectionID string) bool {
	return m.registry.Close(connectionID)
}

package mymcp

// CreateConnectionInput describes one database endpoint. Host, Port, and
// Database are mandatory.
type CreateConnectionInput struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	Username string `json:"username"`
	Password string `json:"password"`
	// Params carries extra driver parameters as key=value pairs joined with
	// "&". Empty selects the safe defaults: tls=false, charset=utf8, session
	// time zone UTC.
	Params string `json:"params,omitempty"`
}

// PoolTimeouts carries optional pool tuning for createConnectionAdvanced.
// Values <= 0 fall back to the defaults (10s connect, 5m idle, 30m lifetime).
type PoolTimeouts struct {
	ConnectionTimeoutMs int64 `json:"connection_timeout_ms,omitempty"`
	IdleTimeoutMs       int64 `json:"idle_timeout_ms,omitempty"`
	MaxLifetimeMs       int64 `json:"max_lifetime_ms,omitempty"`
}

// CreateConnectionOutput is returned by the create tools.
type CreateConnectionOutput struct {
	ConnectionID string `json:"connectionId"`
	URL          string `json:"url"`
}

// ConnectionEntry is one row of the listConnections snapshot.
type ConnectionEntry struct {
	ConnectionID string `json:"connectionId"`
	URL          string `json:"url"`
}

// QueryOutput holds a shaped result set. Columns preserves the driver's
// column order; each row maps column label to value.
type QueryOutput struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// AuditEntry is one recorded write, as exposed by listWriteAudit.
type AuditEntry struct {
	Timestamp    int64  `json:"timestamp"` // epoch milliseconds
	ConnectionID string `json:"connectionId"`
	Verb         string `json:"verb"`
	DurationMs   int64  `json:"durationMs"`
	AffectedRows int64  `json:"affectedRows"`
}

// ResultLimits is the current result shaping configuration.
type ResultLimits struct {
	MaxQueryRows   int `json:"maxQueryRows"`
	MaxFieldLength int `json:"maxFieldLength"`
}

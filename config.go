package mymcp

// Defaults applied by New for zero-valued config fields.
const (
	defaultMaxAuditEntries = 1000
	defaultMaxQueryRows    = 200
	defaultMaxFieldLength  = 256
)

// DefaultWhitelist returns the initial set of first keywords permitted for
// non-SELECT statements when the config does not override it.
func DefaultWhitelist() []string {
	return []string{"insert", "update", "delete", "create", "drop", "alter", "truncate", "replace"}
}

// Config is the base configuration used by library mode via New().
type Config struct {
	Write  WriteConfig  `json:"write"`
	Audit  AuditConfig  `json:"audit"`
	Limits LimitsConfig `json:"limits"`
}

// WriteConfig controls the initial state of the write gate.
type WriteConfig struct {
	// Enabled sets the global write switch at startup. Writes are off by
	// default and must be enabled explicitly (config or tool call).
	Enabled bool `json:"enabled"`
	// Whitelist overrides the default permitted first keywords. A nil slice
	// selects DefaultWhitelist(); an empty non-nil slice permits nothing.
	Whitelist []string `json:"whitelist"`
}

// AuditConfig controls the write audit ring.
type AuditConfig struct {
	// Disabled turns auditing off entirely: no entries are recorded, listing
	// is always empty, clearing is a no-op.
	Disabled bool `json:"disabled"`
	// MaxEntries is the fixed ring capacity. 0 selects the default (1000).
	MaxEntries int `json:"max_entries"`
}

// LimitsConfig holds the initial result shaping limits. Zero values select
// the defaults (200 rows, 256 characters per field).
type LimitsConfig struct {
	MaxQueryRows   int `json:"max_query_rows"`
	MaxFieldLength int `json:"max_field_length"`
}

// ServerConfig embeds Config and adds server-only fields for CLI mode.
type ServerConfig struct {
	Config
	Server  ServerSettings `json:"server"`
	Logging LoggingConfig  `json:"logging"`
}

// ServerSettings holds HTTP server settings for CLI mode.
type ServerSettings struct {
	Port               int    `json:"port"`
	HealthCheckEnabled bool   `json:"health_check_enabled"`
	HealthCheckPath    string `json:"health_check_path"`
}

// LoggingConfig holds logging settings for CLI mode.
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
	Output string `json:"output"` // stdout, stderr, or file path
}

// Package registry owns the map from opaque connection handles to live pooled
// MySQL connections. Pools are created with a tunable timeout policy,
// validated with a round-trip probe before a handle is issued, and torn down
// on explicit close or process shutdown.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ashersu/mysql-mcp/internal/dberr"
)

// Pool sizing is fixed: a small ceiling with one idle connection kept warm.
const (
	maxOpenConns = 5
	maxIdleConns = 1
)

// Defaults for the timeout policy when the caller does not override it.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultIdleTimeout    = 5 * time.Minute
	DefaultMaxLifetime    = 30 * time.Minute
)

const validationQuery = "SELECT 1"

// Timeouts is the per-pool timeout policy. Zero fields fall back to the
// package defaults.
type Timeouts struct {
	Connect     time.Duration
	Idle        time.Duration
	MaxLifetime time.Duration
}

func (t Timeouts) withDefaults() Timeouts {
	if t.Connect <= 0 {
		t.Connect = DefaultConnectTimeout
	}
	if t.Idle <= 0 {
		t.Idle = DefaultIdleTimeout
	}
	if t.MaxLifetime <= 0 {
		t.MaxLifetime = DefaultMaxLifetime
	}
	return t
}

// Params describes one database endpoint. Host, Port, and Database are
// mandatory. Extra carries raw key=value driver parameters joined with "&";
// when empty, a safe default set is used (TLS off, utf8, UTC session zone).
type Params struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Extra    string
	Timeouts Timeouts
}

// Resource wraps one live connection pool. Immutable after creation.
type Resource struct {
	handle    string
	db        *sql.DB
	url       string
	createdAt time.Time
}

// Handle returns the opaque connection identifier.
func (r *Resource) Handle() string { return r.handle }

// DB returns the underlying pool.
func (r *Resource) DB() *sql.DB { return r.db }

// URL returns the canonical DSN with credentials redacted.
func (r *Resource) URL() string { return r.url }

// Entry is one row of a List snapshot.
type Entry struct {
	ConnectionID string
	URL          string
}

// Registry is safe for concurrent use. Independent handles never contend
// beyond the map guard.
type Registry struct {
	mu     sync.Mutex
	conns  map[string]*Resource
	logger zerolog.Logger
}

// New creates an empty Registry.
func New(logger zerolog.Logger) *Registry {
	return &Registry{
		conns:  make(map[string]*Resource),
		logger: logger,
	}
}

// Create builds a pool for the given endpoint, validates it with a round-trip
// probe, and registers it under a fresh handle. On probe failure the pool is
// closed and no registry entry is left behind.
func (g *Registry) Create(ctx context.Context, p Params) (*Resource, error) {
	if p.Host == "" {
		return nil, fmt.Errorf("%w: host required", dberr.ErrInvalidArgument)
	}
	if p.Port <= 0 {
		return nil, fmt.Errorf("%w: port required", dberr.ErrInvalidArgument)
	}
	if p.Database == "" {
		return nil, fmt.Errorf("%w: database required", dberr.ErrInvalidArgument)
	}

	to := p.Timeouts.withDefaults()
	cfg, err := dsnConfig(p, to)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dberr.ErrConnectionUnavailable, err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(to.Idle)
	db.SetConnMaxLifetime(to.MaxLifetime)

	// Eager reachability probe, bounded by the connect timeout.
	probeCtx, cancel := context.WithTimeout(ctx, to.Connect)
	defer cancel()
	var one int
	if err := db.QueryRowContext(probeCtx, validationQuery).Scan(&one); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", dberr.ErrConnectionUnavailable, err)
	}

	res := &Resource{
		handle:    uuid.NewString(),
		db:        db,
		url:       redactedURL(cfg),
		createdAt: time.Now(),
	}

	g.mu.Lock()
	g.conns[res.handle] = res
	g.mu.Unlock()

	g.logger.Info().
		Str("connection_id", res.handle).
		Str("url", res.url).
		Msg("connection created")
	return res, nil
}

// Get returns the resource for a handle, or ErrUnknownHandle.
func (g *Registry) Get(handle string) (*Resource, error) {
	g.mu.Lock()
	res, ok := g.conns[handle]
	g.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", dberr.ErrUnknownHandle, handle)
	}
	return res, nil
}

// List returns a snapshot of the live connections ordered by creation time.
func (g *Registry) List() []Entry {
	g.mu.Lock()
	resources := make([]*Resource, 0, len(g.conns))
	for _, res := range g.conns {
		resources = append(resources, res)
	}
	g.mu.Unlock()

	sort.Slice(resources, func(i, j int) bool {
		if resources[i].createdAt.Equal(resources[j].createdAt) {
			return resources[i].handle < resources[j].handle
		}
		return resources[i].createdAt.Before(resources[j].createdAt)
	})

	entries := make([]Entry, len(resources))
	for i, res := range resources {
		entries[i] = Entry{ConnectionID: res.handle, URL: res.url}
	}
	return entries
}

// Close releases the pool for a handle exactly once. Returns false for an
// unknown or already-closed handle.
func (g *Registry) Close(handle string) bool {
	g.mu.Lock()
	res, ok := g.conns[handle]
	if ok {
		delete(g.conns, handle)
	}
	g.mu.Unlock()
	if !ok {
		return false
	}
	res.db.Close()
	g.logger.Info().
		Str("connection_id", handle).
		Msg("connection closed")
	return true
}

// CloseAll releases every live resource. Used at process shutdown; idempotent.
func (g *Registry) CloseAll() {
	g.mu.Lock()
	conns := g.conns
	g.conns = make(map[string]*Resource)
	g.mu.Unlock()
	for handle, res := range conns {
		res.db.Close()
		g.logger.Info().
			Str("connection_id", handle).
			Msg("connection closed")
	}
}

package registry

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashersu/mysql-mcp/internal/dberr"
)

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.Disabled)
}

func TestCreateRequiresMandatoryParams(t *testing.T) {
	t.Parallel()
	g := New(testLogger())
	tests := []struct {
		name   string
		params Params
	}{
		{"missing host", Params{Port: 3306, Database: "demo"}},
		{"missing port", Params{Host: "127.0.0.1", Database: "demo"}},
		{"missing database", Params{Host: "127.0.0.1", Port: 3306}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Create(context.Background(), tt.params)
			if !errors.Is(err, dberr.ErrInvalidArgument) {
				t.Errorf("Create() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
	if entries := g.List(); len(entries) != 0 {
		t.Errorf("failed creation must leave no registry entry, got %d", len(entries))
	}
}

func TestGetUnknownHandle(t *testing.T) {
	t.Parallel()
	g := New(testLogger())
	_, err := g.Get("no-such-handle")
	if !errors.Is(err, dberr.ErrUnknownHandle) {
		t.Errorf("Get() error = %v, want ErrUnknownHandle", err)
	}
	if !strings.Contains(err.Error(), "no-such-handle") {
		t.Errorf("error message should name the handle, got %q", err.Error())
	}
}

func TestCloseUnknownHandle(t *testing.T) {
	t.Parallel()
	g := New(testLogger())
	if g.Close("no-such-handle") {
		t.Error("Close of unknown handle must return false")
	}
}

func TestCloseAllIdempotent(t *testing.T) {
	t.Parallel()
	g := New(testLogger())
	g.CloseAll()
	g.CloseAll()
	if entries := g.List(); len(entries) != 0 {
		t.Errorf("expected empty registry, got %d entries", len(entries))
	}
}

func TestTimeoutsWithDefaults(t *testing.T) {
	t.Parallel()
	t.Run("all zero", func(t *testing.T) {
		to := Timeouts{}.withDefaults()
		if to.Connect != DefaultConnectTimeout {
			t.Errorf("Connect = %v, want %v", to.Connect, DefaultConnectTimeout)
		}
		if to.Idle != DefaultIdleTimeout {
			t.Errorf("Idle = %v, want %v", to.Idle, DefaultIdleTimeout)
		}
		if to.MaxLifetime != DefaultMaxLifetime {
			t.Errorf("MaxLifetime = %v, want %v", to.MaxLifetime, DefaultMaxLifetime)
		}
	})
	t.Run("overrides kept", func(t *testing.T) {
		to := Timeouts{
			Connect:     2 * time.Second,
			Idle:        time.Minute,
			MaxLifetime: time.Hour,
		}.withDefaults()
		if to.Connect != 2*time.Second || to.Idle != time.Minute || to.MaxLifetime != time.Hour {
			t.Errorf("explicit timeouts must survive: %+v", to)
		}
	})
}

func TestDSNConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := dsnConfig(Params{
		Host:     "db.internal",
		Port:     3306,
		Database: "demo",
		Username: "app",
		Password: "secret",
	}, Timeouts{}.withDefaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != "db.internal:3306" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if !cfg.ParseTime {
		t.Error("ParseTime must be enabled")
	}
	if cfg.Timeout != DefaultConnectTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultConnectTimeout)
	}
	want := map[string]string{"tls": "false", "charset": "utf8", "time_zone": "'UTC'"}
	for k, v := range want {
		if cfg.Params[k] != v {
			t.Errorf("Params[%q] = %q, want %q", k, cfg.Params[k], v)
		}
	}
}

func TestDSNConfigExtraParams(t *testing.T) {
	t.Parallel()
	cfg, err := dsnConfig(Params{
		Host:     "db.internal",
		Port:     3306,
		Database: "demo",
		Extra:    "tls=preferred&collation=utf8mb4_general_ci",
	}, Timeouts{}.withDefaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Params["tls"] != "preferred" {
		t.Errorf("Params[tls] = %q, want %q", cfg.Params["tls"], "preferred")
	}
	if cfg.Params["collation"] != "utf8mb4_general_ci" {
		t.Errorf("Params[collation] = %q", cfg.Params["collation"])
	}
	// Explicit params fully replace the defaults.
	if _, ok := cfg.Params["charset"]; ok {
		t.Error("defaults must not leak into explicit params")
	}
}

func TestParseExtraParamsMalformed(t *testing.T) {
	t.Parallel()
	for _, extra := range []string{"novalue", "=bare", "a=1&broken"} {
		_, err := parseExtraParams(extra)
		if !errors.Is(err, dberr.ErrInvalidArgument) {
			t.Errorf("parseExtraParams(%q) error = %v, want ErrInvalidArgument", extra, err)
		}
	}
}

func TestRedactedURL(t *testing.T) {
	t.Parallel()
	cfg, err := dsnConfig(Params{
		Host:     "db.internal",
		Port:     3306,
		Database: "demo",
		Username: "app",
		Password: "hunter2",
	}, Timeouts{}.withDefaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url := redactedURL(cfg)
	if strings.Contains(url, "hunter2") {
		t.Errorf("canonical URL must not contain the password: %q", url)
	}
	if !strings.Contains(url, "demo") {
		t.Errorf("canonical URL should name the database: %q", url)
	}
	// Redaction must not mutate the original config.
	if cfg.Passwd != "hunter2" {
		t.Error("redactedURL must operate on a copy")
	}
}

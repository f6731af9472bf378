package shaper

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ashersu/mysql-mcp/internal/dberr"
)

func TestQueryRejectsNonSelectBeforeTouchingConnection(t *testing.T) {
	t.Parallel()
	statements := []string{
		"UPDATE t SET x = 1",
		"  \t DELETE FROM t",
		"insert into t values (1)",
		"",
		"   ",
	}
	for _, stmt := range statements {
		// db is nil: a rejected statement must never reach it.
		_, err := Query(context.Background(), nil, stmt, 100, 100)
		if !errors.Is(err, dberr.ErrStatementNotAllowed) {
			t.Errorf("Query(%q) error = %v, want ErrStatementNotAllowed", stmt, err)
		}
	}
}

func TestIsRead(t *testing.T) {
	t.Parallel()
	tests := []struct {
		query string
		want  bool
	}{
		{"SELECT 1", true},
		{"select * from t", true},
		{"  \n\tSeLeCt id FROM t", true},
		{"UPDATE t SET x=1", false},
		{"WITH cte AS (SELECT 1) SELECT * FROM cte", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isRead(tt.query); got != tt.want {
			t.Errorf("isRead(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestTruncateField(t *testing.T) {
	t.Parallel()
	t.Run("over cap", func(t *testing.T) {
		long := strings.Repeat("x", 50)
		got := truncateField(long, 20)
		want := strings.Repeat("x", 20) + "...(truncated,len=50)"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
	t.Run("at cap", func(t *testing.T) {
		s := strings.Repeat("x", 20)
		if got := truncateField(s, 20); got != s {
			t.Errorf("value at the cap must pass unchanged, got %q", got)
		}
	})
	t.Run("under cap", func(t *testing.T) {
		if got := truncateField("short", 20); got != "short" {
			t.Errorf("got %q, want %q", got, "short")
		}
	})
	t.Run("multibyte runes", func(t *testing.T) {
		long := strings.Repeat("é", 30)
		got := truncateField(long, 10)
		want := strings.Repeat("é", 10) + "...(truncated,len=30)"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func TestShapeValue(t *testing.T) {
	t.Parallel()
	t.Run("nil passes through", func(t *testing.T) {
		if got := shapeValue(nil, 10); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
	t.Run("utf8 bytes become truncated string", func(t *testing.T) {
		got := shapeValue([]byte(strings.Repeat("a", 15)), 10)
		want := strings.Repeat("a", 10) + "...(truncated,len=15)"
		if got != want {
			t.Errorf("got %v, want %q", got, want)
		}
	})
	t.Run("binary bytes are base64 and never truncated", func(t *testing.T) {
		got := shapeValue([]byte{0xff, 0xfe, 0x00, 0x01}, 2)
		s, ok := got.(string)
		if !ok || strings.Contains(s, "truncated") {
			t.Errorf("binary value must not be truncated, got %v", got)
		}
	})
	t.Run("numbers pass through regardless of cap", func(t *testing.T) {
		if got := shapeValue(int64(1234567890), 3); got != int64(1234567890) {
			t.Errorf("got %v, want 1234567890", got)
		}
	})
	t.Run("time formats as RFC3339Nano", func(t *testing.T) {
		ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
		if got := shapeValue(ts, 5); got != "2024-05-01T12:30:00Z" {
			t.Errorf("got %v", got)
		}
	})
}

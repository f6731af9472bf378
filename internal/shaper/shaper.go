// Package shaper executes read-only statements against a pooled connection
// and converts the driver's row cursor into bounded, size-capped records.
//
// The row cap is a streaming limit: iteration stops as soon as the cap is
// reached, so excess rows are never materialized. The field cap truncates
// textual values and appends a marker encoding the original length.
package shaper

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ashersu/mysql-mcp/internal/dberr"
)

const readKeyword = "select"

// Result holds shaped rows. Columns preserves the driver-reported label order;
// each row maps column label to shaped value.
type Result struct {
	Columns []string
	Rows    []map[string]any
}

// Query runs a SELECT statement and returns at most maxRows shaped rows.
// Statements whose trimmed, lower-cased form does not begin with "select" are
// rejected before any connection is touched.
func Query(ctx context.Context, db *sql.DB, query string, maxRows, maxFieldLength int, args ...any) (*Result, error) {
	if !isRead(query) {
		return nil, fmt.Errorf("%w: only SELECT statements are allowed", dberr.ErrStatementNotAllowed)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query failed: %v", dberr.ErrExecutionFailed, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: reading columns: %v", dberr.ErrExecutionFailed, err)
	}

	shaped := make([]map[string]any, 0)
	for rows.Next() {
		if len(shaped) >= maxRows {
			break
		}
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: reading row: %v", dberr.ErrExecutionFailed, err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = shapeValue(values[i], maxFieldLength)
		}
		shaped = append(shaped, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading results: %v", dberr.ErrExecutionFailed, err)
	}

	return &Result{Columns: columns, Rows: shaped}, nil
}

func isRead(query string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(query)), readKeyword)
}

// shapeValue converts a driver-returned value to a JSON-friendly type and
// applies the field cap to textual values. Non-textual values pass through
// unchanged regardless of length.
func shapeValue(v any, maxFieldLength int) any {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return truncateField(val, maxFieldLength)
	case []byte:
		if utf8.Valid(val) {
			return truncateField(string(val), maxFieldLength)
		}
		return base64.StdEncoding.EncodeToString(val)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return val
	}
}

// truncateField caps s at max characters. A value of original length L > max
// becomes the first max characters followed by "...(truncated,len=L)".
func truncateField(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return fmt.Sprintf("%s...(truncated,len=%d)", string(runes[:max]), len(runes))
}

package mymcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashersu/mysql-mcp/internal/shaper"
)

const listTablesSQL = `SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE()`

const tableSchemaSQL = `SELECT
    column_name AS COLUMN_NAME,
    data_type AS DATA_TYPE,
    is_nullable AS IS_NULLABLE,
    column_default AS COLUMN_DEFAULT
FROM information_schema.columns
WHERE table_name = ? AND table_schema = DATABASE()`

// ListAllTablesName returns all table names of the connection's current
// schema, comma separated. Routed through the result shaper like any read.
func (m *MySQLMcp) ListAllTablesName(ctx context.Context, connectionID string) (string, error) {
	res, err := m.registry.Get(connectionID)
	if err != nil {
		return "", err
	}

	result, err := shaper.Query(ctx, res.DB(), listTablesSQL, m.limits.MaxQueryRows(), m.limits.MaxFieldLength())
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		names = append(names, fmt.Sprint(row[result.Columns[0]]))
	}
	return strings.Join(names, ","), nil
}

// GetTableSchema returns column name, data type, nullability, and default for
// every column of the given table in the connection's current schema.
func (m *MySQLMcp) GetTableSchema(ctx context.Context, connectionID, tableName string) (*QueryOutput, error) {
	res, err := m.registry.Get(connectionID)
	if err != nil {
		return nil, err
	}

	result, err := shaper.Query(ctx, res.DB(), tableSchemaSQL, m.limits.MaxQueryRows(), m.limits.MaxFieldLength(), tableName)
	if err != nil {
		return nil, err
	}
	return &QueryOutput{Columns: result.Columns, Rows: result.Rows}, nil
}

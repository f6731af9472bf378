package mymcp

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMCPTools registers the full tool surface on the given MCP server:
// connection lifecycle, guarded query/update execution, schema inspection,
// write gate administration, result limits, and the write audit log.
func RegisterMCPTools(mcpServer *server.MCPServer, engine *MySQLMcp) {
	registerConnectionTools(mcpServer, engine)
	registerQueryTools(mcpServer, engine)
	registerWriteTools(mcpServer, engine)
	registerLimitTools(mcpServer, engine)
	registerAuditTools(mcpServer, engine)
}

func registerConnectionTools(mcpServer *server.MCPServer, engine *MySQLMcp) {
	createTool := mcp.NewTool("create_connection",
		mcp.WithDescription("Create a new MySQL connection. Returns a generated connectionId; subsequent queries must include this id."),
		mcp.WithString("host", mcp.Required(), mcp.Description("Database host, e.g. 127.0.0.1")),
		mcp.WithNumber("port", mcp.Required(), mcp.Description("Database port, e.g. 3306")),
		mcp.WithString("database", mcp.Required(), mcp.Description("Database (schema) name")),
		mcp.WithString("username", mcp.Description("Login user")),
		mcp.WithString("password", mcp.Description("Login password")),
		mcp.WithString("params", mcp.Description("Extra driver parameters as key=value pairs joined with '&'. Empty selects tls=false&charset=utf8&time_zone='UTC'.")),
	)
	mcpServer.AddTool(createTool, engine.loggedToolHandler("create_connection", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, err := connectionInput(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		output, err := engine.CreateConnection(ctx, input)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(output)
	}))

	createAdvancedTool := mcp.NewTool("create_connection_advanced",
		mcp.WithDescription("Create a new MySQL connection with explicit pool timeout overrides (milliseconds). Returns a generated connectionId."),
		mcp.WithString("host", mcp.Required(), mcp.Description("Database host")),
		mcp.WithNumber("port", mcp.Required(), mcp.Description("Database port")),
		mcp.WithString("database", mcp.Required(), mcp.Description("Database (schema) name")),
		mcp.WithString("username", mcp.Description("Login user")),
		mcp.WithString("password", mcp.Description("Login password")),
		mcp.WithString("params", mcp.Description("Extra driver parameters as key=value pairs joined with '&'")),
		mcp.WithNumber("connection_timeout_ms", mcp.Description("Connection acquire timeout in ms (default 10000)")),
		mcp.WithNumber("idle_timeout_ms", mcp.Description("Idle eviction timeout in ms (default 300000)")),
		mcp.WithNumber("max_lifetime_ms", mcp.Description("Maximum connection lifetime in ms (default 1800000)")),
	)
	mcpServer.AddTool(createAdvancedTool, engine.loggedToolHandler("create_connection_advanced", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, err := connectionInput(req)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		timeouts := PoolTimeouts{
			ConnectionTimeoutMs: int64(req.GetInt("connection_timeout_ms", 0)),
			IdleTimeoutMs:       int64(req.GetInt("idle_timeout_ms", 0)),
			MaxLifetimeMs:       int64(req.GetInt("max_lifetime_ms", 0)),
		}
		output, err := engine.CreateConnectionAdvanced(ctx, input, timeouts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(output)
	}))

	listTool := mcp.NewTool("list_connections",
		mcp.WithDescription("List all active connectionIds and their canonical URLs (credentials redacted)."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	mcpServer.AddTool(listTool, engine.loggedToolHandler("list_connections", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(engine.ListConnections())
	}))

	closeTool := mcp.NewTool("close_connection",
		mcp.WithDescription("Close and remove a connection by connectionId. Returns true if removed."),
		mcp.WithString("connection_id", mcp.Required(), mcp.Description("The connectionId to close")),
	)
	mcpServer.AddTool(closeTool, engine.loggedToolHandler("close_connection", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		connectionID, err := req.RequireString("connection_id")
		if err != nil {
			return mcp.NewToolResultError("connection_id parameter is required"), nil
		}
		return mcp.NewToolResultText(strconv.FormatBool(engine.CloseConnection(connectionID))), nil
	}))
}

func registerQueryTools(mcpServer *server.MCPServer, engine *MySQLMcp) {
	queryTool := mcp.NewTool("query_with_connection",
		mcp.WithDescription("Execute a SELECT statement on the given connectionId and return shaped rows. Only SELECT is allowed; results are bounded by the row and field caps."),
		mcp.WithString("connection_id", mcp.Required(), mcp.Description("The connectionId to query")),
		mcp.WithString("sql", mcp.Required(), mcp.Description("The SELECT statement to execute")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	mcpServer.AddTool(queryTool, engine.loggedToolHandler("query_with_connection", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		connectionID, err := req.RequireString("connection_id")
		if err != nil {
			return mcp.NewToolResultError("connection_id parameter is required"), nil
		}
		sql, err := req.RequireString("sql")
		if err != nil {
			return mcp.NewToolResultError("sql parameter is required"), nil
		}
		output, err := engine.Query(ctx, connectionID, sql)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(output)
	}))

	listTablesTool := mcp.NewTool("list_all_tables_name",
		mcp.WithDescription("List all table names (comma separated) of the connection's current schema."),
		mcp.WithString("connection_id", mcp.Required(), mcp.Description("The connectionId to inspect")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	mcpServer.AddTool(listTablesTool, engine.loggedToolHandler("list_all_tables_name", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		connectionID, err := req.RequireString("connection_id")
		if err != nil {
			return mcp.NewToolResultError("connection_id parameter is required"), nil
		}
		names, err := engine.ListAllTablesName(ctx, connectionID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(names), nil
	}))

	schemaTool := mcp.NewTool("get_table_schema",
		mcp.WithDescription("Get table schema (column name, data type, nullability, default) for a table on the given connectionId."),
		mcp.WithString("connection_id", mcp.Required(), mcp.Description("The connectionId to inspect")),
		mcp.WithString("table", mcp.Required(), mcp.Description("The table name to describe")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	mcpServer.AddTool(schemaTool, engine.loggedToolHandler("get_table_schema", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		connectionID, err := req.RequireString("connection_id")
		if err != nil {
			return mcp.NewToolResultError("connection_id parameter is required"), nil
		}
		table, err := req.RequireString("table")
		if err != nil {
			return mcp.NewToolResultError("table parameter is required"), nil
		}
		output, err := engine.GetTableSchema(ctx, connectionID, table)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(output)
	}))
}

func registerWriteTools(mcpServer *server.MCPServer, engine *MySQLMcp) {
	executeTool := mcp.NewTool("execute_update_with_connection",
		mcp.WithDescription("Execute a non-SELECT (INSERT/UPDATE/DELETE/DDL) statement if writes are enabled and its first keyword is whitelisted. Returns affected rows."),
		mcp.WithString("connection_id", mcp.Required(), mcp.Description("The connectionId to execute on")),
		mcp.WithString("sql", mcp.Required(), mcp.Description("The statement to execute")),
	)
	mcpServer.AddTool(executeTool, engine.loggedToolHandler("execute_update_with_connection", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		connectionID, err := req.RequireString("connection_id")
		if err != nil {
			return mcp.NewToolResultError("connection_id parameter is required"), nil
		}
		sql, err := req.RequireString("sql")
		if err != nil {
			return mcp.NewToolResultError("sql parameter is required"), nil
		}
		affected, err := engine.ExecuteUpdate(ctx, connectionID, sql)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(strconv.FormatInt(affected, 10)), nil
	}))

	enableTool := mcp.NewTool("enable_write_operations",
		mcp.WithDescription("Enable non-SELECT (write/DDL) operations globally. Returns true if the state changed."),
	)
	mcpServer.AddTool(enableTool, engine.loggedToolHandler("enable_write_operations", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(strconv.FormatBool(engine.EnableWriteOperations())), nil
	}))

	disableTool := mcp.NewTool("disable_write_operations",
		mcp.WithDescription("Disable non-SELECT (write/DDL) operations globally. Returns true if the state changed."),
	)
	mcpServer.AddTool(disableTool, engine.loggedToolHandler("disable_write_operations", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(strconv.FormatBool(engine.DisableWriteOperations())), nil
	}))

	isEnabledTool := mcp.NewTool("is_write_enabled",
		mcp.WithDescription("Return whether non-SELECT (write/DDL) operations are currently enabled."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	mcpServer.AddTool(isEnabledTool, engine.loggedToolHandler("is_write_enabled", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(strconv.FormatBool(engine.IsWriteEnabled())), nil
	}))

	listWhitelistTool := mcp.NewTool("list_write_whitelist",
		mcp.WithDescription("List the whitelisted non-SELECT keywords, sorted."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	mcpServer.AddTool(listWhitelistTool, engine.loggedToolHandler("list_write_whitelist", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(engine.ListWriteWhitelist())
	}))

	addTool := mcp.NewTool("add_allowed_write_command",
		mcp.WithDescription("Add a keyword to the non-SELECT whitelist. Returns true if added."),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("The SQL keyword to allow, e.g. insert")),
	)
	mcpServer.AddTool(addTool, engine.loggedToolHandler("add_allowed_write_command", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyword, err := req.RequireString("keyword")
		if err != nil {
			return mcp.NewToolResultError("keyword parameter is required"), nil
		}
		return mcp.NewToolResultText(strconv.FormatBool(engine.AddAllowedWriteCommand(keyword))), nil
	}))

	removeTool := mcp.NewTool("remove_allowed_write_command",
		mcp.WithDescription("Remove a keyword from the non-SELECT whitelist. Returns true if removed."),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("The SQL keyword to disallow")),
	)
	mcpServer.AddTool(removeTool, engine.loggedToolHandler("remove_allowed_write_command", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keyword, err := req.RequireString("keyword")
		if err != nil {
			return mcp.NewToolResultError("keyword parameter is required"), nil
		}
		return mcp.NewToolResultText(strconv.FormatBool(engine.RemoveAllowedWriteCommand(keyword))), nil
	}))
}

func registerLimitTools(mcpServer *server.MCPServer, engine *MySQLMcp) {
	setRowsTool := mcp.NewTool("set_max_query_rows",
		mcp.WithDescription("Set the maximum rows returned by SELECT queries; returns the previous value. Applies to future queries."),
		mcp.WithNumber("rows", mcp.Required(), mcp.Description("New row cap, must be > 0")),
	)
	mcpServer.AddTool(setRowsTool, engine.loggedToolHandler("set_max_query_rows", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rows, err := req.RequireInt("rows")
		if err != nil {
			return mcp.NewToolResultError("rows parameter is required"), nil
		}
		prev, err := engine.SetMaxQueryRows(rows)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(strconv.Itoa(prev)), nil
	}))

	setFieldTool := mcp.NewTool("set_max_field_length",
		mcp.WithDescription("Set the maximum characters per text field; returns the previous value. Longer values are truncated with a marker."),
		mcp.WithNumber("length", mcp.Required(), mcp.Description("New field cap, must be > 0")),
	)
	mcpServer.AddTool(setFieldTool, engine.loggedToolHandler("set_max_field_length", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		length, err := req.RequireInt("length")
		if err != nil {
			return mcp.NewToolResultError("length parameter is required"), nil
		}
		prev, err := engine.SetMaxFieldLength(length)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(strconv.Itoa(prev)), nil
	}))

	getLimitsTool := mcp.NewTool("get_result_limit_config",
		mcp.WithDescription("Get the current max query rows and max field length limits."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	mcpServer.AddTool(getLimitsTool, engine.loggedToolHandler("get_result_limit_config", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(engine.ResultLimitConfig())
	}))
}

func registerAuditTools(mcpServer *server.MCPServer, engine *MySQLMcp) {
	listAuditTool := mcp.NewTool("list_write_audit",
		mcp.WithDescription("Return write audit entries (most recent first) limited by 'limit'. Each entry contains timestamp, connectionId, verb, durationMs, affectedRows."),
		mcp.WithNumber("limit", mcp.Required(), mcp.Description("Maximum entries to return")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
	mcpServer.AddTool(listAuditTool, engine.loggedToolHandler("list_write_audit", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit, err := req.RequireInt("limit")
		if err != nil {
			return mcp.NewToolResultError("limit parameter is required"), nil
		}
		return jsonResult(engine.ListWriteAudit(limit))
	}))

	clearAuditTool := mcp.NewTool("clear_write_audit",
		mcp.WithDescription("Clear all write audit entries; returns the number cleared."),
	)
	mcpServer.AddTool(clearAuditTool, engine.loggedToolHandler("clear_write_audit", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(strconv.Itoa(engine.ClearWriteAudit())), nil
	}))
}

// connectionInput extracts the shared endpoint parameters of the create tools.
func connectionInput(req mcp.CallToolRequest) (CreateConnectionInput, error) {
	host, err := req.RequireString("host")
	if err != nil {
		return CreateConnectionInput{}, err
	}
	port, err := req.RequireInt("port")
	if err != nil {
		return CreateConnectionInput{}, err
	}
	database, err := req.RequireString("database")
	if err != nil {
		return CreateConnectionInput{}, err
	}
	return CreateConnectionInput{
		Host:     host,
		Port:     port,
		Database: database,
		Username: req.GetString("username", ""),
		Password: req.GetString("password", ""),
		Params:   req.GetString("params", ""),
	}, nil
}

// jsonResult marshals v as the tool's text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError("failed to marshal tool result"), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// loggedToolHandler wraps a tool handler to log request and response lengths.
func (m *MySQLMcp) loggedToolHandler(tool string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reqLen := requestLength(req)
		result, err := handler(ctx, req)
		respLen := resultLength(result)
		m.logger.Info().
			Str("tool", tool).
			Int("request_bytes", reqLen).
			Int("response_bytes", respLen).
			Msg("tool call")
		return result, err
	}
}

// requestLength returns the JSON-encoded byte length of the request arguments.
func requestLength(req mcp.CallToolRequest) int {
	args := req.GetArguments()
	if len(args) == 0 {
		return 0
	}
	b, err := json.Marshal(args)
	if err != nil {
		return 0
	}
	return len(b)
}

// resultLength returns the total byte length of text content in a CallToolResult.
func resultLength(result *mcp.CallToolResult) int {
	if result == nil {
		return 0
	}
	total := 0
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			total += len(tc.Text)
		}
	}
	return total
}

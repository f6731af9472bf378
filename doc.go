// Package mymcp provides controlled, ad-hoc MySQL access for AI agents
// through the Model Context Protocol (MCP).
//
// Unlike servers bound to a single database at startup, mymcp lets the agent
// open connections at runtime: createConnection returns an opaque
// connectionId backed by a validated connection pool, and every subsequent
// tool call routes through that handle. On top of the registry sits a guarded
// execution engine: reads are limited to SELECT and shaped by row/field caps,
// writes must pass a global switch plus a first-keyword whitelist, and every
// successful write lands in a bounded in-memory audit ring.
//
// # Library Usage
//
//	engine := mymcp.New(mymcp.Config{
//		Write: mymcp.WriteConfig{Enabled: false},
//	}, logger)
//	defer engine.Close(ctx)
//
//	out, err := engine.CreateConnection(ctx, mymcp.CreateConnectionInput{
//		Host:     "127.0.0.1",
//		Port:     3306,
//		Database: "demo",
//		Username: "app",
//		Password: "secret",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := engine.Query(ctx, out.ConnectionID, "SELECT * FROM users LIMIT 10")
//
//	// Or register the full tool surface on an MCP server:
//	mymcp.RegisterMCPTools(mcpServer, engine)
//
// All state (connections, whitelist, limits, audit) is in-memory and resets
// on process restart. The engine trusts its caller's identity; it restricts
// statement shape and result volume, not access.
package mymcp

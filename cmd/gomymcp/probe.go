package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	mymcp "github.com/ashersu/mysql-mcp"
	"github.com/ashersu/mysql-mcp/internal/meta"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func runProbe() error {
	fs := flag.NewFlagSet("probe", flag.ExitOnError)
	configPath := fs.String("config", ".gomymcp/config.json", "Path to configuration file")
	host := fs.String("host", "", "MySQL host to probe (skips the live probe when empty)")
	port := fs.Int("port", 3306, "MySQL port")
	database := fs.String("database", "", "Database (schema) name")
	params := fs.String("params", "", "Extra driver parameters (key=value pairs joined with '&')")
	fs.Parse(os.Args[2:])

	useColor := isTTY(os.Stderr.Fd())
	config, ok := probeValidateConfig(os.Stderr, useColor, *configPath)
	if !ok {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Fix the issues above and run 'gomymcp probe' again.")
		return nil
	}

	if *host != "" {
		if err := probeConnection(os.Stderr, useColor, config, *host, *port, *database, *params); err != nil {
			return err
		}
	}

	fmt.Fprintln(os.Stderr)
	printAgentSnippets(os.Stderr, useColor, config)
	return nil
}

// probeValidateConfig loads and validates the config file, printing check results.
// Returns the parsed config and true if all checks passed.
func probeValidateConfig(w io.Writer, useColor bool, configPath string) (*mymcp.ServerConfig, bool) {
	printBanner(w, useColor)
	fmt.Fprintf(w, "gomymcp %s\n\n", meta.Version)

	allPassed := true

	// Check 1: Config file exists and is valid JSON
	data, err := os.ReadFile(configPath)
	if err != nil {
		printCheck(w, useColor, false, fmt.Sprintf("Config file readable (%s)", configPath))
		return nil, false
	}
	printCheck(w, useColor, true, fmt.Sprintf("Config file readable (%s)", configPath))

	var config mymcp.ServerConfig
	if err := json.Unmarshal(data, &config); err != nil {
		printCheck(w, useColor, false, fmt.Sprintf("Config file is valid JSON: %v", err))
		return nil, false
	}
	printCheck(w, useColor, true, "Config file is valid JSON")

	// Check 2: server.port > 0
	if config.Server.Port <= 0 {
		printCheck(w, useColor, false, "server.port is > 0")
		allPassed = false
	} else {
		printCheck(w, useColor, true, fmt.Sprintf("server.port is > 0 (%d)", config.Server.Port))
	}

	// Check 3: Health check path set when enabled
	if config.Server.HealthCheckEnabled {
		if config.Server.HealthCheckPath == "" {
			printCheck(w, useColor, false, "health_check_path is set (required when health_check_enabled)")
			allPassed = false
		} else {
			printCheck(w, useColor, true, fmt.Sprintf("health_check_path is set (%s)", config.Server.HealthCheckPath))
		}
	}

	// Check 4: limits are non-negative (zero selects the defaults)
	if config.Limits.MaxQueryRows < 0 || config.Limits.MaxFieldLength < 0 {
		printCheck(w, useColor, false, "limits are >= 0")
		allPassed = false
	} else {
		printCheck(w, useColor, true, "limits are >= 0")
	}
	if config.Audit.MaxEntries < 0 {
		printCheck(w, useColor, false, "audit.max_entries is >= 0")
		allPassed = false
	} else {
		printCheck(w, useColor, true, "audit.max_entries is >= 0")
	}

	return &config, allPassed
}

// probeConnection opens a real connection through the engine, lists the
// schema's tables, and closes it again. Credentials are prompted, never
// taken from flags.
func probeConnection(w io.Writer, useColor bool, config *mymcp.ServerConfig, host string, port int, database, params string) error {
	ctx := context.Background()

	username := promptInput("Username: ")
	password := promptPassword("Password: ")

	engine := mymcp.New(config.Config, zerolog.Nop())
	defer engine.Close(ctx)

	output, err := engine.CreateConnection(ctx, mymcp.CreateConnectionInput{
		Host:     host,
		Port:     port,
		Database: database,
		Username: username,
		Password: password,
		Params:   params,
	})
	if err != nil {
		printCheck(w, useColor, false, fmt.Sprintf("Connection established: %v", err))
		return nil
	}
	printCheck(w, useColor, true, fmt.Sprintf("Connection established (%s)", output.URL))

	names, err := engine.ListAllTablesName(ctx, output.ConnectionID)
	if err != nil {
		printCheck(w, useColor, false, fmt.Sprintf("Schema readable: %v", err))
	} else {
		tableCount := 0
		if names != "" {
			tableCount = len(strings.Split(names, ","))
		}
		printCheck(w, useColor, true, fmt.Sprintf("Schema readable (%d tables)", tableCount))
	}

	engine.CloseConnection(output.ConnectionID)
	printCheck(w, useColor, true, "Connection closed")
	return nil
}

// printCheck prints a colored ✓ or ✗ check line.
func printCheck(w io.Writer, useColor bool, pass bool, msg string) {
	if pass {
		if useColor {
			fmt.Fprintf(w, "  \033[32m✓\033[0m %s\n", msg)
		} else {
			fmt.Fprintf(w, "  ✓ %s\n", msg)
		}
	} else {
		if useColor {
			fmt.Fprintf(w, "  \033[31m✗\033[0m %s\n", msg)
		} else {
			fmt.Fprintf(w, "  ✗ %s\n", msg)
		}
	}
}

// printAgentSnippets prints MCP connection config snippets for various AI agents.
func printAgentSnippets(w io.Writer, useColor bool, config *mymcp.ServerConfig) {
	port := config.Server.Port
	url := fmt.Sprintf("http://localhost:%d/mcp", port)

	heading := func(title string) {
		if useColor {
			fmt.Fprintf(w, "\033[1;36m%s\033[0m\n", title)
		} else {
			fmt.Fprintln(w, title)
		}
	}

	subheading := func(title string) {
		if useColor {
			fmt.Fprintf(w, "  \033[1m%s\033[0m\n", title)
		} else {
			fmt.Fprintf(w, "  %s\n", title)
		}
	}

	heading("Agent Connection Snippets")
	fmt.Fprintln(w)

	// Claude Code
	subheading("Claude Code")
	fmt.Fprintf(w, "  Run this command to add the server:\n\n")
	fmt.Fprintf(w, "    claude mcp add --transport http mysql %s\n\n", url)
	fmt.Fprintf(w, "  Or add to .mcp.json (project scope):\n\n")
	fmt.Fprintf(w, `  {
    "mcpServers": {
      "mysql": {
        "type": "http",
        "url": "%s"
      }
    }
  }
`, url)
	fmt.Fprintln(w)

	// Gemini CLI
	subheading("Gemini CLI (~/.gemini/settings.json)")
	fmt.Fprintf(w, `  {
    "mcpServers": {
      "mysql": {
        "httpUrl": "%s"
      }
    }
  }
`, url)
	fmt.Fprintln(w)

	// Cursor
	subheading("Cursor (.cursor/mcp.json)")
	fmt.Fprintf(w, `  {
    "mcpServers": {
      "mysql": {
        "url": "%s"
      }
    }
  }
`, url)
}

func promptInput(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	var input string
	fmt.Scanln(&input)
	return input
}

func promptPassword(prompt string) string {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr) // newline after password input
	if err != nil {
		return ""
	}
	return string(password)
}

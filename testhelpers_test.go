package mymcp_test

import (
	"os"
	"strconv"
	"testing"

	mymcp "github.com/ashersu/mysql-mcp"
	"github.com/rs/zerolog"
)

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.Disabled)
}

func newTestEngine(t *testing.T, config mymcp.Config) *mymcp.MySQLMcp {
	t.Helper()
	engine := mymcp.New(config, testLogger())
	t.Cleanup(func() { engine.Close(t.Context()) })
	return engine
}

// integrationInput reads the live-database coordinates from the environment.
// Tests needing a real MySQL server skip when GOMYMCP_TEST_HOST is unset.
func integrationInput(t *testing.T) mymcp.CreateConnectionInput {
	t.Helper()
	host := os.Getenv("GOMYMCP_TEST_HOST")
	if host == "" {
		t.Skip("GOMYMCP_TEST_HOST not set, skipping integration test")
	}
	port := 3306
	if raw := os.Getenv("GOMYMCP_TEST_PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			t.Fatalf("invalid GOMYMCP_TEST_PORT %q: %v", raw, err)
		}
		port = p
	}
	database := os.Getenv("GOMYMCP_TEST_DATABASE")
	if database == "" {
		t.Skip("GOMYMCP_TEST_DATABASE not set, skipping integration test")
	}
	return mymcp.CreateConnectionInput{
		Host:     host,
		Port:     port,
		Database: database,
		Username: os.Getenv("GOMYMCP_TEST_USERNAME"),
		Password: os.Getenv("GOMYMCP_TEST_PASSWORD"),
	}
}

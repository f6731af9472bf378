package registry

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/ashersu/mysql-mcp/internal/dberr"
)

// defaultParams disables TLS negotiation and fixes UTF-8 encoding plus a UTC
// session time zone. Applied when the caller supplies no extra parameters.
func defaultParams() map[string]string {
	return map[string]string{
		"tls":       "false",
		"charset":   "utf8",
		"time_zone": "'UTC'",
	}
}

// dsnConfig builds the driver configuration for one endpoint.
func dsnConfig(p Params, to Timeouts) (*mysql.Config, error) {
	cfg := mysql.NewConfig()
	cfg.User = p.Username
	cfg.Passwd = p.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	cfg.DBName = p.Database
	cfg.Timeout = to.Connect
	cfg.ParseTime = true // temporal columns surface as time.Time

	params, err := parseExtraParams(p.Extra)
	if err != nil {
		return nil, err
	}
	cfg.Params = params
	return cfg, nil
}

// parseExtraParams splits a raw "key=value&key=value" segment into driver
// parameters. An empty segment selects the safe defaults.
func parseExtraParams(extra string) (map[string]string, error) {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return defaultParams(), nil
	}
	params := make(map[string]string)
	for _, pair := range strings.Split(extra, "&") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: malformed driver parameter %q", dberr.ErrInvalidArgument, pair)
		}
		params[key] = value
	}
	return params, nil
}

// redactedURL renders the canonical DSN with the password stripped.
func redactedURL(cfg *mysql.Config) string {
	redacted := *cfg
	redacted.Passwd = ""
	return redacted.FormatDSN()
}

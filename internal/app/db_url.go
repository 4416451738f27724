package app

import (
	"net/url"
	"strings"
)

// connAppName labels this process's connections in pg_stat_activity.
const connAppName = "cricket-live-api"

type connOption struct {
	key   string
	value string
}

// prepareDBURL stamps service-level connection options onto the configured
// postgres URL or key=value DSN. Options already set explicitly are left
// alone. disable_prepared_binary_result is required when the pool sits
// behind pgbouncer in transaction mode.
func prepareDBURL(raw string, disablePreparedBinaryResult bool) string {
	options := []connOption{{key: "application_name", value: connAppName}}
	if disablePreparedBinaryResult {
		options = append(options, connOption{key: "disable_prepared_binary_result", value: "yes"})
	}

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		query := parsed.Query()
		for _, opt := range options {
			if query.Get(opt.key) == "" {
				query.Set(opt.key, opt.value)
			}
		}
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	dsn := strings.TrimSpace(raw)
	for _, opt := range options {
		if strings.Contains(dsn, opt.key+"=") {
			continue
		}
		dsn = strings.TrimSpace(dsn + " " + opt.key + "=" + opt.value)
	}
	return dsn
}

// dbNameFromURL extracts the database name so query spans carry it.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" {
		if name := strings.TrimPrefix(parsed.Path, "/"); name != "" {
			return name
		}
	}
	for _, token := range strings.Fields(trimmed) {
		if value, ok := strings.CutPrefix(token, "dbname="); ok {
			if name := strings.Trim(value, `"'`); name != "" {
				return name
			}
		}
	}
	return ""
}

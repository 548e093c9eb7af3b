package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/hockey-league/internal/config"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

var nowUTC = func() time.Time { return time.Now().UTC() }

// openDatabase opens Postgres through otelsqlx so every query is traced.
func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

const maxTracedQueryRunes = 512

// formatDBQueryForTrace collapses whitespace and caps the span attribute
// length. The cut is rune-aligned so Cyrillic literals stay valid UTF-8.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if utf8.RuneCountInString(normalized) <= maxTracedQueryRunes {
		return normalized
	}

	runes := []rune(normalized)
	return string(runes[:maxTracedQueryRunes]) + "..."
}

const preparedBinaryParam = "disable_prepared_binary_result"

// NormalizeDBURL turns off binary results for prepared statements, which
// poolers in transaction mode cannot serve. Both URL and key=value DSNs are
// accepted; an explicit setting in the DSN wins.
func NormalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	if !strings.Contains(raw, "://") {
		if _, ok := dsnValue(raw, preparedBinaryParam); ok {
			return raw
		}
		return strings.TrimSpace(raw) + " " + preparedBinaryParam + "=yes"
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has(preparedBinaryParam) {
		return raw
	}
	q.Set(preparedBinaryParam, "yes")
	u.RawQuery = q.Encode()
	return u.String()
}

func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "://") {
		if u, err := url.Parse(raw); err == nil {
			return strings.Trim(u.Path, "/ ")
		}
		return ""
	}

	name, _ := dsnValue(raw, "dbname")
	return name
}

func dsnValue(dsn, key string) (string, bool) {
	for _, field := range strings.Fields(dsn) {
		k, v, ok := strings.Cut(field, "=")
		if ok && k == key {
			return strings.Trim(v, `"'`), true
		}
	}
	return "", false
}

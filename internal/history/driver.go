package history

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
)

// Dialect distinguishes the SQL placeholder syntax a driver expects.
type Dialect string

const (
	// DialectPostgres uses $N positional placeholders, native to pgx/v5 and
	// lib/pq.
	DialectPostgres Dialect = "postgres"
	// DialectSQLite uses "?" positional placeholders; SQLStore's queries are
	// written Postgres-style and rebound for this dialect before execution.
	DialectSQLite Dialect = "sqlite"
)

// Open opens dsn against the driver selected by its connection-string
// scheme: "postgres://" dispatches to pgx/v5's stdlib adapter (registered as
// "pgx"), "postgresql://" dispatches to lib/pq (registered as "postgres"),
// and "file:" or "sqlite://" dispatch to mattn/go-sqlite3 (registered as
// "sqlite3").
func Open(dsn string) (*sql.DB, Dialect, error) {
	driver, dialect, conn, err := driverForDSN(dsn)
	if err != nil {
		return nil, "", err
	}
	db, err := sql.Open(driver, conn)
	if err != nil {
		return nil, "", err
	}
	return db, dialect, nil
}

func driverForDSN(dsn string) (driver string, dialect Dialect, conn string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"):
		return "pgx", DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "postgresql://"):
		return "postgres", DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return "sqlite3", DialectSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"):
		return "sqlite3", DialectSQLite, dsn, nil
	default:
		return "", "", "", fmt.Errorf("history: unrecognized DSN scheme in %q (want postgres://, postgresql://, sqlite://, or file:)", dsn)
	}
}

var positionalPlaceholder = regexp.MustCompile(`\$\d+`)

// rebind rewrites a Postgres-style ($1, $2, ...) query for dialect. SQLite's
// driver only understands "?", so every SQLStore query is written once in
// Postgres form and rebound here rather than maintained twice.
func rebind(dialect Dialect, query string) string {
	if dialect != DialectSQLite {
		return query
	}
	return positionalPlaceholder.ReplaceAllString(query, "?")
}

// Package history persists RepairReports to a relational store over
// database/sql, using the same QueryContext/ExecContext usage as the rest
// of the module's storage layer. Open dispatches to the right driver from
// a connection string's scheme; SQLStore's queries are rebound per dialect.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

// ErrNotFound is returned when a lookup finds no matching record.
var ErrNotFound = errors.New("history: record not found")

// Store persists and retrieves RepairReports.
type Store interface {
	Save(ctx context.Context, report *repair.RepairReport) error
	FindByReportID(ctx context.Context, reportID string) (*repair.RepairReport, error)
	RecentByStatus(ctx context.Context, status repair.RepairStatus, limit int) ([]*repair.RepairReport, error)
}

// SQLStore is a Store over database/sql. Queries are written Postgres-style
// ($N placeholders), the native form for the pgx stdlib driver and lib/pq,
// and rebound to "?" at call time when dialect is DialectSQLite so the same
// *sql.DB opened via Open against mattn/go-sqlite3 works unmodified.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLStore wraps an already-opened *sql.DB bound to dialect. Callers own
// the DB's lifecycle (pooling, Close). Use Open to get both the *sql.DB and
// its Dialect from a single connection string.
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

// Migrate creates the repair_reports table if it doesn't already exist.
// Idempotent; safe to call on every startup.
func (s *SQLStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS repair_reports (
	report_id TEXT PRIMARY KEY,
	status TEXT NOT NULL,
	success BOOLEAN NOT NULL,
	quality_score REAL NOT NULL,
	iterations INTEGER NOT NULL,
	json_text TEXT NOT NULL,
	report_json TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`)
	return err
}

// Save inserts or replaces report keyed by its ReportID.
func (s *SQLStore) Save(ctx context.Context, report *repair.RepairReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, rebind(s.dialect, `
INSERT INTO repair_reports (report_id, status, success, quality_score, iterations, json_text, report_json, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (report_id) DO UPDATE SET
	status = excluded.status,
	success = excluded.success,
	quality_score = excluded.quality_score,
	iterations = excluded.iterations,
	json_text = excluded.json_text,
	report_json = excluded.report_json`),
		report.ReportID, string(report.Status), report.Success, report.QualityScore,
		report.Iterations, report.JSONText, string(raw), time.Now(),
	)
	return err
}

// FindByReportID returns the report stored under reportID, or ErrNotFound.
func (s *SQLStore) FindByReportID(ctx context.Context, reportID string) (*repair.RepairReport, error) {
	row := s.db.QueryRowContext(ctx,
		rebind(s.dialect, `SELECT report_json FROM repair_reports WHERE report_id = $1`), reportID)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var report repair.RepairReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// RecentByStatus returns up to limit reports with the given status, newest
// first.
func (s *SQLStore) RecentByStatus(ctx context.Context, status repair.RepairStatus, limit int) ([]*repair.RepairReport, error) {
	rows, err := s.db.QueryContext(ctx,
		rebind(s.dialect, `SELECT report_json FROM repair_reports WHERE status = $1 ORDER BY created_at DESC LIMIT $2`),
		string(status), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*repair.RepairReport
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var report repair.RepairReport
		if err := json.Unmarshal([]byte(raw), &report); err != nil {
			return nil, err
		}
		out = append(out, &report)
	}
	return out, rows.Err()
}

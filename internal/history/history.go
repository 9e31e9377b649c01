// Package history keeps an audit trail of successful exports in a
// local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Log records one row per successful export.
type Log struct {
	db *sql.DB
}

// Export is one recorded export run.
type Export struct {
	ID             int64
	Username       string
	TotalScrobbles int64
	OutputPath     string
	CreatedAt      time.Time
}

// Open opens (and if necessary bootstraps) the history database.
func Open(dbPath string) (*Log, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection keeps in-memory databases consistent and is
	// plenty for a single-shot batch job.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS exports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			total_scrobbles INTEGER NOT NULL,
			output_path TEXT NOT NULL,
			created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
		);

		CREATE INDEX IF NOT EXISTS idx_exports_created_at ON exports(created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Log{db: db}, nil
}

// Close closes the database connection
func (l *Log) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Record inserts one export row and returns its id.
func (l *Log) Record(ctx context.Context, export Export) (int64, error) {
	createdAt := export.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO exports (username, total_scrobbles, output_path, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := l.db.ExecContext(ctx, query,
		export.Username,
		export.TotalScrobbles,
		export.OutputPath,
		createdAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert export: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}

	return id, nil
}

// Recent returns the n most recent exports, newest first.
func (l *Log) Recent(ctx context.Context, n int) ([]Export, error) {
	query := `
		SELECT id, username, total_scrobbles, output_path, created_at
		FROM exports
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := l.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query exports: %w", err)
	}
	defer rows.Close()

	var exports []Export
	for rows.Next() {
		var e Export
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Username, &e.TotalScrobbles, &e.OutputPath, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		exports = append(exports, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exports: %w", err)
	}

	return exports, nil
}

// internal/history/db.go
package history

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded generator or summarizer invocation. Only run metadata
// is kept; no log content ever lands in the index.
type Run struct {
	ID         int64
	Kind       string // "generate" or "summarize"
	Path       string
	Lines      int64
	DurationMs int64
	Detail     string
	CreatedAt  time.Time
}

// DB wraps the SQLite run index.
type DB struct {
	db *sql.DB
}

// Open opens or creates the index at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL mode so a generate and a history listing can overlap
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		path TEXT NOT NULL,
		lines INTEGER NOT NULL,
		duration_ms INTEGER,
		detail TEXT,
		created_at TEXT DEFAULT (datetime('now'))
	);
	CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Insert records one completed run.
func (d *DB) Insert(r *Run) error {
	_, err := d.db.Exec(`
		INSERT INTO runs (kind, path, lines, duration_ms, detail)
		VALUES (?, ?, ?, ?, ?)
	`, r.Kind, r.Path, r.Lines, r.DurationMs, r.Detail)
	return err
}

// Recent returns the newest runs first.
func (d *DB) Recent(limit int) ([]Run, error) {
	rows, err := d.db.Query(`
		SELECT id, kind, path, lines, duration_ms, detail, created_at
		FROM runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdStr string
		var duration sql.NullInt64
		var detail sql.NullString

		if err := rows.Scan(&r.ID, &r.Kind, &r.Path, &r.Lines, &duration, &detail, &createdStr); err != nil {
			return nil, err
		}
		if duration.Valid {
			r.DurationMs = duration.Int64
		}
		if detail.Valid {
			r.Detail = detail.String
		}
		r.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdStr)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// CountsByKind returns how many runs of each kind are recorded.
func (d *DB) CountsByKind() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT kind, COUNT(*) FROM runs GROUP BY kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		counts[kind] = count
	}
	return counts, rows.Err()
}

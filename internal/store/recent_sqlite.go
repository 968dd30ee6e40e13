package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// RecentDocument is one row of the recently opened index.
type RecentDocument struct {
	Path     string    `json:"path" yaml:"path"`
	Name     string    `json:"name" yaml:"name"`
	OpenedAt time.Time `json:"openedAt" yaml:"openedAt"`
}

// Recents is a small SQLite index of documents the user opened, newest first.
// It is a convenience for the picker; callers should tolerate it failing.
type Recents struct {
	db *sql.DB
}

func OpenRecents(ctx context.Context, path string) (*Recents, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("recents: missing path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Several todo processes may share the index.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateRecents(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Recents{db: db}, nil
}

func migrateRecents(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS recent_documents (
			path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			opened_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_recent_opened ON recent_documents(opened_at_unixms DESC);`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recents) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// RecordOpened upserts path with the given time.
func (r *Recents) RecordOpened(ctx context.Context, path, name string, at time.Time) error {
	if r == nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recent_documents(path, name, opened_at_unixms) VALUES(?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET name = excluded.name, opened_at_unixms = excluded.opened_at_unixms`,
		path, strings.TrimSpace(name), at.UTC().UnixMilli())
	return err
}

// Forget drops path from the index, e.g. after its file was deleted.
func (r *Recents) Forget(ctx context.Context, path string) error {
	if r == nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM recent_documents WHERE path = ?`, path)
	return err
}

// List returns up to limit documents, newest first. limit <= 0 means no limit.
func (r *Recents) List(ctx context.Context, limit int) ([]RecentDocument, error) {
	if r == nil {
		return nil, nil
	}
	q := `SELECT path, name, opened_at_unixms FROM recent_documents ORDER BY opened_at_unixms DESC, path ASC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecentDocument
	for rows.Next() {
		var (
			d  RecentDocument
			ms int64
		)
		if err := rows.Scan(&d.Path, &d.Name, &ms); err != nil {
			return nil, err
		}
		d.OpenedAt = time.UnixMilli(ms).UTC()
		out = append(out, d)
	}
	return out, rows.Err()
}

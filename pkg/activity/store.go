// Package activity keeps a local audit trail of admin actions in SQLite.
package activity

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Entry statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusBlocked = "blocked"
)

// DefaultLimit is the number of entries Recent returns when limit <= 0.
const DefaultLimit = 20

// Entry is one recorded admin action.
type Entry struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Action    string    `json:"action" yaml:"action"`
	Resource  string    `json:"resource" yaml:"resource"`
	Admin     string    `json:"admin" yaml:"admin"`
	Status    string    `json:"status" yaml:"status"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Store is the SQLite-backed activity log.
type Store struct {
	db    *sql.DB
	admin string
	now   func() time.Time
}

// Open opens (creating if needed) the database at path and migrates it.
// Use ":memory:" for a throwaway log.
func Open(path, admin string) (store *Store, err error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		err = os.MkdirAll(dir, 0750)
		if err != nil {
			err = errors.Wrapf(err, "failed to create activity directory: %s", dir)
			return store, err
		}
	}

	var db *sql.DB
	db, err = sql.Open("sqlite", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open activity database: %s", path)
		return store, err
	}

	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	store = &Store{db: db, admin: admin, now: time.Now}

	err = store.Migrate(context.Background())
	if err != nil {
		_ = db.Close()
		store = nil
		return store, err
	}

	return store, err
}

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) (err error) {
	migration := `
CREATE TABLE IF NOT EXISTS activity_log (
    id TEXT PRIMARY KEY,
    action TEXT NOT NULL,
    resource TEXT NOT NULL,
    admin TEXT NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('success', 'failed', 'blocked')),
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activity_created ON activity_log(created_at);
`
	_, err = s.db.ExecContext(ctx, migration)
	if err != nil {
		err = errors.Wrap(err, "failed to migrate activity database")
		return err
	}

	return err
}

// Record appends an entry. Missing ID, Admin and CreatedAt are filled in.
func (s *Store) Record(ctx context.Context, entry Entry) (saved Entry, err error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Admin == "" {
		entry.Admin = s.admin
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	if entry.Status == "" {
		entry.Status = StatusSuccess
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO activity_log (id, action, resource, admin, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID.String(), entry.Action, entry.Resource, entry.Admin, entry.Status, entry.CreatedAt.UnixNano())
	if err != nil {
		err = errors.Wrapf(err, "failed to record activity %q", entry.Action)
		return saved, err
	}

	saved = entry
	return saved, err
}

// Recent returns the newest entries first.
func (s *Store) Recent(ctx context.Context, limit int) (entries []Entry, err error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var rows *sql.Rows
	rows, err = s.db.QueryContext(ctx,
		`SELECT id, action, resource, admin, status, created_at FROM activity_log
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		err = errors.Wrap(err, "failed to query activity")
		return entries, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry   Entry
			id      string
			created int64
		)
		err = rows.Scan(&id, &entry.Action, &entry.Resource, &entry.Admin, &entry.Status, &created)
		if err != nil {
			err = errors.Wrap(err, "failed to scan activity row")
			return entries, err
		}

		entry.ID, err = uuid.Parse(id)
		if err != nil {
			err = errors.Wrapf(err, "invalid activity id %q", id)
			return entries, err
		}
		entry.CreatedAt = time.Unix(0, created)

		entries = append(entries, entry)
	}

	err = rows.Err()
	if err != nil {
		err = errors.Wrap(err, "failed to read activity rows")
		return entries, err
	}

	return entries, err
}

// Close closes the database.
func (s *Store) Close() (err error) {
	err = s.db.Close()
	return err
}

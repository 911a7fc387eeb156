// sqlite.go is the database-backed store: the whole vault lives in one
// SQLite file. Useful when notes should travel as a single artifact or
// sit behind concurrent writers.
package store

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	_ "modernc.org/sqlite"
)

// SQLite stores notes as rows in a single database file, WAL mode for
// concurrent readers.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the vault database and initializes the
// schema.
func NewSQLite(path string) (*SQLite, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open vault db %q", path)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migrate vault db")
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS notes (
		path       TEXT PRIMARY KEY,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLite) Read(path string) (string, error) {
	var content string
	err := s.db.QueryRow(`SELECT content FROM notes WHERE path = ?`, path).Scan(&content)
	if err != nil {
		return "", errors.Wrapf(err, "read %q", path)
	}
	return content, nil
}

func (s *SQLite) Exists(path string) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM notes WHERE path = ?`, path).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "lookup %q", path)
	}
	return true, nil
}

func (s *SQLite) Write(path, content string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	err := retryOnContention(func() error {
		_, err := s.db.Exec(
			`INSERT INTO notes (path, content, created_at, updated_at)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(path) DO UPDATE SET
			     content = excluded.content, updated_at = excluded.updated_at`,
			path, content, now, now,
		)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "write %q", path)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error { return s.db.Close() }

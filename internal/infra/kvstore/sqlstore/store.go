// Package sqlstore keeps the key/value table in a database/sql backend.
// SQLite (pure Go driver) and MySQL are supported; they differ only in the
// upsert statement.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/BruksfildServices01/quickcut/internal/kv"
)

type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

type Store struct {
	db      *sql.DB
	dialect Dialect
}

var _ kv.Store = (*Store)(nil)

// OpenSQLite creates the parent directory when needed and opens path.
func OpenSQLite(path string) (*Store, error) {
	if path == "" {
		path = "quickcut.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	return newStore(db, DialectSQLite)
}

func OpenMySQL(dsn string) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return newStore(db, DialectMySQL)
}

func newStore(db *sql.DB, dialect Dialect) (*Store, error) {
	s := &Store{db: db, dialect: dialect}
	if _, err := db.Exec(s.createTableSQL()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return s, nil
}

func (s *Store) createTableSQL() string {
	if s.dialect == DialectMySQL {
		return `CREATE TABLE IF NOT EXISTS kv_entries (
			` + "`key`" + ` VARCHAR(191) PRIMARY KEY,
			payload LONGBLOB NOT NULL,
			updated_at DATETIME NOT NULL
		)`
	}
	return `CREATE TABLE IF NOT EXISTS kv_entries (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
}

func (s *Store) keyColumn() string {
	if s.dialect == DialectMySQL {
		return "`key`"
	}
	return "key"
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM kv_entries WHERE `+s.keyColumn()+` = ?`, key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", key, err)
	}
	return payload, true, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	var stmt string
	switch s.dialect {
	case DialectMySQL:
		stmt = "INSERT INTO kv_entries (`key`, payload, updated_at) VALUES (?, ?, ?) " +
			"ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = VALUES(updated_at)"
	default:
		stmt = `INSERT INTO kv_entries (key, payload, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	}
	if _, err := s.db.ExecContext(ctx, stmt, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM kv_entries WHERE `+s.keyColumn()+` = ?`, key,
	); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

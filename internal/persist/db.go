// Package persist is the gateway between the entity model and the SQLite
// store. It owns the database session for the life of the process, validates
// everything callers hand it, and converts storage errors into the
// boolean/sentinel results its operations report. No driver error escapes an
// insert or lookup operation.
package persist

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DB wraps the single SQLite session shared by every repository. The store
// engine is not assumed to serialize writers, so every gateway operation
// holds mu for its duration; a composite operation is never interleaved with
// another write.
type DB struct {
	sql *sql.DB
	mu  sync.Mutex
	log *zap.Logger
}

// Open opens the store file at path, creating it and its parent directory on
// first run. Reopening an existing file keeps its data. The session is
// limited to one connection; the gateway serializes access itself.
func Open(path string, log *zap.Logger) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}

	return &DB{sql: sqlDB, log: log}, nil
}

func (db *DB) Close() error {
	return db.sql.Close()
}

// ExecScriptFile runs the statements in a SQL file as one transaction, so a
// schema or seed script applies all-or-nothing. Reports success; the failure
// cause goes to the log.
func (db *DB) ExecScriptFile(ctx context.Context, path string) bool {
	script, err := os.ReadFile(path)
	if err != nil {
		db.log.Error("read sql script", zap.String("path", path), zap.Error(err))
		return false
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		db.log.Error("begin script tx", zap.String("path", path), zap.Error(err))
		return false
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(script)); err != nil {
		db.log.Error("execute sql script", zap.String("path", path), zap.Error(err))
		return false
	}
	if err := tx.Commit(); err != nil {
		db.log.Error("commit sql script", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

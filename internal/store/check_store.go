// File: check_store.go
// Title: Existence Check Cache
// Description: Implements a SQLite-backed cache of GitHub existence check
//              results so repeated invocations skip remote lookups.
//              Entries carry the check timestamp; staleness is decided at
//              read time against the configured TTL.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial check cache implementation

package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	oderror "github.com/X-lab2017/opendigger-cli/internal/core/error"
	odlog "github.com/X-lab2017/opendigger-cli/internal/core/log"
)

// CheckKind distinguishes the cached check types
type CheckKind string

const (
	KindRepo CheckKind = "repo"
	KindUser CheckKind = "user"
)

// CheckStore caches existence check results in SQLite
type CheckStore struct {
	db     *sql.DB
	ttl    time.Duration
	logger *odlog.Logger
	mu     sync.Mutex // serializes writers; SQLite allows one at a time
}

// Options configures the check store
type Options struct {
	Path   string
	TTL    time.Duration
	Logger *odlog.Logger
}

// Open opens (creating if necessary) the check cache at the given path
func Open(opts Options) (*CheckStore, error) {
	if opts.Logger == nil {
		opts.Logger = odlog.GetDefault()
	}
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, oderror.Wrap(err, "creating cache directory").
			WithCode(oderror.CodeStoreError).
			WithDetail("path", opts.Path)
	}

	db, err := sql.Open("sqlite3", opts.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, oderror.Wrap(err, "opening check cache").
			WithCode(oderror.CodeStoreError).
			WithDetail("path", opts.Path)
	}

	s := &CheckStore{
		db:     db,
		ttl:    opts.TTL,
		logger: opts.Logger.WithField("component", "check-store"),
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// initSchema creates the checks table if it does not exist
func (s *CheckStore) initSchema() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS checks (
		kind       TEXT NOT NULL,
		key        TEXT NOT NULL,
		present    INTEGER NOT NULL,
		checked_at TIMESTAMP NOT NULL,
		PRIMARY KEY (kind, key)
	);`

	if _, err := s.db.Exec(schema); err != nil {
		return oderror.Wrap(err, "initializing check cache schema").
			WithCode(oderror.CodeStoreError)
	}
	return nil
}

// Get returns a cached result. found is false when no fresh entry exists.
func (s *CheckStore) Get(ctx context.Context, kind CheckKind, key string) (present, found bool, err error) {
	var stored int
	var checkedAt time.Time

	row := s.db.QueryRowContext(ctx,
		`SELECT present, checked_at FROM checks WHERE kind = ? AND key = ?`,
		string(kind), key)

	switch scanErr := row.Scan(&stored, &checkedAt); scanErr {
	case nil:
	case sql.ErrNoRows:
		return false, false, nil
	default:
		return false, false, oderror.Wrap(scanErr, "reading check cache").
			WithCode(oderror.CodeStoreError).
			WithDetail("kind", string(kind)).
			WithDetail("key", key)
	}

	if time.Since(checkedAt) > s.ttl {
		s.logger.Debug("check cache entry expired", odlog.Fields{
			"kind": string(kind),
			"key":  key,
		})
		return false, false, nil
	}

	return stored != 0, true, nil
}

// Put stores a check result, replacing any previous entry
func (s *CheckStore) Put(ctx context.Context, kind CheckKind, key string, present bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := 0
	if present {
		stored = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO checks (kind, key, present, checked_at) VALUES (?, ?, ?, ?)`,
		string(kind), key, stored, time.Now().UTC())
	if err != nil {
		return oderror.Wrap(err, "writing check cache").
			WithCode(oderror.CodeStoreError).
			WithDetail("kind", string(kind)).
			WithDetail("key", key)
	}
	return nil
}

// Purge removes entries older than the TTL
func (s *CheckStore) Purge(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-s.ttl)
	res, err := s.db.ExecContext(ctx, `DELETE FROM checks WHERE checked_at < ?`, cutoff)
	if err != nil {
		return 0, oderror.Wrap(err, "purging check cache").
			WithCode(oderror.CodeStoreError)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Close closes the underlying database
func (s *CheckStore) Close() error {
	return s.db.Close()
}

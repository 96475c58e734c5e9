// Package cache keeps raw PokeAPI responses in SQLite so repeated runs don't hit the network.
package cache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// fixed width so timestamps compare correctly as strings
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps a SQLite database holding cached responses keyed by URL.
type Store struct {
	sql *sql.DB
}

// Open opens (or creates) the cache database at path and runs migrations.
// Use ":memory:" for a throwaway cache.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	// every connection to :memory: would be its own database
	if path == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping cache: %w", err)
	}

	s := &Store{sql: sqlDB}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}

	log.Debug().Str("path", path).Msg("opened response cache")
	return s, nil
}

func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate() error {
	version := 0
	// a missing table just means a fresh database
	s.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := s.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS responses (
				url        TEXT PRIMARY KEY,
				body       BLOB NOT NULL,
				fetched_at TEXT NOT NULL
			);

			INSERT OR REPLACE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return err
		}

		log.Info().Int("version", 1).Msg("migrated response cache")
	}

	return nil
}

// Get returns the cached body for url if there is one younger than maxAge.
// A maxAge of 0 or less accepts entries of any age.
func (s *Store) Get(url string, maxAge time.Duration) ([]byte, bool) {
	var body []byte
	var fetchedAt string

	err := s.sql.QueryRow("SELECT body, fetched_at FROM responses WHERE url = ?", url).Scan(&body, &fetchedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Warn().Err(err).Str("url", url).Msg("could not read cached response")
		}
		return nil, false
	}

	if maxAge > 0 {
		fetched, err := time.Parse(timeLayout, fetchedAt)
		if err != nil || time.Since(fetched) > maxAge {
			return nil, false
		}
	}

	return body, true
}

// Put stores (or replaces) the body for url, stamped with the current time.
func (s *Store) Put(url string, body []byte) error {
	_, err := s.sql.Exec(
		"INSERT OR REPLACE INTO responses (url, body, fetched_at) VALUES (?, ?, ?)",
		url, body, time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("cache %s: %w", url, err)
	}

	return nil
}

// Prune deletes every entry older than maxAge and returns how many were removed.
func (s *Store) Prune(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge).Format(timeLayout)

	result, err := s.sql.Exec("DELETE FROM responses WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune cache: %w", err)
	}

	removed, _ := result.RowsAffected()
	log.Debug().Int64("removed", removed).Msg("pruned response cache")

	return removed, nil
}

// Len is the number of cached responses
func (s *Store) Len() (int, error) {
	count := 0
	if err := s.sql.QueryRow("SELECT COUNT(*) FROM responses").Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

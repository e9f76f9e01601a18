// Package cache persists finished translations in a SQLite database so
// re-runs and overlapping datasets do not pay for the same API calls
// twice. Entries are keyed by a fingerprint of the model and the source
// line; switching models starts a fresh namespace.
package cache

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vn-requirements-nlp/Translate-FR-NFR/internal"
)

// Store is a sqlite-backed translation memo
type Store struct {
	db    *sql.DB
	model string
}

// Pair is one source line with its stored translation
type Pair struct {
	Source      string
	Translation string
}

// Open opens (or creates) a cache database for the given model
func Open(path, model string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS translations (
		fingerprint TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		source TEXT NOT NULL,
		translation TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &Store{db: db, model: model}, nil
}

// Get looks up the stored translation for a source line. Blank lines are
// never cached.
func (s *Store) Get(source string) (string, bool, error) {
	if strings.TrimSpace(source) == "" {
		return "", false, nil
	}

	var translation string
	key := internal.Fingerprint(s.model, source)
	err := s.db.QueryRow(`SELECT translation FROM translations WHERE fingerprint = ?`, key).Scan(&translation)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup failed: %w", err)
	}

	return translation, true, nil
}

// Put stores a single translation
func (s *Store) Put(source, translation string) error {
	return s.PutBatch([]Pair{{Source: source, Translation: translation}})
}

// PutBatch stores translations in a single transaction
func (s *Store) PutBatch(pairs []Pair) error {
	if len(pairs) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start cache transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO translations
		(fingerprint, model, source, translation, created_at)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare cache insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, pair := range pairs {
		if strings.TrimSpace(pair.Source) == "" {
			continue
		}
		key := internal.Fingerprint(s.model, pair.Source)
		if _, err := stmt.Exec(key, s.model, pair.Source, pair.Translation, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert cache entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cache transaction: %w", err)
	}

	return nil
}

// Len returns the number of entries stored for the current model
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM translations WHERE model = ?`, s.model).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("cache count failed: %w", err)
	}
	return n, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

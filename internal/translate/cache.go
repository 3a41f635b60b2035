package translate

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultCacheTTL keeps cached translations for a month. Dictionary-style
// single-word translations go stale slowly; the expiry mostly exists so a
// bad upstream answer does not live forever.
const DefaultCacheTTL = 30 * 24 * time.Hour

// Cache persists translations in SQLite keyed by word, language pair, and a
// hash of the disambiguating context.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// OpenCache initializes or connects to the translation cache database.
// ttl <= 0 uses DefaultCacheTTL.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("translation cache: path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	const schema = `CREATE TABLE IF NOT EXISTS translations (
		word TEXT NOT NULL,
		source TEXT NOT NULL,
		target TEXT NOT NULL,
		context_hash TEXT NOT NULL,
		translation TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		PRIMARY KEY (word, source, target, context_hash)
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply cache schema: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{db: db, ttl: ttl, now: time.Now}, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Get returns a cached translation and whether a live entry exists. Expired
// rows are deleted on the way out and reported as misses.
func (c *Cache) Get(ctx context.Context, word, source, target, contextText string) (string, bool, error) {
	hash := contextHash(contextText)

	var translation string
	var createdAt int64
	err := c.db.QueryRowContext(ctx,
		`SELECT translation, created_at FROM translations
		 WHERE word = ? AND source = ? AND target = ? AND context_hash = ?`,
		strings.ToLower(word), source, target, hash,
	).Scan(&translation, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query translation cache: %w", err)
	}

	if c.now().Sub(time.Unix(createdAt, 0)) > c.ttl {
		_, _ = c.db.ExecContext(ctx,
			`DELETE FROM translations WHERE word = ? AND source = ? AND target = ? AND context_hash = ?`,
			strings.ToLower(word), source, target, hash,
		)
		return "", false, nil
	}
	return translation, true, nil
}

// Put stores or refreshes a translation.
func (c *Cache) Put(ctx context.Context, word, source, target, contextText, translation string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO translations (word, source, target, context_hash, translation, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (word, source, target, context_hash)
		 DO UPDATE SET translation = excluded.translation, created_at = excluded.created_at`,
		strings.ToLower(word), source, target, contextHash(contextText), translation, c.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("store translation: %w", err)
	}
	return nil
}

// Prune removes every expired row. Runs opportunistically from the CLI, not
// from the fusion engine.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	cutoff := c.now().Add(-c.ttl).Unix()
	result, err := c.db.ExecContext(ctx, `DELETE FROM translations WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune translation cache: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune translation cache: %w", err)
	}
	return removed, nil
}

func contextHash(contextText string) string {
	sum := sha256.Sum256([]byte(contextText))
	return hex.EncodeToString(sum[:])
}

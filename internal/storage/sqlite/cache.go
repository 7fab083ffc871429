// Package sqlite implements the embedding cache on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/scrypster/frontdesk/internal/storage"
)

// Schema creates the embeddings table. Vectors are stored as little-endian
// float32 BLOBs; the dimension column lets readers validate before decoding.
const schema = `
CREATE TABLE IF NOT EXISTS embeddings (
	model      TEXT NOT NULL,
	text_hash  TEXT NOT NULL,
	dimension  INTEGER NOT NULL,
	vector     BLOB NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (model, text_hash)
);
`

// Cache implements storage.EmbeddingCache using SQLite.
type Cache struct {
	db *sql.DB
}

// NewCache opens (creating if needed) the cache database at dataPath/frontdesk.db.
func NewCache(dataPath string) (*Cache, error) {
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataPath, "frontdesk.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open %s: %w", dbPath, err)
	}

	// Single writer; the cache is only written during index builds.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to initialize schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Get retrieves the cached vector for (model, text).
// Returns storage.ErrNotFound on a miss.
func (c *Cache) Get(ctx context.Context, model, text string) ([]float32, error) {
	if model == "" || text == "" {
		return nil, fmt.Errorf("%w: model and text are required", storage.ErrInvalidInput)
	}

	query := `SELECT vector, dimension FROM embeddings WHERE model = ? AND text_hash = ?`

	var buf []byte
	var dimension int
	err := c.db.QueryRowContext(ctx, query, model, storage.TextKey(text)).Scan(&buf, &dimension)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("sqlite: failed to get embedding: %w", err)
	}

	vector, err := storage.DeserializeVector(buf)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to deserialize embedding: %w", err)
	}
	if len(vector) != dimension {
		return nil, fmt.Errorf("sqlite: stored dimension %d does not match vector length %d", dimension, len(vector))
	}

	return vector, nil
}

// Put stores the vector for (model, text) with upsert semantics.
func (c *Cache) Put(ctx context.Context, model, text string, vector []float32) error {
	if model == "" || text == "" {
		return fmt.Errorf("%w: model and text are required", storage.ErrInvalidInput)
	}
	if len(vector) == 0 {
		return fmt.Errorf("%w: embedding vector cannot be empty", storage.ErrInvalidInput)
	}

	query := `
		INSERT INTO embeddings (model, text_hash, dimension, vector, created_at, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT(model, text_hash) DO UPDATE SET
			dimension = excluded.dimension,
			vector = excluded.vector,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := c.db.ExecContext(ctx, query, model, storage.TextKey(text), len(vector), storage.SerializeVector(vector))
	if err != nil {
		return fmt.Errorf("sqlite: failed to store embedding: %w", err)
	}

	return nil
}

// Close closes the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Compile-time assertion.
var _ storage.EmbeddingCache = (*Cache)(nil)

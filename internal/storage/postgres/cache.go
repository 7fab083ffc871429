// Package postgres implements the embedding cache on PostgreSQL, with an
// optional pgvector column for inspecting cached vectors with SQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQL driver
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/scrypster/frontdesk/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS embeddings (
	model      TEXT NOT NULL,
	text_hash  TEXT NOT NULL,
	dimension  INTEGER NOT NULL,
	vector     BYTEA NOT NULL,
	created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (model, text_hash)
)
`

// Cache implements storage.EmbeddingCache using PostgreSQL.
// Vectors are always stored in the binary BYTEA column; when the pgvector
// extension is present they are additionally stored in a vector column so
// cached embeddings can be queried with cosine-distance operators.
type Cache struct {
	db                *sql.DB
	pgvectorAvailable bool
}

// NewCache connects to PostgreSQL with the given DSN and initializes the schema.
func NewCache(dsn string) (*Cache, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to open connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: failed to initialize schema: %w", err)
	}

	c := &Cache{db: db}
	c.pgvectorAvailable = detectPgvector(db)
	return c, nil
}

// detectPgvector checks for the pgvector extension and adds the vector
// column when available. Absence is not an error; the BYTEA column is the
// source of truth either way.
func detectPgvector(db *sql.DB) bool {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'vector')`).Scan(&exists)
	if err != nil || !exists {
		return false
	}

	if _, err := db.Exec(`ALTER TABLE embeddings ADD COLUMN IF NOT EXISTS vector_vec vector`); err != nil {
		log.Printf("postgres: pgvector extension found but vector column could not be added: %v", err)
		return false
	}
	return true
}

// Get retrieves the cached vector for (model, text).
// Returns storage.ErrNotFound on a miss.
func (c *Cache) Get(ctx context.Context, model, text string) ([]float32, error) {
	if model == "" || text == "" {
		return nil, fmt.Errorf("%w: model and text are required", storage.ErrInvalidInput)
	}

	query := `SELECT vector, dimension FROM embeddings WHERE model = $1 AND text_hash = $2`

	var buf []byte
	var dimension int
	err := c.db.QueryRowContext(ctx, query, model, storage.TextKey(text)).Scan(&buf, &dimension)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("postgres: failed to get embedding: %w", err)
	}

	vector, err := storage.DeserializeVector(buf)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to deserialize embedding: %w", err)
	}
	if len(vector) != dimension {
		return nil, fmt.Errorf("postgres: stored dimension %d does not match vector length %d", dimension, len(vector))
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

	buf := storage.SerializeVector(vector)
	key := storage.TextKey(text)

	if c.pgvectorAvailable {
		query := `
			INSERT INTO embeddings (model, text_hash, dimension, vector, vector_vec, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
			ON CONFLICT (model, text_hash) DO UPDATE SET
				dimension = excluded.dimension,
				vector = excluded.vector,
				vector_vec = excluded.vector_vec,
				updated_at = CURRENT_TIMESTAMP
		`
		_, err := c.db.ExecContext(ctx, query, model, key, len(vector), buf, pgvector.NewVector(vector))
		if err == nil {
			return nil
		}
		// Fall back to the BYTEA-only path; the pgvector column is a convenience.
		log.Printf("postgres: failed to store vector_vec (falling back to BYTEA only): %v", err)
	}

	query := `
		INSERT INTO embeddings (model, text_hash, dimension, vector, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (model, text_hash) DO UPDATE SET
			dimension = excluded.dimension,
			vector = excluded.vector,
			updated_at = CURRENT_TIMESTAMP
	`
	if _, err := c.db.ExecContext(ctx, query, model, key, len(vector), buf); err != nil {
		return fmt.Errorf("postgres: failed to store embedding: %w", err)
	}

	return nil
}

// Close closes the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Compile-time assertion.
var _ storage.EmbeddingCache = (*Cache)(nil)

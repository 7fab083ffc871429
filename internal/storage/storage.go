// Package storage provides the embedding cache used during index builds.
//
// The knowledge base catalog is embedded once at startup; caching those
// vectors means a restart only pays for encoding when the catalog or the
// embedding model changed. Entries are keyed by (model, sha256 of text) so
// switching models never serves stale vectors.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNotFound indicates a cache miss.
	ErrNotFound = errors.New("embedding not found")

	// ErrInvalidInput indicates that the input parameters are invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// EmbeddingCache stores embedding vectors keyed by model and text.
// A cache is strictly an optimization: every operation failure is
// recoverable by calling the embedding provider directly.
type EmbeddingCache interface {
	// Get retrieves the cached vector for (model, text).
	// Returns ErrNotFound on a miss.
	Get(ctx context.Context, model, text string) ([]float32, error)

	// Put stores the vector for (model, text) with upsert semantics.
	Put(ctx context.Context, model, text string, vector []float32) error

	// Close releases the underlying database handle.
	Close() error
}

// TextKey returns the cache key for a text: the hex-encoded SHA-256 digest.
// Hashing keeps key length bounded regardless of question length.
func TextKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// SerializeVector converts a float32 slice to a binary representation.
// Uses little-endian byte order for consistency across platforms.
func SerializeVector(vector []float32) []byte {
	buf := make([]byte, len(vector)*4)
	for i, v := range vector {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// DeserializeVector converts a binary representation back to a float32 slice.
func DeserializeVector(buf []byte) ([]float32, error) {
	if len(buf)%4 != 0 {
		return nil, fmt.Errorf("vector buffer length %d is not a multiple of 4", len(buf))
	}
	vector := make([]float32, len(buf)/4)
	for i := range vector {
		vector[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return vector, nil
}

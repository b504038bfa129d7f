// Package cache provides result caching for assembly runs.
//
// Assembly is deterministic: the same reads with the same parameters always
// produce the same contigs. That makes whole-run memoization safe, and for
// genome-scale inputs it turns repeat invocations (re-rendering, re-running
// stats) from minutes into milliseconds.
//
// Three backends implement the same interface:
//   - FileCache: directory-based, for the CLI
//   - RedisCache: shared cache for the HTTP API
//   - NullCache: caching disabled
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// TTLAssembly is how long cached assembly results are kept. Inputs are
// content-addressed, so entries never go stale; the TTL only bounds disk use.
const TTLAssembly = 30 * 24 * time.Hour

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// AssemblyKeyOpts are the parameters that distinguish otherwise identical
// inputs. Two runs with the same reads but different options must cache
// separately.
type AssemblyKeyOpts struct {
	K          int `json:"k"`
	MaxContigs int `json:"max_contigs"`
}

// Keyer generates cache keys.
type Keyer interface {
	// AssemblyKey generates a key for a full assembly result given the
	// content hash of the input reads and the run options.
	AssemblyKey(inputHash string, opts AssemblyKeyOpts) string
}

// DefaultKeyer is the standard key generation strategy.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// AssemblyKey generates a key of the form "asm:<hash>".
func (k *DefaultKeyer) AssemblyKey(inputHash string, opts AssemblyKeyOpts) string {
	return hashKey("asm", inputHash, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"retok/internal/tokfmt"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// Cache stores token streams on disk, keyed by content hash plus config
// fingerprint. Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	// Fingerprint of the pipeline config that produced the records.
	Fingerprint string

	Records []tokfmt.Record
}

// OpenCache initializes and returns a token cache at the standard location.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenCacheAt returns a cache rooted at an explicit directory, used by
// tests and the --cache-dir flag.
func OpenCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// "tokens" subdirectory keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes and writes a payload to the cache, atomically.
func (c *Cache) Put(key [32]byte, payload *cachePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the cache. A payload with a
// stale schema or a different config fingerprint counts as a miss; the
// fingerprint check backstops the key derivation.
func (c *Cache) Get(key [32]byte, fingerprint string, out *cachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	if out.Fingerprint != fingerprint {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey mixes the content hash with the config fingerprint so a config
// change never serves stale tokens.
func cacheKey(contentHash [32]byte, fingerprint string) [32]byte {
	h := sha256.New()
	h.Write(contentHash[:])
	h.Write([]byte(fingerprint))
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}

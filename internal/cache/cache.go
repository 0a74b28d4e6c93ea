// Package cache is an on-disk cache of formatting results, keyed by a
// hash of the source bytes and the configuration they were formatted
// under, so repeated `--check`/`--write` runs over an unchanged tree skip
// re-lexing and re-parsing. Trimmed to the one payload shape this
// formatter needs: formatted bytes plus the "did it change" bit.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// schemaVersion is bumped whenever Payload's shape changes, so a cache
// directory written by an older binary is silently ignored rather than
// misread.
const schemaVersion uint16 = 1

// Digest is a content hash: sha256 of the source bytes and the
// configuration they were formatted under.
type Digest [32]byte

// Key computes the cache key for formatting content under the given
// configuration fields. Every field that affects output must be mixed
// in, or a cache hit could return a result formatted under stale
// settings.
func Key(content []byte, mode int, indentUnit int, useTabs bool, lineLength int) Digest {
	modeU, err := safecast.Conv[uint32](mode)
	if err != nil {
		panic(fmt.Errorf("cache: mode overflow: %w", err))
	}
	indentU, err := safecast.Conv[uint32](indentUnit)
	if err != nil {
		panic(fmt.Errorf("cache: indentUnit overflow: %w", err))
	}
	lineLengthU, err := safecast.Conv[uint32](lineLength)
	if err != nil {
		panic(fmt.Errorf("cache: lineLength overflow: %w", err))
	}

	h := sha256.New()
	h.Write(content)
	var buf [9]byte
	binary.LittleEndian.PutUint32(buf[0:4], modeU)
	binary.LittleEndian.PutUint32(buf[4:8], indentU)
	if useTabs {
		buf[8] = 1
	}
	h.Write(buf[:])
	var tail [4]byte
	binary.LittleEndian.PutUint32(tail[:], lineLengthU)
	h.Write(tail[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Payload is the cached artifact for one (content, config) pair.
type Payload struct {
	Schema    uint16
	Formatted []byte
	Changed   bool
}

// Cache is a thread-safe, atomically-written disk cache rooted at dir.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open opens (creating if necessary) a disk cache at the standard
// per-user cache location for app.
func Open(app string) (*Cache, error) {
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

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Get reads a cached payload. A nil Cache is a no-op cache that always
// misses, so callers can pass a possibly-nil *Cache without a branch.
func (c *Cache) Get(key Digest) (Payload, bool) {
	if c == nil {
		return Payload{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return Payload{}, false
	}
	defer f.Close()

	var p Payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil || p.Schema != schemaVersion {
		return Payload{}, false
	}
	return p, true
}

// Put writes payload to the cache, replacing any prior entry atomically.
func (c *Cache) Put(key Digest, payload Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = schemaVersion
	tmp, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := msgpack.NewEncoder(tmp).Encode(&payload); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), c.pathFor(key))
}

// DropAll invalidates every cached entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

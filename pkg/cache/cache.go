// Package cache provides a content-addressed store of encoded
// payloads. Entries are keyed by the blake3 digest of the encoded
// bytes, so identical payloads share one entry and a hit can be served
// without re-encoding. The HTTP API uses it to answer repeat encode
// requests.
package cache

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/pebble"
	"github.com/zeebo/blake3"
)

// Digest addresses one cached payload.
type Digest [32]byte

func (d Digest) String() string {
	return fmt.Sprintf("%x", d[:])
}

// Key computes the content address of an encoded payload.
func Key(encoded []byte) Digest {
	return Digest(blake3.Sum256(encoded))
}

// Cache is a pebble-backed content-addressed store.
type Cache struct {
	db     *pebble.DB
	hits   atomic.Int64
	misses atomic.Int64
}

// Open opens or creates a cache at dir.
func Open(dir string) (*Cache, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Get returns the payload stored under d, or ok=false on a miss.
func (c *Cache) Get(d Digest) ([]byte, bool, error) {
	data, closer, err := c.db.Get(d[:])
	if errors.Is(err, pebble.ErrNotFound) {
		c.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get %s: %w", d, err)
	}
	defer closer.Close()

	c.hits.Add(1)
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Put stores a payload under its content address and returns the
// digest.
func (c *Cache) Put(encoded []byte) (Digest, error) {
	d := Key(encoded)
	if err := c.db.Set(d[:], encoded, pebble.NoSync); err != nil {
		return Digest{}, fmt.Errorf("cache: put %s: %w", d, err)
	}
	return d, nil
}

// Delete removes the payload stored under d, if any.
func (c *Cache) Delete(d Digest) error {
	return c.db.Delete(d[:], pebble.NoSync)
}

// Stats reports cumulative hit and miss counts for this process.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Close closes the underlying store.
func (c *Cache) Close() error {
	return c.db.Close()
}

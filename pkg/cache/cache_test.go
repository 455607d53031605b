package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_PutGet(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	payload := []byte{0x82, 0xA2, 'i', 'd', 0x07, 0xA1, 'n', 0xC0}

	d, err := c.Put(payload)
	require.NoError(t, err)
	assert.Equal(t, Key(payload), d)

	got, ok, err := c.Get(d)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestCache_MissAndStats(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	_, ok, err := c.Get(Key([]byte("absent")))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.Put([]byte("present"))
	require.NoError(t, err)
	_, _, err = c.Get(Key([]byte("present")))
	require.NoError(t, err)

	hits, misses := c.Stats()
	assert.EqualValues(t, 1, hits)
	assert.EqualValues(t, 1, misses)
}

func TestCache_ContentAddressing(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	// Identical payloads share one entry.
	d1, err := c.Put([]byte{0xC3})
	require.NoError(t, err)
	d2, err := c.Put([]byte{0xC3})
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	d3, err := c.Put([]byte{0xC2})
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)
}

func TestCache_Delete(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	d, err := c.Put([]byte("to remove"))
	require.NoError(t, err)
	require.NoError(t, c.Delete(d))

	_, ok, err := c.Get(d)
	require.NoError(t, err)
	assert.False(t, ok)
}

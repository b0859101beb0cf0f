package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogEntry struct {
	ServiceName string  `json:"serviceName"`
	Cost        float64 `json:"cost"`
}

func testCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	c, err := New(s.Addr(), "", time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return c, s
}

func TestCacheSetAndGet(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	entries := []catalogEntry{
		{ServiceName: "Wedding Stage Decoration", Cost: 25000},
		{ServiceName: "Birthday Party Setup", Cost: 8000},
	}
	require.NoError(t, c.Set(ctx, "services:catalog", entries))

	var got []catalogEntry
	hit, err := c.Get(ctx, "services:catalog", &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, entries, got)
}

func TestCacheMiss(t *testing.T) {
	c, _ := testCache(t)

	var got []catalogEntry
	hit, err := c.Get(context.Background(), "services:missing", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, got)
}

func TestCacheInvalidate(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "services:catalog", []catalogEntry{{ServiceName: "Home Interior Styling"}}))
	require.NoError(t, c.Invalidate(ctx, "services:catalog"))

	var got []catalogEntry
	hit, err := c.Get(ctx, "services:catalog", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheTTLExpiry(t *testing.T) {
	c, s := testCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "services:catalog", []catalogEntry{{ServiceName: "Corporate Event Decoration"}}))

	s.FastForward(2 * time.Minute)

	var got []catalogEntry
	hit, err := c.Get(ctx, "services:catalog", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v"))

	var got string
	hit, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Invalidate(ctx, "k"))
	require.NoError(t, c.Close())
}

func TestNewWithoutAddr(t *testing.T) {
	c, err := New("", "", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, c)
}

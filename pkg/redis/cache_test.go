package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableClient is enabled but points at a port nothing listens on,
// so every Redis command fails while the cache itself stays in use.
func unreachableClient() *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         "127.0.0.1:1",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
		MaxRetries:   -1,
	})
	return &Client{rdb: rdb, enabled: true}
}

func TestCache_GetOrSet_Disabled(t *testing.T) {
	c := NewCache(Disabled(), "test")

	calls := 0
	var out map[string]int
	err := c.GetOrSet(context.Background(), "stats", &out, TTLShort, func() (interface{}, error) {
		calls++
		return map[string]int{"mean": 500}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 500, out["mean"])
}

func TestCache_GetOrSet_FailedWriteStillPopulatesDest(t *testing.T) {
	c := NewCache(unreachableClient(), "test")

	var out []string
	err := c.GetOrSet(context.Background(), "parts", &out, TTLShort, func() (interface{}, error) {
		return []string{"Battery Pack", "Electric Motor"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Battery Pack", "Electric Motor"}, out)
}

func TestCache_GetOrSet_FnError(t *testing.T) {
	c := NewCache(Disabled(), "test")

	sentinel := errors.New("no data")
	var out int
	err := c.GetOrSet(context.Background(), "k", &out, TTLShort, func() (interface{}, error) {
		return nil, sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Zero(t, out)
}

func TestCache_GetMissOnUnreachableRedis(t *testing.T) {
	c := NewCache(unreachableClient(), "test")

	var out int
	found, err := c.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestClient_SetGet(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	err := c.Set(ctx, "report_stats:abc", []byte(`{"total":3}`), time.Minute)
	assert.NoError(t, err)

	got, err := c.Get(ctx, "report_stats:abc")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"total":3}`), got)
}

func TestClient_GetMissingKey(t *testing.T) {
	c, _ := newTestClient(t)

	got, err := c.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_Delete(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	assert.NoError(t, c.Delete(ctx, "k"))

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestClient_FailsSafeWhenRedisDown(t *testing.T) {
	c, mr := newTestClient(t)
	mr.Close()

	ctx := context.Background()
	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestClient_NilClientIsNoop(t *testing.T) {
	var c *Client
	ctx := context.Background()

	got, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(ctx, "k", nil, 0))
	assert.NoError(t, c.Close())
}

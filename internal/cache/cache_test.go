package cache

import (
	"context"
	"testing"
	"time"

	"shelterapi/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func newTestCache(t *testing.T) Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedis(config.RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect to miniredis: %v", err)
	}
	return c
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	type payload struct {
		Name  string `json:"name"`
		Total int    `json:"total"`
	}

	var out payload
	hit, err := c.GetJSON(ctx, "animals:list:all", &out)
	assert.NoError(t, err)
	assert.False(t, hit)

	in := payload{Name: "Rex", Total: 3}
	assert.NoError(t, c.SetJSON(ctx, "animals:list:all", in, time.Minute))

	hit, err = c.GetJSON(ctx, "animals:list:all", &out)
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, in, out)
}

func TestRedisCache_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	assert.NoError(t, c.SetJSON(ctx, "animals:list:a", 1, time.Minute))
	assert.NoError(t, c.SetJSON(ctx, "animals:list:b", 2, time.Minute))
	assert.NoError(t, c.SetJSON(ctx, "shelters:list:a", 3, time.Minute))

	assert.NoError(t, c.DeletePrefix(ctx, "animals:list:"))

	var v int
	hit, err := c.GetJSON(ctx, "animals:list:a", &v)
	assert.NoError(t, err)
	assert.False(t, hit)

	// Keys outside the prefix survive.
	hit, err = c.GetJSON(ctx, "shelters:list:a", &v)
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 3, v)
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoop()

	assert.NoError(t, c.SetJSON(ctx, "k", 1, time.Minute))

	var v int
	hit, err := c.GetJSON(ctx, "k", &v)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.DeletePrefix(ctx, "k"))
}

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(context.Background(), "k") })
	require.Panics(t, func() { c.Set(context.Background(), "k", "v", 0) })
	require.NoError(t, c.Close())

	getCalled := false
	setCalled := false
	closeCalled := false
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		getCalled = true
		return redis.NewStringResult("v", nil)
	}
	c.SetFn = func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
		setCalled = true
		return redis.NewStatusResult("OK", nil)
	}
	c.CloseFn = func() error { closeCalled = true; return errors.New("close") }

	require.Equal(t, "v", c.Get(context.Background(), "k").Val())
	require.NoError(t, c.Set(context.Background(), "k", "v", time.Second).Err())
	require.Error(t, c.Close())
	require.True(t, getCalled)
	require.True(t, setCalled)
	require.True(t, closeCalled)
}

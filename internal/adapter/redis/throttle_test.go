package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newThrottle(t *testing.T, max int, window time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := New(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewLoginThrottle(client, max, window), mr
}

func TestLoginThrottle_BlocksAfterLimit(t *testing.T) {
	ctx := context.Background()
	th, _ := newThrottle(t, 3, time.Minute)

	for range 3 {
		ok, err := th.Allowed(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, th.RecordFailure(ctx, "admin"))
	}

	ok, err := th.Allowed(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = th.Allowed(ctx, "other")
	require.NoError(t, err)
	assert.True(t, ok, "limits are per username")
}

func TestLoginThrottle_WindowExpires(t *testing.T) {
	ctx := context.Background()
	th, mr := newThrottle(t, 1, time.Minute)

	require.NoError(t, th.RecordFailure(ctx, "admin"))
	ok, _ := th.Allowed(ctx, "admin")
	assert.False(t, ok)

	mr.FastForward(time.Minute + time.Second)

	ok, err := th.Allowed(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoginThrottle_Reset(t *testing.T) {
	ctx := context.Background()
	th, mr := newThrottle(t, 1, time.Minute)

	require.NoError(t, th.RecordFailure(ctx, "admin"))
	require.NoError(t, th.Reset(ctx, "admin"))

	ok, err := th.Allowed(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, mr.Exists(key("admin")))
}

func TestLoginThrottle_Disabled(t *testing.T) {
	th, _ := newThrottle(t, 0, time.Minute)
	ok, err := th.Allowed(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNew_Unreachable(t *testing.T) {
	_, err := New(context.Background(), "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}

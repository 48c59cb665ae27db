package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisclient "github.com/sportmap-ro/backend/internal/infrastructure/clients/redis"
)

func newTestAdapter(t *testing.T) *RedisAdapter {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := redisclient.NewClientFromAddr(mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return &RedisAdapter{client: client}
}

func TestRedisAdapter_SetGet(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "facility:1", []byte(`{"id":"1"}`), 60))

	value, err := adapter.Get(ctx, "facility:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), value)

	_, err = adapter.Get(ctx, "facility:missing")
	assert.Error(t, err)
}

func TestRedisAdapter_GetMulti(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.SetMulti(ctx, map[string][]byte{
		"facility:1": []byte("a"),
		"facility:2": []byte("b"),
	}, 60))

	values, err := adapter.GetMulti(ctx, []string{"facility:1", "facility:2", "facility:3"})
	require.NoError(t, err)
	assert.Len(t, values, 2)
	assert.Equal(t, []byte("a"), values["facility:1"])
	assert.Equal(t, []byte("b"), values["facility:2"])
	assert.NotContains(t, values, "facility:3")
}

func TestRedisAdapter_DeletePattern(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "facilities:list:1", []byte("a"), 60))
	require.NoError(t, adapter.Set(ctx, "facilities:list:2", []byte("b"), 60))
	require.NoError(t, adapter.Set(ctx, "facility:1", []byte("c"), 60))

	require.NoError(t, adapter.DeletePattern(ctx, "facilities:list:*"))

	_, err := adapter.Get(ctx, "facilities:list:1")
	assert.Error(t, err)
	_, err = adapter.Get(ctx, "facilities:list:2")
	assert.Error(t, err)

	// Non-matching keys survive the sweep
	value, err := adapter.Get(ctx, "facility:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), value)
}

func TestRedisAdapter_Exists(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	exists, err := adapter.Exists(ctx, "facility:1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, adapter.Set(ctx, "facility:1", []byte("a"), 60))

	exists, err = adapter.Exists(ctx, "facility:1")
	require.NoError(t, err)
	assert.True(t, exists)
}

package storage

import (
	"context"
	"errors"
	"testing"

	"estatehub/internal/common/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisKV(t *testing.T) *Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedis(database.NewRedisFromClient(client))
}

func TestRedis_RoundTrip(t *testing.T) {
	kv := newMiniredisKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "property-favorites", `[{"id":"A"}]`))

	got, err := kv.Get(ctx, "property-favorites")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"A"}]`, got)
}

func TestRedis_MissingKeyIsNotFound(t *testing.T) {
	kv := newMiniredisKV(t)

	_, err := kv.Get(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_SetOverwrites(t *testing.T) {
	kv := newMiniredisKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "first"))
	require.NoError(t, kv.Set(ctx, "k", "second"))

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestRedis_GetWrapsTransportErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedis(database.NewRedisFromClient(client))

	mock.ExpectGet("k").SetErr(errors.New("connection reset"))

	_, err := kv.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestRedis_SetWrapsTransportErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedis(database.NewRedisFromClient(client))

	mock.ExpectSet("k", "v", 0).SetErr(errors.New("connection reset"))

	err := kv.Set(context.Background(), "k", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestMemory_RoundTripAndNotFound(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	_, err := kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "k", "v"))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client, 5*time.Minute, "adhub"), mr
}

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	s.Set(ctx, "fetchAccountInsights_x", []byte(`{"spend":10}`))

	got, ok := s.Get(ctx, "fetchAccountInsights_x")
	require.True(t, ok)
	assert.Equal(t, `{"spend":10}`, string(got))
	assert.True(t, mr.Exists("adhub:fetchAccountInsights_x"), "a chave deve ficar no namespace")
}

func TestStore_TTL(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	s.Set(ctx, "k", []byte("v"))
	mr.FastForward(5*time.Minute + time.Second)

	_, ok := s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestStore_ClearOnlyNamespace(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	require.NoError(t, mr.Set("outro:chave", "x"))
	s.Set(ctx, "a", []byte("1"))
	s.Set(ctx, "b", []byte("2"))

	s.Clear(ctx)

	_, ok := s.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = s.Get(ctx, "b")
	assert.False(t, ok)
	assert.True(t, mr.Exists("outro:chave"), "chaves fora do namespace são preservadas")
}

func TestStore_GetWithRedisUnavailable(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)

	mr.Close()

	_, ok := s.Get(ctx, "k")
	assert.False(t, ok, "falha no Redis é tratada como ausência")
}

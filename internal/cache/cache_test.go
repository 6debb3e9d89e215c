// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestConnectValkey(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	client, err := ConnectValkey(host, port, "")
	require.NoError(t, err)
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	require.NoError(t, err)
	assert.Equal(t, "PONG", pong)
}

func TestConnectValkeyUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, _ := net.SplitHostPort(mr.Addr())
	mr.Close()

	_, err := ConnectValkey(host, port, "")
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	mr, client := newMiniredis(t)
	s := NewRedisStore(client)
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	mr.FastForward(2 * time.Minute)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, s.Delete(ctx, "a"))
	assert.False(t, mr.Exists("a"))
	assert.NoError(t, s.Delete(ctx))
}

func newTestMemoryStore(t *testing.T, maxEntries int) *MemoryStore {
	t.Helper()
	s := newMemoryStore(time.Hour, maxEntries)
	t.Cleanup(s.Stop)
	return s
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := newTestMemoryStore(t, DefaultMaxEntries)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	now = now.Add(time.Minute)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Set(ctx, "forever", []byte("x"), 0))
	now = now.Add(24 * time.Hour)
	_, err = s.Get(ctx, "forever")
	assert.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "forever"))
	_, err = s.Get(ctx, "forever")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreSweep(t *testing.T) {
	s := newTestMemoryStore(t, DefaultMaxEntries)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	for i := range 1000 {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("content:project:nope-%d", i), []byte("null"), time.Millisecond))
	}
	require.NoError(t, s.Set(ctx, "content:cities", []byte("[]"), time.Hour))
	require.NoError(t, s.Set(ctx, "pinned", []byte("1"), 0))
	assert.Equal(t, 1002, s.Len())

	now = now.Add(time.Second)
	s.Sweep()
	assert.Equal(t, 2, s.Len())
	_, err := s.Get(ctx, "content:cities")
	assert.NoError(t, err)
}

func TestMemoryStoreBackgroundSweep(t *testing.T) {
	s := newMemoryStore(5*time.Millisecond, DefaultMaxEntries)
	t.Cleanup(s.Stop)
	require.NoError(t, s.Set(context.Background(), "k", []byte("v"), time.Millisecond))

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestMemoryStoreMaxEntries(t *testing.T) {
	s := newTestMemoryStore(t, 3)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "stale", []byte("1"), time.Minute))
	require.NoError(t, s.Set(ctx, "b", []byte("2"), time.Hour))
	require.NoError(t, s.Set(ctx, "c", []byte("3"), time.Hour))

	// Expired entries go first.
	now = now.Add(2 * time.Minute)
	require.NoError(t, s.Set(ctx, "d", []byte("4"), time.Hour))
	assert.Equal(t, 3, s.Len())
	for _, k := range []string{"b", "c", "d"} {
		_, err := s.Get(ctx, k)
		assert.NoError(t, err, k)
	}

	// Overwriting an existing key never evicts.
	require.NoError(t, s.Set(ctx, "d", []byte("5"), time.Hour))
	assert.Equal(t, 3, s.Len())

	// A new key evicts some live entry and is itself kept.
	require.NoError(t, s.Set(ctx, "e", []byte("6"), time.Hour))
	assert.Equal(t, 3, s.Len())
	got, err := s.Get(ctx, "e")
	require.NoError(t, err)
	assert.Equal(t, []byte("6"), got)
}

func TestMemoryStoreStopIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	s.Stop()
	s.Stop()
}

func TestNoopStore(t *testing.T) {
	var s Store = NoopStore{}
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

type item struct {
	Slug string `json:"slug"`
}

func TestRememberCachesWithinWindow(t *testing.T) {
	mr, client := newMiniredis(t)
	qc := NewQueryCache(NewRedisStore(client), time.Hour)
	ctx := context.Background()

	calls := 0
	fetch := func(context.Context) ([]item, error) {
		calls++
		return []item{{Slug: "lakefront-kitchen"}}, nil
	}

	for range 3 {
		got, err := Remember(ctx, qc, "projects", fetch)
		require.NoError(t, err)
		assert.Equal(t, []item{{Slug: "lakefront-kitchen"}}, got)
	}
	assert.Equal(t, 1, calls)
	assert.True(t, mr.Exists("content:projects"))
	assert.Equal(t, time.Hour, mr.TTL("content:projects"))

	mr.FastForward(61 * time.Minute)
	_, err := Remember(ctx, qc, "projects", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "entry should be refetched after the window")
}

func TestRememberDoesNotCacheErrors(t *testing.T) {
	qc := NewQueryCache(newTestMemoryStore(t, DefaultMaxEntries), time.Hour)
	ctx := context.Background()
	boom := errors.New("content store down")

	calls := 0
	fetch := func(context.Context) ([]item, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return []item{{Slug: "soho-loft"}}, nil
	}

	_, err := Remember(ctx, qc, "projects", fetch)
	assert.ErrorIs(t, err, boom)

	got, err := Remember(ctx, qc, "projects", fetch)
	require.NoError(t, err)
	assert.Equal(t, "soho-loft", got[0].Slug)
	assert.Equal(t, 2, calls)
}

func TestRememberFallsThroughWhenStoreFails(t *testing.T) {
	mr, client := newMiniredis(t)
	qc := NewQueryCache(NewRedisStore(client), time.Hour)
	mr.Close()

	got, err := Remember(context.Background(), qc, "slugs", func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestRememberDropsCorruptEntry(t *testing.T) {
	store := newTestMemoryStore(t, DefaultMaxEntries)
	qc := NewQueryCache(store, time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "content:cities", []byte("{not json"), time.Hour))

	got, err := Remember(ctx, qc, "cities", func(context.Context) ([]item, error) {
		return []item{{Slug: "tampa"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "tampa", got[0].Slug)

	raw, err := store.Get(ctx, "content:cities")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"slug":"tampa"}]`, string(raw))
}

func TestRememberNilCache(t *testing.T) {
	got, err := Remember(context.Background(), nil, "x", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestNewQueryCacheDefaults(t *testing.T) {
	qc := NewQueryCache(nil, 0)
	assert.Equal(t, DefaultRevalidate, qc.TTL())
}

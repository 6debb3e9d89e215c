// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

const (
	// queryKeyPrefix namespaces content reads in a shared Valkey.
	queryKeyPrefix = "content:"

	// DefaultRevalidate is how long a content read is served before it is
	// fetched again.
	DefaultRevalidate = time.Hour
)

// QueryCache serves content reads from a Store for a fixed staleness
// window. There is no invalidation: entries simply age out.
type QueryCache struct {
	store Store
	ttl   time.Duration
}

// NewQueryCache creates a query cache over store. A zero ttl uses
// DefaultRevalidate.
func NewQueryCache(store Store, ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = DefaultRevalidate
	}
	if store == nil {
		store = NoopStore{}
	}
	return &QueryCache{store: store, ttl: ttl}
}

// TTL returns the revalidation window.
func (qc *QueryCache) TTL() time.Duration {
	return qc.ttl
}

// Remember returns the cached value for key if present, otherwise it calls
// fetch and caches the result. Fetch errors are returned and never cached.
// Cache failures are logged and fall through to fetch.
func Remember[T any](ctx context.Context, qc *QueryCache, key string, fetch func(context.Context) (T, error)) (T, error) {
	if qc == nil {
		return fetch(ctx)
	}
	full := queryKeyPrefix + key

	raw, err := qc.store.Get(ctx, full)
	switch {
	case err == nil:
		var v T
		uerr := json.Unmarshal(raw, &v)
		if uerr == nil {
			slog.Debug("content cache hit", "key", key)
			return v, nil
		}
		slog.Warn("content cache entry corrupt, dropping", "key", key, "error", uerr)
		if derr := qc.store.Delete(ctx, full); derr != nil {
			slog.Warn("content cache delete error", "key", key, "error", derr)
		}
	case !errors.Is(err, ErrMiss):
		slog.Warn("content cache get error", "key", key, "error", err)
	}

	v, err := fetch(ctx)
	if err != nil {
		return v, err
	}

	payload, err := json.Marshal(v)
	if err != nil {
		slog.Warn("content cache encode error", "key", key, "error", err)
		return v, nil
	}
	if err := qc.store.Set(ctx, full, payload, qc.ttl); err != nil {
		slog.Warn("content cache set error", "key", key, "error", err)
	}
	return v, nil
}

package builds

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheClient is the part of the redis client the cache needs.
type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedStore is a read-through redis cache in front of another Store.
// Redis failures are logged and fall through to the wrapped store.
type CachedStore struct {
	next Store
	rdb  cacheClient
	ttl  time.Duration
	log  *slog.Logger
}

func NewCachedStore(next Store, rdb cacheClient, ttl time.Duration, l *slog.Logger) *CachedStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if l == nil {
		l = slog.Default()
	}
	return &CachedStore{next: next, rdb: rdb, ttl: ttl, log: l}
}

func cacheKey(id string) string { return "build:" + NormalizeID(id) }

func (s *CachedStore) Get(ctx context.Context, id string) (Record, error) {
	key := cacheKey(id)
	raw, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rec Record
		if jerr := json.Unmarshal(raw, &rec); jerr == nil {
			return rec, nil
		}
		s.log.LogAttrs(ctx, slog.LevelWarn, "build_cache_corrupt", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		s.log.LogAttrs(ctx, slog.LevelWarn, "build_cache_get_failed", slog.String("key", key), slog.Any("err", err))
	}

	rec, err := s.next.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	s.put(ctx, rec)
	return rec, nil
}

func (s *CachedStore) Save(ctx context.Context, rec Record) error {
	if err := s.next.Save(ctx, rec); err != nil {
		return err
	}
	if err := s.rdb.Del(ctx, cacheKey(rec.ID)).Err(); err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "build_cache_del_failed", slog.String("id", rec.ID), slog.Any("err", err))
	}
	return nil
}

func (s *CachedStore) Create(ctx context.Context, rec Record) (Record, error) {
	created, err := s.next.Create(ctx, rec)
	if err != nil {
		return Record{}, err
	}
	s.put(ctx, created)
	return created, nil
}

func (s *CachedStore) put(ctx context.Context, rec Record) {
	b, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, cacheKey(rec.ID), b, s.ttl).Err(); err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "build_cache_set_failed", slog.String("id", rec.ID), slog.Any("err", err))
	}
}

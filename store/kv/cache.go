package kv

import (
	"context"

	"moneymarket/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// Cache wraps backend with an LRU read cache, concurrent misses of one key share a lookup.
// Entries cached by one process go stale when another writes the key, the
// version checks of Write turn that into db.ErrOptimisticLock.
func Cache(backend core.IKVBackend, size int) core.IKVBackend {
	return &cacheStore{
		IKVBackend: backend,
		cache:      gcache.New(size).LRU().Build(),
		sf:         &singleflight.Group{},
	}
}

type cacheStore struct {
	core.IKVBackend
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheStore) Find(ctx context.Context, key string) (*core.KVEntry, error) {
	if v, err := s.cache.Get(key); err == nil {
		if entry, ok := v.(*core.KVEntry); ok {
			return clone(entry), nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		entry, err := s.IKVBackend.Find(ctx, key)
		if err != nil {
			return nil, err
		}

		if entry != nil {
			_ = s.cache.Set(key, clone(entry))
		}

		return entry, nil
	})
	if err != nil {
		return nil, err
	}

	entry, _ := v.(*core.KVEntry)
	return clone(entry), nil
}

// Write evicts every key of a failed write, stale cached versions are the
// usual reason for a conflict
func (s *cacheStore) Write(ctx context.Context, entries []*core.KVEntry, reads map[string]int64) error {
	if err := s.IKVBackend.Write(ctx, entries, reads); err != nil {
		for _, entry := range entries {
			s.cache.Remove(entry.Key)
		}

		for key := range reads {
			s.cache.Remove(key)
		}

		return err
	}

	for _, entry := range entries {
		_ = s.cache.Set(entry.Key, clone(entry))
	}

	return nil
}

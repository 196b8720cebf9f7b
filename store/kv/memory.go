package kv

import (
	"context"
	"sync"
	"time"

	"moneymarket/core"

	"github.com/fox-one/pkg/store/db"
)

type memoryStore struct {
	mux     sync.RWMutex
	entries map[string]*core.KVEntry
}

// Memory in process backend, lost on exit
func Memory() core.IKVBackend {
	return &memoryStore{entries: map[string]*core.KVEntry{}}
}

func (s *memoryStore) Find(ctx context.Context, key string) (*core.KVEntry, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	return clone(s.entries[key]), nil
}

func (s *memoryStore) version(key string) int64 {
	if entry, ok := s.entries[key]; ok {
		return entry.Version
	}

	return 0
}

func (s *memoryStore) Write(ctx context.Context, entries []*core.KVEntry, reads map[string]int64) error {
	now := time.Now()

	s.mux.Lock()
	defer s.mux.Unlock()

	for key, version := range reads {
		if s.version(key) != version {
			return db.ErrOptimisticLock
		}
	}

	for _, entry := range entries {
		if s.version(entry.Key) != entry.Version {
			return db.ErrOptimisticLock
		}
	}

	for _, entry := range entries {
		entry.Version++
		e := clone(entry)
		e.UpdatedAt = now
		s.entries[e.Key] = e
	}

	return nil
}

func (s *memoryStore) Close() error {
	return nil
}

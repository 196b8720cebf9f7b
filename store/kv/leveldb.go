package kv

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"moneymarket/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

type levelStore struct {
	// serializes version checks with the batch write
	mux sync.Mutex
	db  *leveldb.DB
}

// OpenLevelDB embedded backend stored under path
func OpenLevelDB(path string) (core.IKVBackend, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	return &levelStore{db: db}, nil
}

// levelRecord value and lifetime share one leveldb value
type levelRecord struct {
	Value     []byte    `json:"v"`
	ExpiresAt int64     `json:"e"`
	UpdatedAt time.Time `json:"u"`
	Version   int64     `json:"n"`
}

func (s *levelStore) Find(ctx context.Context, key string) (*core.KVEntry, error) {
	data, err := s.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var r levelRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}

	return &core.KVEntry{
		Key:       key,
		Value:     r.Value,
		ExpiresAt: r.ExpiresAt,
		UpdatedAt: r.UpdatedAt,
		Version:   r.Version,
	}, nil
}

func (s *levelStore) version(ctx context.Context, key string) (int64, error) {
	entry, err := s.Find(ctx, key)
	if err != nil || entry == nil {
		return 0, err
	}

	return entry.Version, nil
}

func (s *levelStore) check(ctx context.Context, key string, version int64) error {
	current, err := s.version(ctx, key)
	if err != nil {
		return err
	}

	if current != version {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *levelStore) Write(ctx context.Context, entries []*core.KVEntry, reads map[string]int64) error {
	now := time.Now()

	s.mux.Lock()
	defer s.mux.Unlock()

	for key, version := range reads {
		if err := s.check(ctx, key, version); err != nil {
			return err
		}
	}

	batch := new(leveldb.Batch)
	for _, entry := range entries {
		if err := s.check(ctx, entry.Key, entry.Version); err != nil {
			return err
		}

		data, err := json.Marshal(levelRecord{
			Value:     entry.Value,
			ExpiresAt: entry.ExpiresAt,
			UpdatedAt: now,
			Version:   entry.Version + 1,
		})
		if err != nil {
			return err
		}

		batch.Put([]byte(entry.Key), data)
	}

	if err := s.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return err
	}

	for _, entry := range entries {
		entry.Version++
	}

	return nil
}

func (s *levelStore) Close() error {
	return s.db.Close()
}

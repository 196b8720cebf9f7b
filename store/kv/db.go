package kv

import (
	"context"
	"time"

	"moneymarket/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type dbStore struct {
	db *db.DB
}

// New sql backend, one row per key in kv_entries
func New(db *db.DB) core.IKVBackend {
	return &dbStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.KVEntry{})
		if err := tx.AutoMigrate(core.KVEntry{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *dbStore) Find(ctx context.Context, key string) (*core.KVEntry, error) {
	var entry core.KVEntry
	if err := s.db.View().Where("entry_key = ?", key).First(&entry).Error; err != nil {
		if store.IsErrNotFound(err) {
			return nil, nil
		}

		return nil, err
	}

	return &entry, nil
}

// lockRow keeps the row checked until commit where the dialect can
func lockRow(tx *db.DB) *gorm.DB {
	q := tx.Update()
	if q.Dialect().GetName() != "sqlite3" {
		q = q.Set("gorm:query_option", "FOR UPDATE")
	}

	return q
}

func (s *dbStore) check(tx *db.DB, key string, version int64) error {
	var entry core.KVEntry
	if err := lockRow(tx).Select("version").Where("entry_key = ?", key).First(&entry).Error; err != nil {
		if !store.IsErrNotFound(err) {
			return err
		}
	}

	if entry.Version != version {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *dbStore) save(tx *db.DB, entry *core.KVEntry, now time.Time) error {
	if entry.Version == 0 {
		e := clone(entry)
		e.Version = 1
		e.UpdatedAt = now
		return tx.Update().Create(e).Error
	}

	update := tx.Update().Model(&core.KVEntry{}).
		Where("entry_key = ? AND version = ?", entry.Key, entry.Version).
		Updates(map[string]interface{}{
			"value":      entry.Value,
			"expires_at": entry.ExpiresAt,
			"updated_at": now,
			"version":    entry.Version + 1,
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *dbStore) Write(ctx context.Context, entries []*core.KVEntry, reads map[string]int64) error {
	now := time.Now()

	err := s.db.Tx(func(tx *db.DB) error {
		for key, version := range reads {
			if err := s.check(tx, key, version); err != nil {
				return err
			}
		}

		for _, entry := range entries {
			if err := s.save(tx, entry, now); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		// a concurrent insert of a new key shows up as a duplicate key error
		if !store.IsErrOptimisticLock(err) && s.inserted(ctx, entries) {
			return db.ErrOptimisticLock
		}

		return err
	}

	for _, entry := range entries {
		entry.Version++
	}

	return nil
}

// inserted reports whether a key expected to be new exists by now
func (s *dbStore) inserted(ctx context.Context, entries []*core.KVEntry) bool {
	for _, entry := range entries {
		if entry.Version != 0 {
			continue
		}

		if e, err := s.Find(ctx, entry.Key); err == nil && e != nil {
			return true
		}
	}

	return false
}

// Close the database belongs to the caller
func (s *dbStore) Close() error {
	return nil
}

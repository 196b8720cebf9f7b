package core

import (
	"context"
	"time"
)

// KVEntry one persisted key
type KVEntry struct {
	Key       string    `sql:"size:255;PRIMARY_KEY" gorm:"column:entry_key" json:"key"`
	Value     []byte    `json:"value"`
	ExpiresAt int64     `sql:"default:0" json:"expires_at"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
	// Version bumped by every write, 0 while the key does not exist
	Version int64 `sql:"default:0" json:"version"`
}

// TableName gorm table name
func (KVEntry) TableName() string {
	return "kv_entries"
}

// IKVStore key value view of one unit of work, writes are visible to later reads
type IKVStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// ExtendLifetime bumps the key to bump when less than threshold is left
	ExtendLifetime(ctx context.Context, key string, threshold, bump time.Duration) error
}

// IKVBackend durable key value storage shared by every process of a deployment
type IKVBackend interface {
	// Find returns nil when the key does not exist
	Find(ctx context.Context, key string) (*KVEntry, error)
	// Write persists all entries or none of them. Each entry carries the
	// Version it was loaded at and reads maps keys only read to theirs, the
	// write fails with db.ErrOptimisticLock when any of them moved on.
	// Written entries hold their new Version afterwards.
	Write(ctx context.Context, entries []*KVEntry, reads map[string]int64) error
	Close() error
}

package kv

import (
	"context"
	"time"

	"moneymarket/core"
)

// Batch stages writes of one unit of work over a backend. Reads see staged
// writes, nothing reaches the backend before Commit. Every key is loaded once
// and Commit fails when any loaded key changed in the backend meanwhile.
type Batch struct {
	backend core.IKVBackend
	now     time.Time
	loaded  map[string]*core.KVEntry
	staged  map[string]*core.KVEntry
	order   []string
}

// NewBatch batch whose lifetimes are measured from now
func NewBatch(backend core.IKVBackend, now time.Time) *Batch {
	return &Batch{
		backend: backend,
		now:     now,
		loaded:  map[string]*core.KVEntry{},
		staged:  map[string]*core.KVEntry{},
	}
}

func (b *Batch) lookup(ctx context.Context, key string) (*core.KVEntry, error) {
	if entry, ok := b.staged[key]; ok {
		return entry, nil
	}

	if entry, ok := b.loaded[key]; ok {
		return entry, nil
	}

	entry, err := b.backend.Find(ctx, key)
	if err != nil {
		return nil, err
	}

	b.loaded[key] = entry
	return entry, nil
}

func (b *Batch) stage(entry *core.KVEntry) {
	if _, ok := b.staged[entry.Key]; !ok {
		b.order = append(b.order, entry.Key)
	}

	b.staged[entry.Key] = entry
}

func (b *Batch) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, err := b.lookup(ctx, key)
	if err != nil {
		return nil, false, err
	}

	if entry == nil || entry.Value == nil {
		return nil, false, nil
	}

	return entry.Value, true, nil
}

func (b *Batch) Set(ctx context.Context, key string, value []byte) error {
	entry, err := b.lookup(ctx, key)
	if err != nil {
		return err
	}

	if entry == nil {
		entry = &core.KVEntry{Key: key}
	} else {
		entry = clone(entry)
	}

	entry.Value = append([]byte{}, value...)
	b.stage(entry)
	return nil
}

func (b *Batch) ExtendLifetime(ctx context.Context, key string, threshold, bump time.Duration) error {
	entry, err := b.lookup(ctx, key)
	if err != nil || entry == nil {
		return err
	}

	left := time.Unix(entry.ExpiresAt, 0).Sub(b.now)
	if entry.ExpiresAt > 0 && left >= threshold {
		return nil
	}

	entry = clone(entry)
	entry.ExpiresAt = b.now.Add(bump).Unix()
	b.stage(entry)
	return nil
}

// Len number of staged keys
func (b *Batch) Len() int {
	return len(b.order)
}

// Commit writes every staged key in one backend write. Keys only read are
// passed along for the version check, db.ErrOptimisticLock means the unit
// worked on outdated state and has to be run again.
func (b *Batch) Commit(ctx context.Context) error {
	if len(b.order) == 0 {
		return nil
	}

	entries := make([]*core.KVEntry, 0, len(b.order))
	for _, key := range b.order {
		entries = append(entries, b.staged[key])
	}

	reads := map[string]int64{}
	for key, entry := range b.loaded {
		if _, ok := b.staged[key]; ok {
			continue
		}

		if entry != nil {
			reads[key] = entry.Version
		} else {
			reads[key] = 0
		}
	}

	if err := b.backend.Write(ctx, entries, reads); err != nil {
		return err
	}

	b.loaded = map[string]*core.KVEntry{}
	b.staged = map[string]*core.KVEntry{}
	b.order = nil
	return nil
}

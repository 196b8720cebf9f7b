package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"moneymarket/core"
)

const (
	keyAdmin     = "admin"
	keyPaused    = "paused"
	keySupported = "supported_tokens"
	keyBorrowers = "borrowers"
)

func assetKey(kind, assetID string) string {
	return fmt.Sprintf("%s/%s", kind, assetID)
}

func userKey(kind, user, assetID string) string {
	return fmt.Sprintf("%s/%s/%s", kind, user, assetID)
}

// Ledger typed records of the money market over a key value store.
// Every write bumps the lifetime of its key.
type Ledger struct {
	kv core.IKVStore
}

// New ledger over kv
func New(kv core.IKVStore) *Ledger {
	return &Ledger{kv: kv}
}

func (l *Ledger) get(ctx context.Context, key string, v interface{}) (bool, error) {
	data, ok, err := l.kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	return true, nil
}

func (l *Ledger) put(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	if err := l.kv.Set(ctx, key, data); err != nil {
		return err
	}

	return l.kv.ExtendLifetime(ctx, key, core.LifetimeThreshold, core.LifetimeBump)
}

// Admin current admin, false before initialize
func (l *Ledger) Admin(ctx context.Context) (string, bool, error) {
	var admin string
	ok, err := l.get(ctx, keyAdmin, &admin)
	return admin, ok, err
}

func (l *Ledger) SetAdmin(ctx context.Context, admin string) error {
	return l.put(ctx, keyAdmin, admin)
}

func (l *Ledger) Paused(ctx context.Context) (bool, error) {
	var paused bool
	_, err := l.get(ctx, keyPaused, &paused)
	return paused, err
}

func (l *Ledger) SetPaused(ctx context.Context, paused bool) error {
	return l.put(ctx, keyPaused, paused)
}

// SupportedAssets registered assets in registration order
func (l *Ledger) SupportedAssets(ctx context.Context) ([]string, error) {
	var assets []string
	_, err := l.get(ctx, keySupported, &assets)
	return assets, err
}

func (l *Ledger) IsSupported(ctx context.Context, assetID string) (bool, error) {
	assets, err := l.SupportedAssets(ctx)
	if err != nil {
		return false, err
	}

	for _, a := range assets {
		if a == assetID {
			return true, nil
		}
	}

	return false, nil
}

func (l *Ledger) AddSupportedAsset(ctx context.Context, assetID string) error {
	assets, err := l.SupportedAssets(ctx)
	if err != nil {
		return err
	}

	return l.put(ctx, keySupported, append(assets, assetID))
}

package kv

import (
	"fmt"

	"moneymarket/core"

	"github.com/fox-one/pkg/store/db"
)

// Open backend selected by cfg.Driver, wrapped with a read cache when cfg.CacheSize > 0
func Open(cfg core.KV, database *db.DB) (core.IKVBackend, error) {
	var (
		backend core.IKVBackend
		err     error
	)

	switch cfg.Driver {
	case "", core.DriverMemory:
		backend = Memory()
	case core.DriverLevelDB:
		backend, err = OpenLevelDB(cfg.Path)
	case core.DriverDB:
		if database == nil {
			return nil, fmt.Errorf("kv driver %q needs a database", cfg.Driver)
		}
		backend = New(database)
	default:
		return nil, fmt.Errorf("unknown kv driver %q", cfg.Driver)
	}

	if err != nil {
		return nil, err
	}

	if cfg.CacheSize > 0 {
		backend = Cache(backend, cfg.CacheSize)
	}

	return backend, nil
}

func clone(entry *core.KVEntry) *core.KVEntry {
	if entry == nil {
		return nil
	}

	c := *entry
	if entry.Value != nil {
		c.Value = append([]byte(nil), entry.Value...)
	}

	return &c
}

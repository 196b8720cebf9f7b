package cmd

import (
	"moneymarket/core"
	"moneymarket/service/auth"
	"moneymarket/service/lending"
	"moneymarket/service/token"
	"moneymarket/store/event"
	"moneymarket/store/kv"

	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/postgres"
)

// provideDatabase nil when no dialect is configured
func provideDatabase() *db.DB {
	if cfg.DB.Dialect == "" {
		return nil
	}

	return db.MustOpen(cfg.DB)
}

func provideClock() clock.Clock {
	return clock.New()
}

// ---------------store-----------------------------------------

func provideKV(database *db.DB) core.IKVBackend {
	backend, err := kv.Open(cfg.KV, database)
	if err != nil {
		panic(err)
	}

	return backend
}

func provideEventStore(database *db.DB) core.IEventStore {
	if database == nil {
		return event.Memory()
	}

	return event.New(database)
}

func providePropertyStore(database *db.DB) property.Store {
	return propertystore.New(database)
}

// ------------------service------------------------------------

func provideTokenLedger(database *db.DB) core.ITokenLedger {
	ledger, err := token.New(cfg.Token, database)
	if err != nil {
		panic(err)
	}

	return ledger
}

func provideSession() core.ISession {
	return auth.NewSession(cfg.Auth)
}

func provideLending(backend core.IKVBackend, tokens core.ITokenService, events core.IEventStore) core.ILendingService {
	return lending.New(backend, tokens, auth.New(), events, provideClock(), cfg.App.Pool)
}

// provideLendingService wires the lending service on the configured backends
func provideLendingService(database *db.DB) (core.ILendingService, core.IEventStore) {
	events := provideEventStore(database)
	return provideLending(provideKV(database), provideTokenLedger(database), events), events
}

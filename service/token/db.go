package token

import (
	"context"

	"moneymarket/core"

	"github.com/fox-one/pkg/store"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

type dbLedger struct {
	db *db.DB
}

// NewDB token ledger persisted in token_balances
func NewDB(db *db.DB) core.ITokenLedger {
	return &dbLedger{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.TokenBalance{})
		if err := tx.AutoMigrate(core.TokenBalance{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (l *dbLedger) load(tx *db.DB, token, holder string) (*core.TokenBalance, error) {
	b := core.TokenBalance{
		Token:  token,
		Holder: holder,
		Amount: decimal.Zero,
	}

	if err := tx.Update().Where("token = ? AND holder = ?", token, holder).FirstOrCreate(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (l *dbLedger) save(tx *db.DB, b *core.TokenBalance) error {
	version := b.Version
	b.Version++

	update := tx.Update().Model(b).Where("version = ?", version).Updates(map[string]interface{}{
		"amount":  b.Amount,
		"version": b.Version,
	})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (l *dbLedger) Transfer(ctx context.Context, token, from, to string, amount decimal.Decimal) error {
	if err := validAmount(amount); err != nil {
		return err
	}

	if amount.IsZero() || from == to {
		return nil
	}

	return l.db.Tx(func(tx *db.DB) error {
		src, err := l.load(tx, token, from)
		if err != nil {
			return err
		}

		if src.Amount.LessThan(amount) {
			return core.ErrNotEnoughBalance
		}

		dst, err := l.load(tx, token, to)
		if err != nil {
			return err
		}

		src.Amount = src.Amount.Sub(amount)
		dst.Amount = dst.Amount.Add(amount)

		if err := l.save(tx, src); err != nil {
			return err
		}

		return l.save(tx, dst)
	})
}

func (l *dbLedger) BalanceOf(ctx context.Context, token, holder string) (decimal.Decimal, error) {
	var b core.TokenBalance
	if err := l.db.View().Where("token = ? AND holder = ?", token, holder).First(&b).Error; err != nil {
		if store.IsErrNotFound(err) {
			return decimal.Zero, nil
		}

		return decimal.Zero, err
	}

	return b.Amount, nil
}

func (l *dbLedger) Mint(ctx context.Context, token, holder string, amount decimal.Decimal) error {
	if err := validAmount(amount); err != nil {
		return err
	}

	return l.db.Tx(func(tx *db.DB) error {
		b, err := l.load(tx, token, holder)
		if err != nil {
			return err
		}

		b.Amount = b.Amount.Add(amount)
		return l.save(tx, b)
	})
}

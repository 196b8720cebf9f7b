package token

import (
	"fmt"

	"moneymarket/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// New ledger selected by cfg.Driver
func New(cfg core.Token, database *db.DB) (core.ITokenLedger, error) {
	switch cfg.Driver {
	case "", core.DriverMemory:
		return Memory(), nil
	case core.DriverDB:
		if database == nil {
			return nil, fmt.Errorf("token driver %q needs a database", cfg.Driver)
		}
		return NewDB(database), nil
	default:
		return nil, fmt.Errorf("unknown token driver %q", cfg.Driver)
	}
}

func validAmount(amount decimal.Decimal) error {
	if !core.IsAmount(amount) {
		return core.ErrInvalidArgument
	}

	return nil
}

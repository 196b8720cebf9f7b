package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ITokenService fungible token collaborator
type ITokenService interface {
	Transfer(ctx context.Context, token, from, to string, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, token, holder string) (decimal.Decimal, error)
}

// ITokenLedger token service that can issue new units
type ITokenLedger interface {
	ITokenService
	Mint(ctx context.Context, token, holder string, amount decimal.Decimal) error
}

// TokenBalance persisted balance of one holder
type TokenBalance struct {
	ID        int64           `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Token     string          `sql:"size:128;unique_index:token_holder_idx" json:"token"`
	Holder    string          `sql:"size:128;unique_index:token_holder_idx" json:"holder"`
	Amount    decimal.Decimal `sql:"type:decimal(40,0)" json:"amount"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

package core

import "github.com/shopspring/decimal"

// UserBalance position of a user in one asset
type UserBalance struct {
	AssetID      string          `json:"asset_id"`
	Deposit      decimal.Decimal `json:"deposit"`
	Shares       decimal.Decimal `json:"shares"`
	Borrowed     decimal.Decimal `json:"borrowed"`
	IsCollateral bool            `json:"is_collateral"`
}

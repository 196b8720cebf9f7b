package core

import "github.com/shopspring/decimal"

// LiquidityIndex checkpoint of the log domain deposit yield accumulator.
// Value is ln(share price) at InterestRateDecimals and never decreases.
type LiquidityIndex struct {
	AssetID   string          `json:"asset_id"`
	Value     decimal.Decimal `json:"value"`
	Timestamp int64           `json:"timestamp"`
}

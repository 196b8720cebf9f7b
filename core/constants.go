package core

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// PercentDecimals decimals of ratios like loan to value and liquidation threshold
	PercentDecimals int32 = 5
	// InterestRateDecimals decimals of interest rates and the liquidity index
	InterestRateDecimals int32 = 18
	// USDDecimals decimals of prices and usd values
	USDDecimals int32 = 8
	// YearInSeconds a 365 day year
	YearInSeconds int64 = 31536000

	// LifetimeThreshold keys with less lifetime left get bumped on write
	LifetimeThreshold = 29 * 24 * time.Hour
	// LifetimeBump lifetime granted to a bumped key
	LifetimeBump = 30 * 24 * time.Hour
)

var (
	// HundredPercent 100% at PercentDecimals
	HundredPercent = decimal.New(100, PercentDecimals)
	// InterestRateMultiplier one at InterestRateDecimals
	InterestRateMultiplier = decimal.New(1, InterestRateDecimals)
	// Hundred plain 100
	Hundred = decimal.New(100, 0)
	// RepaidInterestRate rate left on a fully repaid position
	RepaidInterestRate = decimal.New(9, 0)
)

// IsAmount reports whether v is a valid raw scaled amount: a non-negative integer
func IsAmount(v decimal.Decimal) bool {
	return !v.IsNegative() && v.Equal(v.Truncate(0))
}

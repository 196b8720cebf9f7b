package core

import (
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

// Market static info of a supported asset
type Market struct {
	AssetID      string `json:"asset_id"`
	TokenAddress string `json:"token_address"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	Decimals     int32  `json:"decimals"`
}

// ReserveConfig risk parameters of a market, both at PercentDecimals
type ReserveConfig struct {
	AssetID              string          `json:"asset_id"`
	LoanToValueRatio     decimal.Decimal `json:"loan_to_value_ratio"`
	LiquidationThreshold decimal.Decimal `json:"liquidation_threshold"`
}

// InterestRateModel piecewise linear borrow rate curve. Rates are percents
// at InterestRateDecimals, the optimal utilization is at PercentDecimals.
type InterestRateModel struct {
	AssetID                 string          `json:"asset_id"`
	MinRate                 decimal.Decimal `json:"min_rate"`
	SafeBorrowMaxRate       decimal.Decimal `json:"safe_borrow_max_rate"`
	RateGrowthFactor        decimal.Decimal `json:"rate_growth_factor"`
	OptimalUtilizationRatio decimal.Decimal `json:"optimal_utilization_ratio"`
}

// maxDecimals keeps one whole unit inside the magnitude range
const maxDecimals int32 = 38

// ValidIdentifier asset ids and principals are printable ascii without spaces or slashes
func ValidIdentifier(s string) bool {
	return s != "" && govalidator.IsPrintableASCII(s) && !strings.ContainsAny(s, " /")
}

// Validate check market fields
func (m *Market) Validate() error {
	if !ValidIdentifier(m.AssetID) || !ValidIdentifier(m.TokenAddress) {
		return ErrInvalidArgument
	}

	if m.Decimals < 0 || m.Decimals > maxDecimals {
		return ErrInvalidArgument
	}

	return nil
}

// Validate both ratios must be within [0, 100%]
func (c *ReserveConfig) Validate() error {
	for _, v := range []decimal.Decimal{c.LoanToValueRatio, c.LiquidationThreshold} {
		if !IsAmount(v) || v.GreaterThan(HundredPercent) {
			return ErrInvalidArgument
		}
	}

	return nil
}

// Validate rates must be amounts, the optimal utilization within (0, 100%)
func (m *InterestRateModel) Validate() error {
	for _, v := range []decimal.Decimal{m.MinRate, m.SafeBorrowMaxRate, m.RateGrowthFactor} {
		if !IsAmount(v) {
			return ErrInvalidArgument
		}
	}

	if m.SafeBorrowMaxRate.LessThan(m.MinRate) {
		return ErrInvalidArgument
	}

	u := m.OptimalUtilizationRatio
	if !IsAmount(u) || !u.IsPositive() || u.GreaterThanOrEqual(HundredPercent) {
		return ErrInvalidArgument
	}

	return nil
}

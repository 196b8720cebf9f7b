package core

import "github.com/shopspring/decimal"

// TotalBorrowSnapshot pool wide borrow checkpoint of one asset
type TotalBorrowSnapshot struct {
	AssetID       string          `json:"asset_id"`
	TotalBorrowed decimal.Decimal `json:"total_borrowed"`
	// ExpectedAnnualIncome at InterestRateDecimals
	ExpectedAnnualIncome decimal.Decimal `json:"expected_annual_income"`
	AverageInterestRate  decimal.Decimal `json:"average_interest_rate"`
	Timestamp            int64           `json:"timestamp"`
}

// UserBorrowPosition principal and blended rate of a user in one asset.
// The owed amount is always derived by compounding from Timestamp.
type UserBorrowPosition struct {
	BorrowedAmount      decimal.Decimal `json:"borrowed_amount"`
	AverageInterestRate decimal.Decimal `json:"average_interest_rate"`
	Timestamp           int64           `json:"timestamp"`
}

// IsZero no principal left
func (p *UserBorrowPosition) IsZero() bool {
	return p.BorrowedAmount.IsZero()
}

package lending

import (
	"moneymarket/core"
	"moneymarket/pkg/number"

	"github.com/shopspring/decimal"
)

// pool aggregates are maintained incrementally from truncated terms, so they
// saturate at zero instead of failing on drift

// ApplyBorrow replaces a position of principal at rate with next at nextRate
func ApplyBorrow(s *core.TotalBorrowSnapshot, principal, rate, next, nextRate decimal.Decimal, decimals int32, now int64) (*core.TotalBorrowSnapshot, error) {
	oldIncome, err := AnnualIncome(principal, rate, decimals)
	if err != nil {
		return nil, err
	}

	newIncome, err := AnnualIncome(next, nextRate, decimals)
	if err != nil {
		return nil, err
	}

	income := number.SubFloor(s.ExpectedAnnualIncome, oldIncome).Add(newIncome)
	total := number.SubFloor(s.TotalBorrowed, principal).Add(next)

	return snapshotOf(s.AssetID, total, income, decimals, now)
}

// ApplyRepay settles repaid of a position whose principal grew to owed at rate
func ApplyRepay(s *core.TotalBorrowSnapshot, principal, owed, rate, repaid decimal.Decimal, decimals int32, now int64) (*core.TotalBorrowSnapshot, error) {
	accrued, err := AnnualIncome(number.SubFloor(owed, principal), rate, decimals)
	if err != nil {
		return nil, err
	}

	released, err := AnnualIncome(repaid, rate, decimals)
	if err != nil {
		return nil, err
	}

	income := number.SubFloor(s.ExpectedAnnualIncome.Add(accrued), released)
	total := number.SubFloor(s.TotalBorrowed.Add(owed).Sub(principal), repaid)

	return snapshotOf(s.AssetID, total, income, decimals, now)
}

// ApplyLiquidation drops a position of principal at rate
func ApplyLiquidation(s *core.TotalBorrowSnapshot, principal, rate decimal.Decimal, decimals int32, now int64) (*core.TotalBorrowSnapshot, error) {
	released, err := AnnualIncome(principal, rate, decimals)
	if err != nil {
		return nil, err
	}

	income := number.SubFloor(s.ExpectedAnnualIncome, released)
	total := number.SubFloor(s.TotalBorrowed, principal)

	return snapshotOf(s.AssetID, total, income, decimals, now)
}

func snapshotOf(assetID string, total, income decimal.Decimal, decimals int32, now int64) (*core.TotalBorrowSnapshot, error) {
	if err := checkRange(total, income); err != nil {
		return nil, err
	}

	avg, err := PoolAverageRate(income, total, decimals)
	if err != nil {
		return nil, err
	}

	return &core.TotalBorrowSnapshot{
		AssetID:              assetID,
		TotalBorrowed:        total,
		ExpectedAnnualIncome: income,
		AverageInterestRate:  avg,
		Timestamp:            now,
	}, nil
}

func checkRange(values ...decimal.Decimal) error {
	for _, v := range values {
		if _, err := number.Add(v, decimal.Zero); err != nil {
			return err
		}
	}

	return nil
}

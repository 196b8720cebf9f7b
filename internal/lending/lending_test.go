package lending

import (
	"testing"

	"moneymarket/core"
	"moneymarket/pkg/number"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return number.Decimal(s)
}

var model = &core.InterestRateModel{
	AssetID:                 "eth",
	MinRate:                 d("5000000000000000000"),
	SafeBorrowMaxRate:       d("30000000000000000000"),
	RateGrowthFactor:        d("70000000000000000000"),
	OptimalUtilizationRatio: d("8000000"),
}

func TestInterestRate(t *testing.T) {
	data := []struct {
		u    string
		rate string
	}{
		{"0", "5000000000000000000"},
		{"4000000", "17500000000000000000"},
		{"8000000", "30000000000000000000"},
		{"9000000", "65000000000000000000"},
		{"10000000", "100000000000000000000"},
	}

	for _, c := range data {
		t.Run(c.u, func(t *testing.T) {
			rate, err := InterestRate(model, d(c.u))
			require.Nil(t, err)
			assert.Equal(t, c.rate, rate.String())
		})
	}
}

func TestUtilizationRate(t *testing.T) {
	u, err := UtilizationRate(d("300"), decimal.Zero)
	require.Nil(t, err)
	assert.True(t, u.IsZero())

	u, err = UtilizationRate(d("300000000000000000000"), d("1300000000000000000000"))
	require.Nil(t, err)
	assert.Equal(t, "2307692", u.String())
}

func TestBorrowedWithInterest(t *testing.T) {
	rate := d("5000000000000000000")

	data := []struct {
		name    string
		amount  string
		elapsed int64
		owed    string
	}{
		{"no time", "50000000000000000000", 0, "50000000000000000000"},
		{"one year", "50000000000000000000", core.YearInSeconds, "52500000000000000000"},
		{"one year xlm", "200000000000000000000", core.YearInSeconds, "210000000000000000000"},
		{"two years", "50000000000000000000", 2 * core.YearInSeconds, "55125000000000000000"},
		{"clock skew", "50000000000000000000", -100, "50000000000000000000"},
		{"nothing", "0", core.YearInSeconds, "0"},
	}

	for _, c := range data {
		t.Run(c.name, func(t *testing.T) {
			owed, err := BorrowedWithInterest(d(c.amount), rate, c.elapsed, 18)
			require.Nil(t, err)
			assert.Equal(t, c.owed, owed.String())
		})
	}
}

func TestBorrowedWithInterestNeverShrinks(t *testing.T) {
	amount := d("123456789")
	rate := d("17500000000000000000")

	prev := amount
	for _, elapsed := range []int64{1, 60, 3600, 86400, 1000000, core.YearInSeconds + 1} {
		owed, err := BorrowedWithInterest(amount, rate, elapsed, 6)
		require.Nil(t, err)
		assert.True(t, owed.GreaterThanOrEqual(prev), elapsed)
		prev = owed
	}
}

func TestLiquidityRate(t *testing.T) {
	rate, err := LiquidityRate(d("15000000000000000000"), d("1300000000000000000000"), 18)
	require.Nil(t, err)
	assert.Equal(t, "1153846153846153846", rate.String())

	rate, err = LiquidityRate(d("15000000000000000000"), decimal.Zero, 18)
	require.Nil(t, err)
	assert.True(t, rate.IsZero())
}

func TestIndex(t *testing.T) {
	price, err := SharePrice(decimal.Zero, 18)
	require.Nil(t, err)
	assert.Equal(t, "1000000000000000000", price.String())

	index, err := NextIndex(decimal.Zero, d("1153846153846153846"), 0)
	require.Nil(t, err)
	assert.True(t, index.IsZero())

	index, err = NextIndex(decimal.Zero, decimal.Zero, core.YearInSeconds)
	require.Nil(t, err)
	assert.True(t, index.IsZero())

	prev := decimal.Zero
	for i := 0; i < 5; i++ {
		index, err = NextIndex(prev, d("5000000000000000000"), 86400)
		require.Nil(t, err)
		assert.True(t, index.GreaterThan(prev))
		prev = index
	}

	price, err = SharePrice(prev, 18)
	require.Nil(t, err)
	assert.True(t, price.GreaterThan(d("1000000000000000000")))
}

func TestSharesRoundTrip(t *testing.T) {
	index, err := NextIndex(decimal.Zero, d("7000000000000000000"), 1234567)
	require.Nil(t, err)

	price, err := SharePrice(index, 18)
	require.Nil(t, err)

	amount := d("300000000000000000000")
	shares, err := SharesFor(amount, price, 18)
	require.Nil(t, err)

	back, err := TokensFor(shares, price, 18)
	require.Nil(t, err)

	assert.True(t, back.LessThanOrEqual(amount))
	assert.True(t, amount.Sub(back).LessThanOrEqual(d("2")))

	_, err = SharesFor(amount, decimal.Zero, 18)
	assert.Equal(t, core.ErrDivisionByZero, err)
}

func TestBlendRate(t *testing.T) {
	rate, err := BlendRate(decimal.Zero, d("5000000000000000000"), d("50000000000000000000"), d("5000000000000000000"), 18)
	require.Nil(t, err)
	assert.Equal(t, "5000000000000000000", rate.String())

	rate, err = BlendRate(d("50000000000000000000"), d("5000000000000000000"), d("50000000000000000000"), d("15000000000000000000"), 18)
	require.Nil(t, err)
	assert.Equal(t, "10000000000000000000", rate.String())
}

func TestSnapshot(t *testing.T) {
	empty := &core.TotalBorrowSnapshot{AssetID: "eth"}

	s, err := ApplyBorrow(empty, decimal.Zero, d("5000000000000000000"), d("50000000000000000000"), d("5000000000000000000"), 18, 100)
	require.Nil(t, err)
	assert.Equal(t, "50000000000000000000", s.TotalBorrowed.String())
	assert.Equal(t, "2500000000000000000", s.ExpectedAnnualIncome.String())
	assert.Equal(t, "5000000000000000000", s.AverageInterestRate.String())
	assert.Equal(t, int64(100), s.Timestamp)

	// full repay at the same moment empties the pool
	s, err = ApplyRepay(s, d("50000000000000000000"), d("50000000000000000000"), d("5000000000000000000"), d("50000000000000000000"), 18, 200)
	require.Nil(t, err)
	assert.True(t, s.TotalBorrowed.IsZero())
	assert.True(t, s.ExpectedAnnualIncome.IsZero())
	assert.True(t, s.AverageInterestRate.IsZero())

	s, err = ApplyBorrow(empty, decimal.Zero, decimal.Zero, d("3000000000000000000"), d("5000000000000000000"), 18, 300)
	require.Nil(t, err)

	s, err = ApplyLiquidation(s, d("3000000000000000000"), d("5000000000000000000"), 18, 400)
	require.Nil(t, err)
	assert.True(t, s.TotalBorrowed.IsZero())
	assert.True(t, s.ExpectedAnnualIncome.IsZero())

	// drift never goes below zero
	s, err = ApplyLiquidation(s, d("1"), d("5000000000000000000"), 18, 500)
	require.Nil(t, err)
	assert.True(t, s.TotalBorrowed.IsZero())
}

func scenarioAccount() Account {
	return Account{
		{
			AssetID:              "eth",
			Decimals:             18,
			Price:                d("200000000000"),
			Deposit:              d("200000000000000000000"),
			Borrowed:             d("50000000000000000000"),
			IsCollateral:         true,
			LoanToValueRatio:     d("8500000"),
			LiquidationThreshold: d("9000000"),
		},
		{
			AssetID:              "xlm",
			Decimals:             18,
			Price:                d("1000000000"),
			Deposit:              d("300000000000000000000"),
			Borrowed:             decimal.Zero,
			IsCollateral:         true,
			LoanToValueRatio:     d("7500000"),
			LiquidationThreshold: d("8000000"),
		},
	}
}

func TestRisk(t *testing.T) {
	acc := scenarioAccount()

	collateral, err := acc.CollateralUsd()
	require.Nil(t, err)
	assert.Equal(t, "40300000000000", collateral.String())

	deposited, err := acc.DepositedUsd()
	require.Nil(t, err)
	assert.Equal(t, "40300000000000", deposited.String())

	max, err := acc.MaxAllowedBorrowUsd()
	require.Nil(t, err)
	assert.Equal(t, "34225000000000", max.String())

	borrowed, err := acc.BorrowedUsd()
	require.Nil(t, err)
	assert.Equal(t, "10000000000000", borrowed.String())

	threshold, err := acc.LiquidationThreshold()
	require.Nil(t, err)
	assert.Equal(t, "8992555", threshold.String())

	utilization, err := acc.UtilizationRate()
	require.Nil(t, err)
	assert.Equal(t, "2481389", utilization.String())

	eth, _ := acc.Find("eth")
	available, err := acc.AvailableToBorrow(eth, d("950000000000000000000"))
	require.Nil(t, err)
	assert.Equal(t, "121125000000000000000", available.String())

	available, err = acc.AvailableToBorrow(eth, d("100000000000000000000"))
	require.Nil(t, err)
	assert.Equal(t, "100000000000000000000", available.String(), "capped by liquidity")

	redeem, err := acc.AvailableToRedeem(eth, d("950000000000000000000"))
	require.Nil(t, err)
	assert.Equal(t, "145898449606370000000", redeem.String())

	xlm, _ := acc.Find("xlm")
	redeem, err = acc.AvailableToRedeem(xlm, d("1000000000000000000000"))
	require.Nil(t, err)
	assert.Equal(t, "300000000000000000000", redeem.String(), "capped by deposit")
}

func TestRiskWithoutCollateral(t *testing.T) {
	acc := scenarioAccount()
	for _, h := range acc {
		h.IsCollateral = false
	}

	_, err := acc.LiquidationThreshold()
	assert.Equal(t, core.ErrNoCollateral, err)

	utilization, err := acc.UtilizationRate()
	require.Nil(t, err)
	assert.True(t, utilization.IsZero())

	xlm, _ := acc.Find("xlm")
	redeem, err := acc.AvailableToRedeem(xlm, decimal.Zero)
	require.Nil(t, err)
	assert.Equal(t, "300000000000000000000", redeem.String(), "free deposits are fully redeemable")

	available, err := acc.AvailableToBorrow(xlm, d("1000000000000000000000"))
	require.Nil(t, err)
	assert.True(t, available.IsZero())
}

func TestRiskZeroThreshold(t *testing.T) {
	acc := scenarioAccount()
	eth, _ := acc.Find("eth")
	eth.IsCollateral = false
	xlm, _ := acc.Find("xlm")
	xlm.LoanToValueRatio = decimal.Zero
	xlm.LiquidationThreshold = decimal.Zero

	threshold, err := acc.LiquidationThreshold()
	require.Nil(t, err)
	assert.True(t, threshold.IsZero())

	_, err = acc.RequiredCollateralUsd()
	assert.Equal(t, core.ErrNoCollateral, err)

	redeem, err := acc.AvailableToRedeem(xlm, d("1000000000000000000000"))
	require.Nil(t, err)
	assert.True(t, redeem.IsZero(), "collateral backing nothing stays locked while borrowing")

	eth.Borrowed = decimal.Zero
	required, err := acc.RequiredCollateralUsd()
	require.Nil(t, err)
	assert.True(t, required.IsZero())

	redeem, err = acc.AvailableToRedeem(xlm, d("1000000000000000000000"))
	require.Nil(t, err)
	assert.Equal(t, "300000000000000000000", redeem.String())
}

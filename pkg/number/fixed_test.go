package number

import (
	"testing"

	"moneymarket/core"

	"github.com/bmizerany/assert"
	"github.com/shopspring/decimal"
)

func TestToScaledTruncates(t *testing.T) {
	data := []struct {
		value    string
		decimals int32
		expect   string
	}{
		{"1.999999999", 8, "199999999"},
		{"0.123456789", 5, "12345"},
		{"52.5", 18, "52500000000000000000"},
		{"0", 18, "0"},
	}

	for _, d := range data {
		t.Run(d.value, func(t *testing.T) {
			raw, err := ToScaled(Decimal(d.value), d.decimals)
			assert.Equal(t, nil, err)
			assert.Equal(t, d.expect, raw.String())
		})
	}
}

func TestToScaledOverflow(t *testing.T) {
	_, err := ToScaled(MaxMagnitude, 0)
	assert.Equal(t, core.ErrOverflow, err)

	_, err = ToScaled(Decimal("-1"), 0)
	assert.Equal(t, core.ErrOverflow, err)

	_, err = Mul(MaxMagnitude.Sub(decimal.New(1, 0)), decimal.New(2, 0))
	assert.Equal(t, core.ErrOverflow, err)

	_, err = Sub(Decimal("1"), Decimal("2"))
	assert.Equal(t, core.ErrOverflow, err)
}

func TestDivisionByZero(t *testing.T) {
	_, err := Div(Decimal("1"), decimal.Zero)
	assert.Equal(t, core.ErrDivisionByZero, err)

	_, err = Quo(Decimal("1"), decimal.Zero)
	assert.Equal(t, core.ErrDivisionByZero, err)

	_, err = MulDiv(Decimal("1"), Decimal("1"), decimal.Zero)
	assert.Equal(t, core.ErrDivisionByZero, err)
}

func TestQuoTruncates(t *testing.T) {
	q, err := Quo(Decimal("7"), Decimal("2"))
	assert.Equal(t, nil, err)
	assert.Equal(t, "3", q.String())

	v, err := MulDiv(Decimal("34225000000000"), Decimal("1"), Decimal("3"))
	assert.Equal(t, nil, err)
	assert.Equal(t, "11408333333333", v.String())
}

func TestDivPrecision(t *testing.T) {
	v, err := Div(Decimal("1500"), Decimal("1300"))
	assert.Equal(t, nil, err)

	raw, err := ToScaled(v, 18)
	assert.Equal(t, nil, err)
	assert.Equal(t, "1153846153846153846", raw.String())
}

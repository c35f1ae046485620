package money

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	bigdec "github.com/shopspring/decimal"
)

// The [decimal] package keeps at most 19 significant digits and rounds
// half to even beyond that. Products and quotients that feed back into
// fixed-point values are therefore computed with arbitrary precision.

// bigFromInt64 returns value / 10^scale.
func bigFromInt64(value int64, scale int) bigdec.Decimal {
	return bigdec.New(value, -int32(scale)) //nolint:gosec
}

// bigFromDecimal converts d without loss of precision.
func bigFromDecimal(d decimal.Decimal) bigdec.Decimal {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return bigdec.NewFromBigInt(coef, -int32(d.Scale())) //nolint:gosec
}

// bigToUnits returns d * 10^scale truncated toward zero.
// It returns false if the result cannot be represented as an int64.
func bigToUnits(d bigdec.Decimal, scale int) (int64, bool) {
	i := d.Shift(int32(scale)).Truncate(0).BigInt() //nolint:gosec
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// parseBig converts a decimal string without rounding.
func parseBig(s string) (bigdec.Decimal, error) {
	d, err := bigdec.NewFromString(s)
	if err != nil {
		return bigdec.Decimal{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return d, nil
}

// bigToFixed returns the integer value and the scale of d, the scale being
// the number of digits after the decimal point, trailing zeros included.
// It returns an error wrapping [ErrOverflow] if the value cannot be represented
// as an int64 or the scale is greater than [decimal.MaxScale].
func bigToFixed(d bigdec.Decimal) (int64, int, error) {
	scale := 0
	if e := d.Exponent(); e < 0 {
		scale = -int(e)
	}
	if scale > decimal.MaxScale {
		return 0, 0, fmt.Errorf("%v: %v digits after the decimal point: %w", d, scale, ErrOverflow)
	}
	i := d.Shift(int32(scale)).BigInt() //nolint:gosec
	if !i.IsInt64() {
		return 0, 0, fmt.Errorf("%v: %w", d, ErrOverflow)
	}
	return i.Int64(), scale, nil
}

// bigToDecimal converts d without loss of precision.
func bigToDecimal(d bigdec.Decimal) (decimal.Decimal, error) {
	v, scale, err := bigToFixed(d)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.New(v, scale)
}

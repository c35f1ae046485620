package money

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Quote type represents a dimensionless decimal number, such as a price or
// a ratio, as an integer value and a number of digits after the decimal point.
// A Quote equals value / 10^scale.
//
// Quotes with different scales are equal if they represent the same number,
// for example 7.7 and 7.70000.
// Arithmetic between quotes of different scales never loses precision: the
// operand with the smaller scale is multiplied by a power of ten first.
//
// The zero value is 0.
// Quote is designed to be safe for concurrent use by multiple goroutines.
type Quote struct {
	value int64
	scale uint8
}

// NewQuote returns a quote equal to value / 10^scale.
//
// NewQuote returns an error if the scale is negative or greater than [decimal.MaxScale].
func NewQuote(value int64, scale int) (Quote, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return Quote{}, fmt.Errorf("scale %v out of range [0, %v]: %w", scale, decimal.MaxScale, ErrInvalidArgument)
	}
	return Quote{value: value, scale: uint8(scale)}, nil //nolint:gosec
}

// NewQuoteFromInt64 returns a quote with the given integer value and scale 0.
func NewQuoteFromInt64(value int64) Quote {
	return Quote{value: value}
}

// NewQuoteFromDecimal converts a decimal to a quote.
// The scale of the quote is the scale of the decimal, so
// the trailing zeros of d are preserved.
//
// NewQuoteFromDecimal returns an error if the coefficient of the decimal
// cannot be represented as an int64.
func NewQuoteFromDecimal(d decimal.Decimal) (Quote, error) {
	coef := d.Coef()
	switch {
	case d.IsNeg() && coef <= -math.MinInt64:
		return Quote{value: -int64(coef), scale: uint8(d.Scale())}, nil //nolint:gosec
	case !d.IsNeg() && coef <= math.MaxInt64:
		return Quote{value: int64(coef), scale: uint8(d.Scale())}, nil //nolint:gosec
	}
	return Quote{}, fmt.Errorf("converting %v: %w", d, ErrOverflow)
}

// ParseQuote converts a decimal string to a quote.
// The scale of the quote equals the number of digits after the decimal
// point in the string, for example "20999999.9769" becomes 209999999769 / 10^4.
// The string is never rounded.
//
// ParseQuote returns an error if:
//   - the string is not a decimal number, wrapping [ErrParse];
//   - the string has more than [decimal.MaxScale] digits after the decimal
//     point or its value does not fit an int64, wrapping [ErrOverflow].
func ParseQuote(s string) (Quote, error) {
	d, err := parseBig(s)
	if err != nil {
		return Quote{}, fmt.Errorf("parsing quote %q: %w", s, err)
	}
	v, scale, err := bigToFixed(d)
	if err != nil {
		return Quote{}, fmt.Errorf("parsing quote %q: %w", s, err)
	}
	return Quote{value: v, scale: uint8(scale)}, nil //nolint:gosec
}

// MustParseQuote is like [ParseQuote] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding quotes.
func MustParseQuote(s string) Quote {
	q, err := ParseQuote(s)
	if err != nil {
		panic(fmt.Sprintf("ParseQuote(%q) failed: %v", s, err))
	}
	return q
}

// Value returns the integer value of the quote, that is q * 10^scale.
func (q Quote) Value() int64 {
	return q.value
}

// Scale returns the number of digits after the decimal point.
func (q Quote) Scale() int {
	return int(q.scale)
}

// Decimal returns the decimal representation of the quote.
func (q Quote) Decimal() decimal.Decimal {
	d, err := decimal.New(q.value, q.Scale())
	if err != nil {
		// The scale of a quote never exceeds decimal.MaxScale.
		panic(fmt.Sprintf("decimal.New(%v, %v) failed: %v", q.value, q.Scale(), err))
	}
	return d
}

// Sign returns:
//
//	-1 if q < 0
//	 0 if q = 0
//	+1 if q > 0
func (q Quote) Sign() int {
	switch {
	case q.value < 0:
		return -1
	case q.value > 0:
		return 1
	}
	return 0
}

// IsZero returns true if q = 0.
func (q Quote) IsZero() bool {
	return q.value == 0
}

// IsPos returns true if q > 0.
func (q Quote) IsPos() bool {
	return q.value > 0
}

// IsNeg returns true if q < 0.
func (q Quote) IsNeg() bool {
	return q.value < 0
}

// rescale returns the quote with a larger scale.
func (q Quote) rescale(scale int) (Quote, bool) {
	if scale <= q.Scale() {
		return q, true
	}
	v, ok := lsh(q.value, scale-q.Scale())
	if !ok {
		return Quote{}, false
	}
	return Quote{value: v, scale: uint8(scale)}, true //nolint:gosec
}

// align rescales both quotes to the larger of their scales.
func align(q, p Quote) (Quote, Quote, bool) {
	if q.scale == p.scale {
		return q, p, true
	}
	scale := max(q.Scale(), p.Scale())
	q, ok := q.rescale(scale)
	if !ok {
		return Quote{}, Quote{}, false
	}
	p, ok = p.rescale(scale)
	if !ok {
		return Quote{}, Quote{}, false
	}
	return q, p, true
}

// Add returns the exact sum of quotes q and p.
// The scale of the result is the larger of the two scales.
//
// Add returns an error if the result cannot be represented as a quote.
func (q Quote) Add(p Quote) (Quote, error) {
	a, b, ok := align(q, p)
	if ok {
		a.value, ok = add(a.value, b.value)
	}
	if !ok {
		return Quote{}, fmt.Errorf("computing [%v + %v]: %w", q, p, ErrOverflow)
	}
	return a, nil
}

// Sub returns the exact difference between quotes q and p.
// The scale of the result is the larger of the two scales.
//
// Sub returns an error if the result cannot be represented as a quote.
func (q Quote) Sub(p Quote) (Quote, error) {
	a, b, ok := align(q, p)
	if ok {
		a.value, ok = sub(a.value, b.value)
	}
	if !ok {
		return Quote{}, fmt.Errorf("computing [%v - %v]: %w", q, p, ErrOverflow)
	}
	return a, nil
}

// Mul returns the quote multiplied by an integer.
// The scale of the result is the scale of q.
//
// Mul returns an error if the result cannot be represented as a quote.
func (q Quote) Mul(n int64) (Quote, error) {
	v, ok := mul(q.value, n)
	if !ok {
		return Quote{}, fmt.Errorf("computing [%v * %v]: %w", q, n, ErrOverflow)
	}
	return Quote{value: v, scale: q.scale}, nil
}

// MulDec returns the exact product of quote q and decimal e.
// The scale of the result is the sum of the scales of q and e,
// no digits are dropped.
//
// MulDec returns an error if the result has more than [decimal.MaxScale]
// digits after the decimal point or cannot be represented as a quote.
func (q Quote) MulDec(e decimal.Decimal) (Quote, error) {
	scale := q.Scale() + e.Scale()
	if scale > decimal.MaxScale {
		return Quote{}, fmt.Errorf("computing [%v * %v]: scale %v: %w", q, e, scale, ErrOverflow)
	}
	f := bigFromInt64(q.value, q.Scale()).Mul(bigFromDecimal(e))
	v, ok := bigToUnits(f, scale)
	if !ok {
		return Quote{}, fmt.Errorf("computing [%v * %v]: %w", q, e, ErrOverflow)
	}
	return Quote{value: v, scale: uint8(scale)}, nil //nolint:gosec
}

// Cmp compares quotes numerically and returns:
//
//	-1 if q < p
//	 0 if q = p
//	+1 if q > p
func (q Quote) Cmp(p Quote) int {
	a, b, ok := align(q, p)
	if !ok {
		return bigFromInt64(q.value, q.Scale()).Cmp(bigFromInt64(p.value, p.Scale()))
	}
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	}
	return 0
}

// Equal returns true if quotes q and p represent the same number,
// regardless of their scales.
func (q Quote) Equal(p Quote) bool {
	return q.Cmp(p) == 0
}

// String implements the [fmt.Stringer] interface and returns the quote
// in plain decimal notation, keeping trailing zeros.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Quote) String() string {
	return q.Decimal().String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseQuote].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (q *Quote) UnmarshalText(text []byte) error {
	var err error
	*q, err = ParseQuote(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Quote{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (q Quote) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/govalues/decimal"
	bigdec "github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Money type represents a monetary amount as an integer number of minor
// units of its currency (e.g. cents, pennies, fils).
// For example, 12.34 EUR is stored as 1234, while 12.34 BHD, a currency
// with 3 digits in its minor unit, is stored as 12340.
//
// The scale of a monetary amount is always the scale of its currency.
// The zero value has no currency and is not produced by any constructor.
// Money is designed to be safe for concurrent use by multiple goroutines.
type Money struct {
	value int64    // minor units
	curr  Currency // currency
}

// NewMoney returns an amount of the given minor units of currency.
// For example, NewMoney(EUR, 123) is 1.23 EUR.
//
// NewMoney returns an error if the currency is the zero value.
func NewMoney(curr Currency, units int64) (Money, error) {
	if !curr.IsValid() {
		return Money{}, fmt.Errorf("creating amount: %w", ErrUnknownCurrency)
	}
	return Money{value: units, curr: curr}, nil
}

// MustNewMoney is like [NewMoney] but panics if the amount cannot be constructed.
func MustNewMoney(curr Currency, units int64) Money {
	m, err := NewMoney(curr, units)
	if err != nil {
		panic(fmt.Sprintf("NewMoney(%v, %v) failed: %v", curr, units, err))
	}
	return m
}

// NewMoneyFromInt64 returns an amount of n whole units of currency.
// For example, NewMoneyFromInt64(EUR, 1) is stored as 100 minor units.
//
// NewMoneyFromInt64 returns an error if:
//   - the currency is the zero value;
//   - n * 10^scale cannot be represented as an int64.
func NewMoneyFromInt64(curr Currency, n int64) (Money, error) {
	if !curr.IsValid() {
		return Money{}, fmt.Errorf("converting %v: %w", n, ErrUnknownCurrency)
	}
	v, ok := lsh(n, curr.Scale())
	if !ok {
		return Money{}, fmt.Errorf("converting %v %v: %w", curr, n, ErrOverflow)
	}
	return Money{value: v, curr: curr}, nil
}

// NewMoneyFromDecimal converts a decimal to an amount of currency.
// Digits beyond the scale of the currency are truncated (rounding toward
// zero), so 1.239 EUR becomes 1.23 EUR and -1.239 EUR becomes -1.23 EUR.
// See also method [Money.Decimal].
//
// NewMoneyFromDecimal returns an error if:
//   - the currency is the zero value;
//   - the amount in minor units cannot be represented as an int64.
func NewMoneyFromDecimal(curr Currency, d decimal.Decimal) (Money, error) {
	return newMoneyFromBig(curr, bigFromDecimal(d))
}

// newMoneyFromBig is like [NewMoneyFromDecimal] but accepts any number of digits.
func newMoneyFromBig(curr Currency, d bigdec.Decimal) (Money, error) {
	if !curr.IsValid() {
		return Money{}, fmt.Errorf("converting %v: %w", d, ErrUnknownCurrency)
	}
	v, ok := bigToUnits(d, curr.Scale())
	if !ok {
		return Money{}, fmt.Errorf("converting %v %v: %w", curr, d, ErrOverflow)
	}
	return Money{value: v, curr: curr}, nil
}

// ParseMoney converts currency and decimal strings to an amount.
// The amount may have any number of digits, those beyond the scale of
// the currency are truncated.
// See also constructor [ParseCurr].
func ParseMoney(curr, amount string) (Money, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := parseBig(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	// Money
	return newMoneyFromBig(c, d)
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseMoney(curr, amount string) Money {
	m, err := ParseMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// ParseMoneyText parses locale-specific text such as "€1.23", "1.23€",
// "EUR1.23" or "1.23EUR" using the ISO 4217 registry and the
// pattern "¤#,##0.###".
// See also method [Formatter.ParseMoney].
func ParseMoneyText(text string, tag language.Tag) (Money, error) {
	f, err := cachedFormatter(tag, parsePattern)
	if err != nil {
		return Money{}, err
	}
	return f.ParseMoney(text)
}

// Curr returns the currency of the amount.
func (m Money) Curr() Currency {
	return m.curr
}

// MinorUnits returns the amount in minor units of its currency.
func (m Money) MinorUnits() int64 {
	return m.value
}

// Quote returns the amount as a quote with the scale of its currency.
func (m Money) Quote() Quote {
	return Quote{value: m.value, scale: m.curr.scale}
}

// Decimal returns the decimal representation of the amount.
// The scale of the decimal is the scale of the currency.
func (m Money) Decimal() decimal.Decimal {
	return m.Quote().Decimal()
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.Quote().Sign()
}

// IsZero returns true if m = 0.
func (m Money) IsZero() bool {
	return m.value == 0
}

// IsNeg returns true if m < 0.
func (m Money) IsNeg() bool {
	return m.value < 0
}

// IsPos returns true if m > 0.
func (m Money) IsPos() bool {
	return m.value > 0
}

// Neg returns an amount with the opposite sign.
//
// Neg returns an error if the amount is the smallest int64 number of minor units.
func (m Money) Neg() (Money, error) {
	if m.value == math.MinInt64 {
		return Money{}, fmt.Errorf("computing [-%v]: %w", m, ErrOverflow)
	}
	return Money{value: -m.value, curr: m.curr}, nil
}

// Abs returns the absolute value of the amount.
//
// Abs returns an error if the amount is the smallest int64 number of minor units.
func (m Money) Abs() (Money, error) {
	if m.value < 0 {
		return m.Neg()
	}
	return m, nil
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Money.Curr].
func (m Money) SameCurr(b Money) bool {
	return m.curr == b.curr
}

// Add returns the sum of amounts m and b.
//
// Add returns an error if:
//   - amounts are denominated in different currencies;
//   - the result cannot be represented as an int64 number of minor units.
func (m Money) Add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, ErrCurrencyMismatch)
	}
	v, ok := add(m.value, b.value)
	if !ok {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, ErrOverflow)
	}
	return Money{value: v, curr: m.curr}, nil
}

// Sub returns the difference between amounts m and b.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the result cannot be represented as an int64 number of minor units.
func (m Money) Sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, ErrCurrencyMismatch)
	}
	v, ok := sub(m.value, b.value)
	if !ok {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, ErrOverflow)
	}
	return Money{value: v, curr: m.curr}, nil
}

// Mul returns the amount multiplied by an integer.
//
// Mul returns an error if the result cannot be represented as an int64
// number of minor units.
func (m Money) Mul(n int64) (Money, error) {
	v, ok := mul(m.value, n)
	if !ok {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, n, ErrOverflow)
	}
	return Money{value: v, curr: m.curr}, nil
}

// MulDec returns the amount multiplied by a decimal factor.
// The product is computed exactly and then truncated toward zero to whole
// minor units; it is never rounded.
// For example, 2.00 EUR * 1.111 = 2.222 EUR becomes 2.22 EUR and
// 2.00 EUR * 1.119 = 2.238 EUR becomes 2.23 EUR.
//
// MulDec returns an error if the result cannot be represented as an int64
// number of minor units.
func (m Money) MulDec(e decimal.Decimal) (Money, error) {
	f := bigFromInt64(m.value, 0).Mul(bigFromDecimal(e))
	v, ok := bigToUnits(f, 0)
	if !ok {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, ErrOverflow)
	}
	return Money{value: v, curr: m.curr}, nil
}

// Conv converts the amount to the other currency of the exchange rate.
// See [ExchangeRate.Conv] for the conversion and rounding rules.
func (m Money) Conv(r ExchangeRate) (Money, error) {
	return r.Conv(m)
}

// Cmp compares amounts of the same currency and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if amounts are denominated in different currencies.
// See also method [Money.Compare].
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	return cmpInt64(m.value, b.value), nil
}

// Compare orders amounts by currency code first and by value second.
// It returns -1, 0 or +1 and can be used with [slices.SortFunc].
// The order of amounts in different currencies says nothing about
// their worth.
func (m Money) Compare(b Money) int {
	if c := strings.Compare(m.curr.Code(), b.curr.Code()); c != 0 {
		return c
	}
	if c := cmpInt64(int64(m.curr.scale), int64(b.curr.scale)); c != 0 {
		return c
	}
	return cmpInt64(m.value, b.value)
}

func cmpInt64(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Text returns the amount formatted for the given locale, with the currency
// symbol in front and exactly as many fraction digits as the currency scale,
// for example "€1,234.56" for American English.
// See also method [Formatter.FormatMoney].
func (m Money) Text(tag language.Tag) string {
	f, err := cachedFormatter(tag, formatPattern)
	if err != nil {
		// formatPattern is a valid pattern.
		panic(fmt.Sprintf("%v.Text(%v) failed: %v", m, tag, err))
	}
	return f.FormatMoney(m)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "EUR 1.23".
// See also method [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return fmt.Sprintf("%v", m)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.67    | Currency and amount        |
//	| %q     | "USD 5.67"  | Quoted currency and amount |
//	| %f     | 5.67        | Amount                     |
//	| %d     | 567         | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is only supported for the %f verb, the amount is rounded
// half to even if the precision is below the scale of the currency.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
//
//gocyclo:ignore
func (m Money) Format(state fmt.State, verb rune) {
	d := m.Decimal()

	// Rescaling
	tzeros := 0
	if p, ok := state.Precision(); ok && (verb == 'f' || verb == 'F') {
		switch {
		case p < d.Scale():
			d = d.Round(max(p, 0))
		case p > d.Scale():
			tzeros = p - d.Scale()
		}
	}

	// Decimal point for zero-padded amounts of currencies without minor units
	dpoint := 0
	if tzeros > 0 && d.Scale() == 0 {
		dpoint = 1
	}

	// Digits
	digits := ""
	switch verb {
	case 'c', 'C':
		// skip
	case 'd', 'D':
		digits = fmt.Sprint(uint64Abs(m.value))
	default:
		digits = d.Abs().String()
	}

	// Arithmetic sign
	rsign := 0
	if verb != 'c' && verb != 'C' && (m.value < 0 || state.Flag('+') || state.Flag(' ')) {
		rsign = 1
	}

	// Currency code and delimiter
	curr, currdel := "", 0
	switch verb {
	case 'f', 'F', 'd', 'D':
		// skip
	case 'c', 'C':
		curr = m.curr.Code()
	default:
		curr = m.curr.Code()
		currdel = 1
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + len(curr) + currdel + rsign + len(digits) + dpoint + tzeros + tquote
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	var buf strings.Builder
	buf.WriteString(strings.Repeat(" ", lspaces))
	if lquote > 0 {
		buf.WriteByte('"')
	}
	buf.WriteString(curr)
	if currdel > 0 {
		buf.WriteByte(' ')
	}
	if rsign > 0 {
		switch {
		case m.value < 0:
			buf.WriteByte('-')
		case state.Flag(' '):
			buf.WriteByte(' ')
		default:
			buf.WriteByte('+')
		}
	}
	buf.WriteString(strings.Repeat("0", lzeros))
	buf.WriteString(digits)
	if dpoint > 0 {
		buf.WriteByte('.')
	}
	buf.WriteString(strings.Repeat("0", tzeros))
	if tquote > 0 {
		buf.WriteByte('"')
	}
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write([]byte(buf.String()))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Money="))
		state.Write([]byte(buf.String()))
		state.Write([]byte(")"))
	}
}

func uint64Abs(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1 //nolint:gosec
	}
	return uint64(v) //nolint:gosec
}

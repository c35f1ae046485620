package money

import (
	"fmt"
	"strings"
)

// CurrencyPair represents an ordered pair of currencies, such as EUR/USD.
// The first currency is the base currency, the second one is the quote currency.
// CurrencyPair is comparable and safe for concurrent use.
type CurrencyPair struct {
	base  Currency
	quote Currency
}

// NewPair returns a currency pair with the given base and quote currencies.
//
// NewPair returns an error if either currency is the zero value.
func NewPair(base, quote Currency) (CurrencyPair, error) {
	if !base.IsValid() {
		return CurrencyPair{}, fmt.Errorf("base currency is missing: %w", ErrInvalidArgument)
	}
	if !quote.IsValid() {
		return CurrencyPair{}, fmt.Errorf("quote currency is missing: %w", ErrInvalidArgument)
	}
	return CurrencyPair{base: base, quote: quote}, nil
}

// ParsePair converts a string such as "EUR/USD" to a currency pair using
// the [ISO4217] registry.
// See also constructor [ParsePairFrom].
func ParsePair(s string) (CurrencyPair, error) {
	return ParsePairFrom(ISO4217, s)
}

// ParsePairFrom converts a string in the form "BASE/QUOTE" to a currency pair,
// resolving both codes with the given registry.
// Codes must be written in upper case, numeric codes are not accepted.
//
// ParsePairFrom returns an error wrapping [ErrMalformedPair] if the string
// does not contain exactly one '/' or if either side is not a known currency.
func ParsePairFrom(reg Registry, s string) (CurrencyPair, error) {
	base, quote, ok := strings.Cut(s, "/")
	if !ok || strings.Contains(quote, "/") {
		return CurrencyPair{}, fmt.Errorf("parsing %q, expected <base>/<quote>: %w", s, ErrMalformedPair)
	}
	b, err := lookupCode(reg, base)
	if err != nil {
		return CurrencyPair{}, fmt.Errorf("parsing %q: %w: %w", s, ErrMalformedPair, err)
	}
	q, err := lookupCode(reg, quote)
	if err != nil {
		return CurrencyPair{}, fmt.Errorf("parsing %q: %w: %w", s, ErrMalformedPair, err)
	}
	return CurrencyPair{base: b, quote: q}, nil
}

// lookupCode resolves an alphabetic upper-case code with the registry.
func lookupCode(reg Registry, code string) (Currency, error) {
	if !isCode(code) {
		return Currency{}, fmt.Errorf("%q: %w", code, ErrUnknownCurrency)
	}
	return reg.Lookup(code)
}

// MustParsePair is like [ParsePair] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currency pairs.
func MustParsePair(s string) CurrencyPair {
	p, err := ParsePair(s)
	if err != nil {
		panic(fmt.Sprintf("ParsePair(%q) failed: %v", s, err))
	}
	return p
}

// Base returns the base currency.
func (p CurrencyPair) Base() Currency {
	return p.base
}

// Quote returns the quote currency.
func (p CurrencyPair) Quote() Currency {
	return p.quote
}

// IsValid returns true unless p is the zero value.
func (p CurrencyPair) IsValid() bool {
	return p.base.IsValid() && p.quote.IsValid()
}

// Contains returns true if c is the base or the quote currency of the pair.
func (p CurrencyPair) Contains(c Currency) bool {
	return p.base == c || p.quote == c
}

// Inv returns the pair with base and quote currencies swapped.
func (p CurrencyPair) Inv() CurrencyPair {
	return CurrencyPair{base: p.quote, quote: p.base}
}

// Compare orders pairs by the code of the base currency first and by
// the code of the quote currency second.
// It returns -1, 0 or +1 and can be used with [slices.SortFunc].
func (p CurrencyPair) Compare(q CurrencyPair) int {
	if c := strings.Compare(p.base.Code(), q.base.Code()); c != 0 {
		return c
	}
	return strings.Compare(p.quote.Code(), q.quote.Code())
}

// String implements the [fmt.Stringer] interface and returns the pair
// in the form "BASE/QUOTE".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p CurrencyPair) String() string {
	return p.base.Code() + "/" + p.quote.Code()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParsePair].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (p *CurrencyPair) UnmarshalText(text []byte) error {
	var err error
	*p, err = ParsePair(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", CurrencyPair{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (p CurrencyPair) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

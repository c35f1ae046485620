package money

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
)

// Clock provides the current time.
// It is used to timestamp exchange rates, see [NewExchRateNow].
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts an ordinary function to the [Clock] interface.
type ClockFunc func() time.Time

// Now returns f().
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall-clock time.
var SystemClock Clock = ClockFunc(time.Now)

// ExchangeRate represents the price of one currency in another at a point in time.
// It means that 1 unit of the base currency is worth rate units of the quote
// currency.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	pair CurrencyPair // currency being exchanged / currency obtained in exchange
	rate Quote        // how many units of quote currency are needed to exchange for 1 unit of the base currency
	time time.Time    // when the rate was observed
}

// NewExchRate returns a new exchange rate for the currency pair observed at time t.
//
// Any rate is accepted, including rates of pairs such as EUR/EUR.
// Only positive rates can be used for conversion, see [ExchangeRate.Conv].
//
// NewExchRate returns an error if the pair is the zero value.
func NewExchRate(pair CurrencyPair, rate Quote, t time.Time) (ExchangeRate, error) {
	if !pair.IsValid() {
		return ExchangeRate{}, fmt.Errorf("currency pair is missing: %w", ErrInvalidArgument)
	}
	return ExchangeRate{pair: pair, rate: rate, time: t}, nil
}

// NewExchRateNow is like [NewExchRate] but timestamps the rate with
// the current time of the clock.
// A nil clock means [SystemClock].
func NewExchRateNow(pair CurrencyPair, rate Quote, clock Clock) (ExchangeRate, error) {
	if clock == nil {
		clock = SystemClock
	}
	return NewExchRate(pair, rate, clock.Now())
}

// ParseExchRate converts pair and decimal strings to an exchange rate
// observed at time t.
// See also constructors [ParsePair] and [ParseQuote].
func ParseExchRate(pair, rate string, t time.Time) (ExchangeRate, error) {
	p, err := ParsePair(pair)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("pair parsing: %w", err)
	}
	q, err := ParseQuote(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate parsing: %w", err)
	}
	r, err := NewExchRate(p, q, t)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(pair, rate string, t time.Time) ExchangeRate {
	r, err := ParseExchRate(pair, rate, t)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %v) failed: %v", pair, rate, t, err))
	}
	return r
}

// Pair returns the currency pair of the exchange rate.
func (r ExchangeRate) Pair() CurrencyPair {
	return r.pair
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.pair.Base()
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.pair.Quote()
}

// Rate returns how many units of the quote currency 1 unit of the base
// currency is worth.
func (r ExchangeRate) Rate() Quote {
	return r.rate
}

// Time returns the time the exchange rate was observed.
func (r ExchangeRate) Time() time.Time {
	return r.time
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given amount.
func (r ExchangeRate) CanConv(m Money) bool {
	return m.Curr().IsValid() &&
		r.pair.Contains(m.Curr()) &&
		r.rate.IsPos()
}

// Conv converts an amount denominated in either currency of the pair to
// the other currency.
//
// An amount in the base currency is multiplied by the rate. The product is
// exact and is truncated toward zero to the scale of the quote currency.
// An amount in the quote currency is divided by the rate. The quotient is
// rounded half up (ties away from zero) to the scale of the base currency.
// For example, with EUR/BHD 10.1234, 10.00 EUR becomes 101.234 BHD, and
// with EUR/BHD 10, 10.189 BHD becomes 1.02 EUR.
//
// When base and quote currencies are equal, the amount is treated as an
// amount in the base currency and multiplied by the rate.
//
// Conv returns an error if:
//   - the rate is not positive, wrapping [ErrInvalidArgument];
//   - the currency of the amount is neither the base nor the quote currency;
//   - the result cannot be represented as an int64 number of minor units.
func (r ExchangeRate) Conv(m Money) (Money, error) {
	if !r.rate.IsPos() {
		return Money{}, fmt.Errorf("converting %v with %v: rate must be positive: %w", m, r, ErrInvalidArgument)
	}
	if !r.CanConv(m) {
		return Money{}, fmt.Errorf("converting %v with %v: %w", m, r, ErrIncompatibleRate)
	}
	var (
		curr Currency
		v    int64
		ok   bool
	)
	d := bigFromInt64(m.value, m.curr.Scale())
	e := bigFromInt64(r.rate.value, r.rate.Scale())
	if m.Curr() == r.Base() {
		curr = r.Quote()
		v, ok = bigToUnits(d.Mul(e), curr.Scale())
	} else {
		curr = r.Base()
		v, ok = bigToUnits(d.DivRound(e, int32(curr.Scale())), curr.Scale()) //nolint:gosec
	}
	if !ok {
		return Money{}, fmt.Errorf("converting %v with %v: %w", m, r, ErrOverflow)
	}
	return Money{value: v, curr: curr}, nil
}

// MulDec returns an exchange rate for the same pair and time,
// with the rate multiplied exactly by a positive factor e.
//
// MulDec returns an error if the factor is not positive or the product
// cannot be represented as a quote.
func (r ExchangeRate) MulDec(e decimal.Decimal) (ExchangeRate, error) {
	if !e.IsPos() {
		return ExchangeRate{}, fmt.Errorf("computing [%v * %v]: factor must be positive: %w", r, e, ErrInvalidArgument)
	}
	q, err := r.rate.MulDec(e)
	if err != nil {
		return ExchangeRate{}, err
	}
	return ExchangeRate{pair: r.pair, rate: q, time: r.time}, nil
}

// SamePair returns true if exchange rates are defined for the same currency pair.
func (r ExchangeRate) SamePair(q ExchangeRate) bool {
	return r.pair == q.pair
}

// Compare orders exchange rates by currency pair first and by time second.
// It returns -1, 0 or +1 and can be used with [slices.SortFunc].
// See also method [CurrencyPair.Compare].
func (r ExchangeRate) Compare(q ExchangeRate) int {
	if c := r.pair.Compare(q.pair); c != 0 {
		return c
	}
	return r.time.Compare(q.time)
}

// Equal returns true if exchange rates have the same pair, numerically equal
// rates and represent the same time instant.
func (r ExchangeRate) Equal(q ExchangeRate) bool {
	return r.pair == q.pair && r.rate.Equal(q.rate) && r.time.Equal(q.time)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, such as "EUR/USD@1.1 (2019-01-01T00:00:00Z)".
// The time is formatted according to [time.RFC3339Nano].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return fmt.Sprintf("%v@%v (%v)", r.pair, r.rate, r.time.Format(time.RFC3339Nano))
}

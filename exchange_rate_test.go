package money

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/govalues/decimal"
)

var (
	t0 = time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

func TestExchangeRate_ZeroValue(t *testing.T) {
	got := ExchangeRate{}
	if got.Pair().IsValid() {
		t.Errorf("ExchangeRate{}.Pair() = %v, want zero value", got.Pair())
	}
	if !got.Rate().IsZero() {
		t.Errorf("ExchangeRate{}.Rate() = %v, want 0", got.Rate())
	}
	if got.CanConv(MustNewMoney(eur, 1)) {
		t.Errorf("ExchangeRate{}.CanConv() = true, want false")
	}
}

func TestNewExchRate(t *testing.T) {
	tests := []struct {
		pair string
		rate string
	}{
		{"USD/EUR", "1.2000"},
		{"USD/EUR", "0.0000000001"},
		{"USD/EUR", "-1.2000"},
		{"USD/EUR", "0"},
		{"USD/USD", "0.9999"},
		{"USD/USD", "1"},
		{"EUR/EUR", "10"},
	}
	for _, tt := range tests {
		pair, rate := MustParsePair(tt.pair), MustParseQuote(tt.rate)
		got, err := NewExchRate(pair, rate, t0)
		if err != nil {
			t.Errorf("NewExchRate(%v, %v) failed: %v", pair, rate, err)
			continue
		}
		if got.Pair() != pair || got.Rate() != rate || !got.Time().Equal(t0) {
			t.Errorf("NewExchRate(%v, %v) = %v", pair, rate, got)
		}
	}

	_, err := NewExchRate(CurrencyPair{}, MustParseQuote("1"), t0)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewExchRate(CurrencyPair{}) = %v, want %v", err, ErrInvalidArgument)
	}
}

func TestNewExchRateNow(t *testing.T) {
	clock := ClockFunc(func() time.Time { return t1 })
	got, err := NewExchRateNow(MustParsePair("EUR/USD"), MustParseQuote("1.1"), clock)
	if err != nil {
		t.Fatalf("NewExchRateNow failed: %v", err)
	}
	if !got.Time().Equal(t1) {
		t.Errorf("NewExchRateNow().Time() = %v, want %v", got.Time(), t1)
	}

	before := time.Now()
	got, err = NewExchRateNow(MustParsePair("EUR/USD"), MustParseQuote("1.1"), nil)
	if err != nil {
		t.Fatalf("NewExchRateNow failed: %v", err)
	}
	if got.Time().Before(before) {
		t.Errorf("NewExchRateNow(nil).Time() = %v, want after %v", got.Time(), before)
	}
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			pair, rate string
			wantBase   Currency
			wantQuote  Currency
			wantRate   string
		}{
			{"USD/JPY", "132", usd, jpy, "132"},
			{"usd/eur", "1.2", usd, eur, "1.2"},
			{"USD/OMR", "0.38000", usd, omr, "0.38000"},
		}
		for _, tt := range tests {
			got, err := ParseExchRate(tt.pair, tt.rate, t0)
			if err != nil {
				t.Errorf("ParseExchRate(%q, %q) failed: %v", tt.pair, tt.rate, err)
				continue
			}
			if got.Base() != tt.wantBase || got.Quote() != tt.wantQuote || got.Rate().String() != tt.wantRate {
				t.Errorf("ParseExchRate(%q, %q) = %v", tt.pair, tt.rate, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			pair, rate string
		}{
			"no data": {"", ""},
			"base":    {"AAA/USD", "30000"},
			"quote":   {"USD/AAA", "0.00003"},
			"pair":    {"EUR/USD/JPY", "1"},
			"rate 1":  {"USD/EUR", "x.0000"},
			"rate 2":  {"USD/EUR", "1.00000000000000000001"},
			"rate 3":  {"USD/EUR", "92233720368547758.08"},
		}
		for name, tt := range tests {
			_, err := ParseExchRate(tt.pair, tt.rate, t0)
			if err == nil {
				t.Errorf("%v: ParseExchRate(%q, %q) did not fail", name, tt.pair, tt.rate)
			}
		}
	})
}

func TestMustParseExchRate(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseExchRate(\"EUR/USD\", \"x\") did not panic")
			}
		}()
		MustParseExchRate("EUR/USD", "x", t0)
	})
}

func TestExchangeRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			pair, rate   string
			curr, amount string
			wantCurr     string
			wantAmount   string
		}{
			// Base to quote, truncated
			{"EUR/BHD", "10.1234", "EUR", "10", "BHD", "101.234"},
			{"EUR/USD", "1.23456", "EUR", "1", "USD", "1.23"},
			{"EUR/USD", "1.23456", "EUR", "-1", "USD", "-1.23"},
			{"USD/JPY", "132.99", "USD", "0.01", "JPY", "1"},
			// Quote to base, rounded half up
			{"EUR/BHD", "10", "BHD", "10.189", "EUR", "1.02"},
			{"EUR/USD", "2", "USD", "0.05", "EUR", "0.03"},
			{"EUR/USD", "2", "USD", "0.03", "EUR", "0.02"},
			{"EUR/USD", "2", "USD", "-0.05", "EUR", "-0.03"},
			{"EUR/USD", "3", "USD", "0.01", "EUR", "0.00"},
			{"USD/JPY", "132", "JPY", "100", "USD", "0.76"},
			// Same currency, multiplied
			{"USD/USD", "1", "USD", "5.55", "USD", "5.55"},
			{"EUR/EUR", "10", "EUR", "1.23", "EUR", "12.30"},
			{"EUR/EUR", "0.5", "EUR", "0.05", "EUR", "0.02"},
		}
		for _, tt := range tests {
			r := MustParseExchRate(tt.pair, tt.rate, t0)
			m := MustParseMoney(tt.curr, tt.amount)
			want := MustParseMoney(tt.wantCurr, tt.wantAmount)
			got, err := r.Conv(m)
			if err != nil {
				t.Errorf("%v.Conv(%v) failed: %v", r, m, err)
				continue
			}
			if got != want {
				t.Errorf("%v.Conv(%v) = %v, want %v", r, m, got, want)
			}
			if got, _ := m.Conv(r); got != want {
				t.Errorf("%v.Conv(%v) = %v, want %v", m, r, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			pair, rate   string
			curr, amount string
			want         error
		}{
			{"EUR/GBP", "0.85", "USD", "1", ErrIncompatibleRate},
			{"EUR/USD", "0", "EUR", "1", ErrInvalidArgument},
			{"EUR/USD", "-1.1", "USD", "1", ErrInvalidArgument},
			{"EUR/JPY", "100000", "EUR", "92233720368547758", ErrOverflow},
			{"EUR/USD", "0.0000001", "USD", "92233720368547758", ErrOverflow},
		}
		for _, tt := range tests {
			r := MustParseExchRate(tt.pair, tt.rate, t0)
			m := MustParseMoney(tt.curr, tt.amount)
			_, err := r.Conv(m)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v.Conv(%v) = %v, want %v", r, m, err, tt.want)
			}
		}
	})
}

func TestExchangeRate_MulDec(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := MustParseExchRate("EUR/USD", "1.1", t0)
		got, err := r.MulDec(decimal.MustParse("2.5"))
		if err != nil {
			t.Fatalf("%v.MulDec(2.5) failed: %v", r, err)
		}
		if got.Rate().String() != "2.75" || got.Pair() != r.Pair() || !got.Time().Equal(t0) {
			t.Errorf("%v.MulDec(2.5) = %v", r, got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			pair, rate, e string
			want          error
		}{
			{"EUR/USD", "1.1", "0", ErrInvalidArgument},
			{"EUR/USD", "1.1", "-1", ErrInvalidArgument},
			{"EUR/USD", "9223372036854775807", "2", ErrOverflow},
		}
		for _, tt := range tests {
			r := MustParseExchRate(tt.pair, tt.rate, t0)
			e := decimal.MustParse(tt.e)
			_, err := r.MulDec(e)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v.MulDec(%v) = %v, want %v", r, e, err, tt.want)
			}
		}
	})
}

func TestExchangeRate_Compare(t *testing.T) {
	r1 := MustParseExchRate("EUR/USD", "1.1", t1)
	r2 := MustParseExchRate("EUR/USD", "1.2", t0)
	r3 := MustParseExchRate("EUR/GBP", "0.9", t1)
	r4 := MustParseExchRate("BHD/EUR", "2.4", t0)

	got := []ExchangeRate{r1, r2, r3, r4}
	want := []ExchangeRate{r4, r3, r2, r1}
	slices.SortFunc(got, ExchangeRate.Compare)
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("slices.SortFunc(ExchangeRate.Compare) = %v, want %v", got, want)
			break
		}
	}

	// Rates of the same pair are ordered by time only.
	later := MustParseExchRate("EUR/EUR", "1", time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
	earlier := MustParseExchRate("EUR/EUR", "10", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC))
	got = []ExchangeRate{later, earlier}
	slices.SortFunc(got, ExchangeRate.Compare)
	if !got[0].Equal(earlier) {
		t.Errorf("slices.SortFunc(ExchangeRate.Compare) = %v, want %v first", got, earlier)
	}

	// Pairs are ordered before time.
	other := MustParseExchRate("EUR/USD", "10", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC))
	got = []ExchangeRate{other, later}
	slices.SortFunc(got, ExchangeRate.Compare)
	if !got[0].Equal(later) {
		t.Errorf("slices.SortFunc(ExchangeRate.Compare) = %v, want %v first", got, later)
	}

	if !r1.SamePair(r2) || r1.SamePair(r3) {
		t.Errorf("SamePair() is wrong")
	}
}

func TestExchangeRate_Equal(t *testing.T) {
	r := MustParseExchRate("EUR/USD", "1.1", t0)
	tests := []struct {
		q    ExchangeRate
		want bool
	}{
		{MustParseExchRate("EUR/USD", "1.10", t0), true},
		{MustParseExchRate("EUR/USD", "1.1", t0.In(time.FixedZone("CET", 3600))), true},
		{MustParseExchRate("EUR/USD", "1.1", t1), false},
		{MustParseExchRate("EUR/USD", "1.2", t0), false},
		{MustParseExchRate("USD/EUR", "1.1", t0), false},
	}
	for _, tt := range tests {
		if got := r.Equal(tt.q); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", r, tt.q, got, tt.want)
		}
	}
}

func TestExchangeRate_String(t *testing.T) {
	tests := []struct {
		r    ExchangeRate
		want string
	}{
		{MustParseExchRate("EUR/USD", "1.1", t0), "EUR/USD@1.1 (2019-01-01T00:00:00Z)"},
		{MustParseExchRate("EUR/BHD", "10.1234", t1), "EUR/BHD@10.1234 (2019-01-01T01:00:00Z)"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

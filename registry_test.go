package money

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestISO4217_Lookup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"EUR", eur},
			{"eur", eur},
			{"978", eur},
			{"048", bhd},
			{"JPY", jpy},
		}
		for _, tt := range tests {
			got, err := ISO4217.Lookup(tt.code)
			if err != nil {
				t.Errorf("ISO4217.Lookup(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ISO4217.Lookup(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "EU", "ZZZ", "48", "€"}
		for _, tt := range tests {
			_, err := ISO4217.Lookup(tt)
			if !errors.Is(err, ErrUnknownCurrency) {
				t.Errorf("ISO4217.Lookup(%q) = %v, want %v", tt, err, ErrUnknownCurrency)
			}
		}
	})
}

func TestISO4217_Currencies(t *testing.T) {
	got := ISO4217.Currencies()
	if len(got) < 150 {
		t.Errorf("len(ISO4217.Currencies()) = %v, want at least 150", len(got))
	}
	if !slices.IsSortedFunc(got, func(a, b Currency) int {
		return strings.Compare(a.Code(), b.Code())
	}) {
		t.Errorf("ISO4217.Currencies() is not sorted by code")
	}
	if !slices.Contains(got, bhd) {
		t.Errorf("ISO4217.Currencies() does not contain %v", bhd)
	}

	// Callers must not be able to modify the registry.
	got[0] = Currency{}
	if ISO4217.Currencies()[0] == (Currency{}) {
		t.Errorf("ISO4217.Currencies() returned a shared slice")
	}
}

func TestNewRegistry(t *testing.T) {
	btc := MustNewCurrency("BTC", 8)
	eur4 := MustNewCurrency("EUR", 4)
	reg := NewRegistry(btc, eur, Currency{}, eur4)

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"BTC", btc},
			{"btc", btc},
			{"EUR", eur4},
		}
		for _, tt := range tests {
			got, err := reg.Lookup(tt.code)
			if err != nil {
				t.Errorf("Lookup(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %v/%v, want %v/%v", tt.code, got, got.Scale(), tt.want, tt.want.Scale())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "USD", "978"}
		for _, tt := range tests {
			_, err := reg.Lookup(tt)
			if !errors.Is(err, ErrUnknownCurrency) {
				t.Errorf("Lookup(%q) = %v, want %v", tt, err, ErrUnknownCurrency)
			}
		}
	})

	t.Run("currencies", func(t *testing.T) {
		got := reg.Currencies()
		want := []Currency{btc, eur4}
		if !slices.Equal(got, want) {
			t.Errorf("Currencies() = %v, want %v", got, want)
		}
	})
}

func TestISO4217_Table(t *testing.T) {
	if len(isoCurrencies) != len(isoTable) || len(isoCodes) != len(isoTable) {
		t.Fatalf("isoTable has duplicate codes")
	}
	for _, e := range isoTable {
		if !isCode(e.curr.Code()) || e.curr.Scale() > maxCurrScale {
			t.Errorf("isoTable contains invalid currency %v", e.curr)
		}
		got, err := ISO4217.Lookup(e.num)
		if err != nil || got != e.curr {
			t.Errorf("ISO4217.Lookup(%q) = %v, %v, want %v", e.num, got, err, e.curr)
		}
		if n := e.curr.Num(); n != e.num {
			t.Errorf("%v.Num() = %q, want %q", e.curr, n, e.num)
		}
	}
}

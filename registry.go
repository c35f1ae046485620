package money

import (
	"fmt"
	"slices"
	"strings"
)

// Registry resolves currency codes to currencies.
// Implementations must be safe for concurrent use.
type Registry interface {
	// Lookup returns the currency for the given code.
	// It returns an error wrapping [ErrUnknownCurrency] if there is none.
	Lookup(code string) (Currency, error)

	// Currencies returns all known currencies ordered by code.
	Currencies() []Currency
}

// ISO4217 is the registry of currencies defined by [ISO 4217].
// Its Lookup method accepts alphabetic codes in any case as well as
// numeric codes.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
var ISO4217 Registry = isoRegistry{}

type isoRegistry struct{}

type isoEntry struct {
	curr Currency
	num  string
}

var (
	isoList       []Currency          // ordered by code
	isoCurrencies map[string]Currency // alphabetic code -> currency
	isoNums       map[string]string   // alphabetic code -> numeric code
	isoCodes      map[string]string   // numeric code -> alphabetic code
)

func init() {
	isoList = make([]Currency, len(isoTable))
	isoCurrencies = make(map[string]Currency, len(isoTable))
	isoNums = make(map[string]string, len(isoTable))
	isoCodes = make(map[string]string, len(isoTable))
	for i, e := range isoTable {
		isoList[i] = e.curr
		isoCurrencies[e.curr.code] = e.curr
		isoNums[e.curr.code] = e.num
		isoCodes[e.num] = e.curr.code
	}
}

func (isoRegistry) Lookup(code string) (Currency, error) {
	if c, ok := isoCurrencies[code]; ok {
		return c, nil
	}
	if c, ok := isoCurrencies[strings.ToUpper(code)]; ok {
		return c, nil
	}
	if a, ok := isoCodes[code]; ok {
		return isoCurrencies[a], nil
	}
	return Currency{}, fmt.Errorf("%q: %w", code, ErrUnknownCurrency)
}

func (isoRegistry) Currencies() []Currency {
	return slices.Clone(isoList)
}

// mapRegistry is a registry of an arbitrary set of currencies.
type mapRegistry struct {
	byCode map[string]Currency
	list   []Currency
}

// NewRegistry returns a registry that knows exactly the given currencies.
// If the same code is given more than once, the last currency wins.
// Invalid currencies are ignored.
func NewRegistry(currs ...Currency) Registry {
	r := mapRegistry{byCode: make(map[string]Currency, len(currs))}
	for _, c := range currs {
		if c.IsValid() {
			r.byCode[c.Code()] = c
		}
	}
	for _, c := range r.byCode {
		r.list = append(r.list, c)
	}
	slices.SortFunc(r.list, func(a, b Currency) int {
		return strings.Compare(a.Code(), b.Code())
	})
	return r
}

func (r mapRegistry) Lookup(code string) (Currency, error) {
	if c, ok := r.byCode[code]; ok {
		return c, nil
	}
	if c, ok := r.byCode[strings.ToUpper(code)]; ok {
		return c, nil
	}
	return Currency{}, fmt.Errorf("%q: %w", code, ErrUnknownCurrency)
}

func (r mapRegistry) Currencies() []Currency {
	return slices.Clone(r.list)
}

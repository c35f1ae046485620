package money

import (
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// fallbackSymbols are resolved in every locale, they take precedence over
// symbols of other currencies.
var fallbackSymbols = map[string]string{
	"€": "EUR",
	"£": "GBP",
	"$": "USD",
}

// locale holds the number symbols of a language.
type locale struct {
	tag     language.Tag
	group   string           // grouping separator, may be empty
	point   string           // decimal separator
	digits  *message.Printer // prints numbers with ASCII digits
	symbols *message.Printer // prints currency symbols
}

func newLocale(tag language.Tag) locale {
	latn, err := tag.SetTypeForKey("nu", "latn")
	if err != nil {
		latn = tag
	}
	l := locale{
		tag:     tag,
		point:   ".",
		digits:  message.NewPrinter(latn),
		symbols: message.NewPrinter(tag),
	}

	// Separators are taken from a sample number, the first run of
	// non-digits is the grouping separator and the last one is the
	// decimal separator.
	var seps []string
	var run strings.Builder
	for _, r := range l.digits.Sprint(number.Decimal(1234567.5, number.Scale(1))) {
		if unicode.IsDigit(r) {
			if run.Len() > 0 {
				seps = append(seps, run.String())
				run.Reset()
			}
			continue
		}
		run.WriteRune(r)
	}
	switch len(seps) {
	case 0:
	case 1:
		l.point = seps[0]
	default:
		l.group = seps[0]
		l.point = seps[len(seps)-1]
	}
	return l
}

// spaceGroup returns true if the grouping separator is a kind of space.
// Such locales accept any space as a grouping separator.
func (l locale) spaceGroup() bool {
	return l.group != "" && strings.TrimFunc(l.group, unicode.IsSpace) == ""
}

// integer returns the digits of u, grouped if required by the pattern.
func (l locale) integer(u uint64, p pattern) string {
	opts := make([]number.Option, 0, 2)
	if !p.grouping {
		opts = append(opts, number.NoSeparator())
	}
	if p.minInt > 1 {
		opts = append(opts, number.MinIntegerDigits(p.minInt))
	}
	return l.digits.Sprint(number.Decimal(u, opts...))
}

// symbol returns the local symbol of the currency, or its code if
// the locale has none.
func (l locale) symbol(c Currency) string {
	u, err := currency.ParseISO(c.Code())
	if err != nil {
		return c.Code()
	}
	return l.symbols.Sprint(currency.Symbol(u))
}

// defaultCurr returns the currency used in the region of the locale.
func (l locale) defaultCurr(reg Registry) Currency {
	u, conf := currency.FromTag(l.tag)
	if conf == language.No {
		return Currency{}
	}
	c, err := reg.Lookup(u.String())
	if err != nil {
		return Currency{}
	}
	return c
}

// symbolIndex maps local currency symbols to currencies of the registry.
// When several currencies share a symbol, the one with the smallest code wins,
// except for the symbols in fallbackSymbols. The other ones are shown with
// their code in byCode.
// Symbols equal to a currency code are not indexed.
func symbolIndex(l locale, reg Registry) (bySymbol map[string]Currency, byCode map[string]string) {
	currs := reg.Currencies()
	bySymbol = make(map[string]Currency, len(currs))
	byCode = make(map[string]string, len(currs))
	for _, c := range currs {
		s := l.symbol(c)
		if s == "" || s == c.Code() {
			byCode[c.Code()] = c.Code()
			continue
		}
		if _, err := reg.Lookup(s); err == nil && isCode(s) {
			byCode[c.Code()] = c.Code()
			continue
		}
		byCode[c.Code()] = s
		if _, ok := bySymbol[s]; !ok {
			bySymbol[s] = c
		}
	}
	for s, code := range fallbackSymbols {
		if c, err := reg.Lookup(code); err == nil {
			bySymbol[s] = c
		}
	}
	for code, s := range byCode {
		if c, ok := bySymbol[s]; ok && c.Code() != code {
			byCode[code] = code
		}
	}
	return bySymbol, byCode
}

package money

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/govalues/decimal"
	bigdec "github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Formatter formats and parses monetary amounts according to a locale and
// a number pattern, such as "¤#,##0.00".
//
// Parsing is tolerant: the currency may be written before or after the
// number, as a local symbol ("€", "CA$") or as an ISO code ("EUR"),
// with or without spaces in between. Grouping separators are ignored.
// A token of three upper-case letters is resolved as a currency code,
// falling back to the symbols of the locale, any other token as a symbol only.
// The symbols "€", "£" and "$" are resolved in every locale, "$" always
// being the US dollar.
//
// A currency whose local symbol is shared with another currency is
// formatted with its code, so formatted text parses back to the same amount.
//
// Formatter is immutable and safe for concurrent use by multiple goroutines.
type Formatter struct {
	tag      language.Tag
	pat      pattern
	reg      Registry
	loc      locale
	curr     Currency            // currency of the locale region, may be zero
	bySymbol map[string]Currency // local symbol -> currency
	byCode   map[string]string   // currency code -> local symbol
	symbols  []string            // keys of bySymbol, longest first
	split    *regexp.Regexp      // sign, leading token, number, trailing token
	number   *regexp.Regexp      // number without currency
}

// NewFormatter returns a formatter for the given locale and pattern.
// Currency codes and symbols are resolved with the registry, a nil
// registry means [ISO4217].
// See [Formatter.Pattern] for the pattern syntax.
//
// NewFormatter returns an error if the pattern is invalid.
func NewFormatter(tag language.Tag, pattern string, reg Registry) (*Formatter, error) {
	p, err := compilePattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("creating formatter: %w", err)
	}
	if reg == nil {
		reg = ISO4217
	}
	f := &Formatter{
		tag: tag,
		pat: p,
		reg: reg,
		loc: newLocale(tag),
	}
	f.curr = f.loc.defaultCurr(reg)
	f.bySymbol, f.byCode = symbolIndex(f.loc, reg)
	for s := range f.bySymbol {
		f.symbols = append(f.symbols, s)
	}
	slices.SortFunc(f.symbols, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	class := numberClass(f.loc)
	f.split = regexp.MustCompile(`^\s*(-?)([^` + class + `]*)([` + class + `]+)([^` + class + `]*)$`)
	f.number = regexp.MustCompile(`^-?[` + class + `]+$`)
	return f, nil
}

// MustNewFormatter is like [NewFormatter] but panics if the pattern is invalid.
// It simplifies safe initialization of global variables holding formatters.
func MustNewFormatter(tag language.Tag, pattern string, reg Registry) *Formatter {
	f, err := NewFormatter(tag, pattern, reg)
	if err != nil {
		panic(fmt.Sprintf("NewFormatter(%v, %q) failed: %v", tag, pattern, err))
	}
	return f
}

// numberClass returns the characters of a number as the body of
// a character class: digits, the minus sign and the separators of the locale.
func numberClass(l locale) string {
	class := `0-9\-` + classEscape(l.group) + classEscape(l.point)
	if l.spaceGroup() {
		class += ` \x{00A0}\x{202F}`
	}
	return class
}

// classEscape escapes s for use inside a character class.
func classEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '-', '[', ']', '^':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

var formatters sync.Map // formatterKey -> *Formatter

type formatterKey struct {
	tag     string
	pattern string
}

// cachedFormatter returns a shared formatter backed by the [ISO4217] registry.
func cachedFormatter(tag language.Tag, pattern string) (*Formatter, error) {
	key := formatterKey{tag: tag.String(), pattern: pattern}
	if f, ok := formatters.Load(key); ok {
		return f.(*Formatter), nil
	}
	f, err := NewFormatter(tag, pattern, ISO4217)
	if err != nil {
		return nil, err
	}
	v, _ := formatters.LoadOrStore(key, f)
	return v.(*Formatter), nil
}

// Tag returns the locale of the formatter.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Pattern returns the number pattern of the formatter.
// Patterns are built from the following symbols:
//
//	| Symbol | Meaning                                  |
//	| ------ | ---------------------------------------- |
//	| 0      | Digit                                    |
//	| #      | Digit, zero shows as absent              |
//	| ,      | Grouping separator                       |
//	| .      | Decimal separator                        |
//	| ¤      | Currency symbol                          |
//	| ¤¤     | Currency code                            |
//
// Any other text before or after the digits is copied literally.
// Separators are replaced with the ones of the locale.
func (f *Formatter) Pattern() string {
	return f.pat.text
}

// Registry returns the registry used to resolve currencies.
func (f *Formatter) Registry() Registry {
	return f.reg
}

// Symbol returns the local symbol of the currency, for example "€" for EUR
// or "CA$" for CAD in American English.
// If the locale has no symbol for the currency, or the symbol stands for
// another currency of the registry, its code is returned.
func (f *Formatter) Symbol(c Currency) string {
	if s, ok := f.byCode[c.Code()]; ok {
		return s
	}
	return f.loc.symbol(c)
}

// Format returns the decimal formatted with the pattern of the formatter.
// Currency signs in the pattern are replaced with the symbol or the code of c.
// The decimal is rounded half to even if it has more fraction digits than
// the pattern allows.
func (f *Formatter) Format(d decimal.Decimal, c Currency) string {
	return f.format(f.pat, d, c)
}

// FormatMoney returns the amount formatted with the pattern of the formatter,
// always showing exactly as many fraction digits as the scale of the currency.
// For example, 1234.56 EUR is "€1,234.56" in American English.
func (f *Formatter) FormatMoney(m Money) string {
	return f.format(f.pat.withFrac(m.Curr().Scale()), m.Decimal(), m.Curr())
}

func (f *Formatter) format(p pattern, d decimal.Decimal, c Currency) string {
	// Rescaling
	if d.Scale() > p.maxFrac {
		d = d.Round(p.maxFrac)
	}
	d = d.Trim(p.minFrac)
	if d.Scale() < p.minFrac {
		d = d.Pad(p.minFrac)
	}

	// Digits
	whole, frac, _ := strings.Cut(d.Abs().String(), ".")
	u, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		// The integer part of a decimal always fits in uint64.
		panic(fmt.Sprintf("strconv.ParseUint(%q) failed: %v", whole, err))
	}

	// Affixes
	prefix, suffix := p.affixes(f.Symbol(c), c.Code())

	var b strings.Builder
	if d.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(prefix)
	if u != 0 || p.minInt > 0 || frac == "" {
		b.WriteString(f.loc.integer(u, p))
	}
	if frac != "" {
		b.WriteString(f.loc.point)
		b.WriteString(frac)
	}
	b.WriteString(suffix)
	return b.String()
}

// Parse converts locale-specific text to a decimal and a currency.
// If the pattern of the formatter shows no currency, only the number
// is parsed and the returned currency is the zero value.
// The number is never rounded.
//
// Parse returns an error if:
//   - the number cannot be parsed, wrapping [ErrParse];
//   - the number does not fit a [decimal.Decimal], wrapping [ErrOverflow];
//   - a code is not known to the registry, wrapping [ErrUnknownCurrency];
//   - any other token is not a known currency symbol, wrapping [ErrUnresolvedSymbol].
func (f *Formatter) Parse(text string) (decimal.Decimal, Currency, error) {
	b, c, err := f.parse(text)
	if err != nil {
		return decimal.Decimal{}, Currency{}, err
	}
	d, err := bigToDecimal(b)
	if err != nil {
		return decimal.Decimal{}, Currency{}, fmt.Errorf("parsing %q: %w", text, err)
	}
	return d, c, nil
}

// ParseMoney is like [Formatter.Parse] but returns an amount.
// The number may have any number of digits, those beyond the scale of
// the currency are truncated.
//
// ParseMoney returns an error if the text shows no currency.
func (f *Formatter) ParseMoney(text string) (Money, error) {
	d, c, err := f.parse(text)
	if err != nil {
		return Money{}, err
	}
	if !c.IsValid() {
		return Money{}, fmt.Errorf("parsing %q: no currency: %w", text, ErrParse)
	}
	return newMoneyFromBig(c, d)
}

func (f *Formatter) parse(text string) (bigdec.Decimal, Currency, error) {
	if !f.pat.hasCurr() {
		d, err := f.parseNumber(f.pat, text)
		if err != nil {
			return bigdec.Decimal{}, Currency{}, err
		}
		return d, Currency{}, nil
	}

	// Symbols
	if c, num, ok := f.cutSymbol(text); ok {
		d, err := f.parseNumber(f.pat.bare(), num)
		if err != nil {
			return bigdec.Decimal{}, Currency{}, err
		}
		return d, c, nil
	}

	// Splitting
	parts := f.split.FindStringSubmatch(text)
	if parts == nil {
		return f.parseStandard(text)
	}
	sign, token, num := parts[1], strings.TrimSpace(parts[2]), parts[3]
	if token == "" {
		token = strings.TrimSpace(parts[4])
	}
	if token == "" {
		return f.parseStandard(text)
	}

	// Currency
	c, err := f.resolve(token)
	if err != nil {
		return bigdec.Decimal{}, Currency{}, fmt.Errorf("parsing %q: %w", text, err)
	}

	// Number
	d, err := f.parseNumber(f.pat.bare(), sign+num)
	if err != nil {
		return bigdec.Decimal{}, Currency{}, err
	}
	return d, c, nil
}

// cutSymbol removes a local currency symbol written right before or after
// the number and returns the currency and the signed number.
// The longest matching symbol wins.
func (f *Formatter) cutSymbol(text string) (Currency, string, bool) {
	s := strings.TrimSpace(text)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	for _, sym := range f.symbols {
		var rest string
		switch {
		case strings.HasPrefix(s, sym):
			rest = s[len(sym):]
		case strings.HasSuffix(s, sym):
			rest = s[:len(s)-len(sym)]
		default:
			continue
		}
		rest = strings.TrimSpace(rest)
		if f.number.MatchString(rest) {
			return f.bySymbol[sym], sign + rest, true
		}
	}
	return Currency{}, "", false
}

// resolve returns the currency for a code or a local symbol.
func (f *Formatter) resolve(token string) (Currency, error) {
	if isCode(token) {
		c, err := f.reg.Lookup(token)
		if err == nil {
			return c, nil
		}
		if c, ok := f.bySymbol[token]; ok {
			return c, nil
		}
		return Currency{}, err
	}
	if c, ok := f.bySymbol[token]; ok {
		return c, nil
	}
	return Currency{}, fmt.Errorf("%q: %w", token, ErrUnresolvedSymbol)
}

// parseStandard parses text that must show the currency of the locale
// exactly as the pattern does.
func (f *Formatter) parseStandard(text string) (bigdec.Decimal, Currency, error) {
	if !f.curr.IsValid() {
		return bigdec.Decimal{}, Currency{}, fmt.Errorf("parsing %q: no currency: %w", text, ErrParse)
	}
	prefix, suffix := f.pat.affixes(f.Symbol(f.curr), f.curr.Code())
	prefix, suffix = strings.TrimSpace(prefix), strings.TrimSpace(suffix)
	s := strings.TrimSpace(text)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) || len(s) < len(prefix)+len(suffix) {
		return bigdec.Decimal{}, Currency{}, fmt.Errorf("parsing %q: expected currency %v: %w", text, f.curr, ErrParse)
	}
	s = s[len(prefix) : len(s)-len(suffix)]
	d, err := f.parseNumber(pattern{}, sign+s)
	if err != nil {
		return bigdec.Decimal{}, Currency{}, err
	}
	return d, f.curr, nil
}

// parseNumber parses a number with the separators of the locale.
// Literal affixes of the pattern are optional.
func (f *Formatter) parseNumber(p pattern, text string) (bigdec.Decimal, error) {
	s := strings.TrimSpace(text)
	if prefix := strings.TrimSpace(p.prefix); prefix != "" {
		s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
	}
	if suffix := strings.TrimSpace(p.suffix); suffix != "" {
		s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
	}
	if f.loc.group != "" {
		s = strings.ReplaceAll(s, f.loc.group, "")
	}
	if f.loc.spaceGroup() {
		s = strings.Join(strings.Fields(s), "")
	}
	if f.loc.point != "." {
		s = strings.Replace(s, f.loc.point, ".", 1)
	}
	if s == "" {
		return bigdec.Decimal{}, fmt.Errorf("parsing %q: no digits: %w", text, ErrParse)
	}
	d, err := parseBig(s)
	if err != nil {
		return bigdec.Decimal{}, fmt.Errorf("parsing %q: %w", text, err)
	}
	return d, nil
}

package money

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Patterns used by [Money.Text] and [ParseMoneyText].
const (
	formatPattern = "¤#,##0"
	parsePattern  = "¤#,##0.###"
)

const (
	currSign = "¤"  // replaced by the currency symbol
	currCode = "¤¤" // replaced by the currency code
)

// pattern is a compiled number pattern, such as "¤#,##0.00".
type pattern struct {
	text     string
	prefix   string // literal text before the number, may contain currency signs
	suffix   string // literal text after the number, may contain currency signs
	grouping bool   // whether the integer part is grouped
	minInt   int    // minimum number of integer digits
	minFrac  int    // minimum number of fraction digits
	maxFrac  int    // maximum number of fraction digits
}

// compilePattern parses a pattern built from the following symbols:
//
//	0   digit
//	#   digit, zero shows as absent
//	,   grouping separator
//	.   decimal separator
//	¤   currency symbol
//	¤¤  currency code
//
// Any other text before or after the digits is copied literally.
// Negative sub-patterns are not supported, negative numbers are
// prefixed with '-'.
func compilePattern(s string) (pattern, error) {
	if strings.Contains(s, ";") {
		return pattern{}, fmt.Errorf("pattern %q: negative sub-pattern is not supported: %w", s, ErrInvalidArgument)
	}
	i := strings.IndexAny(s, "#0,.")
	j := strings.LastIndexAny(s, "#0,.")
	if i < 0 {
		return pattern{}, fmt.Errorf("pattern %q: no digits: %w", s, ErrInvalidArgument)
	}
	p := pattern{text: s, prefix: s[:i], suffix: s[j+1:]}
	if strings.ContainsAny(p.prefix+p.suffix, "#0,.") {
		return pattern{}, fmt.Errorf("pattern %q: digits must be contiguous: %w", s, ErrInvalidArgument)
	}

	// Integer part
	whole, frac, hasPoint := strings.Cut(s[i:j+1], ".")
	if strings.Contains(frac, ".") {
		return pattern{}, fmt.Errorf("pattern %q: multiple decimal separators: %w", s, ErrInvalidArgument)
	}
	zeros := false
	for _, r := range whole {
		switch r {
		case '#':
			if zeros {
				return pattern{}, fmt.Errorf("pattern %q: '#' after '0': %w", s, ErrInvalidArgument)
			}
		case '0':
			zeros = true
			p.minInt++
		case ',':
			p.grouping = true
		default:
			return pattern{}, fmt.Errorf("pattern %q: unexpected %q: %w", s, r, ErrInvalidArgument)
		}
	}

	// Fraction part
	if hasPoint {
		hashes := false
		for _, r := range frac {
			switch r {
			case '0':
				if hashes {
					return pattern{}, fmt.Errorf("pattern %q: '0' after '#': %w", s, ErrInvalidArgument)
				}
				p.minFrac++
			case '#':
				hashes = true
			default:
				return pattern{}, fmt.Errorf("pattern %q: unexpected %q: %w", s, r, ErrInvalidArgument)
			}
			p.maxFrac++
		}
	}
	if p.maxFrac > decimal.MaxScale {
		return pattern{}, fmt.Errorf("pattern %q: more than %v fraction digits: %w", s, decimal.MaxScale, ErrInvalidArgument)
	}
	return p, nil
}

// hasCurr returns true if the pattern shows a currency.
func (p pattern) hasCurr() bool {
	return strings.Contains(p.prefix, currSign) || strings.Contains(p.suffix, currSign)
}

// bare returns the pattern without currency signs.
func (p pattern) bare() pattern {
	p.prefix = strings.ReplaceAll(p.prefix, currSign, "")
	p.suffix = strings.ReplaceAll(p.suffix, currSign, "")
	return p
}

// withFrac returns the pattern with exactly scale fraction digits.
func (p pattern) withFrac(scale int) pattern {
	p.minFrac, p.maxFrac = scale, scale
	return p
}

// affixes returns the prefix and suffix with currency signs replaced
// by the given symbol and code.
func (p pattern) affixes(symbol, code string) (prefix, suffix string) {
	r := strings.NewReplacer(currCode, code, currSign, symbol)
	return r.Replace(p.prefix), r.Replace(p.suffix)
}

package money

import (
	"database/sql/driver"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// maxCurrScale is the largest number of minor unit digits a currency can have.
// It keeps 10^scale within the range of int64.
const maxCurrScale = 18

// Currency type represents a currency in the global financial system.
// A Currency is a 3-letter code together with its scale, the number of
// digits of its minor unit.
//
// The zero value does not represent any currency, see [Currency.IsValid].
// Currencies are obtained from a [Registry], such as [ISO4217], or
// constructed directly with [NewCurrency].
// Currency values are comparable and safe for concurrent use.
type Currency struct {
	code  string
	scale uint8
}

// NewCurrency returns a currency with the given code and scale.
// Use it to define currencies that are not part of ISO 4217.
//
// NewCurrency returns an error if:
//   - the code does not consist of exactly 3 upper-case letters;
//   - the scale is negative or greater than 18.
func NewCurrency(code string, scale int) (Currency, error) {
	if !isCode(code) {
		return Currency{}, fmt.Errorf("currency code %q: %w", code, ErrInvalidArgument)
	}
	if scale < 0 || scale > maxCurrScale {
		return Currency{}, fmt.Errorf("currency scale %v: %w", scale, ErrInvalidArgument)
	}
	return Currency{code: code, scale: uint8(scale)}, nil //nolint:gosec
}

// MustNewCurrency is like [NewCurrency] but panics if the currency cannot be constructed.
func MustNewCurrency(code string, scale int) Currency {
	c, err := NewCurrency(code, scale)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q, %v) failed: %v", code, scale, err))
	}
	return c
}

func isCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// ParseCurr converts a string to currency using the [ISO4217] registry.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error if the string does not represent a valid currency code.
func ParseCurr(curr string) (Currency, error) {
	return ISO4217.Lookup(curr)
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// Code returns the 3-letter code of the currency.
// It returns an empty string for the zero value.
func (c Currency) Code() string {
	return c.code
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
// For example, the scale of the US Dollar is 2, 1 cent is 0.01 dollars,
// while the scale of the Bahraini Dinar is 3 and the scale of the Japanese
// Yen is 0.
func (c Currency) Scale() int {
	return int(c.scale)
}

// Num returns the 3-digit code assigned to the currency by ISO 4217,
// or an empty string if there is none.
func (c Currency) Num() string {
	if n, ok := isoNums[c.code]; ok && isoCurrencies[c.code] == c {
		return n
	}
	return ""
}

// IsValid returns true unless c is the zero value.
func (c Currency) IsValid() bool {
	return c.code != ""
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the currency.
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The zero value is marshaled as null.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	if !c.IsValid() {
		return []byte("null"), nil
	}
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("null is not a currency")
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Currency{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	if !c.IsValid() {
		return nil, nil
	}
	return c.Code(), nil
}

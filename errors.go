package money

import "errors"

// Errors returned by this package. They are always wrapped with context,
// use [errors.Is] to check for them.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownCurrency  = errors.New("unknown currency")
	ErrMalformedPair    = errors.New("malformed currency pair")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrIncompatibleRate = errors.New("incompatible exchange rate")
	ErrUnresolvedSymbol = errors.New("unresolved currency symbol")
	ErrParse            = errors.New("parse failure")
	ErrOverflow         = errors.New("overflow")
)

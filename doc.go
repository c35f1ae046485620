/*
Package money implements fixed-point monetary amounts, exchange rates and
locale-aware formatting of amounts in various currencies.

# Features

  - Immutable values, safe for concurrent use by multiple goroutines
  - Exact arithmetic on integer numbers of minor units
  - Dimensionless decimal quotes for prices and rates
  - Currency conversion with explicit rounding rules
  - Tolerant parsing of amounts written with currency symbols or codes
  - Pluggable currency registries, with ISO 4217 built in

# Representation

A [Currency] is a 3-letter code and a scale, the number of digits of its
minor unit. Currencies are resolved with a [Registry], the [ISO4217]
registry being the default one.

A [Money] amount is an int64 number of minor units together with its
currency, so 12.34 EUR is stored as 1234 and 12.340 BHD as 12340.
The scale of an amount is always the scale of its currency.

A [Quote] is a dimensionless decimal number, an int64 value and a scale,
used for prices and exchange rates. Quotes of different scales are aligned
before arithmetic, no precision is ever lost silently.

An [ExchangeRate] is a [CurrencyPair], a [Quote] and the time
the rate was observed.

# Rounding

Multiplying an amount by a decimal factor truncates the product toward zero
to whole minor units. Converting an amount from the base to the quote
currency of a rate truncates as well. Converting from the quote to the base
currency divides by the rate and rounds half away from zero.
Intermediate products and quotients are computed with arbitrary precision.
Decimal text is parsed exactly: digits of an amount beyond the scale of its
currency are truncated, while a quote that does not fit fails with [ErrOverflow].

# Formatting

A [Formatter] renders and parses amounts according to a locale and a number
pattern, such as "¤#,##0.00". Separators and currency symbols are taken from
the Unicode CLDR data shipped with [golang.org/x/text].
For example, 1234.56 EUR is "€1,234.56" in American English, and
"€1.23", "1.23€", "EUR1.23" and "1.23 EUR" are all parsed to 1.23 EUR.

# Errors

Constructors and operations return errors wrapping one of the sentinel
errors of this package, such as [ErrOverflow] or [ErrCurrencyMismatch].
Functions with the Must prefix panic instead and are meant for
initialization of global variables.
*/
package money

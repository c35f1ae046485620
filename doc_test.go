package money_test

import (
	"fmt"
	"slices"
	"time"

	"github.com/govalues/decimal"
	money "github.com/govalues/fxmoney"
	"golang.org/x/text/language"
)

// Invoice is a list of line items in a single currency.
type Invoice struct {
	Lines []money.Money
}

// Total returns the sum of all line items.
func (inv Invoice) Total() (money.Money, error) {
	if len(inv.Lines) == 0 {
		return money.Money{}, fmt.Errorf("empty invoice")
	}
	total := inv.Lines[0]
	for _, m := range inv.Lines[1:] {
		var err error
		total, err = total.Add(m)
		if err != nil {
			return money.Money{}, err
		}
	}
	return total, nil
}

// In this example, an invoice priced in euros is totalled and settled
// in Bahraini dinars using an exchange rate.
func Example_invoiceSettlement() {
	inv := Invoice{
		Lines: []money.Money{
			money.MustParseMoney("EUR", "12.50"),
			money.MustParseMoney("EUR", "7.25"),
			money.MustParseMoney("EUR", "0.99"),
		},
	}
	total, err := inv.Total()
	if err != nil {
		panic(err)
	}

	rate := money.MustParseExchRate("EUR/BHD", "0.4123", time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC))
	settled, err := rate.Conv(total)
	if err != nil {
		panic(err)
	}
	back, err := rate.Conv(settled)
	if err != nil {
		panic(err)
	}

	fmt.Println("Total:  ", total)
	fmt.Println("Rate:   ", rate)
	fmt.Println("Settled:", settled)
	fmt.Println("Back:   ", back)
	// Output:
	// Total:   EUR 20.74
	// Rate:    EUR/BHD@0.4123 (2023-06-01T12:00:00Z)
	// Settled: BHD 8.551
	// Back:    EUR 20.74
}

// In this example, amounts written by hand in different styles are
// parsed, summed up per currency and printed for two locales.
func Example_tolerantParsing() {
	texts := []string{"€1.23", "1.23€", "EUR1.23", "1.23 EUR", "$10", "GBP1,234.56"}

	totals := map[money.Currency]money.Money{}
	for _, s := range texts {
		m, err := money.ParseMoneyText(s, language.AmericanEnglish)
		if err != nil {
			panic(err)
		}
		if t, ok := totals[m.Curr()]; ok {
			m, err = t.Add(m)
			if err != nil {
				panic(err)
			}
		}
		totals[m.Curr()] = m
	}

	var sums []money.Money
	for _, m := range totals {
		sums = append(sums, m)
	}
	slices.SortFunc(sums, money.Money.Compare)
	for _, m := range sums {
		fmt.Printf("%-14v %-12s %s\n", m, m.Text(language.AmericanEnglish), m.Text(language.German))
	}
	// Output:
	// EUR 4.92       €4.92        €4,92
	// GBP 1234.56    £1,234.56    £1.234,56
	// USD 10.00      $10.00       $10,00
}

func ExampleNewMoney() {
	fmt.Println(money.NewMoney(money.MustParseCurr("EUR"), 123))
	fmt.Println(money.NewMoney(money.MustParseCurr("BHD"), 123))
	fmt.Println(money.NewMoney(money.MustParseCurr("JPY"), 123))
	// Output:
	// EUR 1.23 <nil>
	// BHD 0.123 <nil>
	// JPY 123 <nil>
}

func ExampleNewMoneyFromDecimal() {
	eur := money.MustParseCurr("EUR")
	fmt.Println(money.NewMoneyFromDecimal(eur, decimal.MustParse("1.239")))
	fmt.Println(money.NewMoneyFromDecimal(eur, decimal.MustParse("-1.239")))
	// Output:
	// EUR 1.23 <nil>
	// EUR -1.23 <nil>
}

func ExampleParseMoney() {
	fmt.Println(money.ParseMoney("EUR", "1.23"))
	fmt.Println(money.ParseMoney("048", "1.5"))
	// Output:
	// EUR 1.23 <nil>
	// BHD 1.500 <nil>
}

func ExampleParseMoneyText() {
	fmt.Println(money.ParseMoneyText("€1.23", language.AmericanEnglish))
	fmt.Println(money.ParseMoneyText("1,23EUR", language.Italian))
	fmt.Println(money.ParseMoneyText("GBP1,234.56", language.AmericanEnglish))
	// Output:
	// EUR 1.23 <nil>
	// EUR 1.23 <nil>
	// GBP 1234.56 <nil>
}

func ExampleMoney_MulDec() {
	m := money.MustNewMoney(money.MustParseCurr("EUR"), 200)
	fmt.Println(m.MulDec(decimal.MustParse("5")))
	fmt.Println(m.MulDec(decimal.MustParse("1.111")))
	fmt.Println(m.MulDec(decimal.MustParse("1.119")))
	// Output:
	// EUR 10.00 <nil>
	// EUR 2.22 <nil>
	// EUR 2.23 <nil>
}

func ExampleMoney_Add() {
	a := money.MustParseMoney("EUR", "2.3")
	b := money.MustParseMoney("EUR", "10")
	c := money.MustParseMoney("USD", "1")
	fmt.Println(a.Add(b))
	_, err := a.Add(c)
	fmt.Println(err)
	// Output:
	// EUR 12.30 <nil>
	// computing [EUR 2.30 + USD 1.00]: currency mismatch
}

func ExampleMoney_Compare() {
	amounts := []money.Money{
		money.MustParseMoney("USD", "1"),
		money.MustParseMoney("EUR", "10"),
		money.MustParseMoney("EUR", "2"),
	}
	slices.SortFunc(amounts, money.Money.Compare)
	fmt.Println(amounts)
	// Output:
	// [EUR 2.00 EUR 10.00 USD 1.00]
}

func ExampleMoney_Format() {
	m := money.MustParseMoney("EUR", "-1.25")
	fmt.Printf("%v\n", m)
	fmt.Printf("%q\n", m)
	fmt.Printf("%f\n", m)
	fmt.Printf("%.1f\n", m)
	fmt.Printf("%d\n", m)
	fmt.Printf("%c\n", m)
	// Output:
	// EUR -1.25
	// "EUR -1.25"
	// -1.25
	// -1.2
	// -125
	// EUR
}

func ExampleMoney_Text() {
	fmt.Println(money.MustParseMoney("EUR", "1234.56").Text(language.AmericanEnglish))
	fmt.Println(money.MustParseMoney("USD", "1234.56").Text(language.Italian))
	fmt.Println(money.MustParseMoney("BHD", "123.456").Text(language.AmericanEnglish))
	// Output:
	// €1,234.56
	// USD1.234,56
	// BHD123.456
}

func ExampleParseQuote() {
	q := money.MustParseQuote("20999999.9769")
	fmt.Println(q, q.Value(), q.Scale())
	// Output:
	// 20999999.9769 209999999769 4
}

func ExampleQuote_Add() {
	a := money.MustParseQuote("2.3")
	b := money.MustParseQuote("10")
	fmt.Println(a.Add(b))
	fmt.Println(a.Sub(b))
	// Output:
	// 12.3 <nil>
	// -7.7 <nil>
}

func ExampleQuote_Equal() {
	a := money.MustParseQuote("7.7")
	b := money.MustParseQuote("7.70000")
	fmt.Println(a.Equal(b), a, b)
	// Output:
	// true 7.7 7.70000
}

func ExampleParsePair() {
	fmt.Println(money.ParsePair("EUR/USD"))
	_, err := money.ParsePair("EUR/USD/JPY")
	fmt.Println(err)
	// Output:
	// EUR/USD <nil>
	// parsing "EUR/USD/JPY", expected <base>/<quote>: malformed currency pair
}

func ExampleExchangeRate_Conv() {
	t := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	r := money.MustParseExchRate("EUR/BHD", "10.1234", t)
	fmt.Println(r.Conv(money.MustParseMoney("EUR", "10")))
	r = money.MustParseExchRate("EUR/BHD", "10", t)
	fmt.Println(r.Conv(money.MustParseMoney("BHD", "10.189")))
	r = money.MustParseExchRate("EUR/GBP", "0.85", t)
	_, err := r.Conv(money.MustParseMoney("USD", "1"))
	fmt.Println(err)
	// Output:
	// BHD 101.234 <nil>
	// EUR 1.02 <nil>
	// converting USD 1.00 with EUR/GBP@0.85 (2023-06-01T00:00:00Z): incompatible exchange rate
}

func ExampleExchangeRate_Compare() {
	t := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	rates := []money.ExchangeRate{
		money.MustParseExchRate("EUR/USD", "1.08", t.Add(time.Hour)),
		money.MustParseExchRate("EUR/USD", "1.07", t),
		money.MustParseExchRate("EUR/GBP", "0.86", t),
	}
	slices.SortFunc(rates, money.ExchangeRate.Compare)
	for _, r := range rates {
		fmt.Println(r)
	}
	// Output:
	// EUR/GBP@0.86 (2023-06-01T00:00:00Z)
	// EUR/USD@1.07 (2023-06-01T00:00:00Z)
	// EUR/USD@1.08 (2023-06-01T01:00:00Z)
}

func ExampleFormatter_ParseMoney() {
	btc := money.MustNewCurrency("BTC", 8)
	reg := money.NewRegistry(btc, money.MustParseCurr("EUR"))
	f := money.MustNewFormatter(language.English, "#,##0.00 ¤¤", reg)

	m, err := f.ParseMoney("BTC 0.5")
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	fmt.Println(f.FormatMoney(m))
	// Output:
	// BTC 0.50000000
	// 0.50000000 BTC
}

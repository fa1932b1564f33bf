// Package currency labels amounts with a currency symbol. It does not convert
// between currencies.
package currency

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

// maxExactMinor is 2^53; above it float64 no longer holds every integer.
const maxExactMinor = 1 << 53

// DefaultCode is used when no currency has been chosen.
const DefaultCode = "USD"

// Currency describes one selectable currency.
type Currency struct {
	Code     string `json:"code"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

var catalogue = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Decimals: 2},
	"EUR": {Code: "EUR", Symbol: "€", Decimals: 2},
	"GBP": {Code: "GBP", Symbol: "£", Decimals: 2},
	"JPY": {Code: "JPY", Symbol: "¥", Decimals: 0},
	"CAD": {Code: "CAD", Symbol: "CA$", Decimals: 2},
	"AUD": {Code: "AUD", Symbol: "A$", Decimals: 2},
	"CHF": {Code: "CHF", Symbol: "CHF ", Decimals: 2},
	"CNY": {Code: "CNY", Symbol: "CN¥", Decimals: 2},
	"INR": {Code: "INR", Symbol: "₹", Decimals: 2},
	"SEK": {Code: "SEK", Symbol: "kr ", Decimals: 2},
}

// Lookup returns the catalogue entry for code. Codes are matched
// case-insensitively. An empty code resolves to DefaultCode; an unknown code
// yields a two-decimal entry that uses the code itself as its symbol.
func Lookup(code string) (Currency, bool) {
	code = Normalize(code)
	if c, ok := catalogue[code]; ok {
		return c, true
	}
	return Currency{Code: code, Symbol: code + " ", Decimals: 2}, false
}

// Normalize upper-cases and trims code, substituting DefaultCode for blanks.
func Normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCode
	}
	return code
}

// Symbol returns the display symbol for code.
func Symbol(code string) string {
	c, _ := Lookup(code)
	return c.Symbol
}

// All returns the catalogue sorted by code.
func All() []Currency {
	out := make([]Currency, 0, len(catalogue))
	for _, c := range catalogue {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// FormatPrice renders amount with the currency symbol and thousands
// separators, e.g. "$1,234.50" or "¥1,235".
func FormatPrice(code string, amount float64) string {
	c, _ := Lookup(code)

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	if c.Decimals == 0 {
		if amount >= maxExactMinor {
			return sign + c.Symbol + humanize.Commaf(math.Round(amount))
		}
		return sign + c.Symbol + humanize.Comma(int64(math.Round(amount)))
	}

	scale := math.Pow10(c.Decimals)
	minor := math.Round(amount * scale)

	// Past 2^53 minor units float64 cannot hold every cent, and int64
	// overflows soon after; print the whole amount instead.
	if minor >= maxExactMinor {
		return fmt.Sprintf("%s%s%s.%s", sign, c.Symbol, humanize.Commaf(math.Round(amount)), strings.Repeat("0", c.Decimals))
	}

	units := int64(minor)
	whole := units / int64(scale)
	frac := units % int64(scale)

	return fmt.Sprintf("%s%s%s.%0*d", sign, c.Symbol, humanize.Comma(whole), c.Decimals, frac)
}

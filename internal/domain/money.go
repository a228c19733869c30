package domain

import (
	"fmt"
	"strconv"
)

// Money is a price captured from the catalog API. The amount stays a decimal
// string end to end; it is parsed to a float only at the point a derived total
// is computed, then immediately reformatted.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

// Float parses the amount for arithmetic. A malformed amount parses to 0.
func (m Money) Float() float64 {
	v, err := strconv.ParseFloat(m.Amount, 64)
	if err != nil {
		return 0
	}
	return v
}

// currencySymbols maps ISO currency codes to display symbols for the
// currencies the storefront sells in.
var currencySymbols = map[string]string{
	"USD": "$",
	"CAD": "$",
	"MXN": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatAmount renders a numeric value as a display price with two decimals
// and a currency symbol, e.g. FormatAmount(68, "USD") == "$68.00". Currencies
// without a known symbol fall back to "CODE 68.00".
func FormatAmount(v float64, currencyCode string) string {
	if sym, ok := currencySymbols[currencyCode]; ok {
		return fmt.Sprintf("%s%.2f", sym, v)
	}
	return fmt.Sprintf("%s %.2f", currencyCode, v)
}

// Format renders the money value for display.
func (m Money) Format() string {
	return FormatAmount(m.Float(), m.CurrencyCode)
}

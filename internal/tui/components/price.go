// Package components holds small render-only widgets shared by the
// storefront views.
package components

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// FormatPrice renders an amount with two decimals. Symbol currencies such as
// "$" are prefixed; alphabetic codes such as "EUR" are appended.
func FormatPrice(amount decimal.Decimal, currency string) string {
	value := amount.StringFixed(2)
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return value
	}
	if isCode(currency) {
		return value + " " + currency
	}
	return currency + value
}

func isCode(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len([]rune(s)) > 1
}

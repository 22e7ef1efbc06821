package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayPrinter = message.NewPrinter(language.English)

// FormatWithPrecision formats an amount rounded to the given number of places.
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatGrouped formats an amount with thousands separators and at most maxFraction decimals.
// Example: 50000 returns "50,000"; 1234.5 with maxFraction 2 returns "1,234.5"
func FormatGrouped(amount decimal.Decimal, maxFraction int) string {
	f, _ := amount.Round(int32(maxFraction)).Float64()
	return displayPrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(maxFraction)))
}

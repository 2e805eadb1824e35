package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of fractional digits shown to users.
const DisplayPrecision = 2

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatAmount formats an amount for messages shown to account holders, e.g. "500.00".
func FormatAmount(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, DisplayPrecision)
}

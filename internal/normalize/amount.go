// Package normalize turns the messy string fragments found in bank and
// mobile-money statements into canonical amounts and dates.
package normalize

import (
	"math"
	"regexp"
	"strconv"
)

// nonNumeric strips everything that is not a digit or the decimal separator.
// Currency symbols (₦, NGN, N, $), thousands separators and stray signs all
// go; the sign of a transaction is decided by the direction classifier,
// never by a negative amount.
var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// Amount parses a locale-formatted numeric string like "₦1,234.56" or
// "NGN 5,000" into a non-negative magnitude. Returns 0 for anything it
// cannot parse; callers must treat 0 as "no amount found", never as a valid
// zero-value transaction.
func Amount(s string) float64 {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if cleaned == "" || cleaned == "." {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return math.Abs(v)
}

// amountToken matches a monetary value inside a larger line: an optional
// currency marker followed by either a comma-grouped integer part or a
// decimal number. Bare integers are deliberately not matched so that years,
// times and short reference numbers are not mistaken for amounts.
var amountToken = regexp.MustCompile(`(?:₦|NGN|N|\$)?\s*(?:\d{1,3}(?:,\d{3})+(?:\.\d{1,2})?|\d+\.\d{1,2})`)

// FindAmounts returns every amount-shaped token on a line, in order.
func FindAmounts(line string) []string {
	return amountToken.FindAllString(line, -1)
}

// LargestAmount scans a line for amount-shaped tokens and returns the
// numerically largest one. The assumption is that balances and reference
// values are usually smaller than the transaction amount; this is a
// heuristic, not a guarantee.
func LargestAmount(line string) float64 {
	var largest float64
	for _, tok := range FindAmounts(line) {
		if v := Amount(tok); v > largest {
			largest = v
		}
	}
	return largest
}

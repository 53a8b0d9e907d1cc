// Package draft implements the expense entry draft: the line item ledger,
// the category catalog, and the submission gate.
package draft

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a line item amount string as a float.
// Empty or malformed values are treated as 0 so that a half-edited draft
// never breaks the running total.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatAmount normalizes an amount string to exactly two decimal places.
// Malformed values become "0.00". Formatting is idempotent: formatting an
// already formatted value yields the same string.
func FormatAmount(s string) string {
	return FormatTotal(ParseAmount(s))
}

// FormatTotal formats a computed total to two decimal places for display.
func FormatTotal(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

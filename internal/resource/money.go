package resource

import "strconv"

// formatMoney renders an amount the way the backend expects its
// string-encoded decimals.
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

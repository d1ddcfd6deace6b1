package narrative

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// formatMoney renders a value as a currency-prefixed, thousands-grouped
// integer: 1000000 -> "$1,000,000".
func formatMoney(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// formatCount renders a customer count as a thousands-grouped integer.
func formatCount(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// formatPercent renders a [0,1] fraction as a whole percentage:
// 0.35 -> "35%".
func formatPercent(fraction float64) string {
	return fmt.Sprintf("%.0f%%", fraction*100)
}

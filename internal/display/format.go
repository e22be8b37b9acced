package display

import (
	"fmt"
	"math"
)

// FormatMinutes renders a minute count for summaries: "42.3 min" below an
// hour, "3h 05m" up to a day and "2d 4h" beyond.
func FormatMinutes(m float64) string {
	if m < 60 {
		return fmt.Sprintf("%.1f min", m)
	}
	total := int(math.Round(m))
	if total < 24*60 {
		return fmt.Sprintf("%dh %02dm", total/60, total%60)
	}
	return fmt.Sprintf("%dd %dh", total/(24*60), total%(24*60)/60)
}

// Plural returns "1 record" or "3 records".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

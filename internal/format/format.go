// Package format renders extracted values for display: magnitude-scaled
// numbers, safe truncation, readable category labels.
package format

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// DefaultTruncateLen is the display length for chart labels.
const DefaultTruncateLen = 30

const ellipsis = "…"

// FormatScaledNumber parses value and renders it with a magnitude
// suffix: >=1e9 "B", >=1e6 "M", >=1e3 "K", two decimals, thresholds on
// absolute value. Smaller numbers render plainly with no suffix.
// Non-numeric input passes through unchanged so garbage extraction
// values still show as-is.
func FormatScaledNumber(value string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return value
	}
	return FormatFloat(f)
}

// FormatFloat is FormatScaledNumber for an already-parsed value, used
// for group totals.
func FormatFloat(f float64) string {
	abs := math.Abs(f)
	switch {
	case abs >= 1e9:
		return strconv.FormatFloat(f/1e9, 'f', 2, 64) + "B"
	case abs >= 1e6:
		return strconv.FormatFloat(f/1e6, 'f', 2, 64) + "M"
	case abs >= 1e3:
		return strconv.FormatFloat(f/1e3, 'f', 2, 64) + "K"
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}

// TruncateText shortens s to max runes plus an ellipsis. Counting runes
// rather than bytes keeps multi-byte text intact.
func TruncateText(s string, max int) string {
	if max <= 0 {
		max = DefaultTruncateLen
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + ellipsis
}

// Truncate applies the default display length.
func Truncate(s string) string {
	return TruncateText(s, DefaultTruncateLen)
}

// HumanizeCategoryLabel turns a category id like "finance_cost" into
// "Finance Cost".
func HumanizeCategoryLabel(category string) string {
	words := strings.Split(strings.ReplaceAll(category, "_", " "), " ")
	for i, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			r[0] = unicode.ToUpper(r[0])
			words[i] = string(r)
		}
	}
	return strings.Join(words, " ")
}

package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// spread places left and right at the edges of width, keeping one space
// between them when they collide.
func spread(left, right string, width int) string {
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// stars renders a five-star gauge for a 0-5 rating, rounded to whole stars.
func stars(rating float64) string {
	full := int(math.Round(math.Max(0, math.Min(5, rating))))
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

// formatPrice renders an amount in the catalog currency.
func formatPrice(amount decimal.Decimal) string {
	return "RS. " + amount.StringFixed(2)
}

// pageDots renders one dot per page with the current page filled.
func pageDots(current, total int) string {
	if total <= 0 {
		return ""
	}
	dots := make([]string, total)
	for i := range total {
		dots[i] = ternary(i == current, "●", "○")
	}
	return strings.Join(dots, " ")
}

// ternary returns a if cond is true, otherwise b.
func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

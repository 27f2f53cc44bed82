package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders segments of a bar so every cell, spaces included, carries
// the bar's background. lipgloss resets between styled segments otherwise
// leave gaps: https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle creates a background helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render applies style on the helper's background, word by word.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	wordStyle := style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = wordStyle.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Join joins rendered parts with n styled spaces.
func (b BgStyle) Join(parts []string, n int) string {
	return strings.Join(parts, b.Spaces(n))
}

// Spread places left and right at the edges of width on the background.
func (b BgStyle) Spread(left, right string, width int) string {
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + b.Spaces(gap) + right
}

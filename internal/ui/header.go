package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top app bar: back and search on the left, the
// favorite and cart badges on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	back := ternary(compact, "‹", "‹ Back")
	search := ternary(compact, "⌕", "⌕ Search")
	favorites := fmt.Sprintf("♥ %d", m.snapshot.FavoriteCount)
	cart := fmt.Sprintf("Cart %d", m.snapshot.CartCount)

	item := func(idx int, label string, style lipgloss.Style) string {
		if m.focus == focusTopBar && m.topBar == idx {
			return m.theme.Styles().Selected.Padding(0, 1).Render(label)
		}
		return bg.Spaces(1) + bg.Render(label, style) + bg.Spaces(1)
	}

	left := bg.Join([]string{
		item(topBarBack, back, styles.Text),
		item(topBarSearch, search, styles.Text),
		bg.Render("ShopFlow", styles.Logo),
	}, 1)

	right := bg.Join([]string{
		item(topBarFavorites, favorites, badgeStyle(styles.HeartText, m.snapshot.FavoriteCount)),
		item(topBarCart, cart, badgeStyle(styles.AccentText, m.snapshot.CartCount)),
	}, 1)

	// Header style pads one cell each side.
	content := bg.Spread(left, right, max(0, m.width-2))
	return styles.Header.Width(m.width).MaxHeight(headerHeight).Render(content)
}

// badgeStyle bolds a count badge when it is non-zero.
func badgeStyle(style lipgloss.Style, count int) lipgloss.Style {
	if count > 0 {
		return style.Bold(true)
	}
	return style.Faint(true)
}

// renderFooter shows the active toast, or the key hints when there is none.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.toast != "" {
		bg := NewBgStyle(m.theme.SurfaceAlt)
		line := bg.Render("●", styles.AccentText) + bg.Spaces(1) + bg.Render(m.toast, styles.Text)
		return styles.Toast.Width(m.width).MaxHeight(footerHeight).Render(line)
	}

	bg := NewBgStyle(m.theme.Surface)
	onBar := styles.WithBackground(m.theme.Surface)
	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, bg.Render(h.Key, onBar.AccentText)+bg.Spaces(1)+bg.Render(h.Desc, onBar.MutedText))
	}
	return styles.Footer.Width(m.width).MaxHeight(footerHeight).Render(bg.Join(hints, 2))
}

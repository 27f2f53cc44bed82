package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shopflow/internal/catalog"
)

// feedBuilder stacks blocks vertically and tracks line offsets so the
// focused block can be scrolled into view.
type feedBuilder struct {
	blocks []string
	lines  int
}

func (f *feedBuilder) add(block string) (top int) {
	top = f.lines
	f.blocks = append(f.blocks, block)
	f.lines += lipgloss.Height(block)
	return top
}

func (f *feedBuilder) String() string {
	return strings.Join(f.blocks, "\n")
}

// renderFeed renders the scrollable body and returns the line span of the
// focused block.
func (m Model) renderFeed() (content string, top, bottom int) {
	if m.snapshot.IsLoading {
		return m.renderPlaceholder("Loading catalog...", m.theme.Styles().MutedText), 0, 0
	}
	if m.snapshot.HasErrors() {
		return m.renderErrors(), 0, 0
	}

	var f feedBuilder
	mark := func(s section, start int) {
		if m.focus == s {
			top, bottom = start, f.lines
		}
	}

	start := f.add(m.renderBanner())
	mark(focusBanner, start)
	f.add("")

	start = f.add(m.renderSectionHeader("Categories", m.focus == focusCategories))
	f.add(m.renderCategories())
	mark(focusCategories, start)
	f.add("")

	f.add(m.renderSectionHeader("Products", m.focus == focusProducts))
	gridTop := f.lines
	grid, rowHeight := m.renderProducts()
	f.add(grid)
	if m.focus == focusProducts {
		row := m.product / m.columns()
		top = gridTop + row*rowHeight
		bottom = top + rowHeight
	}

	return f.String(), top, bottom
}

// renderBanner renders the current promotion page and its page dots.
func (m Model) renderBanner() string {
	styles := m.theme.Styles()
	promos := m.snapshot.Promotions
	if len(promos) == 0 {
		return styles.MutedText.Render("No promotions available")
	}

	promo := promos[m.banner]
	fill := promo.BackgroundColor
	if fill == "" {
		fill = m.theme.Accent
	}
	border := m.theme.Background
	if m.focus == focusBanner {
		border = m.theme.BorderFocus
	}

	ink := lipgloss.Color(m.theme.OnAccent)
	page := lipgloss.NewStyle().Foreground(ink).Background(lipgloss.Color(fill))
	body := lipgloss.JoinVertical(lipgloss.Left,
		page.Bold(true).Render(promo.Title),
		page.Render(promo.Subtitle),
		page.Faint(true).Render(promo.DateRange),
	)

	width := max(10, m.width-2)
	card := lipgloss.NewStyle().
		Background(lipgloss.Color(fill)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1, 2).
		Width(width - 2).
		Render(body)

	dots := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		styles.AccentText.Render(pageDots(m.banner, len(promos))))

	return lipgloss.JoinVertical(lipgloss.Left, card, dots)
}

// renderSectionHeader renders a section title with its "See all" affordance.
func (m Model) renderSectionHeader(title string, focused bool) string {
	styles := m.theme.Styles()
	left := styles.Text.Bold(true).Render(title)
	if focused {
		left = styles.AccentText.Bold(true).Render("▸ " + title)
	}
	right := styles.AccentText.Render("See all")
	return spread(left, right, max(0, m.width-1))
}

// renderCategories renders the horizontal chip row, scrolled so the
// selected chip is on screen.
func (m Model) renderCategories() string {
	styles := m.theme.Styles()
	cats := m.snapshot.Categories
	if len(cats) == 0 {
		return styles.MutedText.Render("No categories available")
	}

	chips := make([]string, len(cats))
	for i, c := range cats {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.Surface)).
			Foreground(lipgloss.Color(m.theme.Text)).
			Padding(0, 2)
		if m.focus == focusCategories && i == m.category {
			style = styles.Selected.Bold(true).Padding(0, 2)
		}
		chips[i] = style.Render(c.Name)
	}

	avail := max(1, m.width)
	start := 0
	for start < m.category && rowWidth(chips[start:m.category+1]) > avail {
		start++
	}
	end := start + 1
	for end < len(chips) && rowWidth(chips[start:end+1]) <= avail {
		end++
	}
	return strings.Join(chips[start:end], " ")
}

func rowWidth(chips []string) int {
	w := 0
	for _, c := range chips {
		w += lipgloss.Width(c)
	}
	return w + max(0, len(chips)-1)
}

// renderProducts renders the product grid and the height of one grid row.
func (m Model) renderProducts() (string, int) {
	styles := m.theme.Styles()
	products := m.snapshot.Products
	if len(products) == 0 {
		empty := styles.MutedText.Render("No products available")
		return empty, lipgloss.Height(empty)
	}

	cols := m.columns()
	gap := strings.Repeat(" ", cardGap)
	var rows []string
	for start := 0; start < len(products); start += cols {
		end := min(start+cols, len(products))
		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, gap)
			}
			focused := m.focus == focusProducts && i == m.product
			cards = append(cards, m.renderCard(products[i], focused))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n"), lipgloss.Height(rows[0])
}

// renderCard renders one product card.
func (m Model) renderCard(p catalog.Product, focused bool) string {
	styles := m.theme.Styles()

	tag := ""
	if p.HasTag() {
		tag = styles.Badge.Render(truncate(p.Tag, cardTextWidth-4))
	}
	heart := styles.FaintText.Render("♡")
	if p.IsFavorite {
		heart = styles.HeartText.Bold(true).Render("♥")
	}

	stock := styles.SuccessText.Render("In stock")
	if !p.InStock {
		stock = styles.DangerText.Render("Out of stock")
	}

	rating := styles.RatingText.Render(stars(p.Rating)) +
		styles.MutedText.Render(fmt.Sprintf(" (%.1f)", p.Rating))
	reviews := styles.FaintText.Render(fmt.Sprintf("%d reviews", p.ReviewCount))

	price := styles.AccentText.Bold(true).Render(formatPrice(p.SalePrice))
	if p.OnSale() {
		price += " " + styles.FaintText.Strikethrough(true).Render(formatPrice(p.ListPrice))
	}
	discount := ""
	if off := p.DiscountPercent(); off > 0 {
		discount = styles.DangerText.Render(fmt.Sprintf("-%d%%", off))
	}

	cart := styles.MutedText.Render("+ Add to cart")
	if p.IsInCart {
		cart = styles.SuccessText.Render("✓ In cart")
	}

	body := strings.Join([]string{
		spread(tag, heart, cardTextWidth),
		styles.Text.Bold(true).Render(truncate(p.Name, cardTextWidth)),
		styles.MutedText.Render(truncate(p.Category, cardTextWidth)),
		stock,
		rating,
		reviews,
		price,
		spread(discount, cart, cardTextWidth),
	}, "\n")

	style := styles.Card
	if focused {
		style = styles.CardFocused
	}
	return style.Width(cardWidth).Render(body)
}

// renderPlaceholder centers a single message in the feed area.
func (m Model) renderPlaceholder(text string, style lipgloss.Style) string {
	return lipgloss.Place(m.width, m.feedHeight(), lipgloss.Center, lipgloss.Center, style.Render(text))
}

// renderErrors renders the load failure panel.
func (m Model) renderErrors() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Something went wrong"))
	b.WriteString("\n\n")
	for _, e := range m.snapshot.Errors {
		b.WriteString(styles.Text.Render("Error: " + e))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Check catalog_path in the config file, then restart."))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(min(max(20, m.width-4), 72)).
		Render(b.String())
	return lipgloss.Place(m.width, m.feedHeight(), lipgloss.Center, lipgloss.Center, panel)
}

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Cards, top bar, chips
	SurfaceAlt string // Focused chip / top-bar item

	// Selection
	SelectionBg   string
	SelectionText string

	// Borders
	Border      string
	BorderFocus string

	// Text colors
	Text     string
	Muted    string
	Faint    string
	Accent   string // Prices, badges, logo
	OnAccent string // Text drawn on Accent
	Rating   string // Review stars
	Heart    string // Favorite marker
	Success  string
	Danger   string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		RatingText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Rating)),

		HeartText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Heart)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.OnAccent)).
			Bold(true).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Toast: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	RatingText  lipgloss.Style
	HeartText   lipgloss.Style
	SuccessText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Header      lipgloss.Style
	Footer      lipgloss.Style
	Logo        lipgloss.Style
	Selected    lipgloss.Style
	Badge       lipgloss.Style
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	Toast       lipgloss.Style
}

// WithBackground returns a copy of Styles whose text styles carry bgColor.
// Bars rendered on Surface need this so segments don't punch holes in the fill.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.RatingText = s.RatingText.Background(bg)
	out.HeartText = s.HeartText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.Logo = s.Logo.Background(bg)
	return out
}

// Theme definitions

var themes = map[string]Theme{
	"ShopFlow": shopflowTheme(),
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"ShopFlow", "Nightfox", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return shopflowTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func shopflowTheme() Theme {
	// House palette: lime on near-black.
	return Theme{
		Name: "ShopFlow",

		Background: "#111111",
		Surface:    "#2A2A2A",
		SurfaceAlt: "#3A3A3A",

		SelectionBg:   "#B7EC43",
		SelectionText: "#2A2A2A",

		Border:      "#3A3A3A",
		BorderFocus: "#B7EC43",

		Text:     "#FFFFFF",
		Muted:    "#B0B0B0",
		Faint:    "#7B7B7B",
		Accent:   "#B7EC43",
		OnAccent: "#2A2A2A",
		Rating:   "#FFD735",
		Heart:    "#B7A2F1",
		Success:  "#B7EC43",
		Danger:   "#FF6B6B",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#29394f", // bg3

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:     "#cdcecf", // fg1
		Muted:    "#738091", // comment
		Faint:    "#71839b", // fg3
		Accent:   "#81b29a", // green
		OnAccent: "#131a24", // bg0
		Rating:   "#dbc074", // yellow
		Heart:    "#9d79d6", // magenta
		Success:  "#81b29a", // green
		Danger:   "#c94f6d", // red
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:     "#f1f5f9", // slate-100
		Muted:    "#94a3b8", // slate-400
		Faint:    "#64748b", // slate-500
		Accent:   "#38bdf8", // sky-400
		OnAccent: "#020617", // slate-950
		Rating:   "#f59e0b", // amber-500
		Heart:    "#a78bfa", // violet-400
		Success:  "#22c55e", // green-500
		Danger:   "#ef4444", // red-500
	}
}

package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "ShopFlow" || names[1] != "Nightfox" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [ShopFlow Nightfox Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"ShopFlow": "Nightfox",
		"Nightfox": "Slate",
		"Slate":    "ShopFlow",
		"Unknown":  "ShopFlow",
	}
	for in, want := range cases {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "ShopFlow" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want ShopFlow (fallback)", got)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := map[string]string{
			"Background": th.Background, "Surface": th.Surface, "SurfaceAlt": th.SurfaceAlt,
			"SelectionBg": th.SelectionBg, "SelectionText": th.SelectionText,
			"Border": th.Border, "BorderFocus": th.BorderFocus,
			"Text": th.Text, "Muted": th.Muted, "Faint": th.Faint,
			"Accent": th.Accent, "OnAccent": th.OnAccent, "Rating": th.Rating,
			"Heart": th.Heart, "Success": th.Success, "Danger": th.Danger,
		}
		for field, v := range colors {
			if len(v) != 7 || v[0] != '#' {
				t.Fatalf("%s.%s = %q, want #rrggbb", name, field, v)
			}
		}
	}
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shopflow/internal/catalog"
)

// section identifies the focusable region of the screen.
type section int

const (
	focusBanner section = iota
	focusCategories
	focusProducts
	focusTopBar
	sectionCount
)

// Top-bar items, left to right.
const (
	topBarBack = iota
	topBarSearch
	topBarFavorites
	topBarCart
	topBarCount
)

// next follows the tab order: banner, categories, products, top bar.
func (s section) next() section { return (s + 1) % sectionCount }

func (s section) prev() section { return (s + sectionCount - 1) % sectionCount }

// screenOrder is the top-to-bottom order sections are drawn in.
var screenOrder = []section{focusTopBar, focusBanner, focusCategories, focusProducts}

func (s section) above() (section, bool) {
	for i, v := range screenOrder {
		if v == s && i > 0 {
			return screenOrder[i-1], true
		}
	}
	return s, false
}

func (s section) below() (section, bool) {
	for i, v := range screenOrder {
		if v == s && i < len(screenOrder)-1 {
			return screenOrder[i+1], true
		}
	}
	return s, false
}

// moveVertical moves within the product grid by whole rows and otherwise
// steps to the section drawn above or below.
func (m *Model) moveVertical(dir int) {
	if m.focus == focusProducts {
		cols := m.columns()
		target := m.product + dir*cols
		if target >= 0 && target < len(m.snapshot.Products) {
			m.product = target
			return
		}
		if dir > 0 {
			// Last partial row: drop to the final card instead of stopping.
			if last := len(m.snapshot.Products) - 1; m.product/cols < last/cols {
				m.product = last
			}
			return
		}
	}
	var (
		to section
		ok bool
	)
	if dir < 0 {
		to, ok = m.focus.above()
	} else {
		to, ok = m.focus.below()
	}
	if ok {
		m.focus = to
	}
}

// moveHorizontal moves the selection within the focused section.
func (m *Model) moveHorizontal(dir int) {
	switch m.focus {
	case focusBanner:
		if n := len(m.snapshot.Promotions); n > 0 {
			m.banner = (m.banner + dir + n) % n
		}
	case focusCategories:
		m.category = clampIndex(m.category+dir, len(m.snapshot.Categories))
	case focusProducts:
		m.product = clampIndex(m.product+dir, len(m.snapshot.Products))
	case focusTopBar:
		m.topBar = clampIndex(m.topBar+dir, topBarCount)
	}
}

// clickFocused returns the handler call for enter on the focused item.
func (m Model) clickFocused() tea.Cmd {
	vm := m.vm
	switch m.focus {
	case focusBanner:
		if m.banner < len(m.snapshot.Promotions) {
			id := m.snapshot.Promotions[m.banner].ID
			return action(func() { vm.BannerClicked(id) })
		}
	case focusCategories:
		if m.category < len(m.snapshot.Categories) {
			id := m.snapshot.Categories[m.category].ID
			return action(func() { vm.CategoryClicked(id) })
		}
	case focusProducts:
		if p, ok := m.focusedProduct(); ok {
			return action(func() { vm.ProductClicked(p.ID) })
		}
	case focusTopBar:
		switch m.topBar {
		case topBarBack:
			return action(vm.Back)
		case topBarSearch:
			return action(vm.Search)
		case topBarFavorites:
			return action(vm.TopBarFavorites)
		case topBarCart:
			return action(vm.TopBarCart)
		}
	}
	return nil
}

// focusedProduct returns the selected product when the grid has focus.
func (m Model) focusedProduct() (catalog.Product, bool) {
	if m.focus != focusProducts || m.product >= len(m.snapshot.Products) {
		return catalog.Product{}, false
	}
	return m.snapshot.Products[m.product], true
}

// clampSelection keeps indices valid after a snapshot replaces the lists.
func (m *Model) clampSelection() {
	if n := len(m.snapshot.Promotions); n > 0 {
		m.banner %= n
	} else {
		m.banner = 0
	}
	m.category = clampIndex(m.category, len(m.snapshot.Categories))
	m.product = clampIndex(m.product, len(m.snapshot.Products))
}

// columns is the number of product cards that fit side by side.
func (m Model) columns() int {
	return max(1, (m.width+cardGap)/(cardOuterWidth+cardGap))
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	return min(i, n-1)
}

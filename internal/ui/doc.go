// Package ui is the Bubble Tea front end of shopflow: a terminal rendition of
// the shopping browse screen.
//
// # Architecture
//
// Model holds a copy of the latest state.ScreenState and nothing else from
// the domain. It never mutates that state. Key presses are translated into
// calls on shop.ViewModel, which run inside tea.Cmds; their effects come back
// as messages:
//
//	Store.Watch ──> waitForSnapshot ──> snapshotMsg ──> re-render feed
//	Bus.Listen  ──> waitForEvent    ──> eventMsg    ──> toast in footer
//
// Both streams close when the view-model is closed or the context ends, and
// the program quits when either does.
//
// # Layout
//
//   - header.go: top app bar (back, search, favorite and cart badges) and footer
//   - feed.go: promotion banner with page dots, category chips, product grid
//   - navigation.go: focus sections, selection movement, enter dispatch
//   - help.go: keyboard shortcut overlay built from the keymap
//   - theme.go: ShopFlow, Nightfox and Slate palettes
//
// The feed sits in a bubbles viewport and scrolls to keep the focused block
// visible. Tab cycles focus banner, categories, products, top bar.
package ui

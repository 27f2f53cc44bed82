// Package app is the composition root for shopflow.
//
// # Overview
//
// Run wires configuration, logging, preferences, the catalog source, the
// shop view-model and the TUI, then blocks until the user quits or the
// context is cancelled.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()   Read config.toml, apply flag overrides
//	       ├─────> openLogger()    slog text handler on the log file
//	       ├─────> prefs.Load()    Theme preference
//	       ├─────> shop.New()      Store + Bus in the loading state
//	       ├─────> StartLoad()     Background catalog load (errgroup)
//	       └─────> ui.Run()        Bubble Tea program (errgroup, blocks)
//
// The TUI renders the loading state immediately and switches to the feed, or
// to an error panel, when the load commits.
//
// # Shutdown
//
// Quitting the TUI cancels the shared context. A load that already read its
// source still commits; the view-model is then closed, which closes every
// Watch and Listen channel.
package app

// Package state holds the browse screen's single source of truth.
//
// # Overview
//
// A Store owns one ScreenState value. Action handlers change it with Update;
// the rendering layer reads it with Snapshot or observes it with Subscribe
// and Watch.
//
//	Handlers:                        Renderer:
//	┌──────────────────┐            ┌──────────────────┐
//	│ ToggleFavorite() │            │ Watch(ctx)       │
//	│       ↓          │            │       ↓          │
//	│ store.Update(fn) │───────────→│ <-snapshots      │
//	│                  │  (mutex)   │       ↓          │
//	│                  │            │ render           │
//	└──────────────────┘            └──────────────────┘
//
// # Update Semantics
//
// Update runs fn against a private copy of the current snapshot while holding
// the store mutex, so read-modify-write is atomic and concurrent toggles
// never lose a change. The committed value is then handed to every observer
// in commit order. Observers run outside the mutex but one delivery at a
// time; an observer must not call Update from inside its callback.
//
// # Subscribe vs Watch
//
//   - Subscribe: callback, called immediately with the current snapshot and
//     then on every update
//   - Watch: channel of capacity one that always holds the newest undelivered
//     snapshot; closes when the context ends or the store is closed
//
// Watch suits the Bubble Tea loop, which blocks on one value per command.
//
// # Defensive Copying
//
// Snapshot, Update and every delivery clone the slices of ScreenState.
// Nothing outside the store can mutate the stored value.
//
// # Lifecycle
//
//	store := state.NewStore(state.Initial())
//	defer store.Close()
//
// Close drops all observers. Updates that are still in flight complete and
// change the snapshot, but nobody is notified.
//
// # Derived Counts
//
// FavoriteCount and CartCount duplicate information held in Products.
// Consistent reports whether they match; the shop package recomputes both
// in every reducer that touches a product flag.
package state

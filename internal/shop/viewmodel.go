// Package shop implements the browse screen's view-model: the action
// handlers that turn user gestures into state changes and toasts.
//
// Every handler runs a pure reducer through state.Store.Update and then
// publishes the reducer's event, if any, on the events.Bus. Handlers are
// serialized, so toasts arrive in the same order as the state changes they
// describe. A Bus subscriber must not call a handler synchronously.
package shop

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/five82/shopflow/internal/catalog"
	"github.com/five82/shopflow/internal/events"
	"github.com/five82/shopflow/internal/state"
)

// ErrAlreadyLoaded is returned by Load after the first call.
var ErrAlreadyLoaded = errors.New("catalog already loaded")

// Options configure a ViewModel.
type Options struct {
	Source catalog.Source // nil uses catalog.Sample()
	Logger *slog.Logger   // nil discards logs
}

// ViewModel owns the screen state and event bus for one browse session.
type ViewModel struct {
	store   *state.Store
	bus     *events.Bus
	source  catalog.Source
	logger  *slog.Logger
	session string

	actMu  sync.Mutex
	loaded sync.Once
}

// New creates a session in the loading state. Call Load to populate it.
func New(opts Options) *ViewModel {
	source := opts.Source
	if source == nil {
		source = catalog.Sample()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	session := uuid.NewString()
	return &ViewModel{
		store:   state.NewStore(state.Initial()),
		bus:     events.NewBus(),
		source:  source,
		logger:  logger.With(slog.String("session", session)),
		session: session,
	}
}

// Store exposes the read side of the screen state.
func (vm *ViewModel) Store() *state.Store { return vm.store }

// Events exposes the one-shot event stream.
func (vm *ViewModel) Events() *events.Bus { return vm.bus }

// Session returns the id attached to this session's log records.
func (vm *ViewModel) Session() string { return vm.session }

// Load reads the catalog source once and installs the result. A source error
// is recorded in ScreenState.Errors and also returned.
func (vm *ViewModel) Load(ctx context.Context) error {
	err := ErrAlreadyLoaded
	vm.loaded.Do(func() {
		err = vm.load(ctx)
	})
	return err
}

func (vm *ViewModel) load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		vm.apply(ctx, "load", loadFailed(err))
		return err
	}
	cat, err := vm.source.Load(ctx)
	if err != nil {
		vm.logger.ErrorContext(ctx, "catalog load failed", slog.Any("error", err))
		vm.apply(ctx, "load", loadFailed(err))
		return err
	}
	vm.apply(ctx, "load", loaded(cat))
	vm.logger.InfoContext(ctx, "catalog loaded",
		slog.Int("promotions", len(cat.Promotions)),
		slog.Int("categories", len(cat.Categories)),
		slog.Int("products", len(cat.Products)))
	return nil
}

// ToggleFavorite flips the favorite flag of product id.
func (vm *ViewModel) ToggleFavorite(id int64) {
	vm.apply(context.Background(), "toggle_favorite", toggleFavorite(id), slog.Int64("product", id))
}

// ToggleCart flips the in-cart flag of product id.
func (vm *ViewModel) ToggleCart(id int64) {
	vm.apply(context.Background(), "toggle_cart", toggleCart(id), slog.Int64("product", id))
}

// ProductClicked reports a tap on a product card.
func (vm *ViewModel) ProductClicked(id int64) {
	vm.apply(context.Background(), "product_clicked", productClicked(id), slog.Int64("product", id))
}

// ReviewClicked reports a tap on a product's rating.
func (vm *ViewModel) ReviewClicked(id int64) {
	vm.apply(context.Background(), "review_clicked", reviewClicked(id), slog.Int64("product", id))
}

// CategoryClicked reports a tap on a category chip.
func (vm *ViewModel) CategoryClicked(id int64) {
	vm.apply(context.Background(), "category_clicked", categoryClicked(id), slog.Int64("category", id))
}

// BannerClicked reports a tap on a promotion page.
func (vm *ViewModel) BannerClicked(id int64) {
	vm.apply(context.Background(), "banner_clicked", bannerClicked(id), slog.Int64("promotion", id))
}

// SeeAllCategories reports a tap on the categories "See all" link.
func (vm *ViewModel) SeeAllCategories() {
	vm.apply(context.Background(), "see_all_categories", notify(msgSeeAllCategories))
}

// SeeAllProducts reports a tap on the products "See all" link.
func (vm *ViewModel) SeeAllProducts() {
	vm.apply(context.Background(), "see_all_products", notify(msgSeeAllProducts))
}

// Back reports a tap on the top bar's back button.
func (vm *ViewModel) Back() {
	vm.apply(context.Background(), "back", notify(msgBack))
}

// Search reports a tap on the top bar's search button.
func (vm *ViewModel) Search() {
	vm.apply(context.Background(), "search", notify(msgSearch))
}

// TopBarFavorites reports a tap on the favorites badge.
func (vm *ViewModel) TopBarFavorites() {
	vm.apply(context.Background(), "top_bar_favorites", notify(msgTopBarFavorites))
}

// TopBarCart reports a tap on the cart badge.
func (vm *ViewModel) TopBarCart() {
	vm.apply(context.Background(), "top_bar_cart", notify(msgTopBarCart))
}

// Close ends the session: observers of both the store and the bus are
// dropped and their channels closed.
func (vm *ViewModel) Close() {
	vm.store.Close()
	vm.bus.Close()
	vm.logger.Debug("session closed")
}

func (vm *ViewModel) apply(ctx context.Context, action string, r reducer, attrs ...slog.Attr) {
	vm.actMu.Lock()
	defer vm.actMu.Unlock()

	var ev events.UserEvent
	next := vm.store.Update(func(cur state.ScreenState) state.ScreenState {
		var out state.ScreenState
		out, ev = r(cur)
		return out
	})

	attrs = append(attrs, slog.String("action", action))
	if !next.Consistent() {
		vm.logger.LogAttrs(ctx, slog.LevelError, "derived counts out of sync",
			append(attrs,
				slog.Int("favorite_count", next.FavoriteCount),
				slog.Int("cart_count", next.CartCount))...)
	}
	if ev == nil {
		vm.logger.LogAttrs(ctx, slog.LevelDebug, "action produced no event", attrs...)
		return
	}
	vm.logger.LogAttrs(ctx, slog.LevelDebug, ev.Message(), attrs...)
	vm.bus.Publish(ev)
}

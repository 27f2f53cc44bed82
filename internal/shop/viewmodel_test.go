package shop

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/shopflow/internal/catalog"
	"github.com/five82/shopflow/internal/events"
	"github.com/five82/shopflow/internal/state"
)

// scenarioCatalog has 3 promotions, 5 categories and 6 products with three
// favorites and two in the cart.
func scenarioCatalog() catalog.Catalog {
	return catalog.Catalog{
		Promotions: []catalog.Promotion{
			{ID: 1, Title: "GET 20% OFF"},
			{ID: 2, Title: "SALE ENDS SOON"},
			{ID: 3, Title: "FREE SHIPPING"},
		},
		Categories: []catalog.Category{
			{ID: 1, Name: "Cleansers"},
			{ID: 2, Name: "Serums"},
			{ID: 3, Name: "Moisturizers"},
			{ID: 4, Name: "Sunscreens"},
			{ID: 5, Name: "Masks"},
		},
		Products: []catalog.Product{
			{ID: 1, Name: "Clarity Cleanser"},
			{ID: 2, Name: "Radiance Serum", IsFavorite: true},
			{ID: 3, Name: "HydroBoost Gel", IsInCart: true},
			{ID: 4, Name: "SunGuard SPF 50", IsFavorite: true},
			{ID: 5, Name: "Detox Clay Mask", IsFavorite: true, IsInCart: true},
			{ID: 6, Name: "Night Cream", InStock: false},
		},
	}
}

type recorder struct {
	mu     sync.Mutex
	events []events.UserEvent
}

func (r *recorder) add(ev events.UserEvent) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *recorder) texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Message())
	}
	return out
}

func newLoaded(t *testing.T) (*ViewModel, *recorder) {
	t.Helper()
	vm := New(Options{Source: catalog.Static(scenarioCatalog())})
	t.Cleanup(vm.Close)
	require.NoError(t, vm.Load(context.Background()))

	rec := &recorder{}
	t.Cleanup(vm.Events().Subscribe(rec.add))
	return vm, rec
}

func TestViewModel_StartsLoading(t *testing.T) {
	vm := New(Options{})
	defer vm.Close()

	snap := vm.Store().Snapshot()
	assert.True(t, snap.IsLoading)
	assert.Empty(t, snap.Products)
	assert.NotEmpty(t, vm.Session())
}

func TestViewModel_InitialLoad(t *testing.T) {
	vm, _ := newLoaded(t)
	snap := vm.Store().Snapshot()

	assert.False(t, snap.IsLoading)
	assert.Len(t, snap.Promotions, 3)
	assert.Len(t, snap.Categories, 5)
	assert.Len(t, snap.Products, 6)
	assert.Equal(t, 3, snap.FavoriteCount)
	assert.Equal(t, 2, snap.CartCount)
	assert.Empty(t, snap.Errors)
}

func TestViewModel_LoadOnlyOnce(t *testing.T) {
	vm, _ := newLoaded(t)
	assert.ErrorIs(t, vm.Load(context.Background()), ErrAlreadyLoaded)
}

func TestViewModel_LoadFailureRecorded(t *testing.T) {
	boom := errors.New("disk on fire")
	vm := New(Options{Source: catalog.SourceFunc(func(context.Context) (catalog.Catalog, error) {
		return catalog.Catalog{}, boom
	})})
	defer vm.Close()

	err := vm.Load(context.Background())
	require.ErrorIs(t, err, boom)

	snap := vm.Store().Snapshot()
	assert.False(t, snap.IsLoading)
	assert.Equal(t, []string{"load catalog: disk on fire"}, snap.Errors)
	assert.True(t, snap.HasErrors())
}

func TestViewModel_LoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	vm := New(Options{Source: catalog.SourceFunc(func(context.Context) (catalog.Catalog, error) {
		called = true
		return catalog.Catalog{}, nil
	})})
	defer vm.Close()

	require.ErrorIs(t, vm.Load(ctx), context.Canceled)
	assert.False(t, called)
	assert.False(t, vm.Store().Snapshot().IsLoading)
}

func TestViewModel_ToggleFavoriteSequence(t *testing.T) {
	vm, rec := newLoaded(t)
	before := vm.Store().Snapshot()

	vm.ToggleFavorite(1)
	snap := vm.Store().Snapshot()
	p, _ := snap.Product(1)
	assert.True(t, p.IsFavorite)
	assert.Equal(t, before.FavoriteCount+1, snap.FavoriteCount)

	vm.ToggleFavorite(1)
	snap = vm.Store().Snapshot()
	p, _ = snap.Product(1)
	assert.False(t, p.IsFavorite)
	assert.Equal(t, before.FavoriteCount, snap.FavoriteCount)
	assert.Equal(t, before, snap, "toggling twice restores the starting state")

	assert.Equal(t, []string{
		"Clarity Cleanser added to favorites",
		"Clarity Cleanser removed from favorites",
	}, rec.texts())
}

func TestViewModel_ToggleCartSequence(t *testing.T) {
	vm, rec := newLoaded(t)

	vm.ToggleCart(3)
	vm.ToggleCart(6) // out of stock; still allowed
	snap := vm.Store().Snapshot()
	assert.Equal(t, 2, snap.CartCount)

	assert.Equal(t, []string{
		"HydroBoost Gel removed from cart",
		"Night Cream added to cart",
	}, rec.texts())
}

func TestViewModel_MissIsNoOp(t *testing.T) {
	vm, rec := newLoaded(t)
	before := vm.Store().Snapshot()

	vm.ToggleCart(999)
	vm.ToggleFavorite(999)
	vm.ProductClicked(999)
	vm.ReviewClicked(999)
	vm.CategoryClicked(999)
	vm.BannerClicked(999)

	assert.Equal(t, before, vm.Store().Snapshot())
	assert.Empty(t, rec.texts())
}

func TestViewModel_NotificationActions(t *testing.T) {
	vm, rec := newLoaded(t)
	before := vm.Store().Snapshot()

	vm.ProductClicked(2)
	vm.CategoryClicked(4)
	vm.BannerClicked(3)
	vm.SeeAllCategories()
	vm.SeeAllProducts()
	vm.Back()
	vm.Search()
	vm.TopBarFavorites()
	vm.TopBarCart()
	vm.ReviewClicked(5)

	assert.Equal(t, before, vm.Store().Snapshot(), "notifications never change state")
	assert.Equal(t, []string{
		"Product clicked: Radiance Serum",
		"Category clicked: Sunscreens",
		"Banner clicked: FREE SHIPPING",
		"See all categories clicked!",
		"See all products clicked!",
		"Back button clicked!",
		"Search initiated!",
		"Favorites icon clicked!",
		"Cart icon clicked!",
		"Reviews for Detox Clay Mask clicked!",
	}, rec.texts())
}

func TestViewModel_EventsAreNotReplayed(t *testing.T) {
	vm := New(Options{Source: catalog.Static(scenarioCatalog())})
	defer vm.Close()
	require.NoError(t, vm.Load(context.Background()))

	vm.ToggleFavorite(1)

	late := &recorder{}
	defer vm.Events().Subscribe(late.add)()
	assert.Empty(t, late.texts())

	vm.ToggleFavorite(1)
	assert.Equal(t, []string{"Clarity Cleanser removed from favorites"}, late.texts())
}

func TestViewModel_StateSubscriberGetsCurrentSnapshot(t *testing.T) {
	vm, _ := newLoaded(t)
	var got []state.ScreenState
	defer vm.Store().Subscribe(func(s state.ScreenState) { got = append(got, s) })()

	require.Len(t, got, 1)
	assert.Len(t, got[0].Products, 6)
}

func TestViewModel_ConcurrentTogglesOnDistinctIDs(t *testing.T) {
	vm, rec := newLoaded(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); vm.ToggleFavorite(1) }()
	go func() { defer wg.Done(); vm.ToggleCart(2) }()
	wg.Wait()

	snap := vm.Store().Snapshot()
	p1, _ := snap.Product(1)
	p2, _ := snap.Product(2)
	assert.True(t, p1.IsFavorite)
	assert.True(t, p2.IsInCart)
	assert.Equal(t, 4, snap.FavoriteCount)
	assert.Equal(t, 3, snap.CartCount)
	assert.True(t, snap.Consistent())
	assert.Len(t, rec.texts(), 2)
}

func TestViewModel_InvariantHoldsUnderRandomActions(t *testing.T) {
	vm, _ := newLoaded(t)
	ids := []int64{1, 2, 3, 4, 5, 6, 42}

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				id := ids[(w+i)%len(ids)]
				if (w+i)%2 == 0 {
					vm.ToggleFavorite(id)
				} else {
					vm.ToggleCart(id)
				}
			}
		}()
	}
	wg.Wait()

	assert.True(t, vm.Store().Snapshot().Consistent())
}

func TestViewModel_CloseStopsDelivery(t *testing.T) {
	vm, rec := newLoaded(t)
	vm.Close()
	vm.Back()
	assert.Empty(t, rec.texts())
	assert.Zero(t, vm.Store().Observers())
	assert.Zero(t, vm.Events().Subscribers())
}

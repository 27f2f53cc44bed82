package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/shopflow/internal/catalog"
)

func loadedState() ScreenState {
	return ScreenState{
		Categories: []catalog.Category{{ID: 1, Name: "Serums"}},
		Products: []catalog.Product{
			{ID: 1, Name: "Clarity Cleanser", IsFavorite: true},
			{ID: 2, Name: "Radiance Serum", IsInCart: true},
		},
		FavoriteCount: 1,
		CartCount:     1,
	}
}

func TestStore_InitialIsLoading(t *testing.T) {
	s := NewStore(Initial())
	snap := s.Snapshot()
	assert.True(t, snap.IsLoading)
	assert.Empty(t, snap.Products)
	assert.True(t, snap.Consistent())
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	s := NewStore(Initial())
	s.Update(func(ScreenState) ScreenState { return loadedState() })

	snap := s.Snapshot()
	require.Len(t, snap.Products, 2)

	// Returned snapshot should be independent of the stored one.
	snap.Products[0].Name = "mutated"
	snap2 := s.Snapshot()
	if snap2.Products[0].Name != "Clarity Cleanser" {
		t.Fatalf("Snapshot should clone products; got %q", snap2.Products[0].Name)
	}
}

func TestStore_UpdateFnCannotMutateStoredValue(t *testing.T) {
	s := NewStore(loadedState())
	s.Update(func(cur ScreenState) ScreenState {
		cur.Products[0].Name = "changed"
		return cur
	})
	var leaked ScreenState
	s.Update(func(cur ScreenState) ScreenState {
		leaked = cur
		return cur
	})
	leaked.Products[0].Name = "leaked"
	assert.Equal(t, "changed", s.Snapshot().Products[0].Name)
}

func TestStore_SubscribeReplaysCurrentSnapshot(t *testing.T) {
	s := NewStore(loadedState())

	var got []ScreenState
	unsubscribe := s.Subscribe(func(snap ScreenState) { got = append(got, snap) })
	defer unsubscribe()

	require.Len(t, got, 1, "subscriber should receive the current snapshot without a mutation")
	assert.Len(t, got[0].Products, 2)
}

func TestStore_SubscribeSeesUpdatesInOrder(t *testing.T) {
	s := NewStore(ScreenState{})
	var counts []int
	unsubscribe := s.Subscribe(func(snap ScreenState) { counts = append(counts, snap.CartCount) })

	for i := 1; i <= 3; i++ {
		s.Update(func(cur ScreenState) ScreenState {
			cur.CartCount = i
			return cur
		})
	}
	unsubscribe()
	unsubscribe()
	s.Update(func(cur ScreenState) ScreenState {
		cur.CartCount = 99
		return cur
	})

	assert.Equal(t, []int{0, 1, 2, 3}, counts)
	assert.Equal(t, 0, s.Observers())
}

func TestStore_ConcurrentUpdatesDoNotLoseChanges(t *testing.T) {
	s := NewStore(ScreenState{})
	const writers = 50

	var wg sync.WaitGroup
	wg.Add(writers)
	for range writers {
		go func() {
			defer wg.Done()
			s.Update(func(cur ScreenState) ScreenState {
				cur.FavoriteCount++
				return cur
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, writers, s.Snapshot().FavoriteCount)
}

func TestStore_ObserverMayReadStoreDuringConcurrentUpdates(t *testing.T) {
	s := NewStore(ScreenState{})
	var reads int
	defer s.Subscribe(func(ScreenState) {
		time.Sleep(time.Millisecond)
		_ = s.Snapshot()
		_ = s.Observers()
		reads++
	})()

	var unsubscribe func()
	var selfCalls int
	unsubscribe = s.Subscribe(func(snap ScreenState) {
		selfCalls++
		if snap.CartCount > 0 {
			unsubscribe()
		}
	})

	const writers, perWriter = 8, 20
	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		for range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perWriter {
					s.Update(func(cur ScreenState) ScreenState {
						cur.CartCount++
						return cur
					})
				}
			}()
		}
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("updates did not finish while observers read the store")
	}

	assert.Equal(t, writers*perWriter, s.Snapshot().CartCount)
	assert.Equal(t, 1+writers*perWriter, reads)
	assert.Equal(t, 2, selfCalls, "observer stops after unsubscribing itself")
	assert.Equal(t, 1, s.Observers())
}

func TestStore_CloseDropsObservers(t *testing.T) {
	s := NewStore(ScreenState{})
	calls := 0
	s.Subscribe(func(ScreenState) { calls++ })
	require.Equal(t, 1, calls)

	s.Close()
	s.Close()
	s.Update(func(cur ScreenState) ScreenState {
		cur.CartCount = 5
		return cur
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 5, s.Snapshot().CartCount, "updates after Close still commit")

	late := 0
	s.Subscribe(func(ScreenState) { late++ })()
	assert.Equal(t, 0, late)
}

func TestStore_WatchDeliversLatestAndClosesOnCancel(t *testing.T) {
	s := NewStore(ScreenState{})
	ctx, cancel := context.WithCancel(context.Background())
	ch := s.Watch(ctx)

	first := receive(t, ch)
	assert.Equal(t, 0, first.CartCount)

	s.Update(func(cur ScreenState) ScreenState { cur.CartCount = 1; return cur })
	s.Update(func(cur ScreenState) ScreenState { cur.CartCount = 2; return cur })
	assert.Equal(t, 2, receive(t, ch).CartCount, "older undelivered snapshot should be replaced")

	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			// a final value may still be buffered; the next read must see the close
			_, ok = <-ch
		}
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Watch channel was not closed after cancel")
	}
	assert.Eventually(t, func() bool { return s.Observers() == 0 }, time.Second, 5*time.Millisecond)
}

func TestStore_WatchClosesOnStoreClose(t *testing.T) {
	s := NewStore(ScreenState{})
	ch := s.Watch(context.Background())
	receive(t, ch)

	s.Close()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Watch channel was not closed after Close")
	}
}

func TestScreenState_Lookups(t *testing.T) {
	st := loadedState()
	p, ok := st.Product(2)
	require.True(t, ok)
	assert.Equal(t, "Radiance Serum", p.Name)

	_, ok = st.Product(42)
	assert.False(t, ok)

	c, ok := st.Category(1)
	require.True(t, ok)
	assert.Equal(t, "Serums", c.Name)

	_, ok = st.Promotion(1)
	assert.False(t, ok)
}

func TestScreenState_Consistent(t *testing.T) {
	st := loadedState()
	assert.True(t, st.Consistent())

	st.FavoriteCount = 2
	assert.False(t, st.Consistent())
}

func receive(t *testing.T, ch <-chan ScreenState) ScreenState {
	t.Helper()
	select {
	case snap, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return snap
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	return ScreenState{}
}

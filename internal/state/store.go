package state

import (
	"context"
	"sync"
)

// Store owns the current ScreenState and serializes every change to it.
type Store struct {
	mu        sync.Mutex
	deliverMu sync.Mutex // held while observers run; always taken before mu
	snapshot  ScreenState
	observers []observer
	nextID    uint64
	closed    bool
	done      chan struct{}
}

type observer struct {
	id uint64
	fn func(ScreenState)
}

// NewStore returns a store holding initial.
func NewStore(initial ScreenState) *Store {
	return &Store{
		snapshot: initial.Clone(),
		done:     make(chan struct{}),
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

// Update applies fn to the current snapshot and stores the result. Calls are
// serialized, and observers see results in the order the updates committed.
// Observers may call Snapshot or unsubscribe from their callback but must
// not call Update or Subscribe synchronously.
func (s *Store) Update(fn func(ScreenState) ScreenState) ScreenState {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	next := fn(s.snapshot.Clone())
	s.snapshot = next.Clone()
	targets := s.activeObservers()
	s.mu.Unlock()

	for _, o := range targets {
		o.fn(next.Clone())
	}
	return next
}

// Subscribe registers fn and immediately calls it with the current snapshot.
// The returned function removes the observer; calling it again is a no-op.
func (s *Store) Subscribe(fn func(ScreenState)) (unsubscribe func()) {
	s.deliverMu.Lock()
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.deliverMu.Unlock()
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer{id: id, fn: fn})
	current := s.snapshot.Clone()
	s.mu.Unlock()
	fn(current)
	s.deliverMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

// Watch streams snapshots on a channel until ctx is done or the store is
// closed. Only the latest undelivered snapshot is kept; the first value is
// the current snapshot.
func (s *Store) Watch(ctx context.Context) <-chan ScreenState {
	ch := make(chan ScreenState, 1)
	unsubscribe := s.Subscribe(func(snap ScreenState) {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	})
	go func() {
		select {
		case <-ctx.Done():
		case <-s.done:
		}
		unsubscribe()
		// wait out a delivery that captured the observer before removal
		s.deliverMu.Lock()
		close(ch)
		s.deliverMu.Unlock()
	}()
	return ch
}

// Close drops every observer. Later updates still change the snapshot but
// notify nobody.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.observers = nil
	close(s.done)
}

// Observers returns the number of registered observers.
func (s *Store) Observers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

func (s *Store) activeObservers() []observer {
	if len(s.observers) == 0 {
		return nil
	}
	dup := make([]observer, len(s.observers))
	copy(dup, s.observers)
	return dup
}

func (s *Store) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.observers {
		if o.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

package events

import (
	"context"
	"sync"
	"sync/atomic"
)

// listenBuffer is the number of undelivered events a Listen channel holds
// before further events are dropped for that listener.
const listenBuffer = 16

// Bus is an at-most-once broadcast of UserEvents with no replay.
type Bus struct {
	mu        sync.Mutex
	deliverMu sync.Mutex
	listeners []listener
	nextID    uint64
	closed    bool
	done      chan struct{}
	dropped   atomic.Uint64
}

type listener struct {
	id uint64
	fn func(UserEvent)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{done: make(chan struct{})}
}

// Publish delivers ev to every active subscriber in subscription order.
// With no subscribers the event is dropped. Subscribers may unsubscribe or
// query the bus from their callback but must not Publish synchronously.
func (b *Bus) Publish(ev UserEvent) {
	if ev == nil {
		return
	}
	b.deliverMu.Lock()
	defer b.deliverMu.Unlock()

	b.mu.Lock()
	if len(b.listeners) == 0 {
		b.mu.Unlock()
		b.dropped.Add(1)
		return
	}
	targets := make([]listener, len(b.listeners))
	copy(targets, b.listeners)
	b.mu.Unlock()

	for _, l := range targets {
		l.fn(ev)
	}
}

// Subscribe registers fn for events published from now on.
func (b *Bus) Subscribe(fn func(UserEvent)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

// Listen returns a channel receiving events published after the call. The
// channel closes when ctx is done or the bus is closed. A listener that falls
// listenBuffer events behind loses the excess.
func (b *Bus) Listen(ctx context.Context) <-chan UserEvent {
	ch := make(chan UserEvent, listenBuffer)
	unsubscribe := b.Subscribe(func(ev UserEvent) {
		select {
		case ch <- ev:
		default:
			b.dropped.Add(1)
		}
	})
	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
		}
		unsubscribe()
		b.deliverMu.Lock()
		close(ch)
		b.deliverMu.Unlock()
	}()
	return ch
}

// Dropped returns how many deliveries were discarded, either because nobody
// was listening or because a listener's buffer was full.
func (b *Bus) Dropped() uint64 {
	return b.dropped.Load()
}

// Subscribers returns the number of active subscribers.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Close removes all subscribers and closes every Listen channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.listeners = nil
	close(b.done)
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, l := range b.listeners {
		if l.id == id {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

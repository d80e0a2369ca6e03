// Package livequery keeps display surfaces current without polling. Writers
// notify the bus with the collections they touched; a subscription registers
// interest in a set of collections and is signaled after any such write.
package livequery

import "sync"

// Collection identifies one of the persisted collections.
type Collection string

const (
	CollectionProducts  Collection = "products"
	CollectionSales     Collection = "sales"
	CollectionCustomers Collection = "customers"
	CollectionSettings  Collection = "settings"
)

// Bus fans mutation signals out to subscribers.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*Subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]*Subscription)}
}

// Subscription receives a signal on C after every write that touches one of
// its collections. Signals are coalesced: a slow consumer sees at least one
// signal for any burst of writes, not necessarily one per write.
type Subscription struct {
	C <-chan struct{}

	bus  *Bus
	id   int
	cols map[Collection]struct{}
	ch   chan struct{}
}

// Subscribe registers interest in the given collections.
func (b *Bus) Subscribe(cols ...Collection) *Subscription {
	set := make(map[Collection]struct{}, len(cols))
	for _, c := range cols {
		set[c] = struct{}{}
	}

	ch := make(chan struct{}, 1)
	sub := &Subscription{C: ch, bus: b, cols: set, ch: ch}

	b.mu.Lock()
	sub.id = b.nextID
	b.nextID++
	b.subs[sub.id] = sub
	b.mu.Unlock()

	return sub
}

// Close unsubscribes. Safe to call more than once.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	delete(s.bus.subs, s.id)
	s.bus.mu.Unlock()
}

// Notify signals every subscription interested in any of the given
// collections. It never blocks the writer.
func (b *Bus) Notify(cols ...Collection) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sub := range b.subs {
		if !sub.matches(cols) {
			continue
		}
		select {
		case sub.ch <- struct{}{}:
		default: // a signal is already pending
		}
	}
}

func (s *Subscription) matches(cols []Collection) bool {
	for _, c := range cols {
		if _, ok := s.cols[c]; ok {
			return true
		}
	}
	return false
}

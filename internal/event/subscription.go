package event

import (
	"sync"
	"sync/atomic"
)

// Subscription is the handle returned by Channel.Subscribe.
type Subscription struct {
	id      string
	channel string
	active  atomic.Bool
	detach  func(id string)
}

func newSubscription(id, channel string, detach func(id string)) *Subscription {
	s := &Subscription{id: id, channel: channel, detach: detach}
	s.active.Store(true)

	return s
}

// ID returns the unique subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// Channel returns the name of the subscribed channel.
func (s *Subscription) Channel() string {
	return s.channel
}

// IsActive reports whether the subscription still receives emissions.
func (s *Subscription) IsActive() bool {
	return s.active.Load()
}

// Unsubscribe stops delivery to this subscription. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	if s.active.CompareAndSwap(true, false) {
		s.detach(s.id)
	}
}

// Group collects the subscriptions of one observer.
type Group struct {
	mu   sync.Mutex
	subs []*Subscription
}

// Add registers handles to be released by Close.
func (g *Group) Add(subs ...*Subscription) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.subs = append(g.subs, subs...)
}

// Len returns the number of held handles.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.subs)
}

// Close unsubscribes every held handle and empties the group. It is idempotent.
func (g *Group) Close() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}

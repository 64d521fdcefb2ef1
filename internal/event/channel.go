package event

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Handler receives one payload of a channel.
type Handler[T any] func(ctx context.Context, payload T)

type entry[T any] struct {
	sub     *Subscription
	handler Handler[T]
}

// Channel is a named notification stream carrying payloads of type T.
// It is safe for concurrent use.
type Channel[T any] struct {
	name   string
	logger *slog.Logger

	mu      sync.RWMutex
	entries []entry[T]
}

// NewChannel creates an empty channel.
func NewChannel[T any](name string, logger *slog.Logger) *Channel[T] {
	return &Channel[T]{name: name, logger: logger}
}

// Name returns the channel name.
func (c *Channel[T]) Name() string {
	return c.name
}

// Subscribe registers handler and returns its handle.
func (c *Channel[T]) Subscribe(handler Handler[T]) (*Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}

	sub := newSubscription(uuid.NewString(), c.name, c.remove)

	c.mu.Lock()
	c.entries = append(c.entries, entry[T]{sub: sub, handler: handler})
	c.mu.Unlock()

	return sub, nil
}

// SubscriberCount returns the number of active subscriptions.
func (c *Channel[T]) SubscriberCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Emit delivers payload to every active subscription and returns how many handlers ran
// to completion.
func (c *Channel[T]) Emit(ctx context.Context, payload T) int {
	c.mu.RLock()
	snapshot := make([]entry[T], len(c.entries))
	copy(snapshot, c.entries)
	c.mu.RUnlock()

	delivered := 0
	for _, e := range snapshot {
		// Skip handles released after the snapshot was taken.
		if !e.sub.IsActive() {
			continue
		}
		if err := c.deliver(ctx, e, payload); err != nil {
			c.logger.Error("Event handler panicked",
				slog.String("channel", c.name),
				slog.String("subscription_id", e.sub.ID()),
				slog.Any("error", err),
			)

			continue
		}
		delivered++
	}

	return delivered
}

func (c *Channel[T]) deliver(ctx context.Context, e entry[T], payload T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{
				SubscriptionID: e.sub.ID(),
				Channel:        c.name,
				Value:          fmt.Sprint(r),
			}
		}
	}()

	e.handler(ctx, payload)

	return nil
}

func (c *Channel[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, e := range c.entries {
		if e.sub.ID() == id {
			c.entries = append(c.entries[:i:i], c.entries[i+1:]...)

			return
		}
	}
}

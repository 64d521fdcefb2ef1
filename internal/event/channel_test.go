package event

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabinet/internal/domain/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChannel_SubscribeNilHandler(t *testing.T) {
	ch := NewChannel[string]("test", testLogger())

	sub, err := ch.Subscribe(nil)

	assert.Nil(t, sub)
	assert.ErrorIs(t, err, ErrNilHandler)
	assert.Equal(t, 0, ch.SubscriberCount())
}

func TestChannel_EmitReachesEverySubscriber(t *testing.T) {
	ch := NewChannel[string]("test", testLogger())

	var first, second []string
	_, err := ch.Subscribe(func(_ context.Context, v string) { first = append(first, v) })
	require.NoError(t, err)
	_, err = ch.Subscribe(func(_ context.Context, v string) { second = append(second, v) })
	require.NoError(t, err)

	delivered := ch.Emit(context.Background(), "alice")

	assert.Equal(t, 2, delivered)
	assert.Equal(t, []string{"alice"}, first)
	assert.Equal(t, []string{"alice"}, second)
}

func TestChannel_EmitWithoutSubscribers(t *testing.T) {
	ch := NewChannel[int]("test", testLogger())

	assert.Equal(t, 0, ch.Emit(context.Background(), 1))
}

func TestSubscription_UnsubscribeStopsDelivery(t *testing.T) {
	ch := NewChannel[string]("names", testLogger())

	calls := 0
	sub, err := ch.Subscribe(func(context.Context, string) { calls++ })
	require.NoError(t, err)

	assert.True(t, sub.IsActive())
	assert.Equal(t, "names", sub.Channel())
	assert.NotEmpty(t, sub.ID())

	sub.Unsubscribe()
	ch.Emit(context.Background(), "bob")

	assert.False(t, sub.IsActive())
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, ch.SubscriberCount())
}

func TestSubscription_UnsubscribeIsIdempotent(t *testing.T) {
	ch := NewChannel[string]("test", testLogger())

	sub, err := ch.Subscribe(func(context.Context, string) {})
	require.NoError(t, err)
	other, err := ch.Subscribe(func(context.Context, string) {})
	require.NoError(t, err)

	sub.Unsubscribe()
	sub.Unsubscribe()

	assert.Equal(t, 1, ch.SubscriberCount())
	assert.True(t, other.IsActive())

	var nilSub *Subscription
	assert.NotPanics(t, nilSub.Unsubscribe)
}

func TestChannel_UnsubscribeDuringEmit(t *testing.T) {
	ch := NewChannel[string]("test", testLogger())

	var second *Subscription
	secondCalls := 0
	_, err := ch.Subscribe(func(context.Context, string) { second.Unsubscribe() })
	require.NoError(t, err)
	second, err = ch.Subscribe(func(context.Context, string) { secondCalls++ })
	require.NoError(t, err)

	delivered := ch.Emit(context.Background(), "x")

	assert.Equal(t, 1, delivered)
	assert.Equal(t, 0, secondCalls)
}

func TestChannel_PanickingHandlerIsIsolated(t *testing.T) {
	ch := NewChannel[string]("test", testLogger())

	_, err := ch.Subscribe(func(context.Context, string) { panic("boom") })
	require.NoError(t, err)

	got := ""
	_, err = ch.Subscribe(func(_ context.Context, v string) { got = v })
	require.NoError(t, err)

	var delivered int
	require.NotPanics(t, func() {
		delivered = ch.Emit(context.Background(), "carol")
	})

	assert.Equal(t, 1, delivered)
	assert.Equal(t, "carol", got)
}

func TestChannel_ConcurrentSubscribeAndEmit(t *testing.T) {
	ch := NewChannel[int]("test", testLogger())

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub, err := ch.Subscribe(func(_ context.Context, v int) {
				mu.Lock()
				total += v
				mu.Unlock()
			})
			if err == nil {
				sub.Unsubscribe()
			}
		}()
		go func() {
			defer wg.Done()
			ch.Emit(context.Background(), 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, ch.SubscriberCount())
}

func TestGroup_CloseReleasesAll(t *testing.T) {
	bus := NewBus(testLogger())

	var group Group
	profiles := 0
	outcomes := 0

	sub1, err := bus.ProfileReceived.Subscribe(func(context.Context, entity.AccountProfile) { profiles++ })
	require.NoError(t, err)
	sub2, err := bus.UsernameOutcome.Subscribe(func(context.Context, entity.UsernameChangeOutcome) { outcomes++ })
	require.NoError(t, err)
	group.Add(sub1, sub2)
	assert.Equal(t, 2, group.Len())

	group.Close()
	group.Close()

	bus.ProfileReceived.Emit(context.Background(), entity.AccountProfile{Username: "dave"})
	bus.UsernameOutcome.Emit(context.Background(), entity.UsernameOutcomeSuccess)

	assert.Equal(t, 0, group.Len())
	assert.Equal(t, 0, profiles)
	assert.Equal(t, 0, outcomes)
}

func TestNewBus_ChannelNames(t *testing.T) {
	bus := NewBus(testLogger())

	assert.Equal(t, ChannelProfileReceived, bus.ProfileReceived.Name())
	assert.Equal(t, ChannelUsernameSubmitted, bus.UsernameSubmitted.Name())
	assert.Equal(t, ChannelUsernameOutcome, bus.UsernameOutcome.Name())
}

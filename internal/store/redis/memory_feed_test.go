package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/event"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
)

func cropEvent(crop string) event.ReadingEvent {
	return event.ReadingEvent{
		Op:      event.OpInsert,
		Reading: model.Reading{Crop: crop, UpdatedAt: time.Now().UTC()},
	}
}

func TestMemoryFeed_PublishReachesMatchingCrop(t *testing.T) {
	feed := NewMemoryFeed()
	sub, err := feed.Subscribe(context.Background(), "tomato")
	require.NoError(t, err)
	defer sub.Unsubscribe()

	feed.Publish(cropEvent("tomato"))

	select {
	case ev := <-sub.Events():
		assert.Equal(t, "tomato", ev.Reading.Crop)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestMemoryFeed_OtherCropFiltered(t *testing.T) {
	feed := NewMemoryFeed()
	sub, err := feed.Subscribe(context.Background(), "tomato")
	require.NoError(t, err)
	defer sub.Unsubscribe()

	feed.Publish(cropEvent("rice"))

	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event for crop %q", ev.Reading.Crop)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryFeed_UnsubscribeClosesChannelAndDrops(t *testing.T) {
	feed := NewMemoryFeed()
	sub, err := feed.Subscribe(context.Background(), "tomato")
	require.NoError(t, err)
	require.Equal(t, 1, feed.SubscriberCount())

	sub.Unsubscribe()
	assert.Equal(t, 0, feed.SubscriberCount())

	_, open := <-sub.Events()
	assert.False(t, open)

	// Idempotent.
	sub.Unsubscribe()
}

func TestMemoryFeed_PublishAfterUnsubscribeIsSafe(t *testing.T) {
	feed := NewMemoryFeed()
	sub, err := feed.Subscribe(context.Background(), "tomato")
	require.NoError(t, err)
	sub.Unsubscribe()

	feed.Publish(cropEvent("tomato"))
}

func TestMemoryFeed_SlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	feed := NewMemoryFeed()
	sub, err := feed.Subscribe(context.Background(), "tomato")
	require.NoError(t, err)
	defer sub.Unsubscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// More events than the subscription buffer holds.
		for i := 0; i < 64; i++ {
			feed.Publish(cropEvent("tomato"))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on a full subscription")
	}
}

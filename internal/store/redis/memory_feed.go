package redis

import (
	"context"
	"sync"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/event"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store"
)

// MemoryFeed is an in-process ReadingFeed used by tests and by
// single-binary deployments that publish their own ingest events.
type MemoryFeed struct {
	mu   sync.Mutex
	subs map[*memorySubscription]struct{}
}

func NewMemoryFeed() *MemoryFeed {
	return &MemoryFeed{subs: make(map[*memorySubscription]struct{})}
}

func (f *MemoryFeed) Subscribe(_ context.Context, crop string) (store.Subscription, error) {
	sub := &memorySubscription{
		feed:   f,
		crop:   crop,
		events: make(chan event.ReadingEvent, 16),
	}
	f.mu.Lock()
	f.subs[sub] = struct{}{}
	f.mu.Unlock()
	return sub, nil
}

// Publish fans ev out to every open subscription whose crop matches.
// Slow subscribers drop rather than block the publisher.
func (f *MemoryFeed) Publish(ev event.ReadingEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for sub := range f.subs {
		if sub.crop != ev.Reading.Crop {
			continue
		}
		select {
		case sub.events <- ev:
		default:
		}
	}
}

// SubscriberCount reports open subscriptions, for leak assertions in tests.
func (f *MemoryFeed) SubscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

type memorySubscription struct {
	feed   *MemoryFeed
	crop   string
	events chan event.ReadingEvent
	once   sync.Once
}

func (s *memorySubscription) Events() <-chan event.ReadingEvent {
	return s.events
}

func (s *memorySubscription) Unsubscribe() {
	s.once.Do(func() {
		s.feed.mu.Lock()
		delete(s.feed.subs, s)
		s.feed.mu.Unlock()
		close(s.events)
	})
}

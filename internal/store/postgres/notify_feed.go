package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/event"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/metrics"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store"
)

const (
	// NotifyChannel is the pg_notify channel the readings trigger fires
	// on. The payload is a JSON-encoded event.ReadingEvent.
	NotifyChannel = "smartsoil_reading_changes"

	listenerMinReconnect = 2 * time.Second
	listenerMaxReconnect = 30 * time.Second
)

// NotifyFeed delivers reading changes over Postgres LISTEN/NOTIFY.
// Each Subscribe opens its own listener connection so Unsubscribe can
// tear it down without affecting other subscriptions.
type NotifyFeed struct {
	url    string
	logger *slog.Logger
}

func NewNotifyFeed(url string, logger *slog.Logger) *NotifyFeed {
	return &NotifyFeed{
		url:    url,
		logger: logger.With("component", "notify_feed"),
	}
}

func (f *NotifyFeed) Subscribe(ctx context.Context, crop string) (store.Subscription, error) {
	listener := pq.NewListener(f.url, listenerMinReconnect, listenerMaxReconnect,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				f.logger.Warn("listener event", "event", int(ev), "error", err)
			}
		})

	if err := listener.Listen(NotifyChannel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("listen %s: %w", NotifyChannel, err)
	}

	sub := &notifySubscription{
		crop:     crop,
		listener: listener,
		events:   make(chan event.ReadingEvent, 16),
		closed:   make(chan struct{}),
		logger:   f.logger.With("crop", crop),
	}
	go sub.run(ctx)
	return sub, nil
}

type notifySubscription struct {
	crop     string
	listener *pq.Listener
	events   chan event.ReadingEvent
	closed   chan struct{}
	once     sync.Once
	logger   *slog.Logger
}

func (s *notifySubscription) run(ctx context.Context) {
	defer close(s.events)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.closed:
			return
		case n, ok := <-s.listener.Notify:
			if !ok {
				return
			}
			if n == nil {
				// lib/pq sends nil after a reconnect; a snapshot reload
				// is the caller's recovery path, not ours.
				continue
			}
			var ev event.ReadingEvent
			if err := json.Unmarshal([]byte(n.Extra), &ev); err != nil {
				s.logger.Warn("malformed notify payload", "error", err)
				metrics.FeedDecodeErrors.WithLabelValues("postgres").Inc()
				continue
			}
			if ev.Reading.Crop != s.crop {
				continue
			}
			select {
			case s.events <- ev:
				metrics.FeedEventsDelivered.WithLabelValues("postgres", s.crop).Inc()
			case <-s.closed:
				return
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *notifySubscription) Events() <-chan event.ReadingEvent {
	return s.events
}

func (s *notifySubscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.closed)
		if err := s.listener.Close(); err != nil {
			s.logger.Warn("close listener", "error", err)
		}
	})
}

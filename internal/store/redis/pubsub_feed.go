package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/event"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/metrics"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store"
)

const channelPrefix = "smartsoil:readings:"

// PubSubFeed delivers reading changes over Redis Pub/Sub, for
// deployments that fan sensor ingest out through Redis instead of
// notifying straight from Postgres.
type PubSubFeed struct {
	client *redis.Client
	logger *slog.Logger
}

func NewPubSubFeed(url string, logger *slog.Logger) (*PubSubFeed, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &PubSubFeed{
		client: client,
		logger: logger.With("component", "redis_feed"),
	}, nil
}

func (f *PubSubFeed) Close() error {
	return f.client.Close()
}

func (f *PubSubFeed) Subscribe(ctx context.Context, crop string) (store.Subscription, error) {
	ps := f.client.Subscribe(ctx, channelPrefix+crop)

	// Force the SUBSCRIBE round trip so open failures surface here, not
	// as a silently dead channel.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", channelPrefix+crop, err)
	}

	sub := &pubsubSubscription{
		crop:   crop,
		ps:     ps,
		events: make(chan event.ReadingEvent, 16),
		closed: make(chan struct{}),
		logger: f.logger.With("crop", crop),
	}
	go sub.run(ctx)
	return sub, nil
}

type pubsubSubscription struct {
	crop   string
	ps     *redis.PubSub
	events chan event.ReadingEvent
	closed chan struct{}
	once   sync.Once
	logger *slog.Logger
}

func (s *pubsubSubscription) run(ctx context.Context) {
	defer close(s.events)
	ch := s.ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.closed:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev event.ReadingEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				s.logger.Warn("malformed pubsub payload", "error", err)
				metrics.FeedDecodeErrors.WithLabelValues("redis").Inc()
				continue
			}
			if ev.Reading.Crop != s.crop {
				continue
			}
			select {
			case s.events <- ev:
				metrics.FeedEventsDelivered.WithLabelValues("redis", s.crop).Inc()
			case <-s.closed:
				return
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *pubsubSubscription) Events() <-chan event.ReadingEvent {
	return s.events
}

func (s *pubsubSubscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.closed)
		if err := s.ps.Close(); err != nil {
			s.logger.Warn("close pubsub", "error", err)
		}
	})
}

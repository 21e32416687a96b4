package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/metrics"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store"
)

// Guard reports the current selection generation, used to discard
// snapshot loads that resolve after the selection moved on.
type Guard interface {
	Generation() uint64
}

// Feed owns the current reading for the active crop. Two sources write
// it: a one-shot snapshot load issued on every crop switch, and a live
// push subscription scoped to that crop. Live events win by arrival
// order (they are insertion-ordered and at least as fresh as any
// earlier snapshot); a snapshot applies only when nothing newer has
// arrived first.
type Feed struct {
	readings store.ReadingRepository
	source   store.ReadingFeed
	guard    Guard
	logger   *slog.Logger

	mu      sync.Mutex
	crop    string
	current *model.Reading
	sub     store.Subscription
	// epoch increments on every teardown; the pump goroutine and the
	// snapshot completion both captured the epoch they were started
	// under, so nothing from a closed subscription is ever applied.
	epoch uint64
}

func NewFeed(readings store.ReadingRepository, source store.ReadingFeed, guard Guard, logger *slog.Logger) *Feed {
	return &Feed{
		readings: readings,
		source:   source,
		guard:    guard,
		logger:   logger.With("component", "telemetry"),
	}
}

// Switch tears down any open subscription, opens one for crop and then
// loads the latest-reading snapshot. gen is the selection generation
// the switch was issued under. Subscription and snapshot failures are
// soft: the feed stays up with whatever it has, and the caller may
// reissue by switching again.
func (f *Feed) Switch(ctx context.Context, crop string, gen uint64) error {
	f.mu.Lock()
	if f.guard != nil && f.guard.Generation() != gen {
		// The selection moved on before this switch ran; a teardown
		// here would kill the newer crop's subscription.
		f.mu.Unlock()
		metrics.StaleLoadsDiscarded.WithLabelValues("telemetry").Inc()
		return nil
	}
	f.teardownLocked()
	f.crop = crop
	f.current = nil
	epoch := f.epoch
	f.mu.Unlock()

	var firstErr error

	sub, err := f.source.Subscribe(ctx, crop)
	if err != nil {
		metrics.SubscriptionFailures.Inc()
		f.logger.Warn("subscription open failed", "crop", crop, "error", err)
		firstErr = fmt.Errorf("subscribe %s: %w", crop, err)
	} else {
		f.mu.Lock()
		if f.epoch != epoch {
			// Torn down while we were subscribing.
			f.mu.Unlock()
			sub.Unsubscribe()
		} else {
			f.sub = sub
			f.mu.Unlock()
			go f.pump(sub, crop, epoch)
		}
	}

	r, err := f.readings.Latest(ctx, crop)
	if err != nil {
		metrics.SnapshotLoads.WithLabelValues("error").Inc()
		f.logger.Warn("snapshot load failed", "crop", crop, "error", err)
		if firstErr == nil {
			firstErr = fmt.Errorf("latest reading for %s: %w", crop, err)
		}
		return firstErr
	}
	metrics.SnapshotLoads.WithLabelValues("success").Inc()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.epoch != epoch || (f.guard != nil && f.guard.Generation() != gen) {
		metrics.StaleLoadsDiscarded.WithLabelValues("telemetry").Inc()
		f.logger.Debug("discarding stale snapshot", "crop", crop)
		return firstErr
	}
	// A live event that arrived during the load is strictly fresher.
	if r != nil && (f.current == nil || r.UpdatedAt.After(f.current.UpdatedAt)) {
		f.current = r
	}
	return firstErr
}

// pump applies events from sub until the subscription closes or the
// feed moves to a new epoch.
func (f *Feed) pump(sub store.Subscription, crop string, epoch uint64) {
	for ev := range sub.Events() {
		if ev.Reading.Crop != crop {
			metrics.FeedEventsDiscarded.WithLabelValues("crop_mismatch").Inc()
			continue
		}
		r := ev.Reading
		f.mu.Lock()
		if f.epoch != epoch {
			f.mu.Unlock()
			metrics.FeedEventsDiscarded.WithLabelValues("closed").Inc()
			return
		}
		f.current = &r
		f.mu.Unlock()
		metrics.FeedEventsApplied.WithLabelValues(crop).Inc()
	}
}

// Current returns the latest accepted reading for the active crop.
func (f *Feed) Current() (*model.Reading, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return nil, false
	}
	r := *f.current
	return &r, true
}

// Crop returns the crop the feed is currently scoped to.
func (f *Feed) Crop() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.crop
}

// Close tears down the live subscription. Idempotent; safe to call
// even if no subscription ever opened.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teardownLocked()
}

func (f *Feed) teardownLocked() {
	f.epoch++
	if f.sub != nil {
		f.sub.Unsubscribe()
		f.sub = nil
	}
}

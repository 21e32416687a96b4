package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/event"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
)

// DeviceRepository provides access to the monitored device and its
// persisted crop preference.
type DeviceRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Device, error)
	// UpdatePreferredCrop persists the active crop choice. Callers treat
	// the write as best-effort: a failure is logged, never rolled back.
	UpdatePreferredCrop(ctx context.Context, id uuid.UUID, crop string) error
}

// ThresholdRuleRepository provides access to per-crop threshold rules.
type ThresholdRuleRepository interface {
	ListByCrop(ctx context.Context, crop string) ([]model.ThresholdRule, error)
	ListCrops(ctx context.Context) ([]string, error)
}

// AltCropRuleRepository provides access to the alternative-crop rule table.
type AltCropRuleRepository interface {
	ListAll(ctx context.Context) ([]model.AltCropRule, error)
}

// ReadingRepository provides access to sensor readings and their
// pre-aggregated historical buckets.
type ReadingRepository interface {
	// Latest returns the most recent reading for crop, or (nil, nil)
	// when no reading exists yet.
	Latest(ctx context.Context, crop string) (*model.Reading, error)
	// HistoryBuckets returns buckets with bucket_start >= since,
	// ascending by bucket_start.
	HistoryBuckets(ctx context.Context, crop string, since time.Time) ([]model.HistoricalBucket, error)
}

// Subscription is one open push channel scoped to a single crop.
type Subscription interface {
	// Events yields insert/update events until Unsubscribe or transport
	// failure closes the channel.
	Events() <-chan event.ReadingEvent
	// Unsubscribe tears the channel down. It is unconditional and
	// idempotent: safe to call on a subscription that never fully
	// opened, and safe to call more than once.
	Unsubscribe()
}

// ReadingFeed opens live subscriptions to reading changes.
type ReadingFeed interface {
	Subscribe(ctx context.Context, crop string) (Subscription, error)
}

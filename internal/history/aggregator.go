package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/metrics"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store"
)

// Guard reports the current selection generation.
type Guard interface {
	Generation() uint64
}

// Stats are the windowed summary statistics for one parameter. A nil
// field means "absent": Min/Max/Avg are absent when the window holds no
// non-nil sample for the parameter, and Last is the chronologically
// final bucket's value, nil included, not the last non-nil value.
type Stats struct {
	Min  *float64 `json:"min"`
	Max  *float64 `json:"max"`
	Avg  *float64 `json:"avg"`
	Last *float64 `json:"last"`
}

// Point is one chronological sample of all seven channels, for
// time-series rendering.
type Point struct {
	Timestamp   time.Time `json:"timestamp"`
	PH          *float64  `json:"ph"`
	MoisturePct *float64  `json:"moisturePct"`
	TempC       *float64  `json:"tempC"`
	ECMs        *float64  `json:"ecMs"`
	NMgkg       *float64  `json:"nMgkg"`
	PMgkg       *float64  `json:"pMgkg"`
	KMgkg       *float64  `json:"kMgkg"`
}

// Snapshot is a point-in-time copy of the aggregated window.
type Snapshot struct {
	Crop   string                    `json:"crop"`
	Window time.Duration             `json:"-"`
	Stats  map[model.Parameter]Stats `json:"stats"`
	Series []Point                   `json:"series"`
}

// Aggregator loads a bounded historical window for the active crop and
// reduces it to per-parameter statistics plus a chronological series.
type Aggregator struct {
	readings store.ReadingRepository
	guard    Guard
	logger   *slog.Logger
	nowFn    func() time.Time

	mu     sync.RWMutex
	crop   string
	window time.Duration
	stats  map[model.Parameter]Stats
	series []Point
}

func NewAggregator(readings store.ReadingRepository, guard Guard, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		readings: readings,
		guard:    guard,
		logger:   logger.With("component", "history"),
		nowFn:    time.Now,
		stats:    make(map[model.Parameter]Stats),
	}
}

// Reload fetches the buckets for crop within the trailing window and
// recomputes the statistics. gen is the selection generation the reload
// was issued under; a stale completion is discarded. Fetch failure
// keeps the previous aggregation.
func (a *Aggregator) Reload(ctx context.Context, crop string, window time.Duration, gen uint64) error {
	start := time.Now()
	since := a.nowFn().Add(-window)

	buckets, err := a.readings.HistoryBuckets(ctx, crop, since)
	if err != nil {
		metrics.HistoryReloads.WithLabelValues("error").Inc()
		a.logger.Warn("history reload failed, keeping previous window", "crop", crop, "error", err)
		return fmt.Errorf("reload history for %s: %w", crop, err)
	}

	stats, series := Aggregate(buckets)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.guard != nil && a.guard.Generation() != gen {
		metrics.StaleLoadsDiscarded.WithLabelValues("history").Inc()
		a.logger.Debug("discarding stale history load", "crop", crop)
		return nil
	}
	a.crop = crop
	a.window = window
	a.stats = stats
	a.series = series
	metrics.HistoryReloads.WithLabelValues("success").Inc()
	metrics.HistoryBucketsLoaded.Set(float64(len(buckets)))
	metrics.HistoryReloadLatency.Observe(time.Since(start).Seconds())
	a.logger.Info("history window loaded", "crop", crop, "buckets", len(buckets), "window", window.String())
	return nil
}

// Snapshot returns a copy of the current aggregation.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	stats := make(map[model.Parameter]Stats, len(a.stats))
	for k, v := range a.stats {
		stats[k] = v
	}
	series := make([]Point, len(a.series))
	copy(series, a.series)
	return Snapshot{Crop: a.crop, Window: a.window, Stats: stats, Series: series}
}

// Aggregate reduces an ascending bucket sequence to per-parameter
// statistics and a chronological projection. It is pure: callers own
// ordering, the reducer only folds.
func Aggregate(buckets []model.HistoricalBucket) (map[model.Parameter]Stats, []Point) {
	stats := make(map[model.Parameter]Stats, len(model.AllParameters()))
	series := make([]Point, 0, len(buckets))

	for _, b := range buckets {
		series = append(series, Point{
			Timestamp:   b.BucketStart,
			PH:          b.PH,
			MoisturePct: b.MoisturePct,
			TempC:       b.TempC,
			ECMs:        b.ECMs,
			NMgkg:       b.NMgkg,
			PMgkg:       b.PMgkg,
			KMgkg:       b.KMgkg,
		})
	}

	for _, p := range model.AllParameters() {
		var (
			min, max *float64
			sum      float64
			n        int
		)
		for i := range buckets {
			v := buckets[i].Value(p)
			if v == nil {
				continue
			}
			if min == nil || *v < *min {
				min = ptr(*v)
			}
			if max == nil || *v > *max {
				max = ptr(*v)
			}
			sum += *v
			n++
		}

		var s Stats
		s.Min = min
		s.Max = max
		if n > 0 {
			s.Avg = ptr(sum / float64(n))
		}
		if len(buckets) > 0 {
			// Last reflects the final bucket even when that bucket has
			// no value for the parameter.
			if v := buckets[len(buckets)-1].Value(p); v != nil {
				s.Last = ptr(*v)
			}
		}
		stats[p] = s
	}

	return stats, series
}

func ptr(v float64) *float64 {
	return &v
}

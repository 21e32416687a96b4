package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Core state-engine counters. Vec labels carry the crop where the
// cardinality is naturally bounded by the threshold table.

var (
	// Selection
	SelectionChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "selection",
		Name:      "changes_total",
		Help:      "Total active-crop changes",
	}, []string{"crop"})

	StaleLoadsDiscarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "selection",
		Name:      "stale_loads_discarded_total",
		Help:      "Loads that resolved after the selection moved on and were dropped",
	}, []string{"component"})

	PreferenceWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "selection",
		Name:      "preference_write_failures_total",
		Help:      "Best-effort crop preference writes that failed",
	})

	// Threshold catalog
	CatalogReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "catalog",
		Name:      "reloads_total",
		Help:      "Threshold catalog reload attempts",
	}, []string{"status"})

	CatalogRules = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "smartsoil",
		Subsystem: "catalog",
		Name:      "rules",
		Help:      "Rules in the currently loaded catalog",
	})

	// Telemetry feed
	SnapshotLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "telemetry",
		Name:      "snapshot_loads_total",
		Help:      "Latest-reading snapshot load attempts",
	}, []string{"status"})

	FeedEventsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "telemetry",
		Name:      "feed_events_delivered_total",
		Help:      "Push events delivered to an open subscription",
	}, []string{"transport", "crop"})

	FeedEventsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "telemetry",
		Name:      "feed_events_applied_total",
		Help:      "Push events accepted as the current reading",
	}, []string{"crop"})

	FeedEventsDiscarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "telemetry",
		Name:      "feed_events_discarded_total",
		Help:      "Push events dropped before application",
	}, []string{"reason"})

	FeedDecodeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "telemetry",
		Name:      "feed_decode_errors_total",
		Help:      "Push payloads that failed to decode",
	}, []string{"transport"})

	SubscriptionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "telemetry",
		Name:      "subscription_failures_total",
		Help:      "Push subscriptions that failed to open or dropped",
	})

	// History aggregation
	HistoryReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "history",
		Name:      "reloads_total",
		Help:      "History window reload attempts",
	}, []string{"status"})

	HistoryReloadLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "smartsoil",
		Subsystem: "history",
		Name:      "reload_duration_seconds",
		Help:      "History window fetch + aggregation duration",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})

	HistoryBucketsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "smartsoil",
		Subsystem: "history",
		Name:      "buckets_loaded",
		Help:      "Buckets in the currently aggregated window",
	})

	// Advisory
	AdvisoryComputations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "smartsoil",
		Subsystem: "advisory",
		Name:      "computations_total",
		Help:      "Advisory recomputations",
	})
)

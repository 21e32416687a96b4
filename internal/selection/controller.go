package selection

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/catalog"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/history"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/metrics"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/telemetry"
)

// Controller owns the active crop. Every crop change bumps the
// generation, and every dependent load carries the generation it was
// issued under; the loaders discard completions whose generation no
// longer matches, so in-flight work for a previously selected crop can
// never surface under the new one.
type Controller struct {
	devices  store.DeviceRepository
	catalog  *catalog.Catalog
	feed     *telemetry.Feed
	history  *history.Aggregator
	window   time.Duration
	deviceID uuid.UUID
	logger   *slog.Logger

	gen atomic.Uint64

	mu  sync.Mutex
	sel model.Selection

	// wg tracks in-flight reload work so shutdown and tests can join it.
	wg sync.WaitGroup
}

func NewController(
	devices store.DeviceRepository,
	cat *catalog.Catalog,
	feed *telemetry.Feed,
	hist *history.Aggregator,
	deviceID uuid.UUID,
	window time.Duration,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		devices:  devices,
		catalog:  cat,
		feed:     feed,
		history:  hist,
		window:   window,
		deviceID: deviceID,
		logger:   logger.With("component", "selection"),
		sel:      model.Selection{DeviceID: deviceID},
	}
}

// Generation returns the current selection generation. The catalog,
// telemetry feed and history aggregator consult it when their loads
// complete.
func (c *Controller) Generation() uint64 {
	return c.gen.Load()
}

// Selection returns a copy of the current selection.
func (c *Controller) Selection() model.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel
}

// Start resolves the persisted crop preference for the device and
// selects it, falling back to defaultCrop when the device is unknown
// or carries no preference.
func (c *Controller) Start(ctx context.Context, defaultCrop string) {
	crop := defaultCrop
	d, err := c.devices.Get(ctx, c.deviceID)
	if err != nil {
		c.logger.Warn("device lookup failed, using default crop", "device_id", c.deviceID, "error", err)
	} else if d != nil && d.PreferredCrop != "" {
		crop = d.PreferredCrop
	}
	c.SetCrop(ctx, crop)
}

// SetCrop changes the active crop. The in-memory selection updates
// synchronously and is authoritative; preference persistence and the
// dependent reloads run asynchronously. Selecting the already-active
// crop is a no-op.
func (c *Controller) SetCrop(ctx context.Context, crop string) {
	c.mu.Lock()
	if c.sel.ActiveCrop == crop {
		c.mu.Unlock()
		return
	}
	c.sel.ActiveCrop = crop
	gen := c.gen.Add(1)
	c.sel.Generation = gen
	c.mu.Unlock()

	metrics.SelectionChangesTotal.WithLabelValues(crop).Inc()
	c.logger.Info("active crop changed", "crop", crop)

	// The reloads outlive the caller (often an HTTP request); only the
	// values of ctx are carried, not its cancellation.
	ctx = context.WithoutCancel(ctx)
	c.wg.Add(2)

	// Best effort: a failed write never rolls the selection back.
	go func() {
		defer c.wg.Done()
		if err := c.devices.UpdatePreferredCrop(ctx, c.deviceID, crop); err != nil {
			metrics.PreferenceWriteFailures.Inc()
			c.logger.Warn("crop preference write failed", "crop", crop, "error", err)
		}
	}()

	go func() {
		defer c.wg.Done()
		c.reload(ctx, crop, gen)
	}()
}

// reload drives the three dependent loaders for one crop change. Each
// loader rechecks the generation at completion time, so a slow fetch
// here cannot clobber the state of a later selection. Errors are soft
// and already logged by the loaders.
func (c *Controller) reload(ctx context.Context, crop string, gen uint64) {
	_ = c.catalog.Reload(ctx, crop, gen)
	_ = c.feed.Switch(ctx, crop, gen)
	_ = c.history.Reload(ctx, crop, c.window, gen)
}

// RefreshHistory reissues the history load for the current selection
// with the given window, e.g. when the UI changes the charted span.
// Crop and generation are captured under one lock: reading them
// separately could pair the previous crop with a generation minted by
// a concurrent crop change, and that pairing would pass the
// completion-time staleness check. Runs synchronously; a crop change
// landing mid-fetch makes the load stale and it is discarded.
func (c *Controller) RefreshHistory(ctx context.Context, window time.Duration) error {
	c.mu.Lock()
	crop := c.sel.ActiveCrop
	gen := c.sel.Generation
	c.mu.Unlock()
	if crop == "" {
		return nil
	}
	return c.history.Reload(ctx, crop, window, gen)
}

// Wait joins all in-flight reload work. Used by shutdown and tests.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close tears down the live subscription and joins in-flight work.
func (c *Controller) Close() {
	c.feed.Close()
	c.wg.Wait()
}

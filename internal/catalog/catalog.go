package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/metrics"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store"
)

// LoadState is the catalog's reload state machine. An Errored catalog
// still serves the last successfully loaded rule set.
type LoadState string

const (
	StateEmpty   LoadState = "empty"
	StateLoaded  LoadState = "loaded"
	StateErrored LoadState = "errored"
)

// Guard reports the current selection generation. A reload captures the
// generation it was issued under and applies only if it still matches,
// so a slow fetch for a previously selected crop can never overwrite
// the rules of the crop selected after it.
type Guard interface {
	Generation() uint64
}

// Catalog holds the threshold rules for the active crop with
// last-known-good semantics: a failed reload keeps the previous rules.
type Catalog struct {
	repo   store.ThresholdRuleRepository
	guard  Guard
	logger *slog.Logger

	mu      sync.RWMutex
	state   LoadState
	crop    string
	byParam map[model.Parameter]model.ThresholdRule
}

// Snapshot is a point-in-time copy of the catalog contents.
type Snapshot struct {
	State LoadState                               `json:"state"`
	Crop  string                                  `json:"crop"`
	Rules map[model.Parameter]model.ThresholdRule `json:"rules"`
}

func New(repo store.ThresholdRuleRepository, guard Guard, logger *slog.Logger) *Catalog {
	return &Catalog{
		repo:   repo,
		guard:  guard,
		logger: logger.With("component", "catalog"),
		state:  StateEmpty,
	}
}

// Reload fetches the rules for crop and swaps the catalog wholesale.
// gen is the selection generation the reload was issued under. Fetch
// failure keeps the previous rules in place and is reported only so the
// caller can log-and-continue; it never clears existing thresholds.
func (c *Catalog) Reload(ctx context.Context, crop string, gen uint64) error {
	rules, err := c.repo.ListByCrop(ctx, crop)
	if err != nil {
		c.mu.Lock()
		if c.guard != nil && c.guard.Generation() != gen {
			c.mu.Unlock()
			metrics.StaleLoadsDiscarded.WithLabelValues("catalog").Inc()
			c.logger.Debug("discarding stale threshold load failure", "crop", crop)
			return nil
		}
		if c.state != StateEmpty {
			c.state = StateErrored
		}
		c.mu.Unlock()
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		c.logger.Warn("threshold reload failed, keeping previous rules", "crop", crop, "error", err)
		return fmt.Errorf("reload thresholds for %s: %w", crop, err)
	}

	byParam := make(map[model.Parameter]model.ThresholdRule, len(rules))
	for _, r := range rules {
		if !r.Parameter.Valid() {
			c.logger.Warn("skipping rule for unknown parameter", "crop", crop, "parameter", r.Parameter)
			continue
		}
		byParam[r.Parameter] = r
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.guard != nil && c.guard.Generation() != gen {
		metrics.StaleLoadsDiscarded.WithLabelValues("catalog").Inc()
		c.logger.Debug("discarding stale threshold load", "crop", crop)
		return nil
	}
	c.state = StateLoaded
	c.crop = crop
	c.byParam = byParam
	metrics.CatalogReloads.WithLabelValues("success").Inc()
	metrics.CatalogRules.Set(float64(len(byParam)))
	c.logger.Info("threshold catalog loaded", "crop", crop, "rules", len(byParam))
	return nil
}

// Lookup returns the rule for p from the last good load.
func (c *Catalog) Lookup(p model.Parameter) (model.ThresholdRule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.byParam[p]
	return r, ok
}

// Snapshot returns a copy of the current catalog.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rules := make(map[model.Parameter]model.ThresholdRule, len(c.byParam))
	for k, v := range c.byParam {
		rules[k] = v
	}
	return Snapshot{State: c.state, Crop: c.crop, Rules: rules}
}

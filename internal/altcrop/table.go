package altcrop

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/store"
)

// Table is the alternative-crop rule lookup. It is reference data, not
// scoped by crop, and is loaded once per process lifetime; a failed
// load leaves it empty, which degrades the suggestion to its canned
// "doing well" form rather than failing any caller.
type Table struct {
	logger *slog.Logger

	mu    sync.RWMutex
	rules map[key]string
}

type key struct {
	param  model.Parameter
	bucket string
}

func NewTable(logger *slog.Logger) *Table {
	return &Table{
		logger: logger.With("component", "altcrop"),
		rules:  make(map[key]string),
	}
}

// LoadFromStore fills the table from the alt_crop_rules table.
func (t *Table) LoadFromStore(ctx context.Context, repo store.AltCropRuleRepository) error {
	rules, err := repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load alt crop rules: %w", err)
	}
	t.apply(rules)
	return nil
}

// LoadFromFile fills the table from a YAML file of AltCropRule entries.
func (t *Table) LoadFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read alt crop rules file: %w", err)
	}
	var rules []model.AltCropRule
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return fmt.Errorf("parse alt crop rules file: %w", err)
	}
	t.apply(rules)
	return nil
}

func (t *Table) apply(rules []model.AltCropRule) {
	byKey := make(map[key]string, len(rules))
	for _, r := range rules {
		byKey[key{param: r.SoilParameter, bucket: r.ReadingRangeBucket}] = r.RecommendedCrop
	}
	t.mu.Lock()
	t.rules = byKey
	t.mu.Unlock()
	t.logger.Info("alt crop rules loaded", "rules", len(byKey))
}

// Lookup returns the recommended crop for the (parameter, bucket) pair.
// Buckets are opaque labels matched by equality.
func (t *Table) Lookup(p model.Parameter, bucket string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	crop, ok := t.rules[key{param: p, bucket: bucket}]
	return crop, ok
}

// Len reports the number of loaded rules.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rules)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
)

type ThresholdRuleRepo struct {
	db *DB
}

func NewThresholdRuleRepo(db *DB) *ThresholdRuleRepo {
	return &ThresholdRuleRepo{db: db}
}

func (r *ThresholdRuleRepo) ListByCrop(ctx context.Context, crop string) ([]model.ThresholdRule, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultQueryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, crop, parameter, val_min, val_max, unit, COALESCE(description, ''), updated_at
		FROM threshold_rules
		WHERE crop = $1
		ORDER BY parameter
	`, crop)
	if err != nil {
		return nil, fmt.Errorf("list threshold rules: %w", err)
	}
	defer rows.Close()

	var rules []model.ThresholdRule
	for rows.Next() {
		var t model.ThresholdRule
		if err := rows.Scan(&t.ID, &t.Crop, &t.Parameter, &t.ValMin, &t.ValMax, &t.Unit, &t.Description, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan threshold rule: %w", err)
		}
		rules = append(rules, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate threshold rules: %w", err)
	}
	return rules, nil
}

func (r *ThresholdRuleRepo) ListCrops(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultQueryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT crop FROM threshold_rules ORDER BY crop
	`)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	defer rows.Close()

	var crops []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan crop: %w", err)
		}
		crops = append(crops, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate crops: %w", err)
	}
	return crops, nil
}

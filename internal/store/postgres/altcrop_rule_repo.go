package postgres

import (
	"context"
	"fmt"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
)

type AltCropRuleRepo struct {
	db *DB
}

func NewAltCropRuleRepo(db *DB) *AltCropRuleRepo {
	return &AltCropRuleRepo{db: db}
}

func (r *AltCropRuleRepo) ListAll(ctx context.Context) ([]model.AltCropRule, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultQueryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, soil_parameter, reading_range_bucket, recommended_crop
		FROM alt_crop_rules
		ORDER BY soil_parameter, reading_range_bucket
	`)
	if err != nil {
		return nil, fmt.Errorf("list alt crop rules: %w", err)
	}
	defer rows.Close()

	var rules []model.AltCropRule
	for rows.Next() {
		var a model.AltCropRule
		if err := rows.Scan(&a.ID, &a.SoilParameter, &a.ReadingRangeBucket, &a.RecommendedCrop); err != nil {
			return nil, fmt.Errorf("scan alt crop rule: %w", err)
		}
		rules = append(rules, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alt crop rules: %w", err)
	}
	return rules, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
)

type ReadingRepo struct {
	db *DB
}

func NewReadingRepo(db *DB) *ReadingRepo {
	return &ReadingRepo{db: db}
}

func (r *ReadingRepo) Latest(ctx context.Context, crop string) (*model.Reading, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultQueryTimeout)
	defer cancel()

	var rd model.Reading
	err := r.db.QueryRowContext(ctx, `
		SELECT id, device_id, crop, updated_at, ph, moisture_pct, temp_c, ec_ms, n_mgkg, p_mgkg, k_mgkg
		FROM readings
		WHERE crop = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, crop).Scan(
		&rd.ID, &rd.DeviceID, &rd.Crop, &rd.UpdatedAt,
		&rd.PH, &rd.MoisturePct, &rd.TempC, &rd.ECMs,
		&rd.NMgkg, &rd.PMgkg, &rd.KMgkg,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest reading: %w", err)
	}
	return &rd, nil
}

// HistoryBuckets returns the pre-aggregated half-hour buckets for crop
// starting at since, ascending. The store owns the bucketing; this query
// only slices the window.
func (r *ReadingRepo) HistoryBuckets(ctx context.Context, crop string, since time.Time) ([]model.HistoricalBucket, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultQueryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT bucket_start, crop, ph, moisture_pct, temp_c, ec_ms, n_mgkg, p_mgkg, k_mgkg
		FROM reading_buckets
		WHERE crop = $1 AND bucket_start >= $2
		ORDER BY bucket_start ASC
	`, crop, since)
	if err != nil {
		return nil, fmt.Errorf("history buckets: %w", err)
	}
	defer rows.Close()

	var buckets []model.HistoricalBucket
	for rows.Next() {
		var b model.HistoricalBucket
		if err := rows.Scan(
			&b.BucketStart, &b.Crop,
			&b.PH, &b.MoisturePct, &b.TempC, &b.ECMs,
			&b.NMgkg, &b.PMgkg, &b.KMgkg,
		); err != nil {
			return nil, fmt.Errorf("scan history bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history buckets: %w", err)
	}
	return buckets, nil
}

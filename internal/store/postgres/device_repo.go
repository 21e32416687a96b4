package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
)

type DeviceRepo struct {
	db *DB
}

func NewDeviceRepo(db *DB) *DeviceRepo {
	return &DeviceRepo{db: db}
}

func (r *DeviceRepo) Get(ctx context.Context, id uuid.UUID) (*model.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultQueryTimeout)
	defer cancel()

	var d model.Device
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, preferred_crop
		FROM devices
		WHERE id = $1
	`, id).Scan(&d.ID, &d.Name, &d.PreferredCrop)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get device: %w", err)
	}
	return &d, nil
}

func (r *DeviceRepo) UpdatePreferredCrop(ctx context.Context, id uuid.UUID, crop string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultQueryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		UPDATE devices
		SET preferred_crop = $2, updated_at = now()
		WHERE id = $1
	`, id, crop)
	if err != nil {
		return fmt.Errorf("update preferred crop: %w", err)
	}
	return nil
}

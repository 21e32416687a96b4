package model

import (
	"time"

	"github.com/google/uuid"
)

// ThresholdRule is the acceptable range for one parameter under one crop.
// At most one rule is active per (crop, parameter); the catalog replaces
// its rule set wholesale on reload rather than patching incrementally.
type ThresholdRule struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Crop        string    `db:"crop" json:"crop"`
	Parameter   Parameter `db:"parameter" json:"parameter"`
	ValMin      float64   `db:"val_min" json:"valMin"`
	ValMax      float64   `db:"val_max" json:"valMax"`
	Unit        string    `db:"unit" json:"unit"`
	Description string    `db:"description" json:"description"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

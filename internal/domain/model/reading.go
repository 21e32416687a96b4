package model

import (
	"time"

	"github.com/google/uuid"
)

// Reading is one point-in-time sensor sample for a crop. Channels the
// sensor did not report are nil. A Reading is immutable once received;
// a newer Reading for the same crop supersedes it.
type Reading struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DeviceID    uuid.UUID `db:"device_id" json:"deviceId"`
	Crop        string    `db:"crop" json:"crop"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
	PH          *float64  `db:"ph" json:"ph"`
	MoisturePct *float64  `db:"moisture_pct" json:"moisturePct"`
	TempC       *float64  `db:"temp_c" json:"tempC"`
	ECMs        *float64  `db:"ec_ms" json:"ecMs"`
	NMgkg       *float64  `db:"n_mgkg" json:"nMgkg"`
	PMgkg       *float64  `db:"p_mgkg" json:"pMgkg"`
	KMgkg       *float64  `db:"k_mgkg" json:"kMgkg"`
}

// Value returns the channel for p, or nil if the sensor omitted it.
func (r *Reading) Value(p Parameter) *float64 {
	switch p {
	case ParameterMoisture:
		return r.MoisturePct
	case ParameterTemperature:
		return r.TempC
	case ParameterEC:
		return r.ECMs
	case ParameterPH:
		return r.PH
	case ParameterNitrogen:
		return r.NMgkg
	case ParameterPhosphorus:
		return r.PMgkg
	case ParameterPotassium:
		return r.KMgkg
	}
	return nil
}

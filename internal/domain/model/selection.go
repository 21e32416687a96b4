package model

import "github.com/google/uuid"

// Selection is the process-wide active crop. It is owned exclusively by
// the selection controller; Generation increments on every crop change
// and every dependent load captures the generation it was issued under,
// so a completion can detect that the selection moved on underneath it.
type Selection struct {
	ActiveCrop string    `json:"activeCrop"`
	DeviceID   uuid.UUID `json:"deviceId"`
	Generation uint64    `json:"-"`
}

// Device is the monitored sensor device and its persisted crop preference.
type Device struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	PreferredCrop string    `db:"preferred_crop" json:"preferredCrop"`
}

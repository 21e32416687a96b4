package event

import "github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"

// Op is the kind of change a reading event carries.
type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
)

// ReadingEvent is one push-delivered change to the readings table.
// Events are insertion-ordered per crop: an accepted event is always
// at least as fresh as any snapshot taken before it arrived.
type ReadingEvent struct {
	Op      Op            `json:"op"`
	Reading model.Reading `json:"reading"`
}

package model

import "github.com/google/uuid"

// AltCropRule maps one out-of-range soil condition to a recommended
// substitute crop. The table is not scoped by crop and is loaded once
// per process; ReadingRangeBucket is an opaque label matched by equality
// (e.g. "<40% (dry)").
type AltCropRule struct {
	ID                 uuid.UUID `db:"id" json:"id" yaml:"-"`
	SoilParameter      Parameter `db:"soil_parameter" json:"soilParameter" yaml:"soilParameter"`
	ReadingRangeBucket string    `db:"reading_range_bucket" json:"readingRangeBucket" yaml:"readingRangeBucket"`
	RecommendedCrop    string    `db:"recommended_crop" json:"recommendedCrop" yaml:"recommendedCrop"`
}

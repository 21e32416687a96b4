package model

import "time"

// HistoricalBucket is one pre-aggregated time bucket supplied by the
// store. The aggregator consumes sequences of buckets ascending by
// BucketStart and never re-buckets raw samples.
type HistoricalBucket struct {
	BucketStart time.Time `db:"bucket_start" json:"bucketStart"`
	Crop        string    `db:"crop" json:"crop"`
	PH          *float64  `db:"ph" json:"ph"`
	MoisturePct *float64  `db:"moisture_pct" json:"moisturePct"`
	TempC       *float64  `db:"temp_c" json:"tempC"`
	ECMs        *float64  `db:"ec_ms" json:"ecMs"`
	NMgkg       *float64  `db:"n_mgkg" json:"nMgkg"`
	PMgkg       *float64  `db:"p_mgkg" json:"pMgkg"`
	KMgkg       *float64  `db:"k_mgkg" json:"kMgkg"`
}

// Value returns the bucket's aggregate for p, or nil if no sample in
// the bucket carried that channel.
func (b *HistoricalBucket) Value(p Parameter) *float64 {
	switch p {
	case ParameterMoisture:
		return b.MoisturePct
	case ParameterTemperature:
		return b.TempC
	case ParameterEC:
		return b.ECMs
	case ParameterPH:
		return b.PH
	case ParameterNitrogen:
		return b.NMgkg
	case ParameterPhosphorus:
		return b.PMgkg
	case ParameterPotassium:
		return b.KMgkg
	}
	return nil
}

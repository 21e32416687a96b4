package advisory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/metrics"
)

// Level classifies a reading value against a threshold rule. Bounds are
// inclusive: a value equal to either bound is OK.
type Level string

const (
	LevelLow  Level = "LOW"
	LevelOK   Level = "OK"
	LevelHigh Level = "HIGH"
)

// RuleCatalog is the threshold lookup the engine consumes; satisfied by
// *catalog.Catalog.
type RuleCatalog interface {
	Lookup(p model.Parameter) (model.ThresholdRule, bool)
}

// RuleTable is the alternative-crop lookup; satisfied by *altcrop.Table.
type RuleTable interface {
	Lookup(p model.Parameter, bucket string) (string, bool)
}

// Fixed alternative-crop condition constants. These are deliberately
// independent of the threshold catalog: the crop-treatment advisory is
// driven by the per-crop rule table, while the alternative-crop
// suggestion reacts to three absolute soil conditions.
const (
	MoistureDryBelowPct = 40.0
	ECSalineAboveMs     = 2.0
	TempHotAboveC       = 30.0

	BucketMoistureDry = "<40% (dry)"
	BucketECSaline    = ">2.0 mS/cm (saline)"
	BucketTempHot     = ">30°C (hot)"
)

// Canned sentences for the two degenerate states. "Waiting" and "doing
// well" are distinct so the UI can tell no-data from all-in-range.
const (
	MsgWaitingForData  = "Waiting for sensor data."
	MsgCropDoingWell   = "All monitored soil parameters are within the acceptable range."
	MsgNoAltCropNeeded = "Soil conditions suit the current crop; no alternative crop needed."
)

// Classify places value against rule. Exactly one of LOW/OK/HIGH.
func Classify(value float64, rule model.ThresholdRule) Level {
	switch {
	case value < rule.ValMin:
		return LevelLow
	case value > rule.ValMax:
		return LevelHigh
	default:
		return LevelOK
	}
}

// CropAdvisory renders the crop-treatment advisory for reading against
// the threshold catalog. Parameters are evaluated in the canonical
// order; a parameter with no value or no rule contributes nothing. The
// function is pure: identical inputs yield identical output.
func CropAdvisory(reading *model.Reading, rules RuleCatalog) string {
	if reading == nil {
		return MsgWaitingForData
	}

	var lines []string
	for _, p := range model.AllParameters() {
		v := reading.Value(p)
		if v == nil {
			continue
		}
		rule, ok := rules.Lookup(p)
		if !ok {
			continue
		}
		level := Classify(*v, rule)
		if level == LevelOK {
			continue
		}
		line := fmt.Sprintf("%s is %s at %s (acceptable %s to %s).",
			p.Label(), level,
			formatValue(*v, rule.Unit),
			formatValue(rule.ValMin, rule.Unit),
			formatValue(rule.ValMax, rule.Unit),
		)
		if rule.Description != "" {
			line += " " + rule.Description
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return MsgCropDoingWell
	}
	return strings.Join(lines, "\n")
}

// AltCropSuggestion renders the alternative-crop sentence for reading.
// Three fixed conditions are checked independently against the same
// reading; every triggered condition contributes its mapped crop, and
// crops are deduplicated preserving first-trigger order. A parameter
// with no value or no rule in the catalog is skipped entirely, exactly
// as in CropAdvisory; only the numeric cutoffs differ from the
// catalog-driven advisory.
func AltCropSuggestion(reading *model.Reading, rules RuleCatalog, table RuleTable) string {
	if reading == nil {
		return MsgWaitingForData
	}

	type condition struct {
		param   model.Parameter
		bucket  string
		matches func(*model.Reading) bool
	}
	conditions := []condition{
		{
			param:  model.ParameterMoisture,
			bucket: BucketMoistureDry,
			matches: func(r *model.Reading) bool {
				return r.MoisturePct != nil && *r.MoisturePct < MoistureDryBelowPct
			},
		},
		{
			param:  model.ParameterEC,
			bucket: BucketECSaline,
			matches: func(r *model.Reading) bool {
				return r.ECMs != nil && *r.ECMs > ECSalineAboveMs
			},
		},
		{
			param:  model.ParameterTemperature,
			bucket: BucketTempHot,
			matches: func(r *model.Reading) bool {
				return r.TempC != nil && *r.TempC > TempHotAboveC
			},
		},
	}

	var crops []string
	seen := make(map[string]bool)
	for _, c := range conditions {
		if _, ok := rules.Lookup(c.param); !ok {
			continue
		}
		if !c.matches(reading) {
			continue
		}
		crop, ok := table.Lookup(c.param, c.bucket)
		if !ok || seen[crop] {
			continue
		}
		seen[crop] = true
		crops = append(crops, crop)
	}

	if len(crops) == 0 {
		return MsgNoAltCropNeeded
	}
	return fmt.Sprintf("Current soil conditions may suit better: %s.", strings.Join(crops, ", "))
}

// Compute returns both advisory strings for one reading.
func Compute(reading *model.Reading, rules RuleCatalog, table RuleTable) (cropAdvisory, altCrop string) {
	metrics.AdvisoryComputations.Inc()
	return CropAdvisory(reading, rules), AltCropSuggestion(reading, rules, table)
}

func formatValue(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

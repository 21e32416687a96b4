package advisory

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
)

type stubCatalog map[model.Parameter]model.ThresholdRule

func (s stubCatalog) Lookup(p model.Parameter) (model.ThresholdRule, bool) {
	r, ok := s[p]
	return r, ok
}

type stubTable map[model.Parameter]map[string]string

func (s stubTable) Lookup(p model.Parameter, bucket string) (string, bool) {
	crop, ok := s[p][bucket]
	return crop, ok
}

func fp(v float64) *float64 {
	return &v
}

func rule(p model.Parameter, min, max float64, unit, desc string) model.ThresholdRule {
	return model.ThresholdRule{Crop: "tomato", Parameter: p, ValMin: min, ValMax: max, Unit: unit, Description: desc}
}

func TestClassify_InclusiveBounds(t *testing.T) {
	r := rule(model.ParameterMoisture, 40, 70, "%", "")

	tests := []struct {
		name  string
		value float64
		want  Level
	}{
		{"below min", 39.999, LevelLow},
		{"at min", 40, LevelOK},
		{"mid range", 55, LevelOK},
		{"at max", 70, LevelOK},
		{"above max", 70.001, LevelHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.value, r))
		})
	}
}

func TestCropAdvisory_NoReading(t *testing.T) {
	got := CropAdvisory(nil, stubCatalog{})
	assert.Equal(t, MsgWaitingForData, got)
}

func TestCropAdvisory_AllInRange(t *testing.T) {
	cat := stubCatalog{
		model.ParameterMoisture: rule(model.ParameterMoisture, 40, 70, "%", ""),
		model.ParameterPH:       rule(model.ParameterPH, 5.5, 7, "", ""),
	}
	r := &model.Reading{Crop: "tomato", MoisturePct: fp(50), PH: fp(6.5)}

	assert.Equal(t, MsgCropDoingWell, CropAdvisory(r, cat))
}

func TestCropAdvisory_LowMoisture(t *testing.T) {
	cat := stubCatalog{
		model.ParameterMoisture: rule(model.ParameterMoisture, 40, 70, "%", "Increase irrigation."),
	}
	r := &model.Reading{Crop: "tomato", MoisturePct: fp(35)}

	got := CropAdvisory(r, cat)
	assert.Equal(t, "Soil Moisture is LOW at 35 % (acceptable 40 % to 70 %). Increase irrigation.", got)
}

func TestCropAdvisory_SkipsNullAndUnruled(t *testing.T) {
	cat := stubCatalog{
		model.ParameterMoisture: rule(model.ParameterMoisture, 40, 70, "%", ""),
	}
	// Temperature is present in the reading but has no rule; nitrogen
	// has a rule shape but no value. Neither may produce a line.
	r := &model.Reading{Crop: "tomato", MoisturePct: fp(35), TempC: fp(90)}

	got := CropAdvisory(r, cat)
	assert.NotContains(t, got, "Temperature")
	assert.Contains(t, got, "Soil Moisture")
}

func TestCropAdvisory_FixedOrderMultipleLines(t *testing.T) {
	cat := stubCatalog{
		model.ParameterMoisture:  rule(model.ParameterMoisture, 40, 70, "%", ""),
		model.ParameterPH:        rule(model.ParameterPH, 5.5, 7, "", ""),
		model.ParameterPotassium: rule(model.ParameterPotassium, 100, 200, "mg/kg", ""),
	}
	r := &model.Reading{
		Crop:        "tomato",
		MoisturePct: fp(20),
		PH:          fp(8),
		KMgkg:       fp(300),
	}

	got := CropAdvisory(r, cat)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Soil Moisture is LOW")
	assert.Contains(t, lines[1], "pH is HIGH")
	assert.Contains(t, lines[2], "Potassium is HIGH")
}

func TestCropAdvisory_Idempotent(t *testing.T) {
	cat := stubCatalog{
		model.ParameterMoisture: rule(model.ParameterMoisture, 40, 70, "%", "Increase irrigation."),
		model.ParameterEC:       rule(model.ParameterEC, 0.5, 2, "mS/cm", "Leach salts."),
	}
	r := &model.Reading{Crop: "tomato", UpdatedAt: time.Now(), MoisturePct: fp(12.5), ECMs: fp(3.25)}

	first := CropAdvisory(r, cat)
	second := CropAdvisory(r, cat)
	assert.Equal(t, first, second)
}

func TestAltCropSuggestion_NoReading(t *testing.T) {
	got := AltCropSuggestion(nil, stubCatalog{}, stubTable{})
	assert.Equal(t, MsgWaitingForData, got)
}

func TestAltCropSuggestion_NothingTriggered(t *testing.T) {
	cat := stubCatalog{
		model.ParameterMoisture: rule(model.ParameterMoisture, 40, 70, "%", ""),
	}
	r := &model.Reading{Crop: "tomato", MoisturePct: fp(55)}

	got := AltCropSuggestion(r, cat, stubTable{})
	assert.Equal(t, MsgNoAltCropNeeded, got)
}

func TestAltCropSuggestion_DryMoisture(t *testing.T) {
	cat := stubCatalog{
		model.ParameterMoisture: rule(model.ParameterMoisture, 40, 70, "%", ""),
	}
	table := stubTable{
		model.ParameterMoisture: {BucketMoistureDry: "cassava"},
	}
	r := &model.Reading{Crop: "tomato", MoisturePct: fp(35)}

	got := AltCropSuggestion(r, cat, table)
	assert.Contains(t, got, "cassava")
}

func TestAltCropSuggestion_DeduplicatesPreservingOrder(t *testing.T) {
	cat := stubCatalog{
		model.ParameterMoisture:    rule(model.ParameterMoisture, 40, 70, "%", ""),
		model.ParameterEC:          rule(model.ParameterEC, 0.5, 2, "mS/cm", ""),
		model.ParameterTemperature: rule(model.ParameterTemperature, 18, 30, "°C", ""),
	}
	table := stubTable{
		model.ParameterMoisture:    {BucketMoistureDry: "sorghum"},
		model.ParameterEC:          {BucketECSaline: "barley"},
		model.ParameterTemperature: {BucketTempHot: "sorghum"},
	}
	r := &model.Reading{Crop: "tomato", MoisturePct: fp(10), ECMs: fp(3), TempC: fp(35)}

	got := AltCropSuggestion(r, cat, table)
	assert.Equal(t, "Current soil conditions may suit better: sorghum, barley.", got)
}

func TestAltCropSuggestion_UnruledParameterNeverContributes(t *testing.T) {
	// Moisture is dry, but the catalog has no moisture rule for this
	// crop, so the condition is skipped entirely.
	table := stubTable{
		model.ParameterMoisture: {BucketMoistureDry: "cassava"},
	}
	r := &model.Reading{Crop: "tomato", MoisturePct: fp(35)}

	got := AltCropSuggestion(r, stubCatalog{}, table)
	assert.Equal(t, MsgNoAltCropNeeded, got)
}

func TestCompute_EndToEnd(t *testing.T) {
	cat := stubCatalog{
		model.ParameterMoisture: rule(model.ParameterMoisture, 40, 70, "%", "Increase irrigation."),
	}
	table := stubTable{
		model.ParameterMoisture: {BucketMoistureDry: "cassava"},
	}
	r := &model.Reading{Crop: "tomato", MoisturePct: fp(35)}

	cropAdvisory, altSuggestion := Compute(r, cat, table)
	assert.Contains(t, cropAdvisory, "Soil Moisture is LOW")
	assert.Contains(t, altSuggestion, "cassava")
}

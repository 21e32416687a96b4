package altcrop

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
	storemocks "github.com/SmartSoil-SPCBA/SmartSoil/internal/store/mocks"
)

func TestLoadFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemocks.NewMockAltCropRuleRepository(ctrl)
	repo.EXPECT().ListAll(gomock.Any()).Return([]model.AltCropRule{
		{SoilParameter: model.ParameterMoisture, ReadingRangeBucket: "<40% (dry)", RecommendedCrop: "cassava"},
		{SoilParameter: model.ParameterEC, ReadingRangeBucket: ">2.0 mS/cm (saline)", RecommendedCrop: "barley"},
	}, nil)

	table := NewTable(slog.Default())
	require.NoError(t, table.LoadFromStore(context.Background(), repo))

	crop, ok := table.Lookup(model.ParameterMoisture, "<40% (dry)")
	require.True(t, ok)
	assert.Equal(t, "cassava", crop)

	_, ok = table.Lookup(model.ParameterMoisture, ">2.0 mS/cm (saline)")
	assert.False(t, ok, "bucket labels match by exact equality per parameter")
	assert.Equal(t, 2, table.Len())
}

func TestLoadFromStore_FailureLeavesTableEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemocks.NewMockAltCropRuleRepository(ctrl)
	repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection refused"))

	table := NewTable(slog.Default())
	require.Error(t, table.LoadFromStore(context.Background(), repo))
	assert.Equal(t, 0, table.Len())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alt_crops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- soilParameter: moisture
  readingRangeBucket: "<40% (dry)"
  recommendedCrop: sorghum
- soilParameter: temperature
  readingRangeBucket: ">30°C (hot)"
  recommendedCrop: okra
`), 0o644))

	table := NewTable(slog.Default())
	require.NoError(t, table.LoadFromFile(path))

	crop, ok := table.Lookup(model.ParameterTemperature, ">30°C (hot)")
	require.True(t, ok)
	assert.Equal(t, "okra", crop)
}

func TestLoadFromFile_Missing(t *testing.T) {
	table := NewTable(slog.Default())
	assert.Error(t, table.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestLoadFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	table := NewTable(slog.Default())
	assert.Error(t, table.LoadFromFile(path))
}

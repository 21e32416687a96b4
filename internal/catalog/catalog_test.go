package catalog

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
	storemocks "github.com/SmartSoil-SPCBA/SmartSoil/internal/store/mocks"
)

type stubGuard uint64

func (g stubGuard) Generation() uint64 { return uint64(g) }

func tomatoRules() []model.ThresholdRule {
	return []model.ThresholdRule{
		{Crop: "tomato", Parameter: model.ParameterMoisture, ValMin: 40, ValMax: 70, Unit: "%"},
		{Crop: "tomato", Parameter: model.ParameterPH, ValMin: 5.5, ValMax: 7},
	}
}

func TestReload_BuildsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemocks.NewMockThresholdRuleRepository(ctrl)
	repo.EXPECT().ListByCrop(gomock.Any(), "tomato").Return(tomatoRules(), nil)

	c := New(repo, stubGuard(1), slog.Default())
	require.NoError(t, c.Reload(context.Background(), "tomato", 1))

	r, ok := c.Lookup(model.ParameterMoisture)
	require.True(t, ok)
	assert.Equal(t, 40.0, r.ValMin)
	assert.Equal(t, 70.0, r.ValMax)

	_, ok = c.Lookup(model.ParameterNitrogen)
	assert.False(t, ok)

	snap := c.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	assert.Equal(t, "tomato", snap.Crop)
	assert.Len(t, snap.Rules, 2)
}

func TestReload_WholesaleReplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemocks.NewMockThresholdRuleRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().ListByCrop(gomock.Any(), "tomato").Return(tomatoRules(), nil),
		repo.EXPECT().ListByCrop(gomock.Any(), "lettuce").Return([]model.ThresholdRule{
			{Crop: "lettuce", Parameter: model.ParameterTemperature, ValMin: 10, ValMax: 24, Unit: "°C"},
		}, nil),
	)

	c := New(repo, nil, slog.Default())
	require.NoError(t, c.Reload(context.Background(), "tomato", 1))
	require.NoError(t, c.Reload(context.Background(), "lettuce", 2))

	// No tomato rule may survive the swap.
	_, ok := c.Lookup(model.ParameterMoisture)
	assert.False(t, ok)
	_, ok = c.Lookup(model.ParameterTemperature)
	assert.True(t, ok)
	assert.Equal(t, "lettuce", c.Snapshot().Crop)
}

func TestReload_FetchFailureKeepsLastGood(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemocks.NewMockThresholdRuleRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().ListByCrop(gomock.Any(), "tomato").Return(tomatoRules(), nil),
		repo.EXPECT().ListByCrop(gomock.Any(), "lettuce").Return(nil, errors.New("connection refused")),
	)

	c := New(repo, nil, slog.Default())
	require.NoError(t, c.Reload(context.Background(), "tomato", 1))
	require.Error(t, c.Reload(context.Background(), "lettuce", 2))

	// Stale but present beats empty.
	r, ok := c.Lookup(model.ParameterMoisture)
	require.True(t, ok)
	assert.Equal(t, 40.0, r.ValMin)

	snap := c.Snapshot()
	assert.Equal(t, StateErrored, snap.State)
	assert.Equal(t, "tomato", snap.Crop)
}

func TestReload_FetchFailureOnEmptyStaysEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemocks.NewMockThresholdRuleRepository(ctrl)
	repo.EXPECT().ListByCrop(gomock.Any(), "tomato").Return(nil, errors.New("connection refused"))

	c := New(repo, nil, slog.Default())
	require.Error(t, c.Reload(context.Background(), "tomato", 1))

	snap := c.Snapshot()
	assert.Equal(t, StateEmpty, snap.State)
	assert.Empty(t, snap.Rules)
}

func TestReload_StaleGenerationDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemocks.NewMockThresholdRuleRepository(ctrl)
	repo.EXPECT().ListByCrop(gomock.Any(), "tomato").Return(tomatoRules(), nil)

	c := New(repo, stubGuard(5), slog.Default())
	require.NoError(t, c.Reload(context.Background(), "tomato", 4))

	_, ok := c.Lookup(model.ParameterMoisture)
	assert.False(t, ok)
	assert.Equal(t, StateEmpty, c.Snapshot().State)
}

func TestReload_StaleFailedLoadDoesNotMarkErrored(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemocks.NewMockThresholdRuleRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().ListByCrop(gomock.Any(), "tomato").Return(tomatoRules(), nil),
		repo.EXPECT().ListByCrop(gomock.Any(), "lettuce").Return(nil, errors.New("connection refused")),
	)

	c := New(repo, stubGuard(2), slog.Default())
	require.NoError(t, c.Reload(context.Background(), "tomato", 2))

	// The failed lettuce load carries an older generation: it resolved
	// after the selection moved on and must not touch the state.
	require.NoError(t, c.Reload(context.Background(), "lettuce", 1))

	snap := c.Snapshot()
	assert.Equal(t, StateLoaded, snap.State)
	assert.Equal(t, "tomato", snap.Crop)
	assert.Len(t, snap.Rules, 2)
}

func TestReload_SkipsUnknownParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := storemocks.NewMockThresholdRuleRepository(ctrl)
	repo.EXPECT().ListByCrop(gomock.Any(), "tomato").Return([]model.ThresholdRule{
		{Crop: "tomato", Parameter: "salinity", ValMin: 0, ValMax: 1},
		{Crop: "tomato", Parameter: model.ParameterPH, ValMin: 5.5, ValMax: 7},
	}, nil)

	c := New(repo, nil, slog.Default())
	require.NoError(t, c.Reload(context.Background(), "tomato", 1))
	assert.Len(t, c.Snapshot().Rules, 1)
}

package volume

import (
	"math"
	"math/rand"
	"testing"

	"github.com/biomodel/reactor/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStochasticTimeThresholdScenario is spec.md §8 scenario 5:
// T=33, V*=2, sigma=0, initialize at time=0, volume=1. Growth rate is
// ln2/33; pre-sampled division time is ln(2/1)/(ln2/33) = 33. cell_divided
// at time=33.0 dt=0.1 returns 1; at time=32.8 dt=0.1 returns 0.
func TestStochasticTimeThresholdScenario(t *testing.T) {
	v := NewStochasticTimeThreshold(33, 2, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, v.Initialize(nil, nil, 0, 1))

	wantRate := math.Ln2 / 33
	assert.InDelta(t, wantRate, v.growthRate, 1e-12)
	assert.InDelta(t, 33.0, v.divisionTime, 1e-9)

	assert.Equal(t, 1, v.CellDivided(nil, nil, 33.0, 0, 0.1))
	assert.Equal(t, 0, v.CellDivided(nil, nil, 32.8, 0, 0.1))
}

func TestStochasticTimeThresholdCopyIsIndependent(t *testing.T) {
	v := NewStochasticTimeThreshold(33, 2, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, v.Initialize(nil, nil, 0, 1))

	clone := v.Copy().(*StochasticTimeThreshold)
	clone.divisionTime = -999

	assert.NotEqual(t, v.divisionTime, clone.divisionTime)
}

func TestStateDependentDividesFirstStepAboveThreshold(t *testing.T) {
	v := NewStateDependent(2.0, 0, &expr.Constant{Value: 0.1}, rand.New(rand.NewSource(1)))
	require.NoError(t, v.Initialize(nil, nil, 0, 1.0))
	assert.InDelta(t, 2.0, v.divisionVolume, 1e-12)

	assert.Equal(t, 0, v.CellDivided(nil, nil, 0, 1.5, 0))
	assert.Equal(t, 1, v.CellDivided(nil, nil, 0, 2.5, 0))
}

// TestStateDependentImpossibleDivision is spec.md §4.6: a sampled
// division_volume <= initial volume fails with ImpossibleDivision.
func TestStateDependentImpossibleDivision(t *testing.T) {
	v := NewStateDependent(1.0, 0, &expr.Constant{Value: 0.1}, rand.New(rand.NewSource(1)))
	err := v.Initialize(nil, nil, 0, 5.0)
	require.Error(t, err)
}

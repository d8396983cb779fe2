package delay

import (
	"math/rand"
	"testing"

	"github.com/biomodel/reactor/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(names ...string) func(string) int {
	idx := map[string]int{}
	for i, n := range names {
		idx[n] = i
	}
	return func(n string) int { return idx[n] }
}

func TestNoneAlwaysZero(t *testing.T) {
	d, err := New(TypeNone, Fields{})
	require.NoError(t, err)
	d.Bind(lookupFrom(), lookupFrom())
	assert.Equal(t, 0.0, d.Sample(nil, nil))
}

func TestFixedReadsParameter(t *testing.T) {
	d, err := New(TypeFixed, Fields{"delay": "tau"})
	require.NoError(t, err)
	d.Bind(lookupFrom(), lookupFrom("tau"))
	assert.Equal(t, 3.5, d.Sample(expr.Params{3.5}, nil))
}

func TestGaussianIsReproducibleForFixedSeed(t *testing.T) {
	d, err := New(TypeGaussian, Fields{"mean": "mu", "std": "sigma"})
	require.NoError(t, err)
	d.Bind(lookupFrom(), lookupFrom("mu", "sigma"))
	params := expr.Params{5.0, 1.0}

	a := d.Sample(params, rand.New(rand.NewSource(1)))
	b := d.Sample(params, rand.New(rand.NewSource(1)))
	assert.Equal(t, a, b)
}

func TestGammaIsNonNegativeForPositiveShapeScale(t *testing.T) {
	d, err := New(TypeGamma, Fields{"k": "shape", "theta": "scale"})
	require.NoError(t, err)
	d.Bind(lookupFrom(), lookupFrom("shape", "scale"))
	params := expr.Params{2.0, 1.5}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, d.Sample(params, rng), 0.0)
	}
}

func TestUnknownDelayType(t *testing.T) {
	_, err := New(Type("bogus"), Fields{})
	require.Error(t, err)
}

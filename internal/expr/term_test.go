package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumeNodeDistinguishesEvaluateFromVolumeEvaluate(t *testing.T) {
	v := &Volume{}
	assert.Equal(t, 1.0, v.Evaluate(nil, nil, 0))
	assert.Equal(t, 3.0, v.VolumeEvaluate(nil, nil, 3.0, 0))
}

func TestSpeciesReturnsRawCountUnderBothModes(t *testing.T) {
	s := &Species{Index: 0}
	state := State{42}
	assert.Equal(t, 42.0, s.Evaluate(state, nil, 0))
	assert.Equal(t, 42.0, s.VolumeEvaluate(state, nil, 5.0, 0))
}

func TestStepIsHeavisideWithZeroMappedToOne(t *testing.T) {
	s := &Step{X: &Constant{Value: 0}}
	assert.Equal(t, 1.0, s.Evaluate(nil, nil, 0))

	neg := &Step{X: &Constant{Value: -0.5}}
	assert.Equal(t, 0.0, neg.Evaluate(nil, nil, 0))
}

func TestMaxMinSingleChildReturnsThatChild(t *testing.T) {
	mx := &Max{Terms: []Term{&Constant{Value: 7}}}
	mn := &Min{Terms: []Term{&Constant{Value: 7}}}
	assert.Equal(t, 7.0, mx.Evaluate(nil, nil, 0))
	assert.Equal(t, 7.0, mn.Evaluate(nil, nil, 0))
}

func TestSumProductIdentities(t *testing.T) {
	sum := &Sum{}
	product := &Product{}
	assert.Equal(t, 0.0, sum.Evaluate(nil, nil, 0))
	assert.Equal(t, 1.0, product.Evaluate(nil, nil, 0))
}

// TestEvaluateEqualsVolumeEvaluateAtUnitVolume checks the invariant from
// spec.md §8: E.evaluate(s,p,t) == E.volume_evaluate(s,p,1,t) for every
// node kind, including a General-shaped composite tree.
func TestEvaluateEqualsVolumeEvaluateAtUnitVolume(t *testing.T) {
	// k * (x/K)^n / (1 + (x/K)^n), the HillPositive shape.
	x := &Species{Index: 0}
	k := &Parameter{Index: 0}
	bigK := &Parameter{Index: 1}
	n := &Constant{Value: 2}

	ratio := &Power{Base: &Product{Terms: []Term{x, &Power{Base: bigK, Exponent: &Constant{Value: -1}}}}, Exponent: n}
	tree := &Product{Terms: []Term{
		k,
		&Power{Base: &Sum{Terms: []Term{&Constant{Value: 1}, ratio}}, Exponent: &Constant{Value: -1}},
		ratio,
	}}

	state := State{5}
	params := Params{10, 5}

	got := tree.Evaluate(state, params, 0)
	gotVol := tree.VolumeEvaluate(state, params, 1.0, 0)
	assert.InDelta(t, got, gotVol, 1e-12)
	assert.False(t, math.IsNaN(got))
}

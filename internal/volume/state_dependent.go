package volume

import (
	"math"
	"math/rand"

	"github.com/biomodel/reactor/internal/expr"
	"github.com/biomodel/reactor/internal/modelerr"
)

// StateDependent grows at a rate computed from an arbitrary expression
// tree evaluated against current state each step (spec.md §4.6), and
// divides the first step volume exceeds a division volume sampled once at
// Initialize.
type StateDependent struct {
	mean  float64
	noise float64
	rate  expr.Term
	rng   *rand.Rand

	divisionVolume float64
}

// NewStateDependent builds a model with mean division volume V*, Gaussian
// noise sigma on the sampled division volume, and a growth-rate expression
// evaluated against state/params/time (not volume: the growth law reads
// the cell's molecular state, not its own volume).
func NewStateDependent(mean, noise float64, rate expr.Term, rng *rand.Rand) *StateDependent {
	return &StateDependent{mean: mean, noise: noise, rate: rate, rng: rng}
}

func (v *StateDependent) Initialize(_ expr.State, _ expr.Params, _, volume float64) error {
	v.divisionVolume = normalNoise(v.noise, v.rng) * v.mean
	if v.divisionVolume <= volume {
		return modelerr.Newf(modelerr.ImpossibleDivision,
			"sampled division volume %.6g is not greater than initial volume %.6g", v.divisionVolume, volume)
	}
	return nil
}

func (v *StateDependent) GetVolumeStep(state expr.State, params expr.Params, time, volume, dt float64) float64 {
	rate := v.rate.Evaluate(state, params, time)
	return volume * (math.Exp(rate*dt) - 1)
}

func (v *StateDependent) CellDivided(_ expr.State, _ expr.Params, _, volume, _ float64) int {
	if volume > v.divisionVolume {
		return 1
	}
	return 0
}

func (v *StateDependent) Copy() Volume {
	clone := *v
	return &clone
}

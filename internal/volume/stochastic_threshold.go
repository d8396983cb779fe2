package volume

import (
	"math"
	"math/rand"

	"github.com/biomodel/reactor/internal/expr"
)

// StochasticTimeThreshold grows exponentially at a fixed rate independent
// of state, and divides at a pre-sampled instant (spec.md §4.6): division
// time is drawn once at Initialize so every subsequent evaluation sees a
// deterministic threshold, which is what lets daughter Schnitzes carry
// correct lineage semantics under parallel stochastic evaluation.
type StochasticTimeThreshold struct {
	cycleTime      float64
	divisionVolume float64
	noise          float64
	rng            *rand.Rand

	growthRate   float64
	divisionTime float64
}

// NewStochasticTimeThreshold builds a model with cycle time T, division
// volume V*, and Gaussian noise sigma on the sampled division time. rng
// must be supplied by the caller (no package-global source), matching
// spec.md §5's single-threaded-per-Model discipline.
func NewStochasticTimeThreshold(cycleTime, divisionVolume, noise float64, rng *rand.Rand) *StochasticTimeThreshold {
	return &StochasticTimeThreshold{
		cycleTime:      cycleTime,
		divisionVolume: divisionVolume,
		noise:          noise,
		rng:            rng,
		growthRate:     math.Ln2 / cycleTime,
	}
}

func (v *StochasticTimeThreshold) Initialize(_ expr.State, _ expr.Params, time, volume float64) error {
	v.divisionTime = time + normalNoise(v.noise, v.rng)*math.Log(v.divisionVolume/volume)/v.growthRate
	return nil
}

func (v *StochasticTimeThreshold) GetVolumeStep(_ expr.State, _ expr.Params, _, volume, dt float64) float64 {
	return volume * (math.Exp(v.growthRate*dt) - 1)
}

func (v *StochasticTimeThreshold) CellDivided(_ expr.State, _ expr.Params, time, _, dt float64) int {
	if v.divisionTime > time-dt && v.divisionTime <= time {
		return 1
	}
	return 0
}

func (v *StochasticTimeThreshold) Copy() Volume {
	clone := *v
	return &clone
}

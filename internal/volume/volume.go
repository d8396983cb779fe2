// Package volume implements the cell-volume growth/division models of
// spec.md §4.6, consumed once per simulator step by an external
// volume-SSA loop.
package volume

import (
	"math/rand"

	"github.com/biomodel/reactor/internal/expr"
	"gonum.org/v1/gonum/stat/distuv"
)

// Volume is implemented by both catalog members. It holds per-cell scalar
// state (division time or division volume) and must be deep-copied on cell
// division via Copy so that daughter cells do not alias their parent's
// state.
type Volume interface {
	Initialize(state expr.State, params expr.Params, time, volume float64) error
	GetVolumeStep(state expr.State, params expr.Params, time, volume, dt float64) float64
	CellDivided(state expr.State, params expr.Params, time, volume, dt float64) int
	Copy() Volume
}

// normalNoise draws N(1, sigma) and degenerates to exactly 1.0 when sigma
// is 0, so a noiseless model is bit-for-bit deterministic rather than
// merely "very likely" so.
func normalNoise(sigma float64, rng *rand.Rand) float64 {
	if sigma == 0 {
		return 1.0
	}
	dist := distuv.Normal{Mu: 1.0, Sigma: sigma, Src: rng}
	return dist.Rand()
}

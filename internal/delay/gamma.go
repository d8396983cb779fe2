package delay

import (
	"math/rand"

	"github.com/biomodel/reactor/internal/expr"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gamma samples Gamma(shape=params[k], scale=params[theta]) per firing.
// gonum's distuv.Gamma is parameterized by rate rather than scale, so Beta
// is 1/theta.
type Gamma struct {
	shapeName, scaleName   string
	shapeIndex, scaleIndex int
}

func newGamma(fields Fields) (*Gamma, error) {
	shape, err := requireField(fields, "k")
	if err != nil {
		return nil, err
	}
	scale, err := requireField(fields, "theta")
	if err != nil {
		return nil, err
	}
	return &Gamma{shapeName: shape, scaleName: scale}, nil
}

func (g *Gamma) DiscoverNames() (species, params map[string]struct{}) {
	return nil, map[string]struct{}{g.shapeName: {}, g.scaleName: {}}
}

func (g *Gamma) Bind(_ func(string) int, lookupParam func(string) int) {
	g.shapeIndex = lookupParam(g.shapeName)
	g.scaleIndex = lookupParam(g.scaleName)
}

func (g *Gamma) Sample(params expr.Params, rng *rand.Rand) float64 {
	theta := params[g.scaleIndex]
	dist := distuv.Gamma{Alpha: params[g.shapeIndex], Beta: 1.0 / theta, Src: rng}
	return dist.Rand()
}

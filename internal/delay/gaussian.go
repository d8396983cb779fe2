package delay

import (
	"math/rand"

	"github.com/biomodel/reactor/internal/expr"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian samples N(mu=params[mean], sigma=params[std]) per firing. The
// caller truncates negative draws if its simulator contract requires that
// (spec.md §4.4, §9 Open Questions).
type Gaussian struct {
	meanName, stdName   string
	meanIndex, stdIndex int
}

func newGaussian(fields Fields) (*Gaussian, error) {
	mean, err := requireField(fields, "mean")
	if err != nil {
		return nil, err
	}
	std, err := requireField(fields, "std")
	if err != nil {
		return nil, err
	}
	return &Gaussian{meanName: mean, stdName: std}, nil
}

func (g *Gaussian) DiscoverNames() (species, params map[string]struct{}) {
	return nil, map[string]struct{}{g.meanName: {}, g.stdName: {}}
}

func (g *Gaussian) Bind(_ func(string) int, lookupParam func(string) int) {
	g.meanIndex = lookupParam(g.meanName)
	g.stdIndex = lookupParam(g.stdName)
}

func (g *Gaussian) Sample(params expr.Params, rng *rand.Rand) float64 {
	dist := distuv.Normal{Mu: params[g.meanIndex], Sigma: params[g.stdIndex], Src: rng}
	return dist.Rand()
}

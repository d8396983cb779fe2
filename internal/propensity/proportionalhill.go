package propensity

import (
	"math"

	"github.com/biomodel/reactor/internal/expr"
)

// ProportionalHill implements ProportionalHillPositive/Negative (spec.md
// §4.3): Hill's shape multiplied by an extra proportional species d that
// is left unscaled under volume-aware evaluation, unlike s1 which becomes
// s1/V.
type ProportionalHill struct {
	positive bool

	kName, dName, s1Name, bigKName, nName      string
	kIndex, dIndex, s1Index, bigKIndex, nIndex int
}

func newProportionalHill(fields Fields, positive bool) (*ProportionalHill, error) {
	k, err := requireField(fields, "k")
	if err != nil {
		return nil, err
	}
	d, err := requireField(fields, "d")
	if err != nil {
		return nil, err
	}
	s1, err := requireField(fields, "s1")
	if err != nil {
		return nil, err
	}
	bigK, err := requireField(fields, "K")
	if err != nil {
		return nil, err
	}
	n, err := requireField(fields, "n")
	if err != nil {
		return nil, err
	}
	return &ProportionalHill{positive: positive, kName: k, dName: d, s1Name: s1, bigKName: bigK, nName: n}, nil
}

func (p *ProportionalHill) DiscoverNames() (species, params map[string]struct{}) {
	return map[string]struct{}{p.s1Name: {}, p.dName: {}},
		map[string]struct{}{p.kName: {}, p.bigKName: {}, p.nName: {}}
}

func (p *ProportionalHill) Bind(lookupSpecies, lookupParam func(string) int) {
	p.s1Index = lookupSpecies(p.s1Name)
	p.dIndex = lookupSpecies(p.dName)
	p.kIndex = lookupParam(p.kName)
	p.bigKIndex = lookupParam(p.bigKName)
	p.nIndex = lookupParam(p.nName)
}

func (p *ProportionalHill) ratio(x float64, params expr.Params) float64 {
	return math.Pow(x/params[p.bigKIndex], params[p.nIndex])
}

func (p *ProportionalHill) GetPropensity(state expr.State, params expr.Params, _ float64) float64 {
	r := p.ratio(state[p.s1Index], params)
	if p.positive {
		return params[p.kIndex] * state[p.dIndex] * r / (1 + r)
	}
	return params[p.kIndex] * state[p.dIndex] / (1 + r)
}

func (p *ProportionalHill) GetVolumePropensity(state expr.State, params expr.Params, volume, _ float64) float64 {
	r := p.ratio(state[p.s1Index]/volume, params)
	if p.positive {
		return params[p.kIndex] * state[p.dIndex] * r / (1 + r)
	}
	return params[p.kIndex] * state[p.dIndex] / (1 + r)
}

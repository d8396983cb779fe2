package propensity

import (
	"math"

	"github.com/biomodel/reactor/internal/expr"
)

// Hill implements HillPositive and HillNegative (spec.md §4.3):
//
//	positive: k * (x/K)^n / (1 + (x/K)^n)
//	negative: k / (1 + (x/K)^n)
//
// Both substitute x <- x/V under volume-aware evaluation.
type Hill struct {
	positive bool

	kName, s1Name, bigKName, nName      string
	kIndex, s1Index, bigKIndex, nIndex int
}

func newHill(fields Fields, positive bool) (*Hill, error) {
	k, err := requireField(fields, "k")
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
	return &Hill{positive: positive, kName: k, s1Name: s1, bigKName: bigK, nName: n}, nil
}

func (h *Hill) DiscoverNames() (species, params map[string]struct{}) {
	return map[string]struct{}{h.s1Name: {}},
		map[string]struct{}{h.kName: {}, h.bigKName: {}, h.nName: {}}
}

func (h *Hill) Bind(lookupSpecies, lookupParam func(string) int) {
	h.s1Index = lookupSpecies(h.s1Name)
	h.kIndex = lookupParam(h.kName)
	h.bigKIndex = lookupParam(h.bigKName)
	h.nIndex = lookupParam(h.nName)
}

func (h *Hill) ratio(x float64, params expr.Params) float64 {
	return math.Pow(x/params[h.bigKIndex], params[h.nIndex])
}

func (h *Hill) GetPropensity(state expr.State, params expr.Params, _ float64) float64 {
	r := h.ratio(state[h.s1Index], params)
	if h.positive {
		return params[h.kIndex] * r / (1 + r)
	}
	return params[h.kIndex] / (1 + r)
}

func (h *Hill) GetVolumePropensity(state expr.State, params expr.Params, volume, _ float64) float64 {
	r := h.ratio(state[h.s1Index]/volume, params)
	if h.positive {
		return params[h.kIndex] * r / (1 + r)
	}
	return params[h.kIndex] / (1 + r)
}

package propensity

import "github.com/biomodel/reactor/internal/expr"

// Bimolecular is the two-reactant mass-action shape: rate k*x1*x2, and
// k*x1*x2/V under volume-aware evaluation (spec.md §4.3, §8 invariant).
type Bimolecular struct {
	kName, s1Name, s2Name    string
	kIndex, s1Index, s2Index int
}

func newBimolecular(fields Fields) (*Bimolecular, error) {
	k, err := requireField(fields, "k")
	if err != nil {
		return nil, err
	}
	s1, err := requireField(fields, "s1")
	if err != nil {
		return nil, err
	}
	s2, err := requireField(fields, "s2")
	if err != nil {
		return nil, err
	}
	return &Bimolecular{kName: k, s1Name: s1, s2Name: s2}, nil
}

func (b *Bimolecular) DiscoverNames() (species, params map[string]struct{}) {
	return map[string]struct{}{b.s1Name: {}, b.s2Name: {}}, map[string]struct{}{b.kName: {}}
}

func (b *Bimolecular) Bind(lookupSpecies, lookupParam func(string) int) {
	b.s1Index = lookupSpecies(b.s1Name)
	b.s2Index = lookupSpecies(b.s2Name)
	b.kIndex = lookupParam(b.kName)
}

func (b *Bimolecular) GetPropensity(state expr.State, params expr.Params, _ float64) float64 {
	return params[b.kIndex] * state[b.s1Index] * state[b.s2Index]
}

func (b *Bimolecular) GetVolumePropensity(state expr.State, params expr.Params, volume, _ float64) float64 {
	return params[b.kIndex] * state[b.s1Index] * state[b.s2Index] / volume
}

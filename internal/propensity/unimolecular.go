package propensity

import "github.com/biomodel/reactor/internal/expr"

// Unimolecular is the one-reactant mass-action shape: rate k*x, identical
// under volume-aware evaluation (spec.md §4.3's table: concentration and
// count coincide for a first-order rate).
type Unimolecular struct {
	kName, speciesName   string
	kIndex, speciesIndex int
}

func newUnimolecular(fields Fields) (*Unimolecular, error) {
	k, err := requireField(fields, "k")
	if err != nil {
		return nil, err
	}
	s, err := requireField(fields, "species")
	if err != nil {
		return nil, err
	}
	return &Unimolecular{kName: k, speciesName: s}, nil
}

func (u *Unimolecular) DiscoverNames() (species, params map[string]struct{}) {
	return map[string]struct{}{u.speciesName: {}}, map[string]struct{}{u.kName: {}}
}

func (u *Unimolecular) Bind(lookupSpecies, lookupParam func(string) int) {
	u.speciesIndex = lookupSpecies(u.speciesName)
	u.kIndex = lookupParam(u.kName)
}

func (u *Unimolecular) GetPropensity(state expr.State, params expr.Params, _ float64) float64 {
	return params[u.kIndex] * state[u.speciesIndex]
}

func (u *Unimolecular) GetVolumePropensity(state expr.State, params expr.Params, _ float64, _ float64) float64 {
	return params[u.kIndex] * state[u.speciesIndex]
}

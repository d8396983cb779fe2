package propensity

import (
	"math"

	"github.com/biomodel/reactor/internal/expr"
)

// MassAction is the general n-body shape: rate k * prod(x_i), and
// k * prod(x_i) / V^(n-1) under volume-aware evaluation, with n the number
// of operand species listed in the `*`-separated `species` field (repeats
// allowed: "X*X" is a two-operand product over the same index).
//
// The model assembler specializes n=0,1,2 into Constitutive/Unimolecular/
// Bimolecular for the hot path (spec.md §4.7's "propensity selection
// shortcut"); this variant stays fully general so `type="massaction"` with
// three or more operands still has somewhere to live.
type MassAction struct {
	kName        string
	speciesNames []string
	kIndex       int
	speciesIndex []int
}

func newMassAction(fields Fields) (*MassAction, error) {
	k, err := requireField(fields, "k")
	if err != nil {
		return nil, err
	}
	speciesField, err := requireField(fields, "species")
	if err != nil {
		return nil, err
	}
	names, err := splitMassActionSpecies(speciesField)
	if err != nil {
		return nil, err
	}
	return &MassAction{kName: k, speciesNames: names}, nil
}

func (m *MassAction) DiscoverNames() (species, params map[string]struct{}) {
	species = map[string]struct{}{}
	for _, n := range m.speciesNames {
		species[n] = struct{}{}
	}
	return species, map[string]struct{}{m.kName: {}}
}

func (m *MassAction) Bind(lookupSpecies, lookupParam func(string) int) {
	m.kIndex = lookupParam(m.kName)
	m.speciesIndex = make([]int, len(m.speciesNames))
	for i, n := range m.speciesNames {
		m.speciesIndex[i] = lookupSpecies(n)
	}
}

func (m *MassAction) GetPropensity(state expr.State, params expr.Params, _ float64) float64 {
	rate := params[m.kIndex]
	for _, idx := range m.speciesIndex {
		rate *= state[idx]
	}
	return rate
}

func (m *MassAction) GetVolumePropensity(state expr.State, params expr.Params, volume, _ float64) float64 {
	n := len(m.speciesIndex)
	rate := params[m.kIndex]
	for _, idx := range m.speciesIndex {
		rate *= state[idx]
	}
	if n >= 1 {
		rate /= math.Pow(volume, float64(n-1))
	} else {
		rate *= volume
	}
	return rate
}

package propensity

import "github.com/biomodel/reactor/internal/expr"

// Constitutive is the zero-reactant shape: rate k, volume-scaled k*V.
type Constitutive struct {
	kName  string
	kIndex int
}

func newConstitutive(fields Fields) (*Constitutive, error) {
	k, err := requireField(fields, "k")
	if err != nil {
		return nil, err
	}
	return &Constitutive{kName: k}, nil
}

func (c *Constitutive) DiscoverNames() (species, params map[string]struct{}) {
	return nil, map[string]struct{}{c.kName: {}}
}

func (c *Constitutive) Bind(_ func(string) int, lookupParam func(string) int) {
	c.kIndex = lookupParam(c.kName)
}

func (c *Constitutive) GetPropensity(_ expr.State, params expr.Params, _ float64) float64 {
	return params[c.kIndex]
}

func (c *Constitutive) GetVolumePropensity(_ expr.State, params expr.Params, volume, _ float64) float64 {
	return params[c.kIndex] * volume
}

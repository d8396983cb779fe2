package propensity

import (
	"github.com/biomodel/reactor/internal/expr"
	"github.com/biomodel/reactor/internal/exprparser"
)

// General evaluates an arbitrary rate string through the shared expression
// tree, at the cost of a tree walk per firing instead of a closed-form
// formula (spec.md §4.3's "General fills the gap... at the cost of a tree
// walk").
type General struct {
	term    expr.Term
	species map[string]struct{}
	params  map[string]struct{}
}

func newGeneral(fields Fields) (*General, error) {
	rate, err := requireField(fields, "rate")
	if err != nil {
		return nil, err
	}
	result, err := exprparser.Parse(rate)
	if err != nil {
		return nil, err
	}
	return &General{term: result.Term, species: result.Species, params: result.Params}, nil
}

func (g *General) DiscoverNames() (species, params map[string]struct{}) {
	return g.species, g.params
}

func (g *General) Bind(lookupSpecies, lookupParam func(string) int) {
	expr.Bind(g.term, lookupSpecies, lookupParam)
}

func (g *General) GetPropensity(state expr.State, params expr.Params, time float64) float64 {
	return g.term.Evaluate(state, params, time)
}

func (g *General) GetVolumePropensity(state expr.State, params expr.Params, volume, time float64) float64 {
	return g.term.VolumeEvaluate(state, params, volume, time)
}

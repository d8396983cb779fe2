package rule

import (
	"github.com/biomodel/reactor/internal/expr"
	"github.com/biomodel/reactor/internal/exprparser"
)

// General writes expr.evaluate(...) into either state[dest] or
// params[dest], depending on whether the left-hand side carries the
// reserved parameter marker (spec.md §4.5). Assignment to a parameter
// mutates the parameter vector in place, visible to every subsequent
// evaluation in the same simulator step.
type General struct {
	destName  string
	destParam bool
	destIndex int

	term    expr.Term
	species map[string]struct{}
	params  map[string]struct{}
}

func newGeneral(lhs, rhs string) (*General, error) {
	bare, isParam := targetsParameter(lhs)

	result, err := exprparser.Parse(rhs)
	if err != nil {
		return nil, err
	}

	return &General{destName: bare, destParam: isParam, term: result.Term, species: result.Species, params: result.Params}, nil
}

func (g *General) DiscoverNames() (species, params map[string]struct{}) {
	species = cloneSet(g.species)
	params = cloneSet(g.params)
	if g.destParam {
		if params == nil {
			params = map[string]struct{}{}
		}
		params[g.destName] = struct{}{}
	} else {
		if species == nil {
			species = map[string]struct{}{}
		}
		species[g.destName] = struct{}{}
	}
	return species, params
}

func (g *General) Bind(lookupSpecies, lookupParam func(string) int) {
	expr.Bind(g.term, lookupSpecies, lookupParam)
	if g.destParam {
		g.destIndex = lookupParam(g.destName)
	} else {
		g.destIndex = lookupSpecies(g.destName)
	}
}

func (g *General) Apply(state expr.State, params expr.Params, time float64) {
	value := g.term.Evaluate(state, params, time)
	if g.destParam {
		params[g.destIndex] = value
	} else {
		state[g.destIndex] = value
	}
}

func (g *General) TargetsParameter() bool { return g.destParam }

func cloneSet(src map[string]struct{}) map[string]struct{} {
	if src == nil {
		return nil
	}
	dst := make(map[string]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}

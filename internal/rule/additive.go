package rule

import (
	"strings"

	"github.com/biomodel/reactor/internal/expr"
	"github.com/biomodel/reactor/internal/modelerr"
)

// Additive writes the sum of named species into state[dest]. The target
// must be a species (spec.md §4.5).
type Additive struct {
	destName     string
	operandNames []string

	destIndex    int
	operandIndex []int
}

func newAdditive(lhs, rhs string) (*Additive, error) {
	bare, isParam := targetsParameter(lhs)
	if isParam {
		return nil, modelerr.Newf(modelerr.MalformedReaction, "additive rule target %q must be a species, not a parameter", lhs)
	}

	var operands []string
	for _, part := range strings.Split(rhs, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		operands = append(operands, part)
	}
	if len(operands) == 0 {
		return nil, modelerr.New(modelerr.MalformedReaction, "additive rule has no summands on its right-hand side")
	}

	return &Additive{destName: bare, operandNames: operands}, nil
}

func (a *Additive) DiscoverNames() (species, params map[string]struct{}) {
	species = map[string]struct{}{a.destName: {}}
	for _, n := range a.operandNames {
		species[n] = struct{}{}
	}
	return species, nil
}

func (a *Additive) Bind(lookupSpecies, _ func(string) int) {
	a.destIndex = lookupSpecies(a.destName)
	a.operandIndex = make([]int, len(a.operandNames))
	for i, n := range a.operandNames {
		a.operandIndex[i] = lookupSpecies(n)
	}
}

func (a *Additive) Apply(state expr.State, _ expr.Params, _ float64) {
	total := 0.0
	for _, idx := range a.operandIndex {
		total += state[idx]
	}
	state[a.destIndex] = total
}

func (a *Additive) TargetsParameter() bool { return false }

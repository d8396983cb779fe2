package document

import (
	"strings"

	"github.com/biomodel/reactor/internal/modelerr"
)

// Stoichiometry is the parsed form of a reaction's `text` (or `after`)
// field: "A + A + B -- C" reads as two A, one B consumed and one C
// produced. Species absent from both sides never appear in Delta.
type Stoichiometry struct {
	Reactants map[string]int
	Products  map[string]int
}

// Delta returns the net per-species change a single firing applies: the
// product count minus the reactant count, for every species named on
// either side.
func (s Stoichiometry) Delta() map[string]int {
	delta := make(map[string]int, len(s.Reactants)+len(s.Products))
	for name, n := range s.Reactants {
		delta[name] -= n
	}
	for name, n := range s.Products {
		delta[name] += n
	}
	return delta
}

// ParseStoichiometry parses the "reactants -- products" grammar shared by
// a reaction's `text` and `after` attributes (spec.md §4.7 step 1): two
// `+`-separated species multisets divided by a literal "--". Either side
// may be empty (a pure source or pure sink reaction). Coefficients are
// expressed by repetition ("A + A"), not by a leading integer.
func ParseStoichiometry(text string) (Stoichiometry, error) {
	sides := strings.SplitN(text, "--", 2)
	if len(sides) != 2 {
		return Stoichiometry{}, modelerr.Newf(modelerr.InvalidStoichiometry,
			"stoichiometry %q has no \"--\" separator", text)
	}

	reactants, err := parseSide(sides[0])
	if err != nil {
		return Stoichiometry{}, err
	}
	products, err := parseSide(sides[1])
	if err != nil {
		return Stoichiometry{}, err
	}
	return Stoichiometry{Reactants: reactants, Products: products}, nil
}

func parseSide(side string) (map[string]int, error) {
	side = strings.TrimSpace(side)
	counts := make(map[string]int)
	if side == "" {
		return counts, nil
	}
	for _, term := range strings.Split(side, "+") {
		name := strings.TrimSpace(term)
		if name == "" {
			return nil, modelerr.Newf(modelerr.InvalidStoichiometry,
				"stoichiometry side %q has an empty term", side)
		}
		counts[name]++
	}
	return counts, nil
}

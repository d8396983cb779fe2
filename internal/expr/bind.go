package expr

// Bind walks a freshly parsed tree exactly once, resolving every Species
// and Parameter leaf's Name to a dense index via the supplied lookups. This
// is the model assembler's "binding" phase (spec.md §4.7 step 2): after
// Bind returns, evaluation never touches strings again.
func Bind(t Term, lookupSpecies, lookupParam func(name string) int) {
	switch n := t.(type) {
	case *Species:
		n.Index = lookupSpecies(n.Name)
	case *Parameter:
		n.Index = lookupParam(n.Name)
	case *Sum:
		bindAll(n.Terms, lookupSpecies, lookupParam)
	case *Product:
		bindAll(n.Terms, lookupSpecies, lookupParam)
	case *Power:
		Bind(n.Base, lookupSpecies, lookupParam)
		Bind(n.Exponent, lookupSpecies, lookupParam)
	case *Exp:
		Bind(n.X, lookupSpecies, lookupParam)
	case *Log:
		Bind(n.X, lookupSpecies, lookupParam)
	case *Step:
		Bind(n.X, lookupSpecies, lookupParam)
	case *Abs:
		Bind(n.X, lookupSpecies, lookupParam)
	case *Max:
		bindAll(n.Terms, lookupSpecies, lookupParam)
	case *Min:
		bindAll(n.Terms, lookupSpecies, lookupParam)
	case *Constant, *Volume, *Time:
		// no free names to resolve
	}
}

func bindAll(terms []Term, lookupSpecies, lookupParam func(name string) int) {
	for _, t := range terms {
		Bind(t, lookupSpecies, lookupParam)
	}
}

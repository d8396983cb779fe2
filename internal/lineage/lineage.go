package lineage

// Lineage owns an ordered sequence of Schnitzes representing a population
// of cells descended from a common ancestor.
type Lineage struct {
	schnitzes []*Schnitz
}

// New builds a Lineage over the given Schnitzes, in the order supplied.
func New(schnitzes ...*Schnitz) *Lineage {
	return &Lineage{schnitzes: schnitzes}
}

// Schnitzes returns the Lineage's Schnitzes in order. The returned slice
// must not be mutated by the caller.
func (l *Lineage) Schnitzes() []*Schnitz {
	return l.schnitzes
}

// Truncate produces a new Lineage restricted to the time window [a, b]:
// every Schnitz is trimmed to its samples within the window (a Schnitz
// with a daughter never keeps its final, division-instant sample; see
// window), Schnitzes left with no sample are dropped entirely, and every
// surviving Schnitz's parent/daughter pointers are re-linked to target
// only Schnitzes present in the new Lineage (never a discarded one).
func (l *Lineage) Truncate(a, b float64) *Lineage {
	oldToNew := make(map[*Schnitz]*Schnitz, len(l.schnitzes))
	var kept []*Schnitz
	for _, s := range l.schnitzes {
		trimmed := s.window(a, b)
		if trimmed == nil {
			continue
		}
		oldToNew[s] = trimmed
		kept = append(kept, trimmed)
	}

	for _, old := range l.schnitzes {
		newS, ok := oldToNew[old]
		if !ok {
			continue
		}
		newS.Parent = relink(old.Parent, oldToNew)
		newS.Daughter1 = relink(old.Daughter1, oldToNew)
		newS.Daughter2 = relink(old.Daughter2, oldToNew)
	}

	return &Lineage{schnitzes: kept}
}

func relink(old *Schnitz, oldToNew map[*Schnitz]*Schnitz) *Schnitz {
	if old == nil {
		return nil
	}
	return oldToNew[old] // nil if old was discarded, which is exactly the contract
}

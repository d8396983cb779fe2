// Package lineage implements the Schnitz/Lineage trace data model of
// spec.md §3: a tree of per-cell time/state/volume traces produced by an
// external (out-of-scope) division-splitter, with a time-windowed pruning
// operation this package does own.
package lineage

// Schnitz is one cell's trajectory segment between divisions: a time
// series of species counts and cell volume, plus links to its parent and
// (up to two) daughter Schnitzes.
type Schnitz struct {
	Time   []float64
	Data   [][]float64 // Data[i] is the species vector at Time[i]
	Volume []float64

	Parent               *Schnitz
	Daughter1, Daughter2 *Schnitz
}

// window returns a new Schnitz holding only the samples with
// a <= time <= b, or nil if no sample falls in that window. Parent/
// Daughter links are left unset; Lineage.Truncate relinks them afterward
// against the surviving Schnitz set.
//
// A non-leaf Schnitz's last sample is the division instant, which is
// duplicated as the first sample of each daughter; that shared instant
// counts toward the daughters' retention, not the parent's, so it is
// excluded here whenever a daughter link is present.
func (s *Schnitz) window(a, b float64) *Schnitz {
	n := len(s.Time)
	if s.Daughter1 != nil || s.Daughter2 != nil {
		n--
	}

	var keepFrom, keepTo int = -1, -1
	for i, t := range s.Time[:n] {
		if t >= a && t <= b {
			if keepFrom == -1 {
				keepFrom = i
			}
			keepTo = i
		}
	}
	if keepFrom == -1 {
		return nil
	}

	count := keepTo - keepFrom + 1
	trimmed := &Schnitz{
		Time:   append([]float64(nil), s.Time[keepFrom:keepTo+1]...),
		Volume: append([]float64(nil), s.Volume[keepFrom:keepTo+1]...),
		Data:   make([][]float64, count),
	}
	for i := 0; i < count; i++ {
		trimmed.Data[i] = append([]float64(nil), s.Data[keepFrom+i]...)
	}
	return trimmed
}

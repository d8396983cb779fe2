// Package expr implements the tagged expression tree that backs every
// user-supplied rate law (General propensities, GeneralAssignmentRule, and
// StateDependentVolume's growth-rate expression). A Term is built once by
// the exprparser package and is immutable thereafter; evaluation never
// writes to state or params.
package expr

import "math"

// State is the dense species-count vector, indexed by symtab.Index.
type State []float64

// Params is the dense parameter-value vector, indexed by symtab.Index.
type Params []float64

// Term is one node of an expression tree. Every node is a pure function of
// its inputs: Evaluate treats volume as 1, and VolumeEvaluate is the same
// tree evaluated with an explicit cell volume, so
// Evaluate(s,p,t) == VolumeEvaluate(s,p,1,t) holds for every Term by
// construction (see Volume below, the only node that reads volume).
type Term interface {
	Evaluate(state State, params Params, time float64) float64
	VolumeEvaluate(state State, params Params, volume, time float64) float64
}

var (
	_ Term = (*Constant)(nil)
	_ Term = (*Species)(nil)
	_ Term = (*Parameter)(nil)
	_ Term = (*Volume)(nil)
	_ Term = (*Time)(nil)
	_ Term = (*Sum)(nil)
	_ Term = (*Product)(nil)
	_ Term = (*Power)(nil)
	_ Term = (*Exp)(nil)
	_ Term = (*Log)(nil)
	_ Term = (*Step)(nil)
	_ Term = (*Abs)(nil)
	_ Term = (*Max)(nil)
	_ Term = (*Min)(nil)
)

// Constant is a literal numeric value.
type Constant struct {
	Value float64
}

func (c *Constant) Evaluate(State, Params, float64) float64 { return c.Value }
func (c *Constant) VolumeEvaluate(State, Params, float64, float64) float64 { return c.Value }

// Species reads a molecule count from state. It returns the raw count under
// both Evaluate and VolumeEvaluate: the expression layer never rescales by
// volume on its own behalf, only the propensity layer does (spec.md §4.2).
//
// Name holds the free-text species name discovered by exprparser until Bind
// resolves it to a dense Index; evaluation only ever reads Index.
type Species struct {
	Index int
	Name  string
}

func (s *Species) Evaluate(state State, _ Params, _ float64) float64 { return state[s.Index] }
func (s *Species) VolumeEvaluate(state State, _ Params, _ float64, _ float64) float64 {
	return state[s.Index]
}

// Parameter reads a value from the mutable parameter vector. Name mirrors
// Species.Name: free text until Bind resolves it.
type Parameter struct {
	Index int
	Name  string
}

func (p *Parameter) Evaluate(_ State, params Params, _ float64) float64 { return params[p.Index] }
func (p *Parameter) VolumeEvaluate(_ State, params Params, _ float64, _ float64) float64 {
	return params[p.Index]
}

// Volume is the reserved `volume` identifier: 1.0 under Evaluate, the actual
// cell volume under VolumeEvaluate. This is the one node that makes the
// Evaluate/VolumeEvaluate equivalence at volume=1 meaningful rather than
// vacuous.
type Volume struct{}

func (v *Volume) Evaluate(State, Params, float64) float64 { return 1.0 }
func (v *Volume) VolumeEvaluate(_ State, _ Params, volume, _ float64) float64 { return volume }

// Time is the reserved `t` identifier.
type Time struct{}

func (tm *Time) Evaluate(_ State, _ Params, time float64) float64 { return time }
func (tm *Time) VolumeEvaluate(_ State, _ Params, _ float64, time float64) float64 { return time }

// Sum reduces its children with +, identity 0.
type Sum struct {
	Terms []Term
}

func (s *Sum) Evaluate(state State, params Params, time float64) float64 {
	total := 0.0
	for _, t := range s.Terms {
		total += t.Evaluate(state, params, time)
	}
	return total
}

func (s *Sum) VolumeEvaluate(state State, params Params, volume, time float64) float64 {
	total := 0.0
	for _, t := range s.Terms {
		total += t.VolumeEvaluate(state, params, volume, time)
	}
	return total
}

// Product reduces its children with *, identity 1.
type Product struct {
	Terms []Term
}

func (p *Product) Evaluate(state State, params Params, time float64) float64 {
	total := 1.0
	for _, t := range p.Terms {
		total *= t.Evaluate(state, params, time)
	}
	return total
}

func (p *Product) VolumeEvaluate(state State, params Params, volume, time float64) float64 {
	total := 1.0
	for _, t := range p.Terms {
		total *= t.VolumeEvaluate(state, params, volume, time)
	}
	return total
}

// Power is base^exponent with standard IEEE-754 semantics; ill-defined
// cases (e.g. negative base with fractional exponent) propagate NaN rather
// than being intercepted here (spec.md §4.2, §7).
type Power struct {
	Base, Exponent Term
}

func (p *Power) Evaluate(state State, params Params, time float64) float64 {
	return math.Pow(p.Base.Evaluate(state, params, time), p.Exponent.Evaluate(state, params, time))
}

func (p *Power) VolumeEvaluate(state State, params Params, volume, time float64) float64 {
	return math.Pow(
		p.Base.VolumeEvaluate(state, params, volume, time),
		p.Exponent.VolumeEvaluate(state, params, volume, time),
	)
}

// Exp is IEEE-754 e^x.
type Exp struct {
	X Term
}

func (e *Exp) Evaluate(state State, params Params, time float64) float64 {
	return math.Exp(e.X.Evaluate(state, params, time))
}

func (e *Exp) VolumeEvaluate(state State, params Params, volume, time float64) float64 {
	return math.Exp(e.X.VolumeEvaluate(state, params, volume, time))
}

// Log is the natural logarithm.
type Log struct {
	X Term
}

func (l *Log) Evaluate(state State, params Params, time float64) float64 {
	return math.Log(l.X.Evaluate(state, params, time))
}

func (l *Log) VolumeEvaluate(state State, params Params, volume, time float64) float64 {
	return math.Log(l.X.VolumeEvaluate(state, params, volume, time))
}

// Step is the Heaviside function with H(0) = 1.
type Step struct {
	X Term
}

func (s *Step) Evaluate(state State, params Params, time float64) float64 {
	return heaviside(s.X.Evaluate(state, params, time))
}

func (s *Step) VolumeEvaluate(state State, params Params, volume, time float64) float64 {
	return heaviside(s.X.VolumeEvaluate(state, params, volume, time))
}

func heaviside(x float64) float64 {
	if x >= 0 {
		return 1.0
	}
	return 0.0
}

// Abs is |x|.
type Abs struct {
	X Term
}

func (a *Abs) Evaluate(state State, params Params, time float64) float64 {
	return math.Abs(a.X.Evaluate(state, params, time))
}

func (a *Abs) VolumeEvaluate(state State, params Params, volume, time float64) float64 {
	return math.Abs(a.X.VolumeEvaluate(state, params, volume, time))
}

// Max folds its children taking the strict maximum. A single-child Max
// returns that child unchanged.
type Max struct {
	Terms []Term
}

func (m *Max) Evaluate(state State, params Params, time float64) float64 {
	return foldEvaluate(m.Terms, state, params, time, math.Max)
}

func (m *Max) VolumeEvaluate(state State, params Params, volume, time float64) float64 {
	return foldVolumeEvaluate(m.Terms, state, params, volume, time, math.Max)
}

// Min folds its children taking the strict minimum. A single-child Min
// returns that child unchanged.
type Min struct {
	Terms []Term
}

func (m *Min) Evaluate(state State, params Params, time float64) float64 {
	return foldEvaluate(m.Terms, state, params, time, math.Min)
}

func (m *Min) VolumeEvaluate(state State, params Params, volume, time float64) float64 {
	return foldVolumeEvaluate(m.Terms, state, params, volume, time, math.Min)
}

func foldEvaluate(terms []Term, state State, params Params, time float64, fold func(a, b float64) float64) float64 {
	result := terms[0].Evaluate(state, params, time)
	for _, t := range terms[1:] {
		result = fold(result, t.Evaluate(state, params, time))
	}
	return result
}

func foldVolumeEvaluate(terms []Term, state State, params Params, volume, time float64, fold func(a, b float64) float64) float64 {
	result := terms[0].VolumeEvaluate(state, params, volume, time)
	for _, t := range terms[1:] {
		result = fold(result, t.VolumeEvaluate(state, params, volume, time))
	}
	return result
}

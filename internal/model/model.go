// Package model implements the Model assembler of spec.md §4.7: it turns a
// declarative document into interned, index-bound propensities, delays,
// and rules, plus the stoichiometry matrices and initial state/parameter
// vectors a simulator consumes.
package model

import (
	"github.com/biomodel/reactor/internal/delay"
	"github.com/biomodel/reactor/internal/expr"
	"github.com/biomodel/reactor/internal/exprparser"
	"github.com/biomodel/reactor/internal/modelerr"
	"github.com/biomodel/reactor/internal/propensity"
	"github.com/biomodel/reactor/internal/rule"
	"github.com/biomodel/reactor/internal/symtab"
)

// Reaction pairs one reaction's bound propensity and delay. Stoichiometry
// lives in Model's update/delayUpdate matrices, indexed by the same
// reaction position.
type Reaction struct {
	Propensity propensity.Propensity
	Delay      delay.Delay
}

// Model is the fully assembled, simulator-ready form of a declarative
// document: interned symbol tables, bound reactions/rules, stoichiometry
// matrices, and initial state/parameter vectors.
type Model struct {
	speciesTable *symtab.Table
	paramTable   *symtab.Table

	state  expr.State
	params expr.Params

	reactions []Reaction
	// update[s][r] / delayUpdate[s][r] is reaction r's immediate/delayed
	// net change to species s, per spec.md §3's StoichiometryMatrix.
	update      [][]int
	delayUpdate [][]int

	rules []rule.Rule

	warnings []string
}

// GetSpeciesList returns every interned species name in index order.
func (m *Model) GetSpeciesList() []string { return m.speciesTable.Names() }

// GetParamList returns every interned parameter name in index order.
func (m *Model) GetParamList() []string { return m.paramTable.Names() }

// GetSpeciesValues returns a copy of the current species state vector.
func (m *Model) GetSpeciesValues() []float64 {
	out := make([]float64, len(m.state))
	copy(out, m.state)
	return out
}

// GetParamsValues returns a copy of the current parameter value vector.
func (m *Model) GetParamsValues() []float64 {
	out := make([]float64, len(m.params))
	copy(out, m.params)
	return out
}

// GetUpdateArray returns the immediate stoichiometry matrix, update[species][reaction].
func (m *Model) GetUpdateArray() [][]int { return m.update }

// GetDelayUpdateArray returns the delayed stoichiometry matrix, delayUpdate[species][reaction].
func (m *Model) GetDelayUpdateArray() [][]int { return m.delayUpdate }

// Reactions returns every bound reaction in declaration order.
func (m *Model) Reactions() []Reaction { return m.reactions }

// Rules returns every bound rule in declaration order; a simulator applies
// them in this order each step, per spec.md §5's ordering guarantee.
func (m *Model) Rules() []rule.Rule { return m.rules }

// Warnings returns every non-fatal diagnostic accumulated while assembling
// the model (unreferenced values, defaulted species). Warnings raised by
// the SBML importer are returned by sbml.Import and are not included here.
func (m *Model) Warnings() []string { return m.warnings }

// LookupSpeciesIndex returns the dense index of name, or -1 if name was
// never referenced by the model (spec.md §6's "index lookup by name
// returning -1 when absent").
func (m *Model) LookupSpeciesIndex(name string) int { return int(m.speciesTable.Lookup(name)) }

// LookupParamIndex returns the dense index of name, or -1 if absent.
func (m *Model) LookupParamIndex(name string) int { return int(m.paramTable.Lookup(name)) }

// GetSpeciesValue returns the named species' current value, or a
// LookupErrorKind error if name was never referenced by the model
// (spec.md §6/§8's get_species_value/get_param_value round trip, the
// by-name counterpart to LookupSpeciesIndex's -1-on-absent contract).
func (m *Model) GetSpeciesValue(name string) (float64, error) {
	idx := m.speciesTable.Lookup(name)
	if idx == symtab.NotFound {
		return 0, modelerr.Newf(modelerr.LookupErrorKind, "unknown species %q", name)
	}
	return m.state[idx], nil
}

// GetParamValue returns the named parameter's current value, or a
// LookupErrorKind error if name was never referenced by the model.
func (m *Model) GetParamValue(name string) (float64, error) {
	idx := m.paramTable.Lookup(name)
	if idx == symtab.NotFound {
		return 0, modelerr.Newf(modelerr.LookupErrorKind, "unknown parameter %q", name)
	}
	return m.params[idx], nil
}

// SetSpecies overwrites the named species' values in place. Names absent
// from the model are ignored; callers that need strict validation should
// check LookupSpeciesIndex themselves.
func (m *Model) SetSpecies(values map[string]float64) {
	for name, v := range values {
		if idx := m.speciesTable.Lookup(name); idx != symtab.NotFound {
			m.state[idx] = v
		}
	}
}

// SetParams overwrites the named parameters' values in place.
func (m *Model) SetParams(values map[string]float64) {
	for name, v := range values {
		if idx := m.paramTable.Lookup(name); idx != symtab.NotFound {
			m.params[idx] = v
		}
	}
}

// ParseGeneralExpression parses rate through the same grammar every
// propensity/rule rate string uses and binds its free names against this
// Model's existing symbol tables. Names not already present in the model
// bind to index -1 (spec.md §6): evaluating the resulting Term against
// this Model's vectors in that case is the caller's error to avoid, which
// is acceptable for this debugging/inspection entry point.
func (m *Model) ParseGeneralExpression(rate string) (expr.Term, error) {
	result, err := exprparser.Parse(rate)
	if err != nil {
		return nil, err
	}
	expr.Bind(result.Term, m.LookupSpeciesIndex, m.LookupParamIndex)
	return result.Term, nil
}

// Clone deep-copies the mutable parts of a Model (state, parameter
// values, stoichiometry matrices) while sharing the immutable, already-
// bound propensity/delay/rule trees and symbol tables, which never
// change after assembly.
func (m *Model) Clone() *Model {
	clone := &Model{
		speciesTable: m.speciesTable,
		paramTable:   m.paramTable,
		reactions:    m.reactions,
		rules:        m.rules,
		warnings:     append([]string(nil), m.warnings...),
	}

	clone.state = make(expr.State, len(m.state))
	copy(clone.state, m.state)
	clone.params = make(expr.Params, len(m.params))
	copy(clone.params, m.params)

	clone.update = cloneMatrix(m.update)
	clone.delayUpdate = cloneMatrix(m.delayUpdate)

	return clone
}

func cloneMatrix(src [][]int) [][]int {
	dst := make([][]int, len(src))
	for i, row := range src {
		dst[i] = append([]int(nil), row...)
	}
	return dst
}

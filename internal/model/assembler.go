package model

import (
	"fmt"
	"sort"

	"github.com/biomodel/reactor/internal/delay"
	"github.com/biomodel/reactor/internal/document"
	"github.com/biomodel/reactor/internal/expr"
	"github.com/biomodel/reactor/internal/modelerr"
	"github.com/biomodel/reactor/internal/propensity"
	"github.com/biomodel/reactor/internal/rule"
	"github.com/biomodel/reactor/internal/symtab"
)

// reactionBuild carries a reaction's bound propensity/delay alongside its
// still name-keyed stoichiometry delta, collected during discovery and
// resolved to indices once the symbol tables are final.
type reactionBuild struct {
	propensity propensity.Propensity
	delay      delay.Delay
	immediate  map[string]int
	delayed    map[string]int
}

// Assemble runs the three-phase pipeline of spec.md §4.7 (discovery,
// binding, valuation) over doc and produces a simulator-ready Model.
func Assemble(doc *document.Document) (*Model, error) {
	speciesTable := symtab.New()
	paramTable := symtab.New()

	internSpecies := func(names map[string]struct{}) {
		for name := range names {
			speciesTable.Intern(name)
		}
	}
	internParams := func(names map[string]struct{}) {
		for name := range names {
			paramTable.Intern(name)
		}
	}

	builds := make([]reactionBuild, 0, len(doc.Reactions))
	for i, r := range doc.Reactions {
		stoich, err := document.ParseStoichiometry(r.Text)
		if err != nil {
			return nil, fmt.Errorf("reaction[%d]: %w", i, err)
		}
		immediate := stoich.Delta()
		internSpecies(namesOf(immediate))

		var delayed map[string]int
		if r.After != "" {
			afterStoich, err := document.ParseStoichiometry(r.After)
			if err != nil {
				return nil, fmt.Errorf("reaction[%d] after-field: %w", i, err)
			}
			delayed = afterStoich.Delta()
			internSpecies(namesOf(delayed))
		}

		propType, propFields := propensity.Type(r.Propensity.Type), propensity.Fields(r.Propensity.Fields)
		if propType == propensity.TypeMassAction {
			specializedType, specializedFields, err := propensity.SpecializeMassAction(propFields)
			if err != nil {
				return nil, fmt.Errorf("reaction[%d] propensity: %w", i, err)
			}
			propType, propFields = specializedType, specializedFields
		}
		prop, err := propensity.New(propType, propFields)
		if err != nil {
			return nil, fmt.Errorf("reaction[%d] propensity: %w", i, err)
		}
		propSpecies, propParams := prop.DiscoverNames()
		internSpecies(propSpecies)
		internParams(propParams)

		dl, err := delay.New(delay.Type(r.Delay.Type), delay.Fields(r.Delay.Fields))
		if err != nil {
			return nil, fmt.Errorf("reaction[%d] delay: %w", i, err)
		}
		delaySpecies, delayParams := dl.DiscoverNames()
		internSpecies(delaySpecies)
		internParams(delayParams)

		builds = append(builds, reactionBuild{propensity: prop, delay: dl, immediate: immediate, delayed: delayed})
	}

	rules := make([]rule.Rule, 0, len(doc.Rules))
	for i, docRule := range doc.Rules {
		r, err := rule.New(rule.Type(docRule.Type), rule.Fields(docRule.Fields))
		if err != nil {
			return nil, fmt.Errorf("rule[%d]: %w", i, err)
		}
		ruleSpecies, ruleParams := r.DiscoverNames()
		internSpecies(ruleSpecies)
		internParams(ruleParams)
		rules = append(rules, r)
	}

	lookupSpecies := func(name string) int { return int(speciesTable.Lookup(name)) }
	lookupParam := func(name string) int { return int(paramTable.Lookup(name)) }

	for _, b := range builds {
		b.propensity.Bind(lookupSpecies, lookupParam)
		b.delay.Bind(lookupSpecies, lookupParam)
	}
	for _, r := range rules {
		r.Bind(lookupSpecies, lookupParam)
	}

	nSpecies, nParams, nReactions := speciesTable.Len(), paramTable.Len(), len(builds)

	update := newIntMatrix(nSpecies, nReactions)
	delayUpdate := newIntMatrix(nSpecies, nReactions)
	for ri, b := range builds {
		applyDelta(update, b.immediate, speciesTable, ri)
		applyDelta(delayUpdate, b.delayed, speciesTable, ri)
	}

	state := make(expr.State, nSpecies)
	params := make(expr.Params, nParams)
	var warnings []string

	valuedSpecies := map[string]bool{}
	for _, sp := range doc.Species {
		valuedSpecies[sp.Name] = true
		if idx := speciesTable.Lookup(sp.Name); idx != symtab.NotFound {
			state[idx] = sp.Value
		} else {
			warnings = append(warnings, fmt.Sprintf("species %q has a declared value but is never referenced", sp.Name))
		}
	}
	for _, name := range speciesTable.Names() {
		if !valuedSpecies[name] {
			warnings = append(warnings, fmt.Sprintf("species %q is referenced but has no declared value; defaulting to 0", name))
		}
	}

	valuedParams := map[string]bool{}
	for _, p := range doc.Parameters {
		valuedParams[p.Name] = true
		if idx := paramTable.Lookup(p.Name); idx != symtab.NotFound {
			params[idx] = p.Value
		} else {
			warnings = append(warnings, fmt.Sprintf("parameter %q has a declared value but is never referenced", p.Name))
		}
	}
	var missing []string
	for _, name := range paramTable.Names() {
		if !valuedParams[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, modelerr.WithNames(modelerr.UnspecifiedParameter,
			"parameters referenced but never valued", missing)
	}

	reactions := make([]Reaction, nReactions)
	for i, b := range builds {
		reactions[i] = Reaction{Propensity: b.propensity, Delay: b.delay}
	}

	return &Model{
		speciesTable: speciesTable,
		paramTable:   paramTable,
		state:        state,
		params:       params,
		reactions:    reactions,
		update:       update,
		delayUpdate:  delayUpdate,
		rules:        rules,
		warnings:     warnings,
	}, nil
}

func namesOf(delta map[string]int) map[string]struct{} {
	names := make(map[string]struct{}, len(delta))
	for name := range delta {
		names[name] = struct{}{}
	}
	return names
}

func newIntMatrix(rows, cols int) [][]int {
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}
	return m
}

func applyDelta(matrix [][]int, delta map[string]int, speciesTable *symtab.Table, reactionIdx int) {
	for name, d := range delta {
		idx := speciesTable.Lookup(name)
		matrix[idx][reactionIdx] = d
	}
}

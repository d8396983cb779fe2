// Package sbml implements the SBML-subset importer of spec.md §4.8: it
// reads a small slice of SBML level-independent syntax and produces an
// in-memory document.Document equivalent, ready for the model assembler.
package sbml

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/biomodel/reactor/internal/document"
)

const paramPrefix = "_"

var reservedWords = map[string]bool{"volume": true, "t": true}

// govaluateFuncs stubs every function name the rewritten rate strings may
// call, purely so govaluate's parser accepts the expression; the importer
// only ever uses the resulting EvaluableExpression for Vars() discovery,
// never for Evaluate.
var govaluateFuncs = map[string]govaluate.ExpressionFunction{
	"exp":       passthroughFunc,
	"log":       passthroughFunc,
	"abs":       passthroughFunc,
	"Max":       passthroughFunc,
	"Min":       passthroughFunc,
	"heaviside": passthroughFunc,
}

func passthroughFunc(args ...interface{}) (interface{}, error) {
	if len(args) == 0 {
		return 0.0, nil
	}
	return args[0], nil
}

type sbmlRoot struct {
	Model sbmlModel `xml:"model"`
}

type sbmlModel struct {
	Compartments []sbmlCompartment `xml:"listOfCompartments>compartment"`
	Species      []sbmlSpecies     `xml:"listOfSpecies>species"`
	Parameters   []sbmlParameter   `xml:"listOfParameters>parameter"`
	Reactions    []sbmlReaction    `xml:"listOfReactions>reaction"`
	Rules        []sbmlRule        `xml:"listOfRules>assignmentRule"`
	OtherRules   []sbmlRule        `xml:"listOfRules>rateRule"`
	Events       *struct{}         `xml:"listOfEvents"`
}

type sbmlCompartment struct {
	ID string `xml:"id,attr"`
}

type sbmlSpecies struct {
	ID                   string   `xml:"id,attr"`
	InitialAmount        *float64 `xml:"initialAmount,attr"`
	InitialConcentration *float64 `xml:"initialConcentration,attr"`
}

type sbmlParameter struct {
	ID    string  `xml:"id,attr"`
	Value float64 `xml:"value,attr"`
}

type sbmlSpeciesRef struct {
	Species       string   `xml:"species,attr"`
	Stoichiometry *float64 `xml:"stoichiometry,attr"`
}

type sbmlKineticLaw struct {
	Math            mathNode        `xml:"math"`
	LocalParameters []sbmlParameter `xml:"listOfLocalParameters>localParameter"`
}

type sbmlReaction struct {
	ID         string           `xml:"id,attr"`
	Reversible bool             `xml:"reversible,attr"`
	Reactants  []sbmlSpeciesRef `xml:"listOfReactants>speciesReference"`
	Products   []sbmlSpeciesRef `xml:"listOfProducts>speciesReference"`
	KineticLaw sbmlKineticLaw   `xml:"kineticLaw"`
}

type sbmlRule struct {
	Variable string   `xml:"variable,attr"`
	Math     mathNode `xml:"math"`
}

// Result is an imported model plus the warnings spec.md §4.8 requires for
// every silently-downgraded construct (reversible reactions, skipped rule
// kinds, skipped events/extra compartments, reserved-word collisions).
type Result struct {
	Document *document.Document
	Warnings []string
}

// Import parses an SBML document from r and produces its declarative
// equivalent.
func Import(r io.Reader) (*Result, error) {
	var root sbmlRoot
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding SBML document: %w", err)
	}
	m := root.Model
	res := &Result{Document: &document.Document{}}

	if len(m.Compartments) > 1 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("ignoring %d extra compartments beyond the implicit one", len(m.Compartments)-1))
	}
	if m.Events != nil {
		res.Warnings = append(res.Warnings, "skipping <listOfEvents>: events are out of scope")
	}

	flatParams := map[string]float64{}
	var paramOrder []string
	addParam := func(id string, value float64) {
		if reservedWords[id] {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipping parameter %q: collides with a reserved word", id))
			return
		}
		if _, exists := flatParams[id]; !exists {
			paramOrder = append(paramOrder, id)
		}
		flatParams[id] = value
	}
	for _, p := range m.Parameters {
		addParam(p.ID, p.Value)
	}
	for _, r := range m.Reactions {
		for _, lp := range r.KineticLaw.LocalParameters {
			addParam(lp.ID, lp.Value)
		}
	}
	for _, id := range paramOrder {
		res.Document.Parameters = append(res.Document.Parameters, document.Parameter{Name: id, Value: flatParams[id]})
	}

	for _, sp := range m.Species {
		if reservedWords[sp.ID] {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipping species %q: collides with a reserved word", sp.ID))
			continue
		}
		value := 0.0
		switch {
		case sp.InitialAmount != nil && !math.IsNaN(*sp.InitialAmount) && !math.IsInf(*sp.InitialAmount, 0):
			value = *sp.InitialAmount
		case sp.InitialConcentration != nil:
			value = *sp.InitialConcentration
		}
		res.Document.Species = append(res.Document.Species, document.Species{Name: sp.ID, Value: value})
	}

	for _, r := range m.Reactions {
		reaction, warnings, err := convertReaction(r, flatParams)
		if err != nil {
			return nil, fmt.Errorf("reaction %q: %w", r.ID, err)
		}
		res.Warnings = append(res.Warnings, warnings...)
		res.Document.Reactions = append(res.Document.Reactions, reaction)
	}

	for _, rule := range m.Rules {
		docRule, err := convertAssignmentRule(rule, flatParams)
		if err != nil {
			return nil, fmt.Errorf("assignment rule on %q: %w", rule.Variable, err)
		}
		res.Document.Rules = append(res.Document.Rules, docRule)
	}
	for _, rule := range m.OtherRules {
		res.Warnings = append(res.Warnings, fmt.Sprintf("skipping non-assignment rule on %q", rule.Variable))
	}

	return res, nil
}

func convertReaction(r sbmlReaction, flatParams map[string]float64) (document.Reaction, []string, error) {
	var warnings []string
	if r.Reversible {
		warnings = append(warnings, fmt.Sprintf("reaction %q is reversible; importing its forward kinetic law only", r.ID))
	}

	text := stoichiometryText(r.Reactants, r.Products)

	rate, err := toInfix(r.KineticLaw.Math)
	if err != nil {
		return document.Reaction{}, nil, err
	}
	rate = rewriteParameterReferences(rate, flatParams)

	reaction := document.Reaction{
		Text:       text,
		Propensity: document.Propensity{Type: "general", Fields: map[string]string{"rate": rate}},
		Delay:      document.Delay{Type: "none"},
	}
	return reaction, warnings, nil
}

func stoichiometryText(reactants, products []sbmlSpeciesRef) string {
	var lhs, rhs []string
	for _, ref := range reactants {
		lhs = append(lhs, repeat(ref.Species, coeff(ref.Stoichiometry))...)
	}
	for _, ref := range products {
		rhs = append(rhs, repeat(ref.Species, coeff(ref.Stoichiometry))...)
	}
	return strings.Join(lhs, " + ") + " -- " + strings.Join(rhs, " + ")
}

func coeff(stoich *float64) int {
	if stoich == nil {
		return 1
	}
	n := int(math.Round(*stoich))
	if n < 1 {
		return 1
	}
	return n
}

func repeat(name string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = name
	}
	return out
}

func convertAssignmentRule(rule sbmlRule, flatParams map[string]float64) (document.Rule, error) {
	rhs, err := toInfix(rule.Math)
	if err != nil {
		return document.Rule{}, err
	}
	rhs = rewriteParameterReferences(rhs, flatParams)

	lhs := rule.Variable
	if _, isParam := flatParams[rule.Variable]; isParam {
		lhs = paramPrefix + rule.Variable
	}

	return document.Rule{
		Type: "assignment",
		Fields: map[string]string{
			"frequency": "repeated",
			"equation":  lhs + " = " + rhs,
		},
	}, nil
}

// rewriteParameterReferences finds every free identifier in expr via
// govaluate's Vars() and prefixes the ones that name a known parameter,
// matching the internal convention exprparser expects.
func rewriteParameterReferences(expr string, flatParams map[string]float64) string {
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expr, govaluateFuncs)
	if err != nil {
		return expr
	}
	rewritten := expr
	for _, v := range parsed.Vars() {
		if _, isParam := flatParams[v]; !isParam {
			continue
		}
		rewritten = regexp.MustCompile(`\b`+regexp.QuoteMeta(v)+`\b`).ReplaceAllString(rewritten, paramPrefix+v)
	}
	return rewritten
}

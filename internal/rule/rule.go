// Package rule implements the repeated assignment rules of spec.md §4.5:
// rules evaluated once per simulator step, in model-file declaration
// order, each seeing state as mutated by earlier rules in the same step
// (spec.md §5's ordering guarantee).
package rule

import (
	"strings"

	"github.com/biomodel/reactor/internal/expr"
	"github.com/biomodel/reactor/internal/modelerr"
)

// Type is one of the two supported rule shapes.
type Type string

const (
	TypeAdditive   = Type("additive")
	TypeAssignment = Type("assignment")
)

const repeatedFrequency = "repeated"

const paramPrefix = "_"

// Rule is implemented by both catalog members. Apply mutates state or
// params in place; propensity and expression evaluation never write to
// either vector.
type Rule interface {
	DiscoverNames() (species, params map[string]struct{})
	Bind(lookupSpecies, lookupParam func(name string) int)
	Apply(state expr.State, params expr.Params, time float64)
	// TargetsParameter reports whether this rule's left-hand side names a
	// parameter slot rather than a species slot. The assembler interns
	// both sides of a rule through DiscoverNames and does not need this
	// distinction; it exists for callers that report a rule's target
	// back to a user (cmd/reactor's describe command).
	TargetsParameter() bool
}

// Fields is the rule element's attribute dictionary (type, frequency,
// equation).
type Fields map[string]string

// New constructs the unbound Rule described by fields. frequency must be
// "repeated" (an absent frequency is taken as "repeated"); any other value
// fails with UnsupportedRuleFrequency (spec.md §4.5).
func New(typ Type, fields Fields) (Rule, error) {
	frequency, ok := fields["frequency"]
	if !ok {
		frequency = repeatedFrequency
	}
	if frequency != repeatedFrequency {
		return nil, modelerr.Newf(modelerr.UnsupportedRuleFreq, "rule frequency %q is not supported", frequency)
	}

	equation, ok := fields["equation"]
	if !ok || equation == "" {
		return nil, modelerr.New(modelerr.MalformedReaction, "rule missing required field \"equation\"")
	}
	lhs, rhs, err := splitEquation(equation)
	if err != nil {
		return nil, err
	}

	switch typ {
	case TypeAdditive:
		return newAdditive(lhs, rhs)
	case TypeAssignment:
		return newGeneral(lhs, rhs)
	default:
		return nil, modelerr.Newf(modelerr.UnknownRuleType, "unknown rule type %q", typ)
	}
}

func splitEquation(equation string) (lhs, rhs string, err error) {
	parts := strings.SplitN(equation, "=", 2)
	if len(parts) != 2 {
		return "", "", modelerr.Newf(modelerr.MalformedReaction, "rule equation %q is not of the form lhs = rhs", equation)
	}
	lhs = strings.TrimSpace(parts[0])
	rhs = strings.TrimSpace(parts[1])
	if lhs == "" || rhs == "" {
		return "", "", modelerr.Newf(modelerr.MalformedReaction, "rule equation %q is not of the form lhs = rhs", equation)
	}
	return lhs, rhs, nil
}

// targetsParameter reports whether name is written with the reserved
// parameter marker (the declarative `|` or the internal underscore
// prefix), matching exprparser's own classification rule.
func targetsParameter(name string) (bare string, isParam bool) {
	switch {
	case strings.HasPrefix(name, "|"):
		return strings.TrimPrefix(name, "|"), true
	case strings.HasPrefix(name, paramPrefix) && len(name) > len(paramPrefix):
		return strings.TrimPrefix(name, paramPrefix), true
	default:
		return name, false
	}
}

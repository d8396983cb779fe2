// Package modelerr defines the structural error taxonomy raised at model
// assembly time. Evaluation-time arithmetic (NaN/Inf) is never intercepted
// here; that remains the calling simulator's responsibility.
package modelerr

import (
	"fmt"
	"strings"
)

// Kind identifies one of the fixed error categories a Model assembler can
// raise. See spec.md §7.
type Kind string

const (
	UnparseableRate       = Kind("unparseable-rate")
	MalformedReaction     = Kind("malformed-reaction")
	InvalidStoichiometry  = Kind("invalid-stoichiometry")
	UnknownPropensityType = Kind("unknown-propensity-type")
	UnknownDelayType      = Kind("unknown-delay-type")
	UnknownRuleType       = Kind("unknown-rule-type")
	UnsupportedRuleFreq   = Kind("unsupported-rule-frequency")
	UnspecifiedParameter  = Kind("unspecified-parameter")
	ImpossibleDivision    = Kind("impossible-division")
	LookupErrorKind       = Kind("lookup-error")
)

// Error is the single error type for every structural failure raised while
// assembling or querying a Model. It carries a Kind so callers can
// discriminate with errors.Is/As without string matching, and a Detail for
// the human-readable message.
type Error struct {
	Kind   Kind
	Detail string
	// Names collects every offending name for errors that can report more
	// than one in a single pass (UnspecifiedParameter's "lists every
	// missing name" requirement).
	Names []string
	Cause error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Kind, e.Detail)
	if len(e.Names) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Names, ", "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is(err, modelerr.Sentinel(modelerr.UnparseableRate)) style comparisons by
// treating Kind as the identity of the error.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds a plain *Error of the given kind.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Newf builds a plain *Error with a formatted detail message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error of the given kind that wraps cause.
func Wrap(kind Kind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, Cause: cause}
}

// WithNames builds an *Error carrying a sorted-by-caller list of offending
// names, used by UnspecifiedParameter to report every missing parameter in
// one failure instead of one-at-a-time.
func WithNames(kind Kind, detail string, names []string) *Error {
	return &Error{Kind: kind, Detail: detail, Names: names}
}

// Sentinel values usable with errors.Is(err, modelerr.Sentinel(modelerr.UnparseableRate)).
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}

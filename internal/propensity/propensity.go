// Package propensity implements the closed catalog of reaction rate-law
// shapes described in spec.md §4.3. Every variant carries only integer
// indices after binding; the hot evaluation path never touches strings.
package propensity

import (
	"strings"

	"github.com/biomodel/reactor/internal/expr"
	"github.com/biomodel/reactor/internal/modelerr"
)

// Type is one of the fixed propensity shapes addressable from a declarative
// model's `propensity type="..."` attribute.
type Type string

const (
	TypeConstitutive             = Type("constitutive")
	TypeUnimolecular             = Type("unimolecular")
	TypeBimolecular              = Type("bimolecular")
	TypeMassAction               = Type("massaction")
	TypeHillPositive             = Type("hillpositive")
	TypeHillNegative             = Type("hillnegative")
	TypeProportionalHillPositive = Type("proportionalhillpositive")
	TypeProportionalHillNegative = Type("proportionalhillnegative")
	TypeGeneral                  = Type("general")
)

// Propensity is implemented by every catalog member. GetPropensity and
// GetVolumePropensity are the hot path called once per candidate firing by
// the (external) simulator loop; they must never allocate.
type Propensity interface {
	// DiscoverNames returns the free species and parameter names this
	// propensity's attributes reference, without requiring a symbol
	// table (spec.md §4.3's discoverability contract).
	DiscoverNames() (species, params map[string]struct{})
	// Bind resolves every discovered name to a dense index. It is
	// called exactly once, after the model assembler's symbol table is
	// final.
	Bind(lookupSpecies, lookupParam func(name string) int)
	GetPropensity(state expr.State, params expr.Params, time float64) float64
	GetVolumePropensity(state expr.State, params expr.Params, volume, time float64) float64
}

// Fields is the small attribute dictionary a propensity element carries in
// the declarative model (k, species, s1, d, K, n, rate, ...). New only
// inspects the keys a given Type actually uses; unrecognized keys are
// ignored without a failure and without a warning.
type Fields map[string]string

// New constructs the uninitialized (unbound) Propensity for typ from its
// attribute Fields. It fails with MalformedReaction if a required
// attribute is missing, InvalidStoichiometry if a mass-action species list
// contains `+`/`-`, or UnknownPropensityType for an unrecognized typ.
func New(typ Type, fields Fields) (Propensity, error) {
	switch typ {
	case TypeConstitutive:
		return newConstitutive(fields)
	case TypeUnimolecular:
		return newUnimolecular(fields)
	case TypeBimolecular:
		return newBimolecular(fields)
	case TypeMassAction:
		return newMassAction(fields)
	case TypeHillPositive:
		return newHill(fields, true)
	case TypeHillNegative:
		return newHill(fields, false)
	case TypeProportionalHillPositive:
		return newProportionalHill(fields, true)
	case TypeProportionalHillNegative:
		return newProportionalHill(fields, false)
	case TypeGeneral:
		return newGeneral(fields)
	default:
		return nil, modelerr.Newf(modelerr.UnknownPropensityType, "unknown propensity type %q", typ)
	}
}

// SpecializeMassAction implements spec.md §4.7's propensity selection
// shortcut: a `massaction` propensity with 0, 1, or 2 operand species is
// semantically identical to Constitutive/Unimolecular/Bimolecular, which
// skip the general n-ary product loop. Three or more operands keep
// TypeMassAction. The returned Fields are a new catalog-appropriate
// attribute set, not a mutation of fields.
func SpecializeMassAction(fields Fields) (Type, Fields, error) {
	k, err := requireField(fields, "k")
	if err != nil {
		return "", nil, err
	}
	names, err := splitMassActionSpecies(fields["species"])
	if err != nil {
		return "", nil, err
	}
	switch len(names) {
	case 0:
		return TypeConstitutive, Fields{"k": k}, nil
	case 1:
		return TypeUnimolecular, Fields{"k": k, "species": names[0]}, nil
	case 2:
		return TypeBimolecular, Fields{"k": k, "s1": names[0], "s2": names[1]}, nil
	default:
		return TypeMassAction, fields, nil
	}
}

func requireField(fields Fields, key string) (string, error) {
	v, ok := fields[key]
	if !ok || v == "" {
		return "", modelerr.Newf(modelerr.MalformedReaction, "propensity missing required field %q", key)
	}
	return v, nil
}

// splitMassActionSpecies splits a `*`-separated species product and rejects
// `+`/`-` inside it per spec.md §4.3.
func splitMassActionSpecies(field string) ([]string, error) {
	if strings.ContainsAny(field, "+-") {
		return nil, modelerr.Newf(modelerr.InvalidStoichiometry, "mass-action species field %q contains +/-", field)
	}
	if field == "" {
		return nil, nil
	}
	parts := strings.Split(field, "*")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, nil
}

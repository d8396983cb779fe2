// Package delay implements the closed catalog of reaction-firing delay
// distributions described in spec.md §4.4. Every variant shares the
// binding contract used by propensity.Propensity.
package delay

import (
	"math/rand"

	"github.com/biomodel/reactor/internal/expr"
	"github.com/biomodel/reactor/internal/modelerr"
)

// Type is one of the fixed delay distribution shapes.
type Type string

const (
	TypeNone     = Type("none")
	TypeFixed    = Type("fixed")
	TypeGaussian = Type("gaussian")
	TypeGamma    = Type("gamma")
)

// Delay samples a non-negative-in-intent waiting time once per reaction
// firing. GaussianDelay can in fact sample negative values; this layer
// returns them as-is, leaving the clamp-or-reject decision to the
// simulator's delay queue (spec.md §9 Open Questions).
type Delay interface {
	DiscoverNames() (species, params map[string]struct{})
	Bind(lookupSpecies, lookupParam func(name string) int)
	// Sample draws one delay value using rng for any distribution that
	// needs randomness; None and Fixed ignore it.
	Sample(params expr.Params, rng *rand.Rand) float64
}

// Fields is the delay element's attribute dictionary (delay, mean, std, k,
// theta).
type Fields map[string]string

// New constructs the unbound Delay for typ.
func New(typ Type, fields Fields) (Delay, error) {
	switch typ {
	case TypeNone:
		return &None{}, nil
	case TypeFixed:
		return newFixed(fields)
	case TypeGaussian:
		return newGaussian(fields)
	case TypeGamma:
		return newGamma(fields)
	default:
		return nil, modelerr.Newf(modelerr.UnknownDelayType, "unknown delay type %q", typ)
	}
}

func requireField(fields Fields, key string) (string, error) {
	v, ok := fields[key]
	if !ok || v == "" {
		return "", modelerr.Newf(modelerr.MalformedReaction, "delay missing required field %q", key)
	}
	return v, nil
}

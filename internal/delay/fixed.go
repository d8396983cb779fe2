package delay

import (
	"math/rand"

	"github.com/biomodel/reactor/internal/expr"
)

// Fixed returns a constant delay read from the parameter vector.
type Fixed struct {
	delayName  string
	delayIndex int
}

func newFixed(fields Fields) (*Fixed, error) {
	name, err := requireField(fields, "delay")
	if err != nil {
		return nil, err
	}
	return &Fixed{delayName: name}, nil
}

func (f *Fixed) DiscoverNames() (species, params map[string]struct{}) {
	return nil, map[string]struct{}{f.delayName: {}}
}

func (f *Fixed) Bind(_ func(string) int, lookupParam func(string) int) {
	f.delayIndex = lookupParam(f.delayName)
}

func (f *Fixed) Sample(params expr.Params, _ *rand.Rand) float64 {
	return params[f.delayIndex]
}

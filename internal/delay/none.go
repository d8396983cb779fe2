package delay

import (
	"math/rand"

	"github.com/biomodel/reactor/internal/expr"
)

// None always returns 0.0 deterministically.
type None struct{}

func (n *None) DiscoverNames() (species, params map[string]struct{}) { return nil, nil }
func (n *None) Bind(func(string) int, func(string) int)              {}
func (n *None) Sample(expr.Params, *rand.Rand) float64                { return 0.0 }

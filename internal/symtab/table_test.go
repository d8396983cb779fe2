package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIsMonotonicAndIdempotent(t *testing.T) {
	tbl := New()

	idxX := tbl.Intern("x")
	idxY := tbl.Intern("y")
	idxXAgain := tbl.Intern("x")

	assert.Equal(t, Index(0), idxX)
	assert.Equal(t, Index(1), idxY)
	assert.Equal(t, idxX, idxXAgain, "re-interning must return the original index")
	assert.Equal(t, 2, tbl.Len())
}

func TestLookupUnknownReturnsNotFound(t *testing.T) {
	tbl := New()
	tbl.Intern("x")

	assert.Equal(t, NotFound, tbl.Lookup("missing"))
	assert.True(t, tbl.Has("x"))
	assert.False(t, tbl.Has("missing"))
}

func TestNamesAreInjectiveOverFullIndexRange(t *testing.T) {
	tbl := New()
	names := []string{"mRNA", "protein", "k_tl", "delta_p"}
	for _, n := range names {
		tbl.Intern(n)
	}

	seen := map[Index]bool{}
	for i, n := range names {
		idx := tbl.Lookup(n)
		require.NotEqual(t, NotFound, idx)
		assert.False(t, seen[idx], "index %d reused", idx)
		seen[idx] = true
		assert.Equal(t, n, tbl.Name(idx))
		assert.Equal(t, Index(i), idx, "indices assigned in insertion order")
	}
	assert.Equal(t, len(names), tbl.Len())
}

package exprparser

import (
	"testing"

	"github.com/biomodel/reactor/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpressionRoundTrip is spec.md §8 scenario 4: "2*x + exp(_k)" with
// species x and parameter k evaluates to 2*3 + e^0 = 7.0 at x=3, k=0.
func TestExpressionRoundTrip(t *testing.T) {
	result, err := Parse("2*x + exp(_k)")
	require.NoError(t, err)

	assert.Contains(t, result.Species, "x")
	assert.Contains(t, result.Params, "k")

	expr.Bind(result.Term, func(name string) int {
		if name == "x" {
			return 0
		}
		t.Fatalf("unexpected species %q", name)
		return -1
	}, func(name string) int {
		if name == "k" {
			return 0
		}
		t.Fatalf("unexpected parameter %q", name)
		return -1
	})

	got := result.Term.Evaluate(expr.State{3}, expr.Params{0}, 0)
	assert.InDelta(t, 7.0, got, 1e-12)
}

func TestPipeSyntaxAndUnderscoreSyntaxAreEquivalent(t *testing.T) {
	piped, err := Parse("|k * x")
	require.NoError(t, err)
	underscored, err := Parse("_k * x")
	require.NoError(t, err)

	assert.Equal(t, piped.Params, underscored.Params)
	assert.Equal(t, piped.Species, underscored.Species)
}

func TestVolumeAndTimeAreKeywordsNotSpecies(t *testing.T) {
	result, err := Parse("|k * volume + t")
	require.NoError(t, err)

	assert.NotContains(t, result.Species, "volume")
	assert.NotContains(t, result.Species, "t")
	assert.Contains(t, result.Params, "k")
}

func TestCaretIsPower(t *testing.T) {
	result, err := Parse("x^2")
	require.NoError(t, err)
	expr.Bind(result.Term, func(string) int { return 0 }, func(string) int { return 0 })
	got := result.Term.Evaluate(expr.State{3}, nil, 0)
	assert.InDelta(t, 9.0, got, 1e-12)
}

func TestUnaryMinusBindsLooserThanCaret(t *testing.T) {
	result, err := Parse("-2^2")
	require.NoError(t, err)
	got := result.Term.Evaluate(nil, nil, 0)
	assert.InDelta(t, -4.0, got, 1e-12)
}

func TestMaxMinFunctions(t *testing.T) {
	result, err := Parse("Max(1, 5, 3)")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, result.Term.Evaluate(nil, nil, 0), 1e-12)

	result, err = Parse("Min(1, 5, 3)")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Term.Evaluate(nil, nil, 0), 1e-12)
}

func TestUnparseableRateFails(t *testing.T) {
	_, err := Parse("2 +* 3")
	require.Error(t, err)

	_, err = Parse("")
	require.Error(t, err)
}

func TestUnknownFunctionFails(t *testing.T) {
	_, err := Parse("frobnicate(x)")
	require.Error(t, err)
}

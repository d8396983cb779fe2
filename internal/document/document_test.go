package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<model>
	<species name="A" value="10"/>
	<species name="B" value="0"/>
	<parameter name="k" value="0.5"/>
	<reaction text="A -- B">
		<propensity type="unimolecular" k="k" species="A"/>
		<delay type="none"/>
	</reaction>
	<rule type="additive" frequency="repeated" equation="B = A + 1"/>
</model>`

func TestLoadParsesReactionsSpeciesParametersAndRules(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	require.Len(t, doc.Species, 2)
	assert.Equal(t, "A", doc.Species[0].Name)
	assert.Equal(t, 10.0, doc.Species[0].Value)

	require.Len(t, doc.Parameters, 1)
	assert.Equal(t, "k", doc.Parameters[0].Name)

	require.Len(t, doc.Reactions, 1)
	r := doc.Reactions[0]
	assert.Equal(t, "A -- B", r.Text)
	assert.Equal(t, "unimolecular", r.Propensity.Type)
	assert.Equal(t, "k", r.Propensity.Fields["k"])
	assert.Equal(t, "A", r.Propensity.Fields["species"])
	assert.Equal(t, "none", r.Delay.Type)

	require.Len(t, doc.Rules, 1)
	assert.Equal(t, "additive", doc.Rules[0].Type)
	assert.Equal(t, "B = A + 1", doc.Rules[0].Fields["equation"])
}

func TestValidateFlagsDuplicatesAndEmptyText(t *testing.T) {
	doc := &Document{
		Species:    []Species{{Name: "A"}, {Name: "A"}},
		Parameters: []Parameter{{Name: "k"}, {Name: "k"}},
		Reactions:  []Reaction{{Text: ""}},
	}
	warnings := doc.Validate()
	assert.Len(t, warnings, 3)
}

func TestValidateCleanDocumentHasNoWarnings(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	assert.Empty(t, doc.Validate())
}

func TestParseStoichiometrySimple(t *testing.T) {
	s, err := ParseStoichiometry("A + A + B -- C")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, s.Reactants)
	assert.Equal(t, map[string]int{"C": 1}, s.Products)
	assert.Equal(t, map[string]int{"A": -2, "B": -1, "C": 1}, s.Delta())
}

func TestParseStoichiometryEmptySides(t *testing.T) {
	source, err := ParseStoichiometry(" -- A")
	require.NoError(t, err)
	assert.Empty(t, source.Reactants)
	assert.Equal(t, map[string]int{"A": 1}, source.Products)

	sink, err := ParseStoichiometry("A --")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 1}, sink.Reactants)
	assert.Empty(t, sink.Products)
}

func TestParseStoichiometryMissingSeparatorFails(t *testing.T) {
	_, err := ParseStoichiometry("A + B")
	require.Error(t, err)
}

func TestParseStoichiometryDanglingPlusFails(t *testing.T) {
	_, err := ParseStoichiometry("A + -- B")
	require.Error(t, err)
}

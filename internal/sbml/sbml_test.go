package sbml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSBML = `<sbml>
  <model>
    <listOfCompartments>
      <compartment id="cell"/>
    </listOfCompartments>
    <listOfSpecies>
      <species id="A" initialAmount="10"/>
      <species id="B" initialConcentration="5"/>
    </listOfSpecies>
    <listOfParameters>
      <parameter id="k" value="0.2"/>
    </listOfParameters>
    <listOfReactions>
      <reaction id="r1" reversible="false">
        <listOfReactants>
          <speciesReference species="A" stoichiometry="1"/>
        </listOfReactants>
        <listOfProducts>
          <speciesReference species="B" stoichiometry="1"/>
        </listOfProducts>
        <kineticLaw>
          <math>
            <apply>
              <times/>
              <ci>k</ci>
              <ci>A</ci>
            </apply>
          </math>
        </kineticLaw>
      </reaction>
    </listOfReactions>
    <listOfRules>
      <assignmentRule variable="k">
        <math>
          <apply>
            <plus/>
            <ci>k</ci>
            <cn>1</cn>
          </apply>
        </math>
      </assignmentRule>
    </listOfRules>
  </model>
</sbml>`

func TestImportBasicModel(t *testing.T) {
	res, err := Import(strings.NewReader(sampleSBML))
	require.NoError(t, err)

	require.Len(t, res.Document.Species, 2)
	assert.Equal(t, "A", res.Document.Species[0].Name)
	assert.Equal(t, 10.0, res.Document.Species[0].Value)
	assert.Equal(t, "B", res.Document.Species[1].Name)
	assert.Equal(t, 5.0, res.Document.Species[1].Value)

	require.Len(t, res.Document.Parameters, 1)
	assert.Equal(t, "k", res.Document.Parameters[0].Name)

	require.Len(t, res.Document.Reactions, 1)
	r := res.Document.Reactions[0]
	assert.Equal(t, "A -- B", r.Text)
	assert.Equal(t, "general", r.Propensity.Type)
	assert.Contains(t, r.Propensity.Fields["rate"], "_k")
	assert.Contains(t, r.Propensity.Fields["rate"], "A")

	require.Len(t, res.Document.Rules, 1)
	assert.Equal(t, "_k = (_k + 1)", res.Document.Rules[0].Fields["equation"])
}

func TestImportReversibleReactionWarns(t *testing.T) {
	src := strings.Replace(sampleSBML, `reversible="false"`, `reversible="true"`, 1)
	res, err := Import(strings.NewReader(src))
	require.NoError(t, err)
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "reversible") {
			found = true
		}
	}
	assert.True(t, found, "expected a reversible-reaction warning")
}

func TestImportSkipsReservedWordSpecies(t *testing.T) {
	src := strings.Replace(sampleSBML, `<species id="A" initialAmount="10"/>`, `<species id="t" initialAmount="10"/>`, 1)
	res, err := Import(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, res.Document.Species, 1)
	assert.Equal(t, "B", res.Document.Species[0].Name)
}

func TestImportRepeatsStoichiometryByCoefficient(t *testing.T) {
	src := strings.Replace(sampleSBML, `<speciesReference species="A" stoichiometry="1"/>`, `<speciesReference species="A" stoichiometry="2"/>`, 1)
	res, err := Import(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "A + A -- B", res.Document.Reactions[0].Text)
}

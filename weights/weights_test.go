package weights

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"latbuilder-go/projection"
)

func TestProductWeightOfEmptyIsZero(t *testing.T) {
	p := &Product{Default: 0.5}
	require.Zero(t, p.GetWeight(projection.New()))
}

func TestProductWeightMultiplies(t *testing.T) {
	p := &Product{Default: 0.5, Coord: []float64{0.1, 0.2}}
	u := projection.New(0, 1, 2)
	require.InDelta(t, 0.1*0.2*0.5, p.GetWeight(u), 1e-12)
}

func TestOrderDependentUsesCardinality(t *testing.T) {
	o := &OrderDependent{Default: 9, ByOrder: []float64{1, 2, 3}}
	require.Equal(t, 2.0, o.GetWeight(projection.New(0, 1)))
	require.Equal(t, 9.0, o.GetWeight(projection.New(0, 1, 2, 3)), "beyond the table, Default applies")
}

func TestProjectionDependentExplicitOverridesDefault(t *testing.T) {
	pd := NewProjectionDependent(0)
	u := projection.New(0, 2)
	pd.Set(u, 0.75)
	require.Equal(t, 0.75, pd.GetWeight(u))
	require.Zero(t, pd.GetWeight(projection.New(1)))

	found := pd.ProjectionsWithMaxCoord(2)
	require.Len(t, found, 1)
	require.Equal(t, u.Key(), found[0].Key())
}

func TestCombinedSums(t *testing.T) {
	a := &Product{Default: 1, Coord: []float64{0.5}}
	b := &OrderDependent{Default: 0, ByOrder: []float64{0.25}}
	c := &Combined{List: []Weights{a, b}}
	u := projection.New(0)
	require.InDelta(t, 0.5+0.25, c.GetWeight(u), 1e-12)
}

// TestInterlacedPODScenarioS6 matches the worked example in the package doc
// comment: with Base.OD.ByOrder[2]=Gamma_3=1 and a constant product weight
// gamma_1, IPOD.GetWeight({0,1,2}) must equal gamma_1 * (1/2)^(1+2+3).
func TestInterlacedPODScenarioS6(t *testing.T) {
	gamma1 := 0.3
	base := POD{
		OD:   OrderDependent{Default: 0, ByOrder: []float64{0, 0, 1}},
		Prod: Product{Default: gamma1},
	}
	ip := &InterlacedPOD{Base: base}
	u := projection.New(0, 1, 2)
	want := gamma1 * math.Pow(0.5, 1+2+3)
	require.InDelta(t, want, ip.GetWeight(u), 1e-12)
}

func TestValidateRejectsNegativeWeights(t *testing.T) {
	p := &Product{Default: -1}
	require.Error(t, Validate(p, 3))
}

package alloy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vsalloycalc/alloy"
	"vsalloycalc/calculator"
	"vsalloycalc/data"
)

func tinBronzeDefault(t *testing.T) *alloy.Alloy {
	t.Helper()
	a, err := alloy.Default(data.TinBronze)
	require.NoError(t, err)
	return a
}

// snapshot captures everything an accessor can observe, for atomicity checks.
type snapshot struct {
	id          data.AlloyID
	name        string
	percentages []data.Percent
	numIngots   int
	maxIngots   int
	nuggets     []data.NuggetCount
}

func capture(a *alloy.Alloy) snapshot {
	return snapshot{
		id:          a.ID(),
		name:        a.Name(),
		percentages: a.Percentages(),
		numIngots:   a.NumIngots(),
		maxIngots:   a.MaxIngots(),
		nuggets:     a.Nuggets(),
	}
}

func TestDefault(t *testing.T) {
	a := tinBronzeDefault(t)
	assert.Equal(t, data.TinBronze, a.ID())
	assert.Equal(t, "Tin Bronze", a.Name())
	assert.Equal(t, 1, a.NumIngots())
	assert.Equal(t, 20, a.MaxIngots())
	assert.Equal(t, []data.Percent{{Metal: data.Copper, Value: 0.92}, {Metal: data.Tin, Value: 0.08}}, a.Percentages())
	assert.Equal(t, []data.NuggetCount{{Metal: data.Copper, Count: 18}, {Metal: data.Tin, Count: 2}}, a.Nuggets())
}

func TestDefault_AllKinds(t *testing.T) {
	for _, id := range data.AllAlloyIDs() {
		a, err := alloy.Default(id)
		require.NoError(t, err, id)
		info, _ := data.GetAlloyByID(id)
		assert.Equal(t, info.Name, a.Name())
		assert.Equal(t, 1, a.NumIngots())
		assert.Equal(t, info.DefaultMaxIngots, a.MaxIngots())
		assert.Equal(t, info.DefaultNuggets, a.Nuggets())
	}
	_, err := alloy.Default(data.AlloyID("mithril"))
	assert.ErrorIs(t, err, calculator.ErrUnknownAlloy)
}

func TestNew_MatchesDefaultRecipe(t *testing.T) {
	built, err := alloy.New(data.TinBronze,
		[]data.Percent{{Metal: data.Copper, Value: 0.92}, {Metal: data.Tin, Value: 0.08}}, 1)
	require.NoError(t, err)
	assert.Equal(t, capture(tinBronzeDefault(t)), capture(built))
}

func TestNew_OrderIndependent(t *testing.T) {
	mixes := [][]data.Percent{
		{{Metal: data.Copper, Value: 0.60}, {Metal: data.Zinc, Value: 0.20}, {Metal: data.Bismuth, Value: 0.20}},
		{{Metal: data.Bismuth, Value: 0.20}, {Metal: data.Copper, Value: 0.60}, {Metal: data.Zinc, Value: 0.20}},
		{{Metal: data.Zinc, Value: 0.20}, {Metal: data.Bismuth, Value: 0.20}, {Metal: data.Copper, Value: 0.60}},
	}
	first, err := alloy.New(data.BismuthBronze, mixes[0], 13)
	require.NoError(t, err)
	assert.Equal(t, []data.NuggetCount{
		{Metal: data.Copper, Count: 156},
		{Metal: data.Zinc, Count: 52},
		{Metal: data.Bismuth, Count: 52},
	}, first.Nuggets())
	for _, mix := range mixes[1:] {
		other, err := alloy.New(data.BismuthBronze, mix, 13)
		require.NoError(t, err)
		assert.Equal(t, capture(first), capture(other))
	}
}

func TestNew_Errors(t *testing.T) {
	valid := []data.Percent{{Metal: data.Copper, Value: 0.92}, {Metal: data.Tin, Value: 0.08}}

	_, err := alloy.New(data.TinBronze, valid, 30)
	assert.ErrorIs(t, err, calculator.ErrTooManyIngots)
	_, err = alloy.New(data.TinBronze, valid, 0)
	assert.ErrorIs(t, err, calculator.ErrTooFewIngots)
	_, err = alloy.New(data.TinBronze, valid, -1)
	assert.ErrorIs(t, err, calculator.ErrTooFewIngots)

	_, err = alloy.New(data.TinBronze,
		[]data.Percent{{Metal: data.Copper, Value: 0.08}, {Metal: data.Tin, Value: 0.92}}, 1)
	assert.ErrorIs(t, err, calculator.ErrInvalidPercentages)
	_, err = alloy.New(data.TinBronze,
		[]data.Percent{{Metal: data.Lead, Value: 0.92}, {Metal: data.Copper, Value: 0.08}}, 1)
	assert.ErrorIs(t, err, calculator.ErrInvalidBaseMetals)
}

func TestSetNumIngots(t *testing.T) {
	a := tinBronzeDefault(t)
	require.NoError(t, a.SetNumIngots(5))
	assert.Equal(t, 5, a.NumIngots())
	assert.Equal(t, []data.NuggetCount{{Metal: data.Copper, Count: 92}, {Metal: data.Tin, Count: 8}}, a.Nuggets())
	assert.Equal(t, 20, a.MaxIngots())
}

func TestSetNumIngots_FailureLeavesHandleUntouched(t *testing.T) {
	a := tinBronzeDefault(t)
	require.NoError(t, a.SetNumIngots(5))
	before := capture(a)

	assert.ErrorIs(t, a.SetNumIngots(100), calculator.ErrTooManyIngots)
	assert.Equal(t, before, capture(a))
	assert.ErrorIs(t, a.SetNumIngots(21), calculator.ErrTooManyIngots, "over this composition's max of 20")
	assert.Equal(t, before, capture(a))
	assert.ErrorIs(t, a.SetNumIngots(0), calculator.ErrTooFewIngots)
	assert.Equal(t, before, capture(a))
	assert.ErrorIs(t, a.SetNumIngots(-4), calculator.ErrTooFewIngots)
	assert.Equal(t, before, capture(a))
}

func TestSetPercentages(t *testing.T) {
	a := tinBronzeDefault(t)
	require.NoError(t, a.SetPercentages(
		[]data.Percent{{Metal: data.Tin, Value: 0.12}, {Metal: data.Copper, Value: 0.88}}))

	// Canonical order regardless of input order, and derived values refreshed.
	assert.Equal(t, []data.Percent{{Metal: data.Copper, Value: 0.88}, {Metal: data.Tin, Value: 0.12}}, a.Percentages())
	assert.Equal(t, []data.NuggetCount{{Metal: data.Copper, Count: 18}, {Metal: data.Tin, Count: 2}}, a.Nuggets())
	assert.Equal(t, 21, a.MaxIngots())
	assert.Equal(t, 1, a.NumIngots())
}

func TestSetPercentages_FailureLeavesHandleUntouched(t *testing.T) {
	a := tinBronzeDefault(t)
	before := capture(a)

	err := a.SetPercentages([]data.Percent{{Metal: data.Copper, Value: 0.12}, {Metal: data.Tin, Value: 0.88}})
	assert.ErrorIs(t, err, calculator.ErrInvalidPercentages)
	assert.Equal(t, before, capture(a))

	err = a.SetPercentages([]data.Percent{{Metal: data.Lead, Value: 0.92}, {Metal: data.Copper, Value: 0.08}})
	assert.ErrorIs(t, err, calculator.ErrInvalidBaseMetals)
	assert.Equal(t, before, capture(a))

	err = a.SetPercentages(nil)
	assert.ErrorIs(t, err, calculator.ErrInvalidValues)
	assert.Equal(t, before, capture(a))
}

// A composition change that shrinks the achievable maximum below the current
// ingot count must be rejected whole, leaving the handle on the old mix.
func TestSetPercentages_RejectedWhenMaxDropsBelowCurrentIngots(t *testing.T) {
	a, err := alloy.New(data.BismuthBronze,
		[]data.Percent{{Metal: data.Copper, Value: 0.50}, {Metal: data.Zinc, Value: 0.30}, {Metal: data.Bismuth, Value: 0.20}}, 20)
	require.NoError(t, err)
	require.Equal(t, 21, a.MaxIngots())
	before := capture(a)

	// This mix only packs 18 ingots into the crucible, but the handle holds 20.
	err = a.SetPercentages([]data.Percent{
		{Metal: data.Copper, Value: 0.70}, {Metal: data.Zinc, Value: 0.20}, {Metal: data.Bismuth, Value: 0.10}})
	assert.ErrorIs(t, err, calculator.ErrTooManyIngots)
	assert.Equal(t, before, capture(a))
}

func TestSetValues(t *testing.T) {
	a := tinBronzeDefault(t)
	require.NoError(t, a.SetValues(
		[]data.Percent{{Metal: data.Copper, Value: 0.88}, {Metal: data.Tin, Value: 0.12}}, 10))
	assert.Equal(t, 10, a.NumIngots())
	assert.Equal(t, 21, a.MaxIngots())
	assert.Equal(t, []data.NuggetCount{{Metal: data.Copper, Count: 176}, {Metal: data.Tin, Count: 24}}, a.Nuggets())

	before := capture(a)
	assert.ErrorIs(t, a.SetValues(nil, 0), calculator.ErrInvalidValues)
	assert.Equal(t, before, capture(a))
}

func TestCheckValidPercentages(t *testing.T) {
	canonical, err := alloy.CheckValidPercentages(data.TinBronze,
		[]data.Percent{{Metal: data.Tin, Value: 0.08}, {Metal: data.Copper, Value: 0.92}})
	require.NoError(t, err)
	assert.Equal(t, []data.Percent{{Metal: data.Copper, Value: 0.92}, {Metal: data.Tin, Value: 0.08}}, canonical)

	_, err = alloy.CheckValidPercentages(data.TinBronze,
		[]data.Percent{{Metal: data.Copper, Value: 0.95}, {Metal: data.Tin, Value: 0.05}})
	assert.ErrorIs(t, err, calculator.ErrInvalidPercentages)
}

func TestPercentageRanges(t *testing.T) {
	ranges, err := alloy.PercentageRanges(data.TinBronze)
	require.NoError(t, err)
	assert.Equal(t, []data.IngredientInfo{
		{Metal: data.Copper, Range: data.Range{Min: 0.88, Max: 0.92}},
		{Metal: data.Tin, Range: data.Range{Min: 0.08, Max: 0.12}},
	}, ranges)

	a := tinBronzeDefault(t)
	assert.Equal(t, ranges, a.PercentageRanges())

	_, err = alloy.PercentageRanges(data.AlloyID("mithril"))
	assert.ErrorIs(t, err, calculator.ErrUnknownAlloy)
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := tinBronzeDefault(t)
	nuggets := a.Nuggets()
	nuggets[0].Count = 999
	percentages := a.Percentages()
	percentages[0].Value = 0.5

	assert.Equal(t, 18, a.Nuggets()[0].Count, "mutating a returned slice must not reach the handle")
	assert.Equal(t, float32(0.92), a.Percentages()[0].Value)
}

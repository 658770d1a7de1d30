// Package calculator contains the core logic for validating alloy
// compositions and calculating the nuggets required to smelt them.
//
// All fraction arithmetic is done in float32, matching the game's own unit
// math; nugget counts are whole integers.
package calculator

import (
	"errors"
	"fmt"
	"math"

	"vsalloycalc/data"
)

// The closed error set. Every failure reported by this package wraps exactly
// one of these sentinels, so callers can dispatch with errors.Is.
var (
	// ErrInvalidPercentages is returned when a composition has the wrong
	// number of entries, does not sum to 1.0 within tolerance, or has a value
	// outside its recipe range.
	ErrInvalidPercentages = errors.New("invalid percentages")
	// ErrInvalidBaseMetals is returned when a composition names a metal the
	// alloy does not contain, or names the same metal twice.
	ErrInvalidBaseMetals = errors.New("invalid base metals")
	// ErrInvalidConstituentAmounts is returned when a nugget vector is
	// shorter than the alloy's ingredient list.
	ErrInvalidConstituentAmounts = errors.New("invalid constituent amounts")
	// ErrInvalidValues is returned when an update supplies neither new
	// percentages nor a new ingot count.
	ErrInvalidValues = errors.New("invalid values")
	// ErrTooManyIngots is returned when the requested ingot count exceeds
	// what the composition can yield from one crucible.
	ErrTooManyIngots = errors.New("too many ingots")
	// ErrTooFewIngots is returned when the requested ingot count is zero or
	// negative.
	ErrTooFewIngots = errors.New("too few ingots")
	// ErrUnknownAlloy is returned when an AlloyID is not in the recipe table.
	ErrUnknownAlloy = errors.New("unknown alloy")
)

const (
	// percentSumEpsilon is the tolerance for a composition's fractions
	// summing to 1.0.
	percentSumEpsilon = 0.01

	// maxIngotsEpsilon bounds the acceptable unit remainder when testing
	// whether an ingot count divides cleanly across the composition. The
	// game compares the remainder to exactly zero, which is brittle under
	// IEEE-754; 0.01 units (1e-4 of an ingot) accepts only float rounding
	// noise.
	maxIngotsEpsilon = 0.01
)

// ValidatePercentages checks a proposed composition against the alloy's
// recipe: exactly the recipe's constituents, each exactly once, each within
// its range, summing to 1.0 within tolerance. The input may list the metals
// in any order; on success the composition is returned reordered to the
// recipe's canonical order.
func ValidatePercentages(alloyID data.AlloyID, percents []data.Percent) ([]data.Percent, error) {
	alloy, ok := data.GetAlloyByID(alloyID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlloy, alloyID)
	}

	if len(percents) != len(alloy.Ingredients) {
		return nil, fmt.Errorf("%w: %s takes %d constituents, got %d",
			ErrInvalidPercentages, alloy.Name, len(alloy.Ingredients), len(percents))
	}

	var sum float32
	for _, p := range percents {
		sum += p.Value
	}
	if abs32(sum-1.0) >= percentSumEpsilon {
		return nil, fmt.Errorf("%w: fractions for %s sum to %.4f, want 1.0",
			ErrInvalidPercentages, alloy.Name, sum)
	}

	canonical := make([]data.Percent, len(alloy.Ingredients))
	seen := make([]bool, len(alloy.Ingredients))
	for _, p := range percents {
		i := ingredientIndex(alloy, p.Metal)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s is not a constituent of %s",
				ErrInvalidBaseMetals, p.Metal.Name(), alloy.Name)
		}
		if seen[i] {
			return nil, fmt.Errorf("%w: duplicate %s in %s",
				ErrInvalidBaseMetals, p.Metal.Name(), alloy.Name)
		}
		r := alloy.Ingredients[i].Range
		if !r.Contains(p.Value) {
			return nil, fmt.Errorf("%w: %s (%.2f) is outside the allowed range [%.2f-%.2f] in %s",
				ErrInvalidPercentages, p.Metal.Name(), p.Value, r.Min, r.Max, alloy.Name)
		}
		seen[i] = true
		canonical[i] = p
	}
	return canonical, nil
}

// Compute derives the nugget vector for the requested ingot count and the
// maximum ingot count achievable at this composition. The composition must
// already be in canonical order (the output of ValidatePercentages).
func Compute(alloyID data.AlloyID, canonical []data.Percent, numIngots int) ([]data.NuggetCount, int, error) {
	alloy, ok := data.GetAlloyByID(alloyID)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownAlloy, alloyID)
	}
	if numIngots > data.MaxPossibleIngots {
		return nil, 0, fmt.Errorf("%w: %d exceeds the crucible limit of %d",
			ErrTooManyIngots, numIngots, data.MaxPossibleIngots)
	}
	if numIngots <= 0 {
		return nil, 0, fmt.Errorf("%w: got %d, need at least 1", ErrTooFewIngots, numIngots)
	}

	counts := nuggetSweep(canonical, numIngots)
	maxIngots := maxIngotsFor(canonical)
	if numIngots > maxIngots {
		return nil, 0, fmt.Errorf("%w: %s at this mix yields at most %d ingots, requested %d",
			ErrTooManyIngots, alloy.Name, maxIngots, numIngots)
	}
	correctNuggets(counts, alloy, numIngots)

	nuggets, err := wrapNuggets(alloy, counts)
	if err != nil {
		return nil, 0, err
	}
	return nuggets, maxIngots, nil
}

// MaxIngots returns the largest ingot count the canonical composition can
// yield from one crucible, or 0 if no count divides cleanly.
func MaxIngots(canonical []data.Percent) int {
	return maxIngotsFor(canonical)
}

// DefaultPercentages returns the recipe's default composition in canonical
// order.
func DefaultPercentages(alloyID data.AlloyID) ([]data.Percent, error) {
	alloy, ok := data.GetAlloyByID(alloyID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlloy, alloyID)
	}
	return alloy.DefaultPercents, nil
}

// nuggetSweep walks the canonical composition and splits numIngots worth of
// units into whole nuggets: every constituent except the last rounds down,
// the last takes the ceiling of whatever remains. The result can disagree
// with the exact requirement by one nugget; correctNuggets settles it.
func nuggetSweep(canonical []data.Percent, numIngots int) []int {
	needed := float32(numIngots * data.IngotUnit)
	remaining := needed
	counts := make([]int, len(canonical))
	last := len(canonical) - 1
	for i, p := range canonical {
		if i < last {
			units := needed * p.Value
			counts[i] = int(units) / data.NuggetUnit
			remaining -= units
		} else {
			counts[i] = int(math.Ceil(float64(remaining / data.NuggetUnit)))
		}
	}
	return counts
}

// maxIngotsFor searches downward from the crucible limit for the largest
// ingot count whose unit split leaves no remainder and packs into at most
// four slots.
func maxIngotsFor(canonical []data.Percent) int {
	for num := data.MaxPossibleIngots; num > 0; num-- {
		needed := float32(num * data.IngotUnit)
		remaining := needed
		slots := 0
		for _, p := range canonical {
			units := needed * p.Value
			remaining -= units
			slots += int(math.Ceil(float64(units / data.MaxUnitsPerSlot)))
		}
		if abs32(remaining) < maxIngotsEpsilon && slots <= data.CrucibleSlots {
			return num
		}
	}
	return 0
}

// correctNuggets adjusts the swept vector in place so that it sums to exactly
// NuggetsPerIngot × numIngots and the smaller constituents stay under their
// range caps. The sweep's floor/ceil split is off by at most one nugget, so a
// single pass settles it.
func correctNuggets(counts []int, alloy data.AlloyInfo, numIngots int) {
	target := data.NuggetsPerIngot * numIngots
	sum := 0
	for _, c := range counts {
		sum += c
	}
	capFor := func(i int) int {
		return int(alloy.Ingredients[i].Range.Max * float32(target))
	}

	switch len(counts) {
	case 2:
		a, b := 0, 1
		if sum != target {
			if counts[b] < capFor(b) {
				counts[b]++
			} else {
				counts[a]++
			}
		} else if counts[b] > capFor(b) {
			counts[b]--
			counts[a]++
		}
	case 3:
		a, b, c := 0, 1, 2
		if sum != target {
			switch {
			case counts[c] < capFor(c):
				counts[c]++
			case counts[b] < capFor(b):
				counts[b]++
			default:
				counts[a]++
			}
		} else if counts[c] > capFor(c) {
			counts[c]--
			if counts[b]+1 > capFor(b) {
				counts[a]++
			} else {
				counts[b]++
			}
		}
	}
}

// wrapNuggets tags each count with the metal at its canonical position.
func wrapNuggets(alloy data.AlloyInfo, counts []int) ([]data.NuggetCount, error) {
	if len(counts) < len(alloy.Ingredients) {
		return nil, fmt.Errorf("%w: %s needs %d amounts, got %d",
			ErrInvalidConstituentAmounts, alloy.Name, len(alloy.Ingredients), len(counts))
	}
	nuggets := make([]data.NuggetCount, len(alloy.Ingredients))
	for i, ing := range alloy.Ingredients {
		nuggets[i] = data.NuggetCount{Metal: ing.Metal, Count: counts[i]}
	}
	return nuggets, nil
}

func ingredientIndex(alloy data.AlloyInfo, metal data.MetalID) int {
	for i, ing := range alloy.Ingredients {
		if ing.Metal == metal {
			return i
		}
	}
	return -1
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

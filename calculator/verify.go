// vsalloycalc/calculator/verify.go
package calculator

import (
	"fmt"

	"vsalloycalc/data"
)

// VerifyRecipes checks every recipe in the table against the library's own
// invariants: canonical defaults that validate, default nugget vectors that
// sum to one ingot and respect the range caps, and stored max-ingot values
// that agree with the crucible search. The recipe table is static data, so a
// program that wants a startup self-test can call this once at init; the
// package tests run it on every build.
func VerifyRecipes() error {
	for _, id := range data.AllAlloyIDs() {
		alloy, ok := data.GetAlloyByID(id)
		if !ok {
			return fmt.Errorf("recipe table: missing alloy %s", id)
		}
		if err := verifyRecipe(alloy); err != nil {
			return fmt.Errorf("recipe %s: %w", alloy.Name, err)
		}
	}
	return nil
}

func verifyRecipe(alloy data.AlloyInfo) error {
	n := len(alloy.Ingredients)
	if n != 2 && n != 3 {
		return fmt.Errorf("has %d constituents, want 2 or 3", n)
	}
	for _, ing := range alloy.Ingredients {
		if !ing.Metal.IsValid() {
			return fmt.Errorf("unknown constituent metal %q", ing.Metal)
		}
		if ing.Range.Min > ing.Range.Max {
			return fmt.Errorf("%s has inverted range [%v, %v]", ing.Metal.Name(), ing.Range.Min, ing.Range.Max)
		}
	}

	canonical, err := ValidatePercentages(alloy.ID, alloy.DefaultPercents)
	if err != nil {
		return fmt.Errorf("default percentages invalid: %w", err)
	}
	for i, p := range canonical {
		if p != alloy.DefaultPercents[i] {
			return fmt.Errorf("default percentages are not in canonical order")
		}
	}

	if len(alloy.DefaultNuggets) != n {
		return fmt.Errorf("default nugget vector has %d entries, want %d", len(alloy.DefaultNuggets), n)
	}
	sum := 0
	for i, nc := range alloy.DefaultNuggets {
		if nc.Metal != alloy.Ingredients[i].Metal {
			return fmt.Errorf("default nugget %d is %s, want %s", i, nc.Metal.Name(), alloy.Ingredients[i].Metal.Name())
		}
		if nc.Count < 0 {
			return fmt.Errorf("default nugget count for %s is negative", nc.Metal.Name())
		}
		// Range caps bind every constituent but the first.
		if i > 0 {
			maxCount := int(alloy.Ingredients[i].Range.Max * float32(data.NuggetsPerIngot))
			if nc.Count > maxCount {
				return fmt.Errorf("default %s count %d exceeds cap %d", nc.Metal.Name(), nc.Count, maxCount)
			}
		}
		sum += nc.Count
	}
	if sum != data.NuggetsPerIngot {
		return fmt.Errorf("default nuggets sum to %d, want %d", sum, data.NuggetsPerIngot)
	}

	if alloy.DefaultMaxIngots < 1 || alloy.DefaultMaxIngots > data.MaxPossibleIngots {
		return fmt.Errorf("default max ingots %d out of bounds", alloy.DefaultMaxIngots)
	}
	if got := maxIngotsFor(canonical); got != alloy.DefaultMaxIngots {
		return fmt.Errorf("stored max ingots %d, crucible search yields %d", alloy.DefaultMaxIngots, got)
	}
	return nil
}

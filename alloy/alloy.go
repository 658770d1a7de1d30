// Package alloy exposes the caller-facing handle for working with the game's
// alloys: pick a kind, supply a composition and an ingot count, and read back
// the nuggets of each base metal to throw in the crucible.
//
// A handle is not self-synchronizing; concurrent use of one handle must be
// coordinated by the caller. Mutators are atomic per handle: on error the
// handle is left exactly as it was.
package alloy

import (
	"fmt"

	"vsalloycalc/calculator"
	"vsalloycalc/data"
)

// Alloy is one alloy of a chosen kind together with its current composition,
// ingot count, maximum achievable ingots, and the derived nugget vector.
// Composition and nuggets are always held in the recipe's canonical order.
type Alloy struct {
	id          data.AlloyID
	name        string
	percentages []data.Percent
	numIngots   int
	maxIngots   int
	nuggets     []data.NuggetCount
}

// New builds a handle for the given kind from a proposed composition and
// ingot count. The composition may list the metals in any order; it is
// validated, canonicalized, and turned into a nugget vector. On any error no
// handle is returned.
func New(id data.AlloyID, percentages []data.Percent, numIngots int) (*Alloy, error) {
	if numIngots > data.MaxPossibleIngots {
		return nil, fmt.Errorf("%w: %d exceeds the crucible limit of %d",
			calculator.ErrTooManyIngots, numIngots, data.MaxPossibleIngots)
	}
	if numIngots <= 0 {
		return nil, fmt.Errorf("%w: got %d, need at least 1", calculator.ErrTooFewIngots, numIngots)
	}
	canonical, err := calculator.ValidatePercentages(id, percentages)
	if err != nil {
		return nil, err
	}
	nuggets, maxIngots, err := calculator.Compute(id, canonical, numIngots)
	if err != nil {
		return nil, err
	}
	return &Alloy{
		id:          id,
		name:        data.GetAlloyNameByID(id),
		percentages: canonical,
		numIngots:   numIngots,
		maxIngots:   maxIngots,
		nuggets:     nuggets,
	}, nil
}

// Default returns the recipe's reference handle for the kind: the default
// composition at one ingot. The recipe table is verified by
// calculator.VerifyRecipes, so no validation is re-run here.
func Default(id data.AlloyID) (*Alloy, error) {
	info, ok := data.GetAlloyByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", calculator.ErrUnknownAlloy, id)
	}
	return &Alloy{
		id:          id,
		name:        info.Name,
		percentages: info.DefaultPercents,
		numIngots:   1,
		maxIngots:   info.DefaultMaxIngots,
		nuggets:     info.DefaultNuggets,
	}, nil
}

// ID returns the alloy kind.
func (a *Alloy) ID() data.AlloyID { return a.id }

// Name returns the alloy's display name, e.g. "Tin Bronze".
func (a *Alloy) Name() string { return a.name }

// NumIngots returns the ingot count the current nugget vector smelts into.
func (a *Alloy) NumIngots() int { return a.numIngots }

// MaxIngots returns the most ingots the current composition can yield from
// one crucible.
func (a *Alloy) MaxIngots() int { return a.maxIngots }

// Percentages returns the current composition in canonical order.
func (a *Alloy) Percentages() []data.Percent {
	return append([]data.Percent(nil), a.percentages...)
}

// Nuggets returns the per-constituent nugget counts in canonical order.
func (a *Alloy) Nuggets() []data.NuggetCount {
	return append([]data.NuggetCount(nil), a.nuggets...)
}

// PercentageRanges returns the valid fraction range for each constituent of
// the handle's kind, in canonical order.
func (a *Alloy) PercentageRanges() []data.IngredientInfo {
	ranges, _ := PercentageRanges(a.id)
	return ranges
}

// SetNumIngots changes the ingot count, recomputing the nugget vector. The
// count is bounds-checked against [1, MaxIngots]; on error the handle is
// unchanged.
func (a *Alloy) SetNumIngots(numIngots int) error {
	if numIngots <= 0 {
		return fmt.Errorf("%w: got %d, need at least 1", calculator.ErrTooFewIngots, numIngots)
	}
	if numIngots > a.maxIngots {
		return fmt.Errorf("%w: %s at this mix yields at most %d ingots, requested %d",
			calculator.ErrTooManyIngots, a.name, a.maxIngots, numIngots)
	}
	return a.SetValues(nil, numIngots)
}

// SetPercentages changes the composition, keeping the current ingot count and
// recomputing the nugget vector and max ingots. The input may list the metals
// in any order. On error the handle is unchanged.
func (a *Alloy) SetPercentages(percentages []data.Percent) error {
	if percentages == nil {
		return fmt.Errorf("%w: no percentages supplied", calculator.ErrInvalidValues)
	}
	return a.SetValues(percentages, 0)
}

// SetValues updates the composition, the ingot count, or both in one step.
// A nil percentages slice keeps the current composition; a zero numIngots
// keeps the current count; supplying neither is ErrInvalidValues. All derived
// fields are replaced together on success and untouched on error.
func (a *Alloy) SetValues(percentages []data.Percent, numIngots int) error {
	if percentages == nil && numIngots == 0 {
		return fmt.Errorf("%w: neither percentages nor ingot count supplied", calculator.ErrInvalidValues)
	}

	canonical := a.percentages
	if percentages != nil {
		p, err := calculator.ValidatePercentages(a.id, percentages)
		if err != nil {
			return err
		}
		canonical = p
	}
	ingots := a.numIngots
	if numIngots != 0 {
		if numIngots < 0 {
			return fmt.Errorf("%w: got %d, need at least 1", calculator.ErrTooFewIngots, numIngots)
		}
		ingots = numIngots
	}

	nuggets, maxIngots, err := calculator.Compute(a.id, canonical, ingots)
	if err != nil {
		return err
	}
	a.percentages = canonical
	a.numIngots = ingots
	a.maxIngots = maxIngots
	a.nuggets = nuggets
	return nil
}

// CheckValidPercentages validates a composition for the kind without touching
// any handle, returning it reordered to canonical order.
func CheckValidPercentages(id data.AlloyID, percentages []data.Percent) ([]data.Percent, error) {
	return calculator.ValidatePercentages(id, percentages)
}

// PercentageRanges returns the valid fraction range for each constituent of
// the kind, in canonical order.
func PercentageRanges(id data.AlloyID) ([]data.IngredientInfo, error) {
	info, ok := data.GetAlloyByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", calculator.ErrUnknownAlloy, id)
	}
	return info.Ingredients, nil
}

// vsalloycalc/data/units.go
package data

// Crafting unit conversions. A nugget is the smallest unit of metal a player
// can smelt; an ingot is the standard output. The crucible holds up to four
// stacks of nuggets.
const (
	// NuggetUnit is the number of units of metal in one nugget.
	NuggetUnit = 5
	// IngotUnit is the number of units of metal in one ingot.
	IngotUnit = 100
	// MaxStackSize is the number of nuggets in one full stack.
	MaxStackSize = 128
	// CrucibleSlots is the number of stacks a crucible holds.
	CrucibleSlots = 4

	// NuggetsPerIngot is the number of nuggets that smelt into one ingot.
	NuggetsPerIngot = IngotUnit / NuggetUnit // 20
	// MaxUnitsPerSlot is the number of units in one full crucible slot.
	MaxUnitsPerSlot = MaxStackSize * NuggetUnit // 640
	// MaxPossibleIngots is the number of ingots a completely full crucible
	// yields.
	MaxPossibleIngots = MaxStackSize * NuggetUnit * CrucibleSlots / IngotUnit // 25
)

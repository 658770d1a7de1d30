// vsalloycalc/data/alloys.go
package data

import "fmt"

// AlloyID identifies one of the nine craftable alloys. The set is closed and
// known at build time.
type AlloyID string

const (
	TinBronze      AlloyID = "tin_bronze"
	BismuthBronze  AlloyID = "bismuth_bronze"
	BlackBronze    AlloyID = "black_bronze"
	Brass          AlloyID = "brass"
	Molybdochalkos AlloyID = "molybdochalkos"
	LeadSolder     AlloyID = "lead_solder"
	SilverSolder   AlloyID = "silver_solder"
	Electrum       AlloyID = "electrum"
	Cupronickel    AlloyID = "cupronickel"
)

// IngredientInfo is one constituent entry of an alloy recipe: which metal it
// is and the fraction range it must stay within.
type IngredientInfo struct {
	Metal MetalID
	Range Range
}

// AlloyInfo is a single alloy recipe. Ingredients are listed in canonical
// order (largest share first); the default fields describe the recipe's
// one-ingot reference mix.
type AlloyInfo struct {
	ID               AlloyID
	Name             string
	Ingredients      []IngredientInfo
	DefaultPercents  []Percent
	DefaultNuggets   []NuggetCount
	DefaultMaxIngots int
}

// GetAlloyByID returns (AlloyInfo, true) if found, or (zero, false) otherwise.
// The returned value owns its slices; callers may modify it freely.
func GetAlloyByID(id AlloyID) (AlloyInfo, bool) {
	return registryGetAlloyByID(id)
}

// GetAlloyNameByID returns the human-readable name for a given ID, or
// "Unknown[ID]" if not found.
func GetAlloyNameByID(id AlloyID) string {
	a, ok := registryGetAlloyByID(id)
	if !ok {
		return fmt.Sprintf("Unknown[%s]", string(id))
	}
	return a.Name
}

// GetAllAlloys returns a map[id]→AlloyInfo for all nine alloys. The map and
// its entries are copies.
func GetAllAlloys() map[AlloyID]AlloyInfo {
	return registryGetAllAlloys()
}

// AllAlloyIDs returns the nine alloy IDs in a fixed order.
func AllAlloyIDs() []AlloyID {
	return []AlloyID{
		TinBronze,
		BismuthBronze,
		BlackBronze,
		Brass,
		Molybdochalkos,
		LeadSolder,
		SilverSolder,
		Electrum,
		Cupronickel,
	}
}

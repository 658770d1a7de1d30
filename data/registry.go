// vsalloycalc/data/registry.go
package data

// alloyRegistry holds every alloy recipe in the game. Ingredient order is the
// canonical order consumed by the calculator; default values are the
// one-ingot reference mix for each recipe. The table is immutable after init,
// so reads need no locking; accessors hand out copies instead.
var alloyRegistry = map[AlloyID]AlloyInfo{
	TinBronze: {
		ID:   TinBronze,
		Name: "Tin Bronze",
		Ingredients: []IngredientInfo{
			{Metal: Copper, Range: Range{Min: 0.88, Max: 0.92}},
			{Metal: Tin, Range: Range{Min: 0.08, Max: 0.12}},
		},
		DefaultPercents:  []Percent{{Copper, 0.92}, {Tin, 0.08}},
		DefaultNuggets:   []NuggetCount{{Copper, 18}, {Tin, 2}},
		DefaultMaxIngots: 20,
	},
	BismuthBronze: {
		ID:   BismuthBronze,
		Name: "Bismuth Bronze",
		Ingredients: []IngredientInfo{
			{Metal: Copper, Range: Range{Min: 0.50, Max: 0.70}},
			{Metal: Zinc, Range: Range{Min: 0.20, Max: 0.30}},
			{Metal: Bismuth, Range: Range{Min: 0.10, Max: 0.20}},
		},
		DefaultPercents:  []Percent{{Copper, 0.60}, {Zinc, 0.20}, {Bismuth, 0.20}},
		DefaultNuggets:   []NuggetCount{{Copper, 12}, {Zinc, 4}, {Bismuth, 4}},
		DefaultMaxIngots: 21,
	},
	BlackBronze: {
		ID:   BlackBronze,
		Name: "Black Bronze",
		Ingredients: []IngredientInfo{
			{Metal: Copper, Range: Range{Min: 0.68, Max: 0.84}},
			{Metal: Gold, Range: Range{Min: 0.08, Max: 0.16}},
			{Metal: Silver, Range: Range{Min: 0.08, Max: 0.16}},
		},
		DefaultPercents:  []Percent{{Copper, 0.84}, {Gold, 0.08}, {Silver, 0.08}},
		DefaultNuggets:   []NuggetCount{{Copper, 18}, {Gold, 1}, {Silver, 1}},
		DefaultMaxIngots: 15,
	},
	Brass: {
		ID:   Brass,
		Name: "Brass",
		Ingredients: []IngredientInfo{
			{Metal: Copper, Range: Range{Min: 0.60, Max: 0.70}},
			{Metal: Zinc, Range: Range{Min: 0.30, Max: 0.40}},
		},
		DefaultPercents:  []Percent{{Copper, 0.70}, {Zinc, 0.30}},
		DefaultNuggets:   []NuggetCount{{Copper, 14}, {Zinc, 6}},
		DefaultMaxIngots: 21,
	},
	Molybdochalkos: {
		ID:   Molybdochalkos,
		Name: "Molybdochalkos",
		Ingredients: []IngredientInfo{
			{Metal: Lead, Range: Range{Min: 0.88, Max: 0.92}},
			{Metal: Copper, Range: Range{Min: 0.08, Max: 0.12}},
		},
		DefaultPercents:  []Percent{{Lead, 0.92}, {Copper, 0.08}},
		DefaultNuggets:   []NuggetCount{{Lead, 18}, {Copper, 2}},
		DefaultMaxIngots: 20,
	},
	LeadSolder: {
		ID:   LeadSolder,
		Name: "Lead Solder",
		Ingredients: []IngredientInfo{
			{Metal: Tin, Range: Range{Min: 0.45, Max: 0.55}},
			{Metal: Lead, Range: Range{Min: 0.45, Max: 0.55}},
		},
		DefaultPercents:  []Percent{{Tin, 0.45}, {Lead, 0.55}},
		DefaultNuggets:   []NuggetCount{{Tin, 9}, {Lead, 11}},
		DefaultMaxIngots: 23,
	},
	SilverSolder: {
		ID:   SilverSolder,
		Name: "Silver Solder",
		Ingredients: []IngredientInfo{
			{Metal: Tin, Range: Range{Min: 0.50, Max: 0.60}},
			{Metal: Silver, Range: Range{Min: 0.40, Max: 0.50}},
		},
		DefaultPercents:  []Percent{{Tin, 0.50}, {Silver, 0.50}},
		DefaultNuggets:   []NuggetCount{{Tin, 10}, {Silver, 10}},
		DefaultMaxIngots: 25,
	},
	Electrum: {
		ID:   Electrum,
		Name: "Electrum",
		Ingredients: []IngredientInfo{
			{Metal: Gold, Range: Range{Min: 0.40, Max: 0.60}},
			{Metal: Silver, Range: Range{Min: 0.40, Max: 0.60}},
		},
		DefaultPercents:  []Percent{{Gold, 0.40}, {Silver, 0.60}},
		DefaultNuggets:   []NuggetCount{{Gold, 8}, {Silver, 12}},
		DefaultMaxIngots: 21,
	},
	Cupronickel: {
		ID:   Cupronickel,
		Name: "Cupronickel",
		Ingredients: []IngredientInfo{
			{Metal: Copper, Range: Range{Min: 0.65, Max: 0.75}},
			{Metal: Nickel, Range: Range{Min: 0.25, Max: 0.35}},
		},
		DefaultPercents:  []Percent{{Copper, 0.75}, {Nickel, 0.25}},
		DefaultNuggets:   []NuggetCount{{Copper, 15}, {Nickel, 5}},
		DefaultMaxIngots: 25,
	},
}

// registryGetAlloyByID fetches a single AlloyInfo from the registry by ID.
// Returns (AlloyInfo, true) if found, or (zero, false) otherwise.
func registryGetAlloyByID(id AlloyID) (AlloyInfo, bool) {
	a, ok := alloyRegistry[id]
	if !ok {
		return AlloyInfo{}, false
	}
	return cloneAlloyInfo(a), true
}

// registryGetAllAlloys returns a copy of the full registry.
func registryGetAllAlloys() map[AlloyID]AlloyInfo {
	result := make(map[AlloyID]AlloyInfo, len(alloyRegistry))
	for id, a := range alloyRegistry {
		result[id] = cloneAlloyInfo(a)
	}
	return result
}

// cloneAlloyInfo deep-copies an AlloyInfo so callers can never reach the
// registry's backing slices.
func cloneAlloyInfo(a AlloyInfo) AlloyInfo {
	out := a
	out.Ingredients = append([]IngredientInfo(nil), a.Ingredients...)
	out.DefaultPercents = append([]Percent(nil), a.DefaultPercents...)
	out.DefaultNuggets = append([]NuggetCount(nil), a.DefaultNuggets...)
	return out
}

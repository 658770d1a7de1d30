// vsalloycalc/data/metals.go
package data

import "fmt"

// MetalID identifies one of the eight base metals that can take part in an
// alloy. The set is closed; the IDs double as stable map keys.
type MetalID string

const (
	Nickel  MetalID = "nickel"
	Copper  MetalID = "copper"
	Zinc    MetalID = "zinc"
	Silver  MetalID = "silver"
	Tin     MetalID = "tin"
	Gold    MetalID = "gold"
	Lead    MetalID = "lead"
	Bismuth MetalID = "bismuth"
)

var metalNames = map[MetalID]string{
	Nickel:  "Nickel",
	Copper:  "Copper",
	Zinc:    "Zinc",
	Silver:  "Silver",
	Tin:     "Tin",
	Gold:    "Gold",
	Lead:    "Lead",
	Bismuth: "Bismuth",
}

// Name returns the display string for the metal, or "Unknown[ID]" if the ID is
// not one of the eight base metals.
func (id MetalID) Name() string {
	name, ok := metalNames[id]
	if !ok {
		return fmt.Sprintf("Unknown[%s]", string(id))
	}
	return name
}

// IsValid reports whether the ID is one of the eight base metals.
func (id MetalID) IsValid() bool {
	_, ok := metalNames[id]
	return ok
}

// AllMetals returns the eight base metal IDs in a fixed order.
func AllMetals() []MetalID {
	return []MetalID{Nickel, Copper, Zinc, Silver, Tin, Gold, Lead, Bismuth}
}

// Percent pairs a base metal with its fraction of an alloy (0.92 = 92%).
type Percent struct {
	Metal MetalID
	Value float32
}

// NuggetCount pairs a base metal with a whole number of nuggets.
type NuggetCount struct {
	Metal MetalID
	Count int
}

// Range is an inclusive interval over float32 fractions.
type Range struct {
	Min float32
	Max float32
}

// NewRange builds a Range. Min must not exceed Max; the ranges in this library
// are compile-time recipe constants, so a violation is a programming error and
// panics.
func NewRange(min, max float32) Range {
	if min > max {
		panic(fmt.Sprintf("data: invalid range [%v, %v]", min, max))
	}
	return Range{Min: min, Max: max}
}

// Contains reports whether v lies within the closed interval [Min, Max].
func (r Range) Contains(v float32) bool {
	return r.Min <= v && v <= r.Max
}

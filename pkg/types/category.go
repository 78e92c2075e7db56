package types

// Category is the display partition a scenery package belongs to.
// Categories do not carry their own numbering - the global SortOrder
// is authoritative and categories merely group it for display.
type Category string

const (
	CategoryFixedHighPriority Category = "fixed_high_priority"
	CategoryAirport           Category = "airport"
	CategoryDefaultAirport    Category = "default_airport"
	CategoryLibrary           Category = "library"
	CategoryOther             Category = "other"
	CategoryOverlay           Category = "overlay"
	CategoryAirportMesh       Category = "airport_mesh"
	CategoryMesh              Category = "mesh"

	// CategoryUnrecognized is a structural sink: entries in it are never
	// valid reorder or drag targets, and no entry may be moved into it.
	CategoryUnrecognized Category = "unrecognized"
)

// CategoryOrder is the fixed display order of categories, top to bottom.
var CategoryOrder = []Category{
	CategoryFixedHighPriority,
	CategoryAirport,
	CategoryDefaultAirport,
	CategoryLibrary,
	CategoryOther,
	CategoryOverlay,
	CategoryAirportMesh,
	CategoryMesh,
	CategoryUnrecognized,
}

var categoryIndex = func() map[Category]int {
	m := make(map[Category]int, len(CategoryOrder))
	for i, c := range CategoryOrder {
		m[c] = i
	}
	return m
}()

// OrderIndex returns the position of the category in the fixed display
// order, or -1 for an unknown category.
func (c Category) OrderIndex() int {
	idx, ok := categoryIndex[c]
	if !ok {
		return -1
	}
	return idx
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryIndex[c]
	return ok
}

// Reorderable reports whether entries in this category may be moved.
func (c Category) Reorderable() bool {
	return c.Valid() && c != CategoryUnrecognized
}

// ParseCategory maps a backend category string to a Category.
// Unknown values map to CategoryUnrecognized rather than failing:
// the backend is free to grow new classifications before we do.
func ParseCategory(s string) Category {
	c := Category(s)
	if !c.Valid() {
		return CategoryUnrecognized
	}
	return c
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryFixedHighPriority:
		return "Fixed High Priority"
	case CategoryAirport:
		return "Airports"
	case CategoryDefaultAirport:
		return "Default Airports"
	case CategoryLibrary:
		return "Libraries"
	case CategoryOther:
		return "Other"
	case CategoryOverlay:
		return "Overlays"
	case CategoryAirportMesh:
		return "Airport Meshes"
	case CategoryMesh:
		return "Meshes"
	case CategoryUnrecognized:
		return "Unrecognized"
	default:
		return string(c)
	}
}

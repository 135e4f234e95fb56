package entity

import "strings"

// Category identifies a kind of entity for spatial queries. Categories are
// bit flags so that several of them can be combined into a query mask.
type Category uint8

const (
	CategoryPlayer Category = 1 << iota
	CategoryDoor
	CategoryEnemy
	CategoryPainting
	CategoryBoxCollider
)

const (
	// CategoryNone matches nothing.
	CategoryNone Category = 0

	// CategoryTargets are the categories a bullet can hit.
	CategoryTargets = CategoryDoor | CategoryEnemy | CategoryPainting | CategoryBoxCollider

	// CategorySolids are the categories that block the player.
	CategorySolids = CategoryDoor | CategoryPainting | CategoryBoxCollider

	// CategoryObstructions are the categories that block line of sight.
	CategoryObstructions = CategoryDoor | CategoryBoxCollider
)

// Has reports whether every flag of o is set in c.
func (c Category) Has(o Category) bool {
	return o != CategoryNone && c&o == o
}

// String returns a readable form such as "door|enemy".
func (c Category) String() string {
	if c == CategoryNone {
		return "none"
	}

	names := []struct {
		flag Category
		name string
	}{
		{CategoryPlayer, "player"},
		{CategoryDoor, "door"},
		{CategoryEnemy, "enemy"},
		{CategoryPainting, "painting"},
		{CategoryBoxCollider, "box"},
	}

	var parts []string
	for _, n := range names {
		if c&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// Ref points at one entity inside the world: its category plus its index in
// that category's array. The player always has index 0.
type Ref struct {
	Category Category
	Index    int
}

// NoRef refers to nothing.
var NoRef = Ref{Category: CategoryNone, Index: -1}

// PlayerRef refers to the single player.
var PlayerRef = Ref{Category: CategoryPlayer, Index: 0}

// Valid reports whether r refers to an entity.
func (r Ref) Valid() bool {
	return r.Category != CategoryNone && r.Index >= 0
}

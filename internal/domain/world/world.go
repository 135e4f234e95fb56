package world

import (
	"github.com/younwookim/wolf3d/internal/domain/entity"
)

// Capacity sizes the transient effect pools.
type Capacity struct {
	Impacts int
	Tracers int
}

// World owns every live entity of a running level. Systems mutate it in
// place during Update; rendering only reads it.
type World struct {
	Level *Level

	Player    entity.Player
	Doors     []entity.Door
	Enemies   []entity.Enemy
	Paintings []entity.Painting
	Colliders []entity.Body

	Impacts *entity.ImpactPool
	Tracers *entity.TracerPool

	Debug bool
}

// New populates a world from the level's spawn lists.
func New(level *Level, capacity Capacity) (*World, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	ps := level.Players[0]
	w := &World{
		Level:     level,
		Player:    entity.NewPlayer(ps.Pos, ps.Min, ps.Max),
		Doors:     make([]entity.Door, 0, len(level.Doors)),
		Enemies:   make([]entity.Enemy, 0, len(level.Enemies)),
		Paintings: make([]entity.Painting, 0, len(level.Paintings)),
		Colliders: make([]entity.Body, 0, len(level.Boxes)),
		Impacts:   entity.NewImpactPool(capacity.Impacts),
		Tracers:   entity.NewTracerPool(capacity.Tracers),
	}
	w.Player.LookAngle = ps.Angle

	for _, s := range level.Doors {
		w.Doors = append(w.Doors, entity.NewDoor(s.Pos, s.Dir, s.Size.X(), s.Size.Y(), s.Size.Z()))
	}
	for _, s := range level.Enemies {
		e := entity.NewEnemy(s.Pos, s.Min, s.Max, s.Health, s.Speed)
		e.LookAngle = s.Angle
		w.Enemies = append(w.Enemies, e)
	}
	for _, s := range level.Paintings {
		w.Paintings = append(w.Paintings, entity.NewPainting(s.Pos, s.Dir, s.Size.X(), s.Size.Y(), s.Size.Z()))
	}
	for _, s := range level.Boxes {
		w.Colliders = append(w.Colliders, entity.NewBody(s.Pos, s.Min, s.Max))
	}

	return w, nil
}

// Release drops every entity array. The world must not be used afterwards.
func (w *World) Release() {
	w.Doors = nil
	w.Enemies = nil
	w.Paintings = nil
	w.Colliders = nil
	w.Impacts = nil
	w.Tracers = nil
	w.Level = nil
}

// Body returns the body ref points at, or nil.
func (w *World) Body(ref entity.Ref) *entity.Body {
	if !ref.Valid() {
		return nil
	}
	i := ref.Index
	switch ref.Category {
	case entity.CategoryPlayer:
		if i == 0 {
			return &w.Player.Body
		}
	case entity.CategoryDoor:
		if i < len(w.Doors) {
			return &w.Doors[i].Body
		}
	case entity.CategoryEnemy:
		if i < len(w.Enemies) {
			return &w.Enemies[i].Body
		}
	case entity.CategoryPainting:
		if i < len(w.Paintings) {
			return &w.Paintings[i].Body
		}
	case entity.CategoryBoxCollider:
		if i < len(w.Colliders) {
			return &w.Colliders[i]
		}
	}
	return nil
}

// Each calls fn for every live, boxed body whose category is in mask, in the
// order doors, enemies, paintings, box colliders and array order within each.
// Dead enemies are skipped. Iteration stops when fn returns false.
func (w *World) Each(mask entity.Category, fn func(ref entity.Ref, b *entity.Body) bool) {
	if mask.Has(entity.CategoryDoor) {
		for i := range w.Doors {
			if b := &w.Doors[i].Body; b.HasBox && !fn(entity.Ref{Category: entity.CategoryDoor, Index: i}, b) {
				return
			}
		}
	}
	if mask.Has(entity.CategoryEnemy) {
		for i := range w.Enemies {
			e := &w.Enemies[i]
			if !e.Alive() || !e.HasBox {
				continue
			}
			if !fn(entity.Ref{Category: entity.CategoryEnemy, Index: i}, &e.Body) {
				return
			}
		}
	}
	if mask.Has(entity.CategoryPainting) {
		for i := range w.Paintings {
			if b := &w.Paintings[i].Body; b.HasBox && !fn(entity.Ref{Category: entity.CategoryPainting, Index: i}, b) {
				return
			}
		}
	}
	if mask.Has(entity.CategoryBoxCollider) {
		for i := range w.Colliders {
			if b := &w.Colliders[i]; b.HasBox && !fn(entity.Ref{Category: entity.CategoryBoxCollider, Index: i}, b) {
				return
			}
		}
	}
}

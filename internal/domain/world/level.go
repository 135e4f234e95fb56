// Package world holds the immutable level description and the World
// aggregate that owns every live entity during a session.
package world

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/wolf3d/internal/domain/geom"
)

var (
	// ErrPlayerSpawn is returned when a level does not have exactly one player spawn.
	ErrPlayerSpawn = errors.New("level must have exactly one player spawn")

	// ErrEmptyLevel is returned when a level has neither a grid, planes nor colliders.
	ErrEmptyLevel = errors.New("level has no geometry")
)

// Spawn describes one entity to create at Init.
//
// Min and Max are the local box of players, enemies and box colliders. Size
// holds the half extents (width, height, depth) of doors and paintings, whose
// box orientation follows Dir.
type Spawn struct {
	Pos    mgl32.Vec3
	Dir    int
	Angle  float32
	Health int
	Speed  float32
	Min    mgl32.Vec3
	Max    mgl32.Vec3
	Size   mgl32.Vec3
}

// Level is a loaded level. It is never mutated after loading.
type Level struct {
	Name   string
	Grid   *Grid // nil for plane-based levels
	Scale  float32
	Planes []Plane

	Players   []Spawn
	Doors     []Spawn
	Enemies   []Spawn
	Paintings []Spawn
	Boxes     []Spawn
}

// Validate checks the structural invariants a session relies on.
func (l *Level) Validate() error {
	if len(l.Players) != 1 {
		return fmt.Errorf("level %q: %w (found %d)", l.Name, ErrPlayerSpawn, len(l.Players))
	}
	if l.Grid == nil && len(l.Planes) == 0 && len(l.Boxes) == 0 {
		return fmt.Errorf("level %q: %w", l.Name, ErrEmptyLevel)
	}
	return nil
}

// CrossedPlanes counts the planes the segment a→b passes through.
func (l *Level) CrossedPlanes(a, b mgl32.Vec3) int {
	n := 0
	for i := range l.Planes {
		p := &l.Planes[i]
		ok, t := geom.LinePlane(a, b, p.Origin, p.Normal())
		if !ok {
			continue
		}
		if p.Contains(a.Add(b.Sub(a).Mul(t))) {
			n++
		}
	}
	return n
}

// Plane is an oriented rectangle spanned by the edges A and B from Origin.
// Its front face is the side A×B points to.
type Plane struct {
	Origin mgl32.Vec3
	A      mgl32.Vec3
	B      mgl32.Vec3
	Tile   int
}

// Normal returns the unit front-facing normal.
func (p *Plane) Normal() mgl32.Vec3 {
	n := p.A.Cross(p.B)
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

// Contains reports whether pt, assumed to lie on the plane, is inside the
// rectangle.
func (p *Plane) Contains(pt mgl32.Vec3) bool {
	q := pt.Sub(p.Origin)
	aa, bb := p.A.Dot(p.A), p.B.Dot(p.B)
	if aa == 0 || bb == 0 {
		return false
	}
	u := q.Dot(p.A) / aa
	v := q.Dot(p.B) / bb
	return u >= 0 && u <= 1 && v >= 0 && v <= 1
}

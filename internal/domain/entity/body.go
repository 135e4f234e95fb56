package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/wolf3d/internal/domain/geom"
)

// Body is the positional part every entity shares. The bounding box is stored
// as offsets from Pos; a body without a box never collides and is never hit.
type Body struct {
	Pos    mgl32.Vec3
	HasBox bool
	Min    mgl32.Vec3
	Max    mgl32.Vec3
}

// NewBody creates a body at pos with the local box [min, max].
func NewBody(pos, min, max mgl32.Vec3) Body {
	return Body{Pos: pos, HasBox: true, Min: min, Max: max}
}

// Center returns the world-space center of the box, or Pos when there is none.
func (b *Body) Center() mgl32.Vec3 {
	if !b.HasBox {
		return b.Pos
	}
	return b.Pos.Add(b.Min.Add(b.Max).Mul(0.5))
}

// Bounds returns the world-space box as if the body stood at pos.
func (b *Body) Bounds(pos mgl32.Vec3) (min, max mgl32.Vec3) {
	return pos.Add(b.Min), pos.Add(b.Max)
}

// Collides reports whether b placed at pos overlaps other at its current
// position. Either side lacking a box means no collision.
func (b *Body) Collides(pos mgl32.Vec3, other *Body) bool {
	if !b.HasBox || !other.HasBox {
		return false
	}
	aMin, aMax := b.Bounds(pos)
	bMin, bMax := other.Bounds(other.Pos)
	return geom.Overlap(aMin, aMax, bMin, bMax)
}

// Contains reports whether p lies strictly inside the body's box.
func (b *Body) Contains(p mgl32.Vec3) bool {
	return b.HasBox && geom.PointInBox(p, b.Pos, b.Min, b.Max)
}

// Player is the first-person player.
type Player struct {
	Body

	LookAngle float32 // radians
	Stride    float32 // walk phase, drives head bob and weapon sway

	// Shoot animation
	Shooting  bool
	AnimTimer float32
	Frame     int
	LastFrame int
}

// NewPlayer creates a player standing at pos with the given local box.
func NewPlayer(pos, min, max mgl32.Vec3) Player {
	return Player{Body: NewBody(pos, min, max)}
}

// Bob returns the vertical view offset for the current stride.
func (p *Player) Bob() float32 {
	return float32(math.Sin(float64(p.Stride))) / 20
}

// Sway returns the lateral weapon offset for the current stride. It is zero
// while the shoot animation plays so the muzzle stays centered.
func (p *Player) Sway() float32 {
	if p.Shooting {
		return 0
	}
	return float32(math.Sin(float64(p.Stride)/2)) * 0.02
}

// Eye returns the camera position including the head bob.
func (p *Player) Eye() mgl32.Vec3 {
	return p.Pos.Add(mgl32.Vec3{0, p.Bob(), 0})
}

// Facing returns the unit look direction.
func (p *Player) Facing() mgl32.Vec3 {
	return geom.Forward(p.LookAngle, 1)
}

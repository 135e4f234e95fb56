package entity

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/wolf3d/internal/domain/geom"
)

// Door slides along its compass direction as it opens.
type Door struct {
	Body

	Dir            int // 0-3, each a 90 degree rotation
	StartX, StartZ float32
	Open           bool
	Openness       float32 // 0 closed, 1 fully open
}

// NewDoor creates a closed door at pos. Doors facing east/west (odd dir) are
// wide along X, the others along Z.
func NewDoor(pos mgl32.Vec3, dir int, halfWidth, halfHeight, halfDepth float32) Door {
	min := mgl32.Vec3{-halfDepth, -halfHeight, -halfWidth}
	max := mgl32.Vec3{halfDepth, halfHeight, halfWidth}
	if dir%2 == 1 {
		min = mgl32.Vec3{-halfWidth, -halfHeight, -halfDepth}
		max = mgl32.Vec3{halfWidth, halfHeight, halfDepth}
	}

	return Door{
		Body:   NewBody(pos, min, max),
		Dir:    dir,
		StartX: pos.X(),
		StartZ: pos.Z(),
	}
}

// Toggle flips the open flag.
func (d *Door) Toggle() {
	d.Open = !d.Open
}

// Slide returns the world position for the current openness when a fully
// open door has moved amount units along its direction.
func (d *Door) Slide(amount float32) (x, z float32) {
	off := geom.Forward(geom.DirAngle(d.Dir, 4), d.Openness*amount)
	return d.StartX + off.X(), d.StartZ + off.Z()
}

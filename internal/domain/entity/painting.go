package entity

import "github.com/go-gl/mathgl/mgl32"

// Painting hangs on a wall and swings once shot.
type Painting struct {
	Body

	Dir        int
	Angle      float32 // swing angle, radians
	AngularVel float32
	Hit        bool // set by the first bullet, never cleared
}

// NewPainting creates an untouched painting at pos. Paintings on east/west
// walls (odd dir) are thin along X.
func NewPainting(pos mgl32.Vec3, dir int, halfWidth, halfHeight, halfDepth float32) Painting {
	min := mgl32.Vec3{-halfWidth, -halfHeight, -halfDepth}
	max := mgl32.Vec3{halfWidth, halfHeight, halfDepth}
	if dir%2 == 1 {
		min = mgl32.Vec3{-halfDepth, -halfHeight, -halfWidth}
		max = mgl32.Vec3{halfDepth, halfHeight, halfWidth}
	}

	return Painting{
		Body: NewBody(pos, min, max),
		Dir:  dir,
	}
}

// Knock marks the painting as hit and adds impulse to its swing.
func (p *Painting) Knock(impulse float32) {
	p.Hit = true
	p.AngularVel += impulse
}

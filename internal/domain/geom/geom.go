// Package geom provides the stateless geometry primitives shared by the
// collision resolver, the hit-scan resolver and the enemy AI.
//
// All positions are world units. Angles are radians measured from +Z toward
// +X, so a look angle of 0 faces +Z and Forward(a) = (sin a, 0, cos a).
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ImpactEpsilon is how far a hit point is pulled back along the ray so that
// decals sit just outside the surface they were created on.
const ImpactEpsilon = 0.01

// parallelEpsilon bounds the denominator of the line/plane test.
const parallelEpsilon = 1e-6

// compass4 and compass8 are unit (x, z) directions at 90 and 45 degree steps,
// starting at +Z and turning toward +X.
var (
	compass4 = [4][2]float32{
		{0, 1},
		{1, 0},
		{0, -1},
		{-1, 0},
	}
	compass8 = [8][2]float32{
		{0, 1},
		{math.Sqrt2 / 2, math.Sqrt2 / 2},
		{1, 0},
		{math.Sqrt2 / 2, -math.Sqrt2 / 2},
		{0, -1},
		{-math.Sqrt2 / 2, -math.Sqrt2 / 2},
		{-1, 0},
		{-math.Sqrt2 / 2, math.Sqrt2 / 2},
	}
)

// RayBox intersects a ray with the box [pos+min, pos+max] using slabs.
//
// dir is expected to be normalized. An axis whose direction component is
// exactly zero places no constraint on the result. The returned t is the
// entry distance along the ray and is reported even when the origin sits
// inside the box (t < 0). A zero direction never hits.
func RayBox(start, dir, pos, min, max mgl32.Vec3) (bool, float32) {
	near := float32(-math.MaxFloat32)
	far := float32(math.MaxFloat32)
	constrained := false

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			continue
		}
		constrained = true

		t1 := (pos[i] + min[i] - start[i]) / dir[i]
		t2 := (pos[i] + max[i] - start[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > near {
			near = t1
		}
		if t2 < far {
			far = t2
		}
	}

	if !constrained || near > far || far < 0 {
		return false, near
	}
	return true, near
}

// HitPoint returns start + dir*(t-ImpactEpsilon).
func HitPoint(start, dir mgl32.Vec3, t float32) mgl32.Vec3 {
	return start.Add(dir.Mul(t - ImpactEpsilon))
}

// PointInBox reports whether p lies strictly inside [pos+min, pos+max].
func PointInBox(p, pos, min, max mgl32.Vec3) bool {
	lo := pos.Add(min)
	hi := pos.Add(max)

	return p.X() > lo.X() && p.X() < hi.X() &&
		p.Y() > lo.Y() && p.Y() < hi.Y() &&
		p.Z() > lo.Z() && p.Z() < hi.Z()
}

// Overlap reports whether two world-space boxes intersect. Boxes that only
// share a face, edge or corner do not overlap.
func Overlap(aMin, aMax, bMin, bMax mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if !(aMax[i] > bMin[i] && bMax[i] > aMin[i]) {
			return false
		}
	}
	return true
}

// LinePlane reports whether the segment start→end crosses the plane through
// origin with the given normal, and the crossing parameter along the segment.
// Segments parallel to the plane, or of zero length, never cross.
func LinePlane(start, end, origin, normal mgl32.Vec3) (bool, float32) {
	projLength := start.Sub(end).Dot(normal)
	if projLength > -parallelEpsilon && projLength < parallelEpsilon {
		return false, 0
	}

	scale := start.Sub(origin).Dot(normal) / projLength

	// Both ends behind the plane, or the plane lies past the end point.
	if scale < 0 || scale > 1 {
		return false, scale
	}
	return true, scale
}

// VecToDir quantizes the (x, z) vector to the index of the closest compass
// direction: one of 8 at 45 degree steps, or one of 4 when majorOnly is set.
// Ties and the zero vector resolve to the lowest index.
func VecToDir(x, z float32, majorOnly bool) int {
	var dirs [][2]float32
	if majorOnly {
		dirs = compass4[:]
	} else {
		dirs = compass8[:]
	}

	best := 0
	var bestDot float32
	for i, d := range dirs {
		dot := d[0]*x + d[1]*z
		if dot > bestDot {
			best = i
			bestDot = dot
		}
	}
	return best
}

// Forward returns the horizontal unit vector for angle, scaled.
func Forward(angle, scale float32) mgl32.Vec3 {
	s, c := math.Sincos(float64(angle))
	return mgl32.Vec3{float32(s) * scale, 0, float32(c) * scale}
}

// AngleTo returns the look angle that faces from → to on the XZ plane.
func AngleTo(from, to mgl32.Vec3) float32 {
	return float32(math.Atan2(float64(to.X()-from.X()), float64(to.Z()-from.Z())))
}

// DirAngle returns the rotation of a compass direction index with the given
// step count (4 for doors, paintings and decals).
func DirAngle(dir, steps int) float32 {
	return float32(dir) * 2 * math.Pi / float32(steps)
}

// Dist2 returns the squared distance between a and b.
func Dist2(a, b mgl32.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/wolf3d/internal/domain/entity"
	"github.com/younwookim/wolf3d/internal/domain/world"
)

// CollisionSystem moves bodies through the world, resolving collisions one
// axis at a time.
type CollisionSystem struct {
	world *world.World
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(w *world.World) *CollisionSystem {
	return &CollisionSystem{world: w}
}

// MoveBy tries d on the x, y and z axes in that order. Each non-zero
// component is applied on its own and cancelled entirely when the body would
// then overlap anything in mask other than self. The next axis starts from
// the already resolved position. Returns the displacement actually applied.
//
// There is no sweep, so a large enough step can pass through thin bodies.
func (s *CollisionSystem) MoveBy(self entity.Ref, d mgl32.Vec3, mask entity.Category) mgl32.Vec3 {
	body := s.world.Body(self)
	if body == nil {
		return mgl32.Vec3{}
	}

	var applied mgl32.Vec3
	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			continue
		}

		next := body.Pos
		next[axis] += d[axis]
		if s.Blocked(self, body, next, mask) {
			continue
		}

		body.Pos = next
		applied[axis] = d[axis]
	}
	return applied
}

// Blocked reports whether body placed at pos would overlap any body in mask
// other than self. A body without a box is never blocked.
func (s *CollisionSystem) Blocked(self entity.Ref, body *entity.Body, pos mgl32.Vec3, mask entity.Category) bool {
	if !body.HasBox {
		return false
	}

	blocked := false
	s.world.Each(mask, func(ref entity.Ref, other *entity.Body) bool {
		if ref == self {
			return true
		}
		if body.Collides(pos, other) {
			blocked = true
			return false
		}
		return true
	})
	return blocked
}

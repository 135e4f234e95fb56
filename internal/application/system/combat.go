package system

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/wolf3d/internal/domain/entity"
	"github.com/younwookim/wolf3d/internal/domain/geom"
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

// Hit is the result of a ray cast.
type Hit struct {
	Ref   entity.Ref
	Point mgl32.Vec3 // pulled back just outside the surface
	T     float32    // distance along the ray
}

type candidate struct {
	ref  entity.Ref
	body *entity.Body
}

// HitscanSystem resolves instant ray casts: weapon fire and line of sight.
type HitscanSystem struct {
	config *config.TuningConfig
	world  *world.World
	rng    *rand.Rand

	candidates []candidate
	hits       []Hit

	// OnShot is called after every shot with what it hit, if anything.
	OnShot func(hit Hit, ok bool)
}

// NewHitscanSystem creates a new hit-scan system
func NewHitscanSystem(cfg *config.TuningConfig, w *world.World, rng *rand.Rand) *HitscanSystem {
	return &HitscanSystem{
		config:     cfg,
		world:      w,
		rng:        rng,
		candidates: make([]candidate, 0, cfg.Hitscan.MaxCandidates),
		hits:       make([]Hit, 0, cfg.Hitscan.MaxHits),
	}
}

// Cast fires a horizontal ray from start along angle against every live body
// in mask except skip and returns the nearest hit.
//
// At most MaxCandidates bodies are tested and at most MaxHits hits are kept;
// anything past either cap is ignored. Equal distances keep the body that
// was iterated first.
func (s *HitscanSystem) Cast(start mgl32.Vec3, angle float32, mask entity.Category, skip entity.Ref) (Hit, bool) {
	dir := geom.Forward(angle, 1)
	maxCandidates := s.config.Hitscan.MaxCandidates
	maxHits := s.config.Hitscan.MaxHits

	s.candidates = s.candidates[:0]
	s.world.Each(mask, func(ref entity.Ref, b *entity.Body) bool {
		if ref == skip {
			return true
		}
		if len(s.candidates) >= maxCandidates {
			return false
		}
		s.candidates = append(s.candidates, candidate{ref: ref, body: b})
		return true
	})

	s.hits = s.hits[:0]
	for _, c := range s.candidates {
		if len(s.hits) >= maxHits {
			break
		}
		if ok, t := geom.RayBox(start, dir, c.body.Pos, c.body.Min, c.body.Max); ok {
			s.hits = append(s.hits, Hit{Ref: c.ref, T: t})
		}
	}

	if len(s.hits) == 0 {
		return Hit{Ref: entity.NoRef}, false
	}

	best := 0
	for i := 1; i < len(s.hits); i++ {
		if s.hits[i].T < s.hits[best].T {
			best = i
		}
	}

	hit := s.hits[best]
	hit.Point = geom.HitPoint(start, dir, hit.T)
	return hit, true
}

// Shoot fires one bullet from start along angle plus a random jitter.
//
// Enemies lose one health point, paintings get knocked and walls receive an
// impact decal. The nearest surface stops the bullet, so a door in front of a
// wall leaves no decal.
func (s *HitscanSystem) Shoot(start mgl32.Vec3, angle float32) (Hit, bool) {
	jitter := s.config.Weapon.Jitter
	angle += s.rng.Float32()*2*jitter - jitter

	fx := s.config.Effects
	s.world.Tracers.Create(start.Add(mgl32.Vec3{0, fx.TracerYOffset, 0}), angle, fx.TracerLife)

	hit, ok := s.Cast(start, angle, entity.CategoryTargets, entity.PlayerRef)
	if ok {
		switch hit.Ref.Category {
		case entity.CategoryEnemy:
			s.world.Enemies[hit.Ref.Index].TakeDamage(1, s.config.Enemy.HitReactTime)
		case entity.CategoryPainting:
			s.world.Paintings[hit.Ref.Index].Knock(s.rng.Float32() - 0.5)
		case entity.CategoryBoxCollider:
			s.impact(start, angle, hit)
		}
	}

	if s.OnShot != nil {
		s.OnShot(hit, ok)
	}
	return hit, ok
}

// impact places a decal at the hit, facing out of the grid cell it struck.
func (s *HitscanSystem) impact(start mgl32.Vec3, angle float32, hit Hit) {
	scale := s.config.Level.ScaleFactor
	if scale <= 0 {
		return
	}

	// Hit.Point sits just outside the wall; look the cell up from just inside.
	inside := start.Add(geom.Forward(angle, hit.T+geom.ImpactEpsilon))
	cx := float32(math.Floor(float64(inside.X()/scale)))*scale + scale/2
	cz := float32(math.Floor(float64(inside.Z()/scale)))*scale + scale/2

	dir := geom.VecToDir(hit.Point.X()-cx, hit.Point.Z()-cz, true)
	s.world.Impacts.Create(hit.Point, dir, s.config.Effects.ImpactLife)
}

// CanSee reports whether nothing in CategoryObstructions lies strictly
// closer to from than to, along the horizontal ray between them.
func (s *HitscanSystem) CanSee(from, to mgl32.Vec3) bool {
	dist := horizontalDist(to.X()-from.X(), to.Z()-from.Z())

	hit, ok := s.Cast(from, geom.AngleTo(from, to), entity.CategoryObstructions, entity.NoRef)
	return !ok || hit.T >= dist
}

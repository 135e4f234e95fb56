package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/wolf3d/internal/domain/entity"
	"github.com/younwookim/wolf3d/internal/domain/geom"
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

// PlayerSystem applies input to the player: turning, walking, the weapon and
// door interaction.
type PlayerSystem struct {
	config    *config.TuningConfig
	world     *world.World
	collision *CollisionSystem
	hitscan   *HitscanSystem
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.TuningConfig, w *world.World, collision *CollisionSystem, hitscan *HitscanSystem) *PlayerSystem {
	return &PlayerSystem{
		config:    cfg,
		world:     w,
		collision: collision,
		hitscan:   hitscan,
	}
}

// Update advances the player by dt seconds.
func (s *PlayerSystem) Update(input InputState, dt float32) {
	p := &s.world.Player
	cfg := s.config.Player

	p.LookAngle += TurnIntent(input) * cfg.TurnSpeed * dt

	s.updateWeapon(p, dt)
	if input.Fire && !p.Shooting {
		p.Shooting = true
		p.AnimTimer = 0
		p.Frame = 0
		p.LastFrame = 0
	}

	if m := MoveIntentFor(input, p.LookAngle); m.Move {
		d := geom.Forward(m.Angle, cfg.MoveSpeed*dt)
		if applied := s.collision.MoveBy(entity.PlayerRef, d, entity.CategorySolids); applied != (mgl32.Vec3{}) {
			p.Stride += cfg.StrideRate * dt
		}
	}

	if input.Interact {
		s.toggleDoors(p)
	}
	if input.ToggleDebug {
		s.world.Debug = !s.world.Debug
	}
}

// updateWeapon plays the shoot animation. The bullet leaves on the tick the
// frame index first reaches FireFrame.
func (s *PlayerSystem) updateWeapon(p *entity.Player, dt float32) {
	if !p.Shooting {
		return
	}

	w := s.config.Weapon
	if p.AnimTimer >= w.AnimDuration {
		p.Shooting = false
		p.AnimTimer = 0
		p.Frame = 0
		return
	}

	p.AnimTimer += dt
	p.Frame = int(p.AnimTimer / w.FrameTime)
	if p.LastFrame < w.FireFrame && p.Frame >= w.FireFrame {
		muzzle := mgl32.Vec3{p.Pos.X(), w.MuzzleHeight, p.Pos.Z()}
		s.hitscan.Shoot(muzzle, p.LookAngle)
	}
	p.LastFrame = p.Frame
}

// toggleDoors flips every door within reach, whichever way the player faces.
func (s *PlayerSystem) toggleDoors(p *entity.Player) {
	reach := s.config.Player.DoorReach
	for i := range s.world.Doors {
		d := &s.world.Doors[i]
		if geom.Dist2(d.Center(), p.Center()) < reach*reach {
			d.Toggle()
		}
	}
}

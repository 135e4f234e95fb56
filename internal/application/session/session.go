// Package session runs one level: it owns the World and steps every system
// in a fixed order each tick.
package session

import (
	"errors"
	"math/rand"

	"github.com/younwookim/wolf3d/internal/application/system"
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

// ErrNotInitialized is returned by operations that need a running level.
var ErrNotInitialized = errors.New("session not initialized")

// Session is the game orchestrator.
type Session struct {
	config *config.TuningConfig
	rng    *rand.Rand

	world     *world.World
	collision *system.CollisionSystem
	hitscan   *system.HitscanSystem
	player    *system.PlayerSystem
	doors     *system.DoorSystem
	ai        *system.AISystem
	paintings *system.PaintingSystem
	effects   *system.EffectSystem

	ticks int
}

// New creates an empty session. rng drives weapon jitter, wander headings and
// painting knocks; a seeded source makes runs reproducible.
func New(cfg *config.TuningConfig, rng *rand.Rand) *Session {
	return &Session{config: cfg, rng: rng}
}

// Init populates the world from level and builds the systems. A running level
// is destroyed first.
func (s *Session) Init(level *world.Level) error {
	s.Destroy()

	w, err := world.New(level, world.Capacity{
		Impacts: s.config.Effects.MaxImpacts,
		Tracers: s.config.Effects.MaxTracers,
	})
	if err != nil {
		return err
	}

	s.world = w
	s.collision = system.NewCollisionSystem(w)
	s.hitscan = system.NewHitscanSystem(s.config, w, s.rng)
	s.player = system.NewPlayerSystem(s.config, w, s.collision, s.hitscan)
	s.doors = system.NewDoorSystem(&s.config.Door, w)
	s.ai = system.NewAISystem(s.config, w, s.collision, s.hitscan, s.rng)
	s.paintings = system.NewPaintingSystem(&s.config.Painting, w)
	s.effects = system.NewEffectSystem(&s.config.Effects, w)
	s.ticks = 0
	return nil
}

// Update advances the level by dt seconds: player, doors, enemies, paintings,
// then the effect pools. dt is clamped to display.maxDeltaTime when that is
// positive. Update does nothing before Init or after Destroy.
func (s *Session) Update(input system.InputState, dt float64) {
	if s.world == nil {
		return
	}
	if limit := s.config.Display.MaxDeltaTime; limit > 0 && dt > limit {
		dt = limit
	}

	step := float32(dt)
	s.player.Update(input, step)
	s.doors.Update(step)
	s.ai.Update(step)
	s.paintings.Update(step)
	s.effects.Update(step)
	s.ticks++
}

// World returns the running world for rendering, or nil.
func (s *Session) World() *world.World {
	return s.world
}

// Hitscan returns the shot resolver so the host can observe shots.
func (s *Session) Hitscan() (*system.HitscanSystem, error) {
	if s.hitscan == nil {
		return nil, ErrNotInitialized
	}
	return s.hitscan, nil
}

// Ticks returns the number of updates since Init.
func (s *Session) Ticks() int {
	return s.ticks
}

// Destroy releases the world. The session can be initialized again.
func (s *Session) Destroy() {
	if s.world == nil {
		return
	}
	s.world.Release()
	*s = Session{config: s.config, rng: s.rng}
}

package system

import (
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

// EffectSystem ages impact decals and flies tracers.
type EffectSystem struct {
	config *config.EffectsConfig
	world  *world.World
}

// NewEffectSystem creates a new effect system
func NewEffectSystem(cfg *config.EffectsConfig, w *world.World) *EffectSystem {
	return &EffectSystem{config: cfg, world: w}
}

// Update ticks both pools.
func (s *EffectSystem) Update(dt float32) {
	s.world.Impacts.Tick(dt)
	s.world.Tracers.Tick(dt, s.config.TracerSpeed)
}

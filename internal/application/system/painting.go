package system

import (
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

// PaintingSystem swings paintings that have been shot.
type PaintingSystem struct {
	config *config.PaintingConfig
	world  *world.World
}

// NewPaintingSystem creates a new painting system
func NewPaintingSystem(cfg *config.PaintingConfig, w *world.World) *PaintingSystem {
	return &PaintingSystem{config: cfg, world: w}
}

// Update integrates the swing of every hit painting as an undamped spring.
func (s *PaintingSystem) Update(dt float32) {
	for i := range s.world.Paintings {
		p := &s.world.Paintings[i]
		if !p.Hit {
			continue
		}
		p.Angle += p.AngularVel * dt
		p.AngularVel += -p.Angle * s.config.Stiffness * dt
	}
}

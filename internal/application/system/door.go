package system

import (
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

// DoorSystem slides doors toward their open or closed position.
type DoorSystem struct {
	config *config.DoorConfig
	world  *world.World
}

// NewDoorSystem creates a new door system
func NewDoorSystem(cfg *config.DoorConfig, w *world.World) *DoorSystem {
	return &DoorSystem{config: cfg, world: w}
}

// Update moves openness toward the open flag at OpenSpeed and repositions
// each door. Openness stays within [0, 1] and settles exactly on either end.
func (s *DoorSystem) Update(dt float32) {
	step := s.config.OpenSpeed * dt
	for i := range s.world.Doors {
		d := &s.world.Doors[i]

		if d.Open {
			if d.Openness < 1 {
				d.Openness = min(d.Openness+step, 1)
			}
		} else if d.Openness > 0 {
			d.Openness = max(d.Openness-step, 0)
		}

		d.Pos[0], d.Pos[2] = d.Slide(s.config.OpenAmount)
	}
}

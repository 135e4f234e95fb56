package config

import (
	"errors"
	"fmt"
)

// ErrUnknownEntity is returned for an entity kind the game cannot spawn.
var ErrUnknownEntity = errors.New("unknown entity kind")

// Entity kinds accepted in level files
const (
	KindPlayer   = "player"
	KindDoor     = "door"
	KindEnemy    = "enemy"
	KindPainting = "painting"
	KindBox      = "box"
)

// Vec3 is an [x, y, z] triple in a level file.
type Vec3 [3]float32

// EntityConfig is one spawn entry of a level file. Fields that do not apply
// to the kind are ignored; zero health, speed or extents fall back to tuning.
type EntityConfig struct {
	Kind   string  `yaml:"kind"`
	Pos    Vec3    `yaml:"pos"`
	Dir    int     `yaml:"dir,omitempty"`
	Angle  float32 `yaml:"angle,omitempty"` // initial look angle, radians
	Health int     `yaml:"health,omitempty"`
	Speed  float32 `yaml:"speed,omitempty"`
	Min    *Vec3   `yaml:"min,omitempty"`
	Max    *Vec3   `yaml:"max,omitempty"`
}

// Validate checks the kind and kind-specific required fields.
func (e *EntityConfig) Validate() error {
	switch e.Kind {
	case KindPlayer, KindEnemy:
	case KindDoor, KindPainting:
		if e.Dir < 0 || e.Dir > 3 {
			return fmt.Errorf("%s dir %d out of range 0-3", e.Kind, e.Dir)
		}
	case KindBox:
		if e.Min == nil || e.Max == nil {
			return errors.New("box needs min and max")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEntity, e.Kind)
	}
	return nil
}

package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a Level. Grid levels get box
// colliders for the solid runs plus floor and visible wall quads; declared
// boxes and planes are added after them.
func LoadLevel(cfg *config.LevelConfig, tuning *config.TuningConfig) (*world.Level, error) {
	scale := tuning.Level.ScaleFactor
	level := &world.Level{
		Name:  cfg.Name,
		Scale: scale,
	}

	if len(cfg.Grid) > 0 {
		grid, err := world.NewGrid(cfg.Grid)
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", cfg.Name, err)
		}
		level.Grid = grid
		level.Boxes = grid.BoxColliders(scale)
		level.Planes = grid.Planes(scale)
	}

	for _, p := range cfg.Planes {
		level.Planes = append(level.Planes, world.Plane{
			Origin: vec3(p.Origin),
			A:      vec3(p.A),
			B:      vec3(p.B),
			Tile:   p.Tile,
		})
	}

	for i := range cfg.Entities {
		e := &cfg.Entities[i]
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("level %q entity %d: %w", cfg.Name, i, err)
		}

		spawn := world.Spawn{
			Pos:   vec3(e.Pos),
			Dir:   e.Dir,
			Angle: e.Angle,
		}

		switch e.Kind {
		case config.KindPlayer:
			p := tuning.Player
			spawn.Min, spawn.Max = box(e, p.HalfWidth, p.HalfHeight)
			level.Players = append(level.Players, spawn)
		case config.KindEnemy:
			en := tuning.Enemy
			spawn.Min, spawn.Max = box(e, en.HalfWidth, en.HalfHeight)
			spawn.Health = orInt(e.Health, en.Health)
			spawn.Speed = orFloat(e.Speed, en.Speed)
			level.Enemies = append(level.Enemies, spawn)
		case config.KindDoor:
			d := tuning.Door
			spawn.Size = mgl32.Vec3{d.HalfWidth, d.HalfHeight, d.HalfDepth}
			level.Doors = append(level.Doors, spawn)
		case config.KindPainting:
			p := tuning.Painting
			spawn.Size = mgl32.Vec3{p.HalfWidth, p.HalfHeight, p.HalfDepth}
			level.Paintings = append(level.Paintings, spawn)
		case config.KindBox:
			spawn.Min, spawn.Max = vec3(*e.Min), vec3(*e.Max)
			level.Boxes = append(level.Boxes, spawn)
		}
	}

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

// box returns the entity's declared extents, or a box of the given half
// width and half height.
func box(e *config.EntityConfig, halfWidth, halfHeight float32) (mgl32.Vec3, mgl32.Vec3) {
	if e.Min != nil && e.Max != nil {
		return vec3(*e.Min), vec3(*e.Max)
	}
	return mgl32.Vec3{-halfWidth, -halfHeight, -halfWidth}, mgl32.Vec3{halfWidth, halfHeight, halfWidth}
}

func vec3(v config.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orFloat(v, def float32) float32 {
	if v == 0 {
		return def
	}
	return v
}

package system

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wolf3d/internal/domain/entity"
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// createTestTuning returns stock tuning without weapon jitter so shots are
// deterministic.
func createTestTuning() *config.TuningConfig {
	cfg := config.DefaultTuning()
	cfg.Weapon.Jitter = 0
	return cfg
}

func playerSpawn(x, z float32) world.Spawn {
	return world.Spawn{
		Pos: mgl32.Vec3{x, 0, z},
		Min: mgl32.Vec3{-0.5, -1, -0.5},
		Max: mgl32.Vec3{0.5, 1, 0.5},
	}
}

func enemySpawn(x, z float32, health int) world.Spawn {
	return world.Spawn{
		Pos:    mgl32.Vec3{x, 0, z},
		Health: health,
		Speed:  2,
		Min:    mgl32.Vec3{-0.3, -0.5, -0.3},
		Max:    mgl32.Vec3{0.3, 0.5, 0.3},
	}
}

func boxSpawn(x, z, half float32) world.Spawn {
	return world.Spawn{
		Pos: mgl32.Vec3{x, 0, z},
		Min: mgl32.Vec3{-half, -half, -half},
		Max: mgl32.Vec3{half, half, half},
	}
}

func doorSpawn(x, z float32, dir int) world.Spawn {
	return world.Spawn{Pos: mgl32.Vec3{x, 0, z}, Dir: dir, Size: mgl32.Vec3{1, 0.5, 0.2}}
}

func paintingSpawn(x, z float32, dir int) world.Spawn {
	return world.Spawn{Pos: mgl32.Vec3{x, 0, z}, Dir: dir, Size: mgl32.Vec3{1, 0.3, 0.3}}
}

// farBox keeps otherwise empty test levels valid.
var farBox = boxSpawn(500, 500, 1)

func createTestWorld(t *testing.T, level *world.Level) *world.World {
	t.Helper()
	if level.Name == "" {
		level.Name = "test"
	}
	if level.Scale == 0 {
		level.Scale = 2
	}
	w, err := world.New(level, world.Capacity{Impacts: 4, Tracers: 4})
	require.NoError(t, err)
	return w
}

func TestCollisionSystem_MoveBy(t *testing.T) {
	t.Run("free move applies every axis", func(t *testing.T) {
		w := createTestWorld(t, &world.Level{Players: []world.Spawn{playerSpawn(0, 0)}, Boxes: []world.Spawn{farBox}})
		sys := NewCollisionSystem(w)

		applied := sys.MoveBy(entity.PlayerRef, mgl32.Vec3{0.25, 0.5, -0.75}, entity.CategorySolids)

		assert.Equal(t, mgl32.Vec3{0.25, 0.5, -0.75}, applied)
		assert.Equal(t, mgl32.Vec3{0.25, 0.5, -0.75}, w.Player.Pos)
	})

	t.Run("blocked x still slides along z", func(t *testing.T) {
		// L-shaped wall: one arm to the +x side, one further along +x/+z.
		w := createTestWorld(t, &world.Level{
			Players: []world.Spawn{playerSpawn(0, 0)},
			Boxes:   []world.Spawn{boxSpawn(1.5, 0, 0.5), boxSpawn(1.5, 1, 0.5)},
		})
		sys := NewCollisionSystem(w)

		applied := sys.MoveBy(entity.PlayerRef, mgl32.Vec3{0.6, 0, 0.4}, entity.CategorySolids)

		assert.Equal(t, mgl32.Vec3{0, 0, 0.4}, applied)
		assert.Equal(t, mgl32.Vec3{0, 0, 0.4}, w.Player.Pos)
	})

	t.Run("blocked axis is cancelled, not clamped", func(t *testing.T) {
		w := createTestWorld(t, &world.Level{
			Players: []world.Spawn{playerSpawn(0, 0)},
			Boxes:   []world.Spawn{boxSpawn(2, 0, 0.5)},
		})
		sys := NewCollisionSystem(w)

		applied := sys.MoveBy(entity.PlayerRef, mgl32.Vec3{1.5, 0, 0}, entity.CategorySolids)

		assert.Equal(t, mgl32.Vec3{}, applied)
		assert.Equal(t, mgl32.Vec3{}, w.Player.Pos)
	})

	t.Run("touching is not a collision", func(t *testing.T) {
		w := createTestWorld(t, &world.Level{
			Players: []world.Spawn{playerSpawn(0, 0)},
			Boxes:   []world.Spawn{boxSpawn(2, 0, 0.5)},
		})
		sys := NewCollisionSystem(w)

		applied := sys.MoveBy(entity.PlayerRef, mgl32.Vec3{1, 0, 0}, entity.CategorySolids)

		assert.Equal(t, mgl32.Vec3{1, 0, 0}, applied)
	})

	t.Run("categories outside the mask do not block", func(t *testing.T) {
		w := createTestWorld(t, &world.Level{
			Players: []world.Spawn{playerSpawn(0, 0)},
			Enemies: []world.Spawn{enemySpawn(1, 0, 1)},
			Boxes:   []world.Spawn{farBox},
		})
		sys := NewCollisionSystem(w)

		applied := sys.MoveBy(entity.PlayerRef, mgl32.Vec3{1, 0, 0}, entity.CategorySolids)
		assert.Equal(t, mgl32.Vec3{1, 0, 0}, applied)

		applied = sys.MoveBy(entity.PlayerRef, mgl32.Vec3{0.1, 0, 0}, entity.CategoryEnemy)
		assert.Equal(t, mgl32.Vec3{}, applied, "already overlapping the enemy")
	})

	t.Run("mover skips itself", func(t *testing.T) {
		w := createTestWorld(t, &world.Level{
			Players: []world.Spawn{playerSpawn(50, 50)},
			Enemies: []world.Spawn{enemySpawn(0, 0, 1)},
			Boxes:   []world.Spawn{farBox},
		})
		sys := NewCollisionSystem(w)
		self := entity.Ref{Category: entity.CategoryEnemy, Index: 0}

		applied := sys.MoveBy(self, mgl32.Vec3{0.1, 0, 0.1}, EnemyMoveMask)

		assert.Equal(t, mgl32.Vec3{0.1, 0, 0.1}, applied)
	})

	t.Run("dead enemies do not block", func(t *testing.T) {
		w := createTestWorld(t, &world.Level{
			Players: []world.Spawn{playerSpawn(50, 50)},
			Enemies: []world.Spawn{enemySpawn(0, 0, 1), enemySpawn(1, 0, 1)},
			Boxes:   []world.Spawn{farBox},
		})
		sys := NewCollisionSystem(w)
		self := entity.Ref{Category: entity.CategoryEnemy, Index: 0}

		assert.Equal(t, mgl32.Vec3{}, sys.MoveBy(self, mgl32.Vec3{0.5, 0, 0}, EnemyMoveMask))

		w.Enemies[1].TakeDamage(1, 0)
		assert.Equal(t, mgl32.Vec3{0.5, 0, 0}, sys.MoveBy(self, mgl32.Vec3{0.5, 0, 0}, EnemyMoveMask))
	})

	t.Run("boxless mover passes through", func(t *testing.T) {
		w := createTestWorld(t, &world.Level{
			Players: []world.Spawn{playerSpawn(0, 0)},
			Boxes:   []world.Spawn{boxSpawn(1.5, 0, 0.5)},
		})
		w.Player.HasBox = false
		sys := NewCollisionSystem(w)

		applied := sys.MoveBy(entity.PlayerRef, mgl32.Vec3{1.5, 0, 0}, entity.CategorySolids)

		assert.Equal(t, mgl32.Vec3{1.5, 0, 0}, applied)
	})

	t.Run("invalid ref moves nothing", func(t *testing.T) {
		w := createTestWorld(t, &world.Level{Players: []world.Spawn{playerSpawn(0, 0)}, Boxes: []world.Spawn{farBox}})
		sys := NewCollisionSystem(w)

		assert.Equal(t, mgl32.Vec3{}, sys.MoveBy(entity.NoRef, mgl32.Vec3{1, 0, 0}, entity.CategorySolids))
	})
}

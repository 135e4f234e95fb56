package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/wolf3d/internal/domain/entity"
	"github.com/younwookim/wolf3d/internal/domain/world"
)

// benchWorld lays out a grid-sized level: a ring of wall boxes and n enemies
// scattered inside it.
func benchWorld(b *testing.B, n int) *world.World {
	b.Helper()
	level := &world.Level{
		Name:    "bench",
		Scale:   2,
		Players: []world.Spawn{playerSpawn(1, 1)},
	}
	for i := 0; i < 64; i++ {
		x := float32(i) * 2
		level.Boxes = append(level.Boxes, boxSpawn(x, -2, 1), boxSpawn(x, 130, 1), boxSpawn(-2, x, 1), boxSpawn(130, x, 1))
	}
	for i := 0; i < n; i++ {
		level.Enemies = append(level.Enemies, enemySpawn(float32(4+(i*7)%120), float32(4+(i*13)%120), 1))
	}

	w, err := world.New(level, world.Capacity{Impacts: 64, Tracers: 32})
	if err != nil {
		b.Fatal(err)
	}
	return w
}

func BenchmarkHitscan_Cast(b *testing.B) {
	w := benchWorld(b, 200)
	sys := NewHitscanSystem(createTestTuning(), w, testRNG())
	start := mgl32.Vec3{1, 0, 1}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sys.Cast(start, float32(n%628)/100, entity.CategoryTargets, entity.PlayerRef)
	}
}

func BenchmarkHitscan_CanSee(b *testing.B) {
	w := benchWorld(b, 200)
	sys := NewHitscanSystem(createTestTuning(), w, testRNG())

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		e := &w.Enemies[n%len(w.Enemies)]
		sys.CanSee(e.Pos, w.Player.Pos)
	}
}

func BenchmarkCollision_MoveBy(b *testing.B) {
	w := benchWorld(b, 200)
	sys := NewCollisionSystem(w)
	d := mgl32.Vec3{0.01, 0, 0.01}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if n%2 == 1 {
			sys.MoveBy(entity.PlayerRef, d.Mul(-1), entity.CategorySolids)
			continue
		}
		sys.MoveBy(entity.PlayerRef, d, entity.CategorySolids)
	}
}

func BenchmarkAI_Update(b *testing.B) {
	w := benchWorld(b, 200)
	cfg := createTestTuning()
	collision := NewCollisionSystem(w)
	sys := NewAISystem(cfg, w, collision, NewHitscanSystem(cfg, w, testRNG()), testRNG())

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sys.Update(1.0 / 60)
	}
}

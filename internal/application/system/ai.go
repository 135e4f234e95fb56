package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/wolf3d/internal/domain/entity"
	"github.com/younwookim/wolf3d/internal/domain/geom"
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

// Enemy sprite sheet layout: Frame = row*FrameColumns + column. Stand and
// walk rows use the column for the view direction, the others for time.
const (
	FrameColumns = 8

	RowStand = 0
	RowWalk  = 1 // four rows, one per step
	RowHit   = 5
	RowDeath = 6
	RowShoot = 7

	walkRows    = 4
	deathFrames = 5
	shootFrames = 3
)

// EnemyMoveMask is what blocks a walking enemy.
const EnemyMoveMask = entity.CategoryBoxCollider | entity.CategoryEnemy | entity.CategoryDoor | entity.CategoryPainting

// AISystem runs the enemy state machine.
type AISystem struct {
	config    *config.TuningConfig
	world     *world.World
	collision *CollisionSystem
	hitscan   *HitscanSystem
	rng       *rand.Rand
}

// NewAISystem creates a new AI system
func NewAISystem(cfg *config.TuningConfig, w *world.World, collision *CollisionSystem, hitscan *HitscanSystem, rng *rand.Rand) *AISystem {
	return &AISystem{
		config:    cfg,
		world:     w,
		collision: collision,
		hitscan:   hitscan,
		rng:       rng,
	}
}

// Update advances every enemy by dt seconds.
func (s *AISystem) Update(dt float32) {
	for i := range s.world.Enemies {
		s.updateEnemy(i, dt)
	}
}

func (s *AISystem) updateEnemy(i int, dt float32) {
	e := &s.world.Enemies[i]
	cfg := s.config.Enemy

	e.StateTimer += dt
	e.AnimTimer += dt

	if !e.Alive() {
		e.Frame = RowDeath*FrameColumns + min(int(e.AnimTimer/cfg.DeathFrameTime), deathFrames-1)
		return
	}

	if e.Reacting() {
		e.HitTimer -= dt
		e.Frame = RowHit * FrameColumns
		return
	}

	self := entity.Ref{Category: entity.CategoryEnemy, Index: i}
	player := s.world.Player.Pos

	switch e.State {
	case entity.StateWalking:
		s.collision.MoveBy(self, geom.Forward(e.LookAngle, e.Speed*dt), EnemyMoveMask)
	case entity.StateChasing:
		e.LookAngle = geom.AngleTo(e.Pos, player)
		s.collision.MoveBy(self, geom.Forward(e.LookAngle, e.Speed*cfg.ChaseSpeedScale*dt), EnemyMoveMask)
	case entity.StateSawPlayer:
		e.LookAngle = geom.AngleTo(e.Pos, player)
	}

	s.transition(e, horizontalDist(e.Pos.X()-player.X(), e.Pos.Z()-player.Z()))
	e.Frame = s.frame(e)
}

// transition applies at most one state change.
func (s *AISystem) transition(e *entity.Enemy, dist float32) {
	cfg := s.config.Enemy

	switch e.State {
	case entity.StateIdle:
		if s.spotsPlayer(e, dist) {
			e.SetState(entity.StateSawPlayer)
		} else if e.StateTimer >= cfg.IdleTime {
			e.LookAngle += (s.rng.Float32()*2 - 1) * cfg.WanderAngle
			e.SetState(entity.StateWalking)
		}
	case entity.StateWalking:
		if s.spotsPlayer(e, dist) {
			e.SetState(entity.StateSawPlayer)
		} else if e.StateTimer >= cfg.WalkTime {
			e.SetState(entity.StateIdle)
		}
	case entity.StateSawPlayer:
		if e.StateTimer >= cfg.ReactionTime {
			e.SetState(entity.StateStartChase)
		}
	case entity.StateStartChase:
		if e.StateTimer >= cfg.SpinUpTime {
			e.SetState(entity.StateChasing)
		}
	case entity.StateChasing:
		if dist <= cfg.ShootDistance {
			e.SetState(entity.StateShooting)
		} else if dist > cfg.LoseSightDistance {
			e.SetState(entity.StateIdle)
		}
	case entity.StateShooting:
		if dist > cfg.ShootDistance {
			e.SetState(entity.StateStartChase)
		}
	}
}

func (s *AISystem) spotsPlayer(e *entity.Enemy, dist float32) bool {
	if dist > s.config.Enemy.SightDistance {
		return false
	}
	return s.hitscan.CanSee(e.Pos, s.world.Player.Pos)
}

// frame picks the sprite for a live enemy.
func (s *AISystem) frame(e *entity.Enemy) int {
	cfg := s.config.Enemy

	switch e.State {
	case entity.StateWalking, entity.StateChasing:
		step := int(e.AnimTimer/cfg.WalkFrameTime) % walkRows
		return (RowWalk+step)*FrameColumns + s.viewColumn(e)
	case entity.StateShooting:
		return RowShoot*FrameColumns + int(e.StateTimer/cfg.ShootFrameTime)%shootFrames
	default:
		return RowStand*FrameColumns + s.viewColumn(e)
	}
}

// viewColumn is the 8-way direction the enemy faces relative to the player's
// view of it; 0 faces the player.
func (s *AISystem) viewColumn(e *entity.Enemy) int {
	rel := float64(e.LookAngle - geom.AngleTo(e.Pos, s.world.Player.Pos))
	return geom.VecToDir(float32(math.Sin(rel)), float32(math.Cos(rel)), false)
}

func horizontalDist(dx, dz float32) float32 {
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

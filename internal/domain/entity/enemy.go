package entity

import "github.com/go-gl/mathgl/mgl32"

// EnemyState is the behavior state of an enemy
type EnemyState uint8

const (
	StateIdle EnemyState = iota
	StateWalking
	StateSawPlayer
	StateStartChase
	StateChasing
	StateShooting
	StateDead
)

// String returns the string representation of the enemy state
func (s EnemyState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWalking:
		return "Walking"
	case StateSawPlayer:
		return "SawPlayer"
	case StateStartChase:
		return "StartChase"
	case StateChasing:
		return "Chasing"
	case StateShooting:
		return "Shooting"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Enemy is a guard driven by the AI state machine.
//
// Health <= 0 if and only if State == StateDead, and StateDead has no
// outgoing transitions.
type Enemy struct {
	Body

	State     EnemyState
	LookAngle float32 // radians
	Health    int
	Speed     float32 // world units per second

	HitTimer   float32 // > 0 while playing the hit reaction
	AnimTimer  float32
	StateTimer float32 // time spent in the current state

	Frame int // sprite frame picked by the AI each tick
}

// NewEnemy creates a live, idle enemy.
func NewEnemy(pos, min, max mgl32.Vec3, health int, speed float32) Enemy {
	return Enemy{
		Body:   NewBody(pos, min, max),
		State:  StateIdle,
		Health: health,
		Speed:  speed,
	}
}

// Alive returns true if the enemy has not been killed
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Reacting returns true while the hit reaction suspends the AI
func (e *Enemy) Reacting() bool {
	return e.HitTimer > 0
}

// SetState switches to s and restarts the state timer. Dead enemies stay
// dead; StateDead itself is only entered through TakeDamage.
func (e *Enemy) SetState(s EnemyState) bool {
	if e.State == StateDead || s == StateDead {
		return false
	}
	e.State = s
	e.StateTimer = 0
	return true
}

// TakeDamage applies damage and returns true if it was lethal. A lethal hit
// moves the enemy to StateDead and restarts the animation so the death
// sequence plays from its first frame; any other hit starts the reaction.
func (e *Enemy) TakeDamage(damage int, reactTime float32) bool {
	if !e.Alive() {
		return false
	}

	e.Health -= damage
	if e.Health <= 0 {
		e.State = StateDead
		e.StateTimer = 0
		e.AnimTimer = 0
		e.HitTimer = 0
		return true
	}

	e.HitTimer = reactTime
	return false
}

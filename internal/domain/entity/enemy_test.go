package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEnemy(health int) Enemy {
	return NewEnemy(mgl32.Vec3{4, 0, 4}, mgl32.Vec3{-0.3, -0.5, -0.3}, mgl32.Vec3{0.3, 0.5, 0.3}, health, 2)
}

func TestNewEnemy(t *testing.T) {
	e := createTestEnemy(3)

	assert.Equal(t, StateIdle, e.State)
	assert.Equal(t, 3, e.Health)
	assert.Equal(t, float32(2), e.Speed)
	assert.True(t, e.HasBox)
	assert.True(t, e.Alive())
	assert.False(t, e.Reacting())
}

func TestEnemy_TakeDamage(t *testing.T) {
	t.Run("non-lethal hit starts reaction", func(t *testing.T) {
		e := createTestEnemy(2)
		e.State = StateWalking

		killed := e.TakeDamage(1, 0.3)

		assert.False(t, killed)
		assert.Equal(t, 1, e.Health)
		assert.Equal(t, StateWalking, e.State)
		assert.InDelta(t, 0.3, e.HitTimer, 1e-6)
		assert.True(t, e.Reacting())
	})

	t.Run("lethal hit kills", func(t *testing.T) {
		e := createTestEnemy(1)
		e.State = StateChasing
		e.AnimTimer = 4.2
		e.StateTimer = 1.1

		killed := e.TakeDamage(1, 0.3)

		require.True(t, killed)
		assert.Equal(t, 0, e.Health)
		assert.Equal(t, StateDead, e.State)
		assert.Zero(t, e.AnimTimer)
		assert.Zero(t, e.StateTimer)
		assert.Zero(t, e.HitTimer)
		assert.False(t, e.Alive())
	})

	t.Run("dead enemies ignore damage", func(t *testing.T) {
		e := createTestEnemy(1)
		e.TakeDamage(1, 0.3)
		e.AnimTimer = 0.5

		killed := e.TakeDamage(1, 0.3)

		assert.False(t, killed)
		assert.Equal(t, 0, e.Health)
		assert.InDelta(t, 0.5, e.AnimTimer, 1e-6)
	})
}

func TestEnemy_SetState(t *testing.T) {
	e := createTestEnemy(1)
	e.StateTimer = 2

	require.True(t, e.SetState(StateWalking))
	assert.Equal(t, StateWalking, e.State)
	assert.Zero(t, e.StateTimer)

	assert.False(t, e.SetState(StateDead), "death only comes from damage")
	assert.Equal(t, StateWalking, e.State)

	e.TakeDamage(1, 0)
	assert.False(t, e.SetState(StateIdle), "dead is terminal")
	assert.Equal(t, StateDead, e.State)
}

func TestEnemyState_String(t *testing.T) {
	tests := []struct {
		state    EnemyState
		expected string
	}{
		{StateIdle, "Idle"},
		{StateWalking, "Walking"},
		{StateSawPlayer, "SawPlayer"},
		{StateStartChase, "StartChase"},
		{StateChasing, "Chasing"},
		{StateShooting, "Shooting"},
		{StateDead, "Dead"},
		{EnemyState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

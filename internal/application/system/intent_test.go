package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnIntent(t *testing.T) {
	assert.Equal(t, float32(1), TurnIntent(InputState{TurnLeft: true}))
	assert.Equal(t, float32(-1), TurnIntent(InputState{TurnRight: true}))
	assert.Equal(t, float32(1), TurnIntent(InputState{TurnLeft: true, TurnRight: true}))
	assert.Zero(t, TurnIntent(InputState{Forward: true}))
}

func TestMoveIntentFor(t *testing.T) {
	const look = 1.0

	tests := []struct {
		name  string
		input InputState
		move  bool
		angle float64
	}{
		{"idle", InputState{}, false, 0},
		{"forward", InputState{Forward: true}, true, look},
		{"back", InputState{Back: true}, true, look + math.Pi},
		{"strafe left", InputState{StrafeLeft: true}, true, look + math.Pi/2},
		{"strafe right", InputState{StrafeRight: true}, true, look - math.Pi/2},
		{"forward left", InputState{Forward: true, StrafeLeft: true}, true, look + math.Pi/4},
		{"forward right", InputState{Forward: true, StrafeRight: true}, true, look - math.Pi/4},
		{"back left", InputState{Back: true, StrafeLeft: true}, true, look + math.Pi - math.Pi/4},
		{"back right", InputState{Back: true, StrafeRight: true}, true, look + math.Pi + math.Pi/4},
		{"forward wins over back", InputState{Forward: true, Back: true}, true, look},
		{"turning alone does not move", InputState{TurnLeft: true}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MoveIntentFor(tt.input, look)

			assert.Equal(t, tt.move, m.Move)
			if tt.move {
				assert.InDelta(t, tt.angle, m.Angle, 1e-5)
			}
		})
	}
}

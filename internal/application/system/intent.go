package system

import "math"

// MoveIntent is the walk direction the player asked for this tick.
type MoveIntent struct {
	Move  bool
	Angle float32 // radians, world space
}

// TurnIntent returns +1 to turn left, -1 to turn right or 0. Left wins when
// both are held.
func TurnIntent(input InputState) float32 {
	switch {
	case input.TurnLeft:
		return 1
	case input.TurnRight:
		return -1
	}
	return 0
}

// MoveIntentFor derives the walk direction from the held movement inputs
// relative to look. Forward or back combined with a strafe walks diagonally.
func MoveIntentFor(input InputState, look float32) MoveIntent {
	const (
		quarter = math.Pi / 2
		eighth  = math.Pi / 4
	)

	var m MoveIntent
	if input.StrafeLeft {
		m = MoveIntent{Move: true, Angle: look + quarter}
	} else if input.StrafeRight {
		m = MoveIntent{Move: true, Angle: look - quarter}
	}

	if input.Forward {
		m = MoveIntent{Move: true, Angle: look}
		if input.StrafeLeft {
			m.Angle += eighth
		} else if input.StrafeRight {
			m.Angle -= eighth
		}
	} else if input.Back {
		m = MoveIntent{Move: true, Angle: look + math.Pi}
		if input.StrafeLeft {
			m.Angle -= eighth
		} else if input.StrafeRight {
			m.Angle += eighth
		}
	}

	return m
}

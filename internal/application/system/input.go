package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem handles player input
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state. Interact and ToggleDebug are
// press edges, everything else is held.
type InputState struct {
	TurnLeft    bool
	TurnRight   bool
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	Fire        bool
	Interact    bool
	ToggleDebug bool
}

// GetInput reads the current input state. A and D turn, or strafe while
// left shift is held.
func (s *InputSystem) GetInput() InputState {
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	return InputState{
		TurnLeft:    !shift && left,
		TurnRight:   !shift && right,
		StrafeLeft:  shift && left,
		StrafeRight: shift && right,
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Back:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Fire:        ebiten.IsKeyPressed(ebiten.KeySpace),
		Interact:    inpututil.IsKeyJustPressed(ebiten.KeyE),
		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyTab),
	}
}

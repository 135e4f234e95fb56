package replay

import "github.com/younwookim/wolf3d/internal/application/system"

// Version is written into every recording.
const Version = "2.0"

// FrameInput records input state and step length for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	DT float64 `json:"dt"`           // Seconds passed to Session.Update
	TL bool    `json:"tl,omitempty"` // TurnLeft
	TR bool    `json:"tr,omitempty"` // TurnRight
	FW bool    `json:"fw,omitempty"` // Forward
	BK bool    `json:"bk,omitempty"` // Back
	SL bool    `json:"sl,omitempty"` // StrafeLeft
	SR bool    `json:"sr,omitempty"` // StrafeRight
	FI bool    `json:"fi,omitempty"` // Fire
	IN bool    `json:"in,omitempty"` // Interact
	DB bool    `json:"db,omitempty"` // ToggleDebug
}

// NewFrameInput packs one tick of input.
func NewFrameInput(frame int, input system.InputState, dt float64) FrameInput {
	return FrameInput{
		F:  frame,
		DT: dt,
		TL: input.TurnLeft,
		TR: input.TurnRight,
		FW: input.Forward,
		BK: input.Back,
		SL: input.StrafeLeft,
		SR: input.StrafeRight,
		FI: input.Fire,
		IN: input.Interact,
		DB: input.ToggleDebug,
	}
}

// Input unpacks the recorded input state.
func (f FrameInput) Input() system.InputState {
	return system.InputState{
		TurnLeft:    f.TL,
		TurnRight:   f.TR,
		Forward:     f.FW,
		Back:        f.BK,
		StrafeLeft:  f.SL,
		StrafeRight: f.SR,
		Fire:        f.FI,
		Interact:    f.IN,
		ToggleDebug: f.DB,
	}
}

// ReplayData contains all data needed to replay a game session. Playing the
// frames into a session seeded with Seed on Level reproduces the run.
type ReplayData struct {
	ID        string       `json:"id"`
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

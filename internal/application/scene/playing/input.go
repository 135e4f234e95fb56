package playing

import (
	"github.com/younwookim/wolf3d/internal/application/replay"
	"github.com/younwookim/wolf3d/internal/application/system"
)

// InputSource supplies the input and step length of one tick. ok is false
// when the source has run out.
type InputSource interface {
	Next(dt float64) (input system.InputState, step float64, ok bool)
}

// LiveInput polls the keyboard and passes the host dt through.
type LiveInput struct {
	input *system.InputSystem
}

// NewLiveInput creates a keyboard input source
func NewLiveInput() *LiveInput {
	return &LiveInput{input: system.NewInputSystem()}
}

// Next implements InputSource
func (l *LiveInput) Next(dt float64) (system.InputState, float64, bool) {
	return l.input.GetInput(), dt, true
}

// ReplayInput feeds recorded frames and ignores the host dt.
type ReplayInput struct {
	replayer *replay.Replayer
}

// NewReplayInput creates an input source playing back data
func NewReplayInput(data replay.ReplayData) *ReplayInput {
	return &ReplayInput{replayer: replay.NewReplayer(data)}
}

// Next implements InputSource
func (r *ReplayInput) Next(float64) (system.InputState, float64, bool) {
	return r.replayer.Next()
}

// Done reports whether every recorded frame has been played.
func (r *ReplayInput) Done() bool {
	return r.replayer.Done()
}

// Rewind starts the recording over from its first frame.
func (r *ReplayInput) Rewind() {
	r.replayer.Reset()
}

// Progress returns played and total frame counts.
func (r *ReplayInput) Progress() (int, int) {
	return r.replayer.CurrentFrame(), r.replayer.TotalFrames()
}

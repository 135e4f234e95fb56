package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/wolf3d/internal/application/system"
)

var (
	// ErrNoFrames is returned when saving or loading an empty recording.
	ErrNoFrames = errors.New("replay has no frames")

	// ErrVersion is returned for recordings written by an incompatible build.
	ErrVersion = errors.New("unsupported replay version")
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads and checks one recording.
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("%w: %q", ErrVersion, data.Version)
	}
	if len(data.Frames) == 0 {
		return nil, ErrNoFrames
	}
	return &data, nil
}

// Next returns the input and dt of the current frame and advances. ok is
// false once every frame has been played.
func (r *Replayer) Next() (input system.InputState, dt float64, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), fi.DT, true
}

// Done reports whether every frame has been played.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Level returns the recorded level name
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// NewReplayData starts an empty recording with a fresh id.
func NewReplayData(seed int64, level string) ReplayData {
	return ReplayData{
		ID:        uuid.NewString(),
		Version:   Version,
		Seed:      seed,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60 TPS
	}
}

// CreateTestReplayData creates replay data for testing: the given input held
// for frames ticks of dt.
func CreateTestReplayData(frames int, input system.InputState, dt float64) ReplayData {
	data := NewReplayData(12345, "test")
	for i := 0; i < frames; i++ {
		data.Frames = append(data.Frames, NewFrameInput(i, input, dt))
	}
	return data
}

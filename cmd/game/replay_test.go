package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wolf3d/internal/application/replay"
	"github.com/younwookim/wolf3d/internal/application/system"
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

func loadTestLevel(t *testing.T) (*config.GameConfig, *world.Level) {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll("e1m1")
	require.NoError(t, err)
	level, err := system.LoadLevel(cfg.Level, cfg.Tuning)
	require.NoError(t, err)
	return cfg, level
}

// createTestRecording walks forward, shoots, turns and shoots again.
func createTestRecording() *replay.ReplayData {
	data := replay.NewReplayData(2024, "e1m1")
	script := []struct {
		frames int
		input  system.InputState
	}{
		{30, system.InputState{Forward: true}},
		{1, system.InputState{Fire: true}},
		{20, system.InputState{}},
		{15, system.InputState{TurnLeft: true}},
		{1, system.InputState{Fire: true}},
		{40, system.InputState{StrafeRight: true}},
	}

	f := 0
	for _, step := range script {
		for i := 0; i < step.frames; i++ {
			data.Frames = append(data.Frames, replay.NewFrameInput(f, step.input, 1.0/60))
			f++
		}
	}
	return &data
}

func TestEmbeddedConfigs(t *testing.T) {
	cfg, level := loadTestLevel(t)

	assert.Equal(t, "e1m1", cfg.Level.Name)
	assert.Equal(t, "e1m1", level.Name)
	assert.NotNil(t, level.Grid)
	assert.Len(t, level.Players, 1)
}

func TestRunReplay(t *testing.T) {
	cfg, level := loadTestLevel(t)
	data := createTestRecording()

	summary, err := runReplay(cfg, level, data)
	require.NoError(t, err)

	assert.Equal(t, data.ID, summary.ID)
	assert.Equal(t, len(data.Frames), summary.Ticks)
	assert.InDelta(t, float64(len(data.Frames))/60, summary.Elapsed, 1e-9)
	assert.Equal(t, len(level.Enemies), summary.EnemiesTotal)
	assert.Contains(t, summary.String(), data.ID)
}

func TestRunReplay_Deterministic(t *testing.T) {
	cfg, level := loadTestLevel(t)
	data := createTestRecording()

	first, err := runReplay(cfg, level, data)
	require.NoError(t, err)
	second, err := runReplay(cfg, level, data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunReplay_LevelMismatch(t *testing.T) {
	cfg, level := loadTestLevel(t)
	data := createTestRecording()
	data.Level = "e1m2"

	_, err := runReplay(cfg, level, data)

	assert.ErrorIs(t, err, ErrLevelMismatch)
}

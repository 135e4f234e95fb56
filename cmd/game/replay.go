package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/wolf3d/internal/application/replay"
	"github.com/younwookim/wolf3d/internal/application/session"
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

// ErrLevelMismatch is returned when a recording is played on another level.
var ErrLevelMismatch = errors.New("replay was recorded on a different level")

// ReplaySummary is the end state of a headless replay.
type ReplaySummary struct {
	ID           string
	Ticks        int
	Elapsed      float64
	PlayerX      float32
	PlayerZ      float32
	LookAngle    float32
	EnemiesAlive int
	EnemiesTotal int
	Impacts      int
}

func (s ReplaySummary) String() string {
	return fmt.Sprintf("replay %s: %d ticks (%.2fs), player at (%.3f, %.3f) look %.3f, enemies %d/%d alive, %d impacts",
		s.ID, s.Ticks, s.Elapsed, s.PlayerX, s.PlayerZ, s.LookAngle, s.EnemiesAlive, s.EnemiesTotal, s.Impacts)
}

// runReplay steps a fresh session through every recorded frame without a
// window.
func runReplay(cfg *config.GameConfig, level *world.Level, data *replay.ReplayData) (ReplaySummary, error) {
	replayer := replay.NewReplayer(*data)
	if replayer.Level() != level.Name {
		return ReplaySummary{}, fmt.Errorf("%w: recorded %q, loaded %q", ErrLevelMismatch, replayer.Level(), level.Name)
	}

	s := session.New(cfg.Tuning, rand.New(rand.NewSource(replayer.Seed())))
	if err := s.Init(level); err != nil {
		return ReplaySummary{}, err
	}
	defer s.Destroy()

	summary := ReplaySummary{ID: data.ID}
	for !replayer.Done() {
		input, dt, _ := replayer.Next()
		s.Update(input, dt)
		summary.Elapsed += dt
	}

	w := s.World()
	summary.Ticks = s.Ticks()
	summary.PlayerX = w.Player.Pos.X()
	summary.PlayerZ = w.Player.Pos.Z()
	summary.LookAngle = w.Player.LookAngle
	summary.EnemiesTotal = len(w.Enemies)
	for i := range w.Enemies {
		if w.Enemies[i].Alive() {
			summary.EnemiesAlive++
		}
	}
	summary.Impacts = w.Impacts.Active()
	return summary, nil
}

// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wolf3d/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int

	// fixedDT, when positive, replaces the measured frame time.
	fixedDT float64
	tps     int
	last    time.Time
	now     func() time.Time
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		tps:     ebiten.DefaultTPS,
		now:     time.Now,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.tick())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// tick returns the seconds since the previous tick. The first tick, which
// has nothing to measure against, uses one period of the configured TPS.
func (g *Game) tick() float64 {
	if g.fixedDT > 0 {
		return g.fixedDT
	}

	now := g.now()
	dt := 1 / float64(g.tps)
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now
	return dt
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT fixes the delta time used for updates. Zero or less goes back to
// measuring wall-clock time.
func (g *Game) SetDT(dt float64) {
	g.fixedDT = dt
}

// SetTPS sets the tick rate the first tick assumes. Non-positive values are
// ignored.
func (g *Game) SetTPS(tps int) {
	if tps > 0 {
		g.tps = tps
	}
}

// Close exits the current scene.
func (g *Game) Close() {
	g.current.OnExit()
}

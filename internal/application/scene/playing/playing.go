// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/wolf3d/internal/application/scene"
	"github.com/younwookim/wolf3d/internal/application/session"
	"github.com/younwookim/wolf3d/internal/application/state"
	"github.com/younwookim/wolf3d/internal/application/system"
	"github.com/younwookim/wolf3d/internal/domain/entity"
	"github.com/younwookim/wolf3d/internal/domain/geom"
	"github.com/younwookim/wolf3d/internal/domain/world"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorFace     = color.RGBA{140, 140, 170, 255}
	colorDoor     = color.RGBA{150, 110, 60, 255}
	colorPainting = color.RGBA{200, 170, 80, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorView     = color.RGBA{100, 200, 100, 160}
	colorDead     = color.RGBA{90, 60, 60, 255}
	colorHit      = color.RGBA{255, 255, 255, 255}
	colorImpact   = color.RGBA{255, 215, 0, 255}
	colorTracer   = color.RGBA{255, 240, 180, 255}
	colorSight    = color.RGBA{255, 100, 100, 90}

	enemyColors = map[entity.EnemyState]color.RGBA{
		entity.StateIdle:       {120, 120, 200, 255},
		entity.StateWalking:    {120, 170, 220, 255},
		entity.StateSawPlayer:  {230, 200, 80, 255},
		entity.StateStartChase: {240, 150, 60, 255},
		entity.StateChasing:    {230, 90, 60, 255},
		entity.StateShooting:   {255, 40, 40, 255},
	}
)

const tracerLength = 0.6

// Options configure a Playing scene.
type Options struct {
	Seed       int64
	Source     InputSource // nil reads the keyboard
	RecordPath string      // empty disables recording
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	level   *world.Level
	session *session.Session
	source  InputSource
	state   state.GameState
	seed    int64
	err     error

	screenW  int
	screenH  int
	mapScale float32

	shots    int
	lastShot string

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene for level. The session is built in OnEnter.
func New(cfg *config.GameConfig, level *world.Level, opts Options) *Playing {
	source := opts.Source
	if source == nil {
		source = NewLiveInput()
	}

	return &Playing{
		config:         cfg,
		level:          level,
		source:         source,
		state:          state.StateLoading,
		seed:           opts.Seed,
		screenW:        cfg.Tuning.Display.ScreenWidth,
		screenH:        cfg.Tuning.Display.ScreenHeight,
		mapScale:       float32(cfg.Tuning.Display.MapScale),
		recordFilename: opts.RecordPath,
	}
}

// OnEnter initializes the session
func (p *Playing) OnEnter() {
	p.session = session.New(p.config.Tuning, rand.New(rand.NewSource(p.seed)))
	if err := p.session.Init(p.level); err != nil {
		p.err = fmt.Errorf("failed to start level %q: %w", p.level.Name, err)
		return
	}

	hitscan, err := p.session.Hitscan()
	if err != nil {
		p.err = err
		return
	}
	hitscan.OnShot = p.onShot

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.seed, p.level.Name)
		log.Printf("Recording enabled: %s (seed: %d)", p.recordFilename, p.seed)
	}

	p.shots = 0
	p.lastShot = ""
	p.state = state.StatePlaying
}

// OnExit saves the recording and tears the session down
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
	if p.session != nil {
		p.session.Destroy()
	}
	p.state = state.StateLoading
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.err != nil {
		return nil, p.err
	}

	if p.state.Simulating() {
		p.updatePlaying(dt)
		return nil, nil
	}

	switch p.state {
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateReplayDone:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			p.Restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input, step, ok := p.source.Next(dt)
	if !ok {
		p.state = state.StateReplayDone
		log.Printf("Replay finished after %d ticks", p.session.Ticks())
		return
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input, step)
	}
	p.session.Update(input, step)
}

func (p *Playing) onShot(hit system.Hit, ok bool) {
	p.shots++
	if !ok {
		p.lastShot = "miss"
		return
	}
	p.lastShot = fmt.Sprintf("%s #%d at %.1f", hit.Ref.Category, hit.Ref.Index, hit.T)
}

// Restart plays a finished replay again from its first frame on a fresh
// session. It does nothing for live input.
func (p *Playing) Restart() {
	r, ok := p.source.(*ReplayInput)
	if !ok || !r.Done() {
		return
	}
	p.OnExit()
	r.Rewind()
	p.OnEnter()
}

// saveRecording saves the current recording to file. A stopped recorder has
// already been saved.
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}

	if err := p.recorder.Save(p.recordFilename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", p.recordFilename, p.recorder.FrameCount())
	}
}

// State returns the play state.
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the running session, or nil before OnEnter.
func (p *Playing) Session() *session.Session {
	return p.session
}

// Draw renders a top-down map of the world centered on the player
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	if p.session == nil {
		return
	}
	w := p.session.World()
	if w == nil {
		return
	}

	cam := w.Player.Pos
	p.drawWalls(screen, w, cam)
	p.drawDoors(screen, w, cam)
	p.drawPaintings(screen, w, cam)
	p.drawEnemies(screen, w, cam)
	p.drawEffects(screen, w, cam)
	p.drawPlayer(screen, w, cam)
	p.drawUI(screen, w)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateReplayDone:
		p.drawOverlay(screen, "REPLAY FINISHED\n\nPress R to watch again")
	}
}

// toScreen maps the world XZ plane to screen pixels, Z growing downward.
func (p *Playing) toScreen(v, cam mgl32.Vec3) (float32, float32) {
	x := (v.X()-cam.X())*p.mapScale + float32(p.screenW)/2
	y := (v.Z()-cam.Z())*p.mapScale + float32(p.screenH)/2
	return x, y
}

func (p *Playing) fillBody(screen *ebiten.Image, b *entity.Body, cam mgl32.Vec3, c color.Color) {
	lo, hi := b.Bounds(b.Pos)
	x0, y0 := p.toScreen(lo, cam)
	x1, y1 := p.toScreen(hi, cam)
	vector.FillRect(screen, x0, y0, x1-x0, y1-y0, c, false)
}

func (p *Playing) drawWalls(screen *ebiten.Image, w *world.World, cam mgl32.Vec3) {
	for i := range w.Colliders {
		p.fillBody(screen, &w.Colliders[i], cam, colorWall)
	}

	// Wall faces seen from above are their bottom edge; floors are skipped.
	for i := range w.Level.Planes {
		pl := &w.Level.Planes[i]
		if pl.A.Y() != 0 || pl.B.X() != 0 || pl.B.Z() != 0 {
			continue
		}
		x0, y0 := p.toScreen(pl.Origin, cam)
		x1, y1 := p.toScreen(pl.Origin.Add(pl.A), cam)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorFace, false)
	}
}

func (p *Playing) drawDoors(screen *ebiten.Image, w *world.World, cam mgl32.Vec3) {
	for i := range w.Doors {
		d := &w.Doors[i]
		c := colorDoor
		c.A = uint8(255 - 155*d.Openness)
		p.fillBody(screen, &d.Body, cam, c)
	}
}

func (p *Playing) drawPaintings(screen *ebiten.Image, w *world.World, cam mgl32.Vec3) {
	for i := range w.Paintings {
		pt := &w.Paintings[i]
		p.fillBody(screen, &pt.Body, cam, colorPainting)
		if pt.Hit {
			x, y := p.toScreen(pt.Pos, cam)
			tip := pt.Pos.Add(geom.Forward(pt.Angle, 0.5))
			tx, ty := p.toScreen(tip, cam)
			vector.StrokeLine(screen, x, y, tx, ty, 1, colorPainting, false)
		}
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, w *world.World, cam mgl32.Vec3) {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		x, y := p.toScreen(e.Pos, cam)
		r := (e.Max.X() - e.Min.X()) / 2 * p.mapScale

		var c color.Color = enemyColors[e.State]
		switch {
		case !e.Alive():
			c = colorDead
		case e.Reacting():
			c = colorHit
		}
		vector.DrawFilledCircle(screen, x, y, r, c, true)

		if !e.Alive() {
			continue
		}
		fx, fy := p.toScreen(e.Pos.Add(geom.Forward(e.LookAngle, 1)), cam)
		vector.StrokeLine(screen, x, y, fx, fy, 1, c, false)

		if w.Debug {
			px, py := p.toScreen(w.Player.Pos, cam)
			vector.StrokeLine(screen, x, y, px, py, 1, colorSight, false)
			label := fmt.Sprintf("%s f%d x%d", e.State, e.Frame, w.Level.CrossedPlanes(e.Pos, w.Player.Pos))
			ebitenutil.DebugPrintAt(screen, label, int(x)+6, int(y)-6)
		}
	}
}

func (p *Playing) drawEffects(screen *ebiten.Image, w *world.World, cam mgl32.Vec3) {
	for _, im := range w.Impacts.Slots() {
		if im.Life <= 0 {
			continue
		}
		x, y := p.toScreen(im.Pos, cam)
		vector.FillRect(screen, x-1, y-1, 3, 3, colorImpact, false)
	}

	for _, tr := range w.Tracers.Slots() {
		if tr.Life <= 0 {
			continue
		}
		x0, y0 := p.toScreen(tr.Pos, cam)
		x1, y1 := p.toScreen(tr.Pos.Sub(geom.Forward(tr.ShotAngle, tracerLength)), cam)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, colorTracer, false)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, w *world.World, cam mgl32.Vec3) {
	pl := &w.Player
	x, y := p.toScreen(pl.Pos, cam)
	r := (pl.Max.X() - pl.Min.X()) / 2 * p.mapScale
	vector.DrawFilledCircle(screen, x, y, r, colorPlayer, true)

	vx, vy := p.toScreen(pl.Pos.Add(pl.Facing().Mul(3)), cam)
	vector.StrokeLine(screen, x, y, vx, vy, 1, colorView, false)

	// Weapon marker at the bottom of the screen, swaying with the stride.
	wx := float32(p.screenW)/2 + pl.Sway()*float32(p.screenW)
	wy := float32(p.screenH) - 48
	c := colorView
	if pl.Shooting {
		c = colorTracer
	}
	vector.FillRect(screen, wx-6, wy, 12, 20, c, false)
}

func (p *Playing) drawUI(screen *ebiten.Image, w *world.World) {
	pl := &w.Player
	alive := 0
	for i := range w.Enemies {
		if w.Enemies[i].Alive() {
			alive++
		}
	}

	hud := fmt.Sprintf("%s | enemies %d/%d | shots %d %s",
		p.level.Name, alive, len(w.Enemies), p.shots, p.lastShot)
	if r, ok := p.source.(*ReplayInput); ok {
		played, total := r.Progress()
		hud += fmt.Sprintf(" | replay %d/%d", played, total)
	}
	if p.recorder != nil && p.recorder.IsRecording() {
		hud += fmt.Sprintf(" | REC %d", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrintAt(screen, hud, 10, p.screenH-20)

	if w.Debug {
		dbg := fmt.Sprintf("pos %.2f %.2f look %.2f stride %.2f eye %.3f\nimpacts %d/%d tracers %d/%d",
			pl.Pos.X(), pl.Pos.Z(), pl.LookAngle, pl.Stride, pl.Eye().Y(),
			w.Impacts.Active(), w.Impacts.Cap(), w.Tracers.Active(), w.Tracers.Cap())
		ebitenutil.DebugPrintAt(screen, dbg, 10, 20)
	}

	ebitenutil.DebugPrint(screen, "A/D: Turn | Shift: Strafe | W/S: Move | Space: Fire | E: Door | Tab: Debug | ESC: Pause")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

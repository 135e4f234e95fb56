package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/wolf3d/internal/application/game"
	"github.com/younwookim/wolf3d/internal/application/replay"
	"github.com/younwookim/wolf3d/internal/application/scene/playing"
	"github.com/younwookim/wolf3d/internal/application/system"
	"github.com/younwookim/wolf3d/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	levelFlag := flag.String("level", "e1m1", "Level to load from configs/levels")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto for a timestamped name)")
	replayFlag := flag.String("replay", "", "Play back a recording instead of reading the keyboard")
	verifyFlag := flag.Bool("verify", false, "With -replay, simulate without a window and print the outcome")
	seedFlag := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	configFlag := flag.String("config", "", "Load configs from this directory instead of the embedded set")
	dtFlag := flag.Float64("dt", 0, "Fixed step in seconds (0 measures wall-clock time)")
	flag.Parse()

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	levelName := *levelFlag

	var recording *replay.ReplayData
	if *replayFlag != "" {
		recording, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		r := replay.NewReplayer(*recording)
		seed = r.Seed()
		levelName = r.Level()
		log.Printf("Replaying %s: level %s, seed %d, %d frames", recording.ID, levelName, seed, r.TotalFrames())
	}

	cfg, err := loader.LoadAll(levelName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	level, err := system.LoadLevel(cfg.Level, cfg.Tuning)
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}
	log.Printf("Loaded level %s: %d enemies, %d doors, %d paintings, %d colliders",
		level.Name, cfg.Level.Count(config.KindEnemy), cfg.Level.Count(config.KindDoor),
		cfg.Level.Count(config.KindPainting), len(level.Boxes))

	if *verifyFlag {
		if recording == nil {
			log.Fatalf("-verify needs -replay")
		}
		summary, err := runReplay(cfg, level, recording)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Print(summary)
		return
	}

	recordPath := *recordFlag
	if recordPath == "auto" {
		recordPath = playing.GenerateFilename()
	}
	opts := playing.Options{Seed: seed, RecordPath: recordPath}
	if recording != nil {
		opts.Source = playing.NewReplayInput(*recording)
	}
	display := cfg.Tuning.Display
	g := game.New(playing.New(cfg, level, opts), display.ScreenWidth, display.ScreenHeight)
	g.SetTPS(display.TPS)
	g.SetDT(*dtFlag)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("wolf3d - " + level.Name)
	ebiten.SetTPS(display.TPS)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

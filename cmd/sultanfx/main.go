package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gekko3d/bossfx"
	"github.com/gekko3d/bossfx/termrt"
)

func main() {
	difficulty := flag.String("difficulty", "NORMAL", "Difficulty: EASY, NORMAL, HARD")
	outcome := flag.String("outcome", "victory", "How the fight ends: victory or defeat")
	configPath := flag.String("config", "", "Optional YAML file overriding the built-in balance table")
	fps := flag.Int("fps", 60, "Frames per second")
	logPath := flag.String("log", "sultanfx.log", "Log file (the terminal is used for drawing)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	if err := run(*difficulty, *outcome, *configPath, *fps, *logPath, *logLevel, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "sultanfx: %v\n", err)
		os.Exit(1)
	}
}

func run(difficulty, outcome, configPath string, fps int, logPath, logLevel string, seed int64) error {
	kind, err := parseOutcome(outcome)
	if err != nil {
		return err
	}
	if _, err := bossfx.ParseLevel(logLevel); err != nil {
		return err
	}

	cfg := bossfx.DefaultConfig()
	if configPath != "" {
		if cfg, err = bossfx.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if _, err := cfg.Difficulty(difficulty); err != nil {
		return err
	}

	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	keys := make(chan struct{}, 1)
	go pollQuit(screen, cancel, keys)

	app := bossfx.NewAppBuilder().
		UseStates(bossfx.StateCombat, bossfx.StateResults).
		UseModule(
			bossfx.LoggingModule{Prefix: "sultanfx", Level: logLevel, Out: logFile},
			bossfx.TimeModule{},
			bossfx.GameStateModule{Config: cfg, Difficulty: difficulty},
			bossfx.CameraShakeModule{Seed: seed},
			bossfx.ParticleModule{Seed: seed + 1},
			bossfx.ImpactModule{},
			bossfx.LifecycleModule{},
			bossfx.ArenaModule{Def: bossfx.DefaultArena()},
			bossfx.CinematicModule{Stateful: true},
			fightModule{outcome: kind, seed: seed + 2},
			termrt.Module{Screen: screen},
		).
		Build()

	frame := time.Second / time.Duration(max(fps, 1))
	if err := app.Run(ctx, frame); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}

	// Hold the results screen until a fresh key press or a few seconds pass.
	select {
	case <-keys:
	default:
	}
	select {
	case <-keys:
	case <-ctx.Done():
	case <-time.After(8 * time.Second):
	}
	return nil
}

func parseOutcome(s string) (bossfx.CinematicKind, error) {
	switch s {
	case "victory", "win":
		return bossfx.CinematicVictory, nil
	case "defeat", "lose":
		return bossfx.CinematicDefeat, nil
	}
	return 0, fmt.Errorf("unknown outcome %q (want victory or defeat)", s)
}

func pollQuit(screen tcell.Screen, cancel context.CancelFunc, keys chan<- struct{}) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			select {
			case keys <- struct{}{}:
			default:
			}
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

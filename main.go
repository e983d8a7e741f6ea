// Command nightswarm is a terminal bullet-heaven game: survive escalating
// waves of enemies that home in on you while your weapon fires on its own.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/duskvale/nightswarm/audio"
	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/config"
	"github.com/duskvale/nightswarm/content"
	"github.com/duskvale/nightswarm/core"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/events"
	"github.com/duskvale/nightswarm/input"
	"github.com/duskvale/nightswarm/parameter"
	"github.com/duskvale/nightswarm/render"
	"github.com/duskvale/nightswarm/system"
)

// maxFrameDelta caps dt after stalls (debugger, terminal suspend) so one
// huge step does not teleport everything.
const maxFrameDelta = 250 * time.Millisecond

func main() {
	configPath := flag.String("config", "nightswarm.yaml", "path to config file")
	seed := flag.Uint64("seed", 0, "override the run seed (0 = from config)")
	profileMode := flag.String("profile", "", "enable profiling: cpu or mem")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	logger := newLogger(cfg.Log)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "nightswarm: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	session := content.NewSession(cfg.Game.Seed)
	logger.Info("session start",
		zap.String("session", session.ID.String()),
		zap.Uint64("seed", session.Seed),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.RegisterCrashCleanup(screen.Fini)
	defer screen.Fini()

	player := audio.NewPlayer(audio.Config{
		Enabled:      cfg.Audio.Enabled,
		MasterVolume: cfg.Audio.Volume,
		SampleRate:   parameter.AudioSampleRate,
	})
	if err := player.Start(); err != nil {
		// Not fatal; the game runs silent.
		logger.Warn("audio unavailable", zap.Error(err))
	}
	defer player.Stop()

	width, height := screen.Size()
	arena := content.Arena{
		Width:  float64(width),
		Height: float64(height - render.HUDRows),
	}

	w := engine.NewWorld(
		engine.WithLogger(logger),
		engine.WithFaultSink(engine.NewLogSink(logger)),
	)
	stores := component.NewStores(w)
	events.Register(w.Bus())

	in := &input.State{}
	renderer := render.NewRenderSystem(screen, stores, arena)

	w.AddSystem(system.NewPlayerSystem(stores, in, arena))
	w.AddSystem(system.NewHomingSystem(stores))
	w.AddSystem(system.NewMovementSystem(stores, arena))
	w.AddSystem(system.NewWeaponSystem(stores))
	w.AddSystem(system.NewSpawnSystem(stores, arena, session))
	w.AddSystem(system.NewCollisionSystem(stores))
	w.AddSystem(system.NewDamageSystem(stores, session))
	w.AddSystem(system.NewLifetimeSystem(stores))
	w.AddSystem(system.NewPickupSystem(stores))
	w.AddSystem(system.NewScoreSystem())
	w.AddSystem(system.NewAudioSystem(player))
	w.AddSystem(renderer)
	defer w.Teardown()

	gameOver := make(chan *events.GameOverPayload, 1)
	w.On(events.EventGameOver, func(ev engine.Event) {
		if p, ok := ev.Payload.(*events.GameOverPayload); ok {
			select {
			case gameOver <- p:
			default:
			}
		}
	})

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Game.TickRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			in.Apply(ev)

		case <-ticker.C:
			frame := in.Snapshot()
			if frame.Quit {
				logger.Info("quit requested", zap.Int64("frame", w.Frame()))
				return nil
			}

			renderer.SetPaused(frame.Pause)
			now := time.Now()
			dt := now.Sub(last)
			last = now
			if frame.Pause {
				w.Render()
				continue
			}
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}

			w.Update(dt)
			w.Render()

			select {
			case tally := <-gameOver:
				logger.Info("game over",
					zap.Int("score", tally.Score),
					zap.Int("wave", tally.Wave),
				)
				return nil
			default:
			}
		}
	}
}

// newLogger builds a zap logger writing JSON to a rotated file. The
// terminal owns stdout while the game runs, so nothing logs there.
func newLogger(cfg config.LogConfig) *zap.Logger {
	var level zapcore.Level
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return zap.New(
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level),
	)
}

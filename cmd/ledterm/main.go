// Command ledterm runs the particle simulation in a terminal, drawing the
// 16x16 LED matrix with tcell.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"fluid16/config"
	"fluid16/control"
	"fluid16/sim"
)

var (
	configPathFlag   = flag.String("config", "", "path to a TOML config file")
	particlesFlag    = flag.Int("particles", 0, "particle capacity (0 keeps the config value)")
	seedFlag         = flag.Int64("seed", 0, "random seed for initial placement (0 = time based)")
	showVelocityFlag = flag.Bool("show-velocity", false, "mark particle headings")
	debugFlag        = flag.Bool("debug", false, "log to logs/ledterm.log and show collision counts")
	audioFlag        = flag.Bool("audio", false, "tick on wall impacts")
)

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ledterm: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash so the trace is readable.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLEDTERM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	app, err := newApp(cfg, screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "ledterm: %v\n", err)
		os.Exit(1)
	}
	app.run(cfg.FrameInterval())
	app.cleanup()
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configPathFlag)
	if err != nil {
		return cfg, err
	}
	if *particlesFlag > 0 {
		cfg.Capacity = *particlesFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	cfg.Seed = cfg.SeedOr(time.Now().UnixNano())
	if *showVelocityFlag {
		cfg.ShowVelocity = true
	}
	if *audioFlag {
		cfg.Audio = true
	}
	return cfg, cfg.Validate()
}

type app struct {
	screen tcell.Screen
	view   *view
	state  *sim.State
	ctrl   *control.Controller
	keys   keyState
	ticks  *ticker
	grid   sim.Grid
}

func newApp(cfg config.Config, screen tcell.Screen) (*app, error) {
	state, err := sim.NewState(cfg.Capacity, cfg.Sim, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, err
	}
	a := &app{
		screen: screen,
		view:   newView(screen),
		state:  state,
		ctrl:   control.New(cfg.TiltStep, cfg.RemoveCount),
		keys:   keyState{velocity: cfg.ShowVelocity},
	}
	if cfg.Audio {
		a.ticks = newTicker()
	}
	log.Printf("ledterm started: %d particles, seed %d", cfg.Capacity, cfg.Seed)
	return a, nil
}

// run polls input on its own goroutine and does all stepping and drawing on
// the frame loop.
func (a *app) run(interval time.Duration) {
	frames := time.NewTicker(interval)
	defer frames.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.keys.handle(ev, time.Now()) {
					return
				}
			case *tcell.EventResize:
				a.view.resize()
				a.screen.Sync()
			}
		case now := <-frames.C:
			a.tick(now)
		}
	}
}

func (a *app) tick(now time.Time) {
	before := a.state.Active()
	tilt := a.ctrl.Apply(a.keys.frame(now), a.state)
	if after := a.state.Active(); after != before {
		log.Printf("removed particles: %d -> %d", before, after)
	}
	a.grid = a.state.Step(tilt)
	stats := a.state.Stats()
	if a.ticks != nil {
		a.ticks.impact(stats, now)
	}
	a.view.draw(frame{
		grid:         a.grid,
		particles:    a.state.Particles(),
		scale:        a.state.Params().BoxScale,
		tilt:         tilt,
		stats:        stats,
		capacity:     a.state.Capacity(),
		showVelocity: a.keys.velocity,
		debug:        *debugFlag,
	})
}

func (a *app) cleanup() {
	if a.ticks != nil {
		a.ticks.close()
	}
	a.screen.Fini()
}

package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"fluid16/config"
	"fluid16/control"
	"fluid16/layout"
	"fluid16/sim"
)

// Game owns the particle state, the tilt controller, and the audio pipeline.
type Game struct {
	state  *sim.State
	grid   sim.Grid
	ctrl   *control.Controller
	layout layout.Layout

	projector    gridProjector
	showVelocity bool

	lastStats       sim.Stats
	lastSimDuration time.Duration

	audioCtx    *audio.Context
	audioStream *impactAudioStream
	audioPlayer *audio.Player
}

// newGame constructs a Game with freshly randomized particles.
func newGame(cfg config.Config) (*Game, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	state, err := sim.NewState(cfg.Capacity, cfg.Sim, rng)
	if err != nil {
		return nil, err
	}
	g := &Game{
		state:        state,
		ctrl:         control.New(cfg.TiltStep, cfg.RemoveCount),
		layout:       layout.Centered(windowWidth, windowHeight, ledSize, ledPadding),
		showVelocity: cfg.ShowVelocity,
	}
	if *openCLFlag {
		if p, err := newOpenCLGridProjector(cfg.Capacity); err != nil {
			log.Printf("OpenCL projection unavailable, using CPU: %v", err)
		} else {
			log.Printf("OpenCL projection enabled (device: %s)", p.DeviceName())
			g.projector = p
		}
	}
	if cfg.Audio {
		g.startAudio()
	}
	g.grid = sim.Project(state.Particles(), cfg.Sim.BoxScale)
	g.lastStats = state.Stats()
	return g, nil
}

func (g *Game) startAudio() {
	ctx := audio.NewContext(audioSampleRate)
	g.audioCtx = ctx
	stream := newImpactAudioStream()
	g.audioStream = stream
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		log.Printf("Audio player creation failed: %v", err)
		return
	}
	g.audioPlayer = player
	g.audioPlayer.SetBufferSize(audioPlayerLatency)
	g.audioPlayer.Play()
}

// Update applies keyboard input and advances the simulation by one step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.showVelocity = !g.showVelocity
	}
	tilt := g.ctrl.Apply(sampleInput(), g.state)

	simStart := time.Now()
	grid, err := stepFrame(g.state, g.projector, tilt)
	if err != nil {
		log.Printf("OpenCL projection failed, using CPU: %v", err)
		g.projector.Close()
		g.projector = nil
	}
	g.grid = grid
	g.lastSimDuration = time.Since(simStart)
	g.lastStats = g.state.Stats()

	if g.audioStream != nil {
		g.audioStream.Trigger(impactLevel(g.lastStats))
	}
	return nil
}

// Close releases the projector and audio player.
func (g *Game) Close() {
	if g.projector != nil {
		g.projector.Close()
		g.projector = nil
	}
	if g.audioPlayer != nil {
		if err := g.audioPlayer.Close(); err != nil {
			log.Printf("Audio player close failed: %v", err)
		}
		g.audioPlayer = nil
	}
}

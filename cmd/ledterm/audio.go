package main

import (
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"fluid16/sim"
)

const (
	sampleRate     = beep.SampleRate(44100)
	tickDuration   = 30 * time.Millisecond
	tickCooldown   = 90 * time.Millisecond
	tickThreshold  = 40.0 // summed wall speed that counts as an impact
	tickBaseFreq   = 440.0
	tickFreqSpread = 660.0
	tickFullScale  = 400.0
)

// ticker plays a short sine tick when particles hit a wall hard enough.
type ticker struct {
	ready bool
	last  time.Time
}

func newTicker() *ticker {
	t := &ticker{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return t
	}
	t.ready = true
	return t
}

// impact plays a tick pitched by the wall speed of the last step.
func (t *ticker) impact(st sim.Stats, now time.Time) {
	if !t.ready || st.WallSpeed < tickThreshold || now.Sub(t.last) < tickCooldown {
		return
	}
	t.last = now
	freq := tickBaseFreq + tickFreqSpread*math.Min(st.WallSpeed/tickFullScale, 1)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("Tick tone: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tickDuration), sine))
}

func (t *ticker) close() {
	if t.ready {
		speaker.Close()
	}
}

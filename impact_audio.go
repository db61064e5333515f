package main

import (
	"math"
	"sync"

	"fluid16/sim"
)

// impactAudioStream is an endless 16-bit stereo tone whose envelope jumps up
// on wall impacts and decays every sample.
type impactAudioStream struct {
	mu    sync.Mutex
	level float64
	phase float64
}

func newImpactAudioStream() *impactAudioStream {
	return &impactAudioStream{}
}

// Trigger raises the envelope to v when v is louder than the current level.
func (s *impactAudioStream) Trigger(v float32) {
	if v > 1 {
		v = 1
	} else if v <= 0 {
		return
	}
	s.mu.Lock()
	if float64(v) > s.level {
		s.level = float64(v)
	}
	s.mu.Unlock()
}

func (s *impactAudioStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// Whole stereo frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	const step = 2 * math.Pi * impactToneHz / audioSampleRate
	s.mu.Lock()
	for i := 0; i < frameBytes; i += 4 {
		v := int16(s.level * impactToneGain * math.Sin(s.phase) * 32767)
		s.phase += step
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		s.level *= impactDecayPerSample
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	s.mu.Unlock()
	return frameBytes, nil
}

func (s *impactAudioStream) Close() error {
	return nil
}

// impactLevel maps the summed speed of wall-touching particles to [0, 1].
// Particles resting against a wall carry little speed and stay quiet.
func impactLevel(st sim.Stats) float32 {
	return float32(math.Min(st.WallSpeed/impactFullScale, 1))
}

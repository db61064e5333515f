package main

import (
	"image/color"
	"time"
)

// Window layout and presentation constants. LED geometry matches the
// reference 16x16 board: 11px LEDs spaced 23px apart inside a 1300x900 window.
const (
	windowWidth           = 1300
	windowHeight          = 900
	windowTitle           = "fluid16x16"
	ledSize               = 11
	ledPadding            = 23
	particleDrawRadius    = 5
	velocityMarkerSeconds = 0.25
	velocityMarkerWidth   = 1
	profileRecordDuration = 15 * time.Second
	audioSampleRate       = 48000
	audioPlayerLatency    = 60 * time.Millisecond
	impactToneHz          = 660.0
	impactToneGain        = 0.35
	impactDecayPerSample  = 0.9993
	impactFullScale       = 400.0
)

// Colors for LEDs, particles by collision tag, and the background.
var (
	backgroundColor      = color.RGBA{0, 0, 0, 255}
	ledOnColor           = color.RGBA{230, 41, 55, 255}
	ledOffColor          = color.RGBA{20, 15, 10, 255}
	particleColor        = color.RGBA{255, 255, 255, 255}
	particleWallColor    = color.RGBA{255, 161, 0, 255}
	particleHitColor     = color.RGBA{0, 121, 241, 255}
	particleWallHitColor = color.RGBA{200, 122, 255, 255}
	velocityMarkerColor  = color.RGBA{0, 228, 48, 200}
)

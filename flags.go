package main

import (
	"flag"
	"time"

	"fluid16/config"
)

// Command-line flags. Each one overrides the matching config file value when
// set explicitly.
var (
	// configPathFlag points at an optional TOML file layered over the defaults.
	configPathFlag = flag.String("config", "", "path to a TOML config file")

	// particlesFlag overrides the number of particles allocated at startup.
	particlesFlag = flag.Int("particles", 0, "particle capacity (0 keeps the config value)")

	// seedFlag fixes the placement seed for reproducible runs.
	seedFlag = flag.Int64("seed", 0, "random seed for initial placement (0 = time based)")

	// showVelocityFlag draws a heading marker on every particle.
	showVelocityFlag = flag.Bool("show-velocity", false, "draw velocity markers on particles")

	// debugFlag enables the FPS and collision overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, step time and collision counts")

	// enableAudioFlag plays a tone that follows wall impacts.
	enableAudioFlag = flag.Bool("audio", false, "play a tone on wall impacts")

	// openCLFlag moves grid projection onto an OpenCL device when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "project particles onto the LED grid with OpenCL")

	// cpuProfileFlag records a CPU profile for profileRecordDuration.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile of the first seconds of the run to this path")
)

// loadConfig reads the config file and applies flag overrides.
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
	if *enableAudioFlag {
		cfg.Audio = true
	}
	return cfg, cfg.Validate()
}

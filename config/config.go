// Package config loads run settings shared by the fluid16 frontends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"fluid16/sim"
)

// ErrInvalid is returned when a loaded configuration cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config holds the physics parameters and the frontend tuning for a run.
type Config struct {
	Sim sim.Params `toml:"sim"`

	Capacity    int     `toml:"capacity"`     // particles allocated at startup
	Seed        int64   `toml:"seed"`         // 0 picks a time-based seed
	TiltStep    float64 `toml:"tilt_step"`    // radians per frame while a tilt key is held
	RemoveCount int     `toml:"remove_count"` // particles dropped per removal key press
	FrameRate   float64 `toml:"frame_rate"`   // frames per second of the frontend loop

	ShowVelocity bool `toml:"show_velocity"`
	Audio        bool `toml:"audio"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Sim:          sim.DefaultParams(),
		Capacity:     sim.DefaultCapacity,
		TiltStep:     0.009,
		RemoveCount:  5,
		FrameRate:    60,
		ShowVelocity: false,
	}
}

// Load reads the TOML file at path on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return conf, fmt.Errorf("reading config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return conf, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	return conf, conf.Validate()
}

// Parse decodes TOML text on top of the defaults.
func Parse(text string) (Config, error) {
	conf := Default()
	md, err := toml.Decode(text, &conf)
	if err != nil {
		return conf, fmt.Errorf("decoding config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return conf, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	return conf, conf.Validate()
}

// Validate checks the frontend settings and the physics parameters.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity = %d", ErrInvalid, c.Capacity)
	}
	if c.TiltStep < 0 {
		return fmt.Errorf("%w: tilt_step = %v", ErrInvalid, c.TiltStep)
	}
	if c.RemoveCount < 0 {
		return fmt.Errorf("%w: remove_count = %d", ErrInvalid, c.RemoveCount)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate = %v", ErrInvalid, c.FrameRate)
	}
	if err := c.Sim.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// FrameInterval returns the wall-clock pacing of one frame.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FrameRate)
}

// SeedOr returns the configured seed, or fallback when none is set.
func (c Config) SeedOr(fallback int64) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return fallback
}

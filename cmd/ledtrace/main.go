// Command ledtrace runs the particle simulation without a display and prints
// the final LED grid, collision statistics and a kinetic energy plot.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"fluid16/config"
	"fluid16/sim"
)

var (
	configPathFlag  = flag.String("config", "", "path to a TOML config file")
	particlesFlag   = flag.Int("particles", 0, "particle capacity (0 keeps the config value)")
	seedFlag        = flag.Int64("seed", 0, "random seed for initial placement (0 = time based)")
	stepsFlag       = flag.Int("steps", 600, "number of steps to run")
	tiltFlag        = flag.Float64("tilt", 0, "tilt in radians at the first step")
	sweepFlag       = flag.Float64("sweep", 0, "radians added to the tilt every step")
	removeEveryFlag = flag.Int("remove-every", 0, "remove particles every N steps (0 disables)")
	plotWidthFlag   = flag.Int("plot-width", 60, "kinetic energy plot width in columns")
	csvFlag         = flag.Bool("csv", false, "print per-step CSV instead of the report")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("ledtrace: ")

	cfg, err := config.Load(*configPathFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *particlesFlag > 0 {
		cfg.Capacity = *particlesFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	cfg.Seed = cfg.SeedOr(time.Now().UnixNano())
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	state, err := sim.NewState(cfg.Capacity, cfg.Sim, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		log.Fatal(err)
	}
	res, err := runTrace(state, traceOptions{
		Steps:       *stepsFlag,
		Tilt:        *tiltFlag,
		Sweep:       *sweepFlag,
		RemoveEvery: *removeEveryFlag,
		RemoveCount: cfg.RemoveCount,
	})
	if err != nil {
		log.Fatal(err)
	}

	if *csvFlag {
		fmt.Fprint(os.Stdout, renderCSV(res))
		return
	}
	fmt.Fprintln(os.Stdout, renderReport(res, *plotWidthFlag))
	fmt.Fprintf(os.Stdout, "seed %d\n", cfg.Seed)
}

package main

import (
	"errors"
	"flag"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}

	stopProfile := func() {}
	if *cpuProfileFlag != "" {
		stopProfile = recordCPUProfile(*cpuProfileFlag, profileRecordDuration)
	}

	g, err := newGame(cfg)
	if err != nil {
		stopProfile()
		log.Fatalf("Creating simulation: %v", err)
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(int(math.Round(cfg.FrameRate)))
	runErr := ebiten.RunGame(g)
	g.Close()
	stopProfile()
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatalf("Running game: %v", runErr)
	}
}

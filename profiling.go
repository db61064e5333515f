package main

import (
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// startCPUProfile begins writing a CPU profile to path. The returned stop
// function is safe to call more than once.
func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	var once sync.Once
	stop := func() {
		once.Do(func() {
			pprof.StopCPUProfile()
			if err := f.Close(); err != nil {
				log.Printf("Closing CPU profile: %v", err)
				return
			}
			log.Printf("CPU profile written to %s", path)
		})
	}
	return stop, nil
}

// recordCPUProfile profiles the first d of the run. The returned stop
// function ends recording early, e.g. when the window closes first.
func recordCPUProfile(path string, d time.Duration) func() {
	stop, err := startCPUProfile(path)
	if err != nil {
		log.Printf("CPU profiling disabled: %v", err)
		return func() {}
	}
	time.AfterFunc(d, stop)
	return stop
}

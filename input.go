package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"fluid16/control"
)

// sampleInput reads the arrow keys and the removal key for this frame.
// Left/Right turn while held; Up, Down and D act once per press.
func sampleInput() control.Input {
	return control.Input{
		TiltRight: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		TiltLeft:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ResetUp:   inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		ResetDown: inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Remove:    inpututil.IsKeyJustPressed(ebiten.KeyD),
	}
}

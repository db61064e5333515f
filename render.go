package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fluid16/sim"
)

// Draw renders the LED matrix, the particles and the tilt overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	tilt := g.ctrl.Tilt()

	for col := 0; col < sim.GridSize; col++ {
		for row := 0; row < sim.GridSize; row++ {
			clr := ledOffColor
			if g.grid[col][row] {
				clr = ledOnColor
			}
			p := g.layout.Cell(col, row, tilt)
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), ledSize, clr, true)
		}
	}

	scale := g.state.Params().BoxScale
	for _, p := range g.state.Particles() {
		pos := g.layout.World(p.Position, scale, tilt)
		if g.showVelocity {
			tip := g.layout.Heading(p, scale, tilt, velocityMarkerSeconds)
			vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(tip.X), float32(tip.Y),
				velocityMarkerWidth, velocityMarkerColor, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), particleDrawRadius, collisionColor(p.Collision), true)
	}

	msg := fmt.Sprintf("Tilt: %.3f rad", tilt)
	if *debugFlag {
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		st := g.lastStats
		msg += fmt.Sprintf("\nFPS: %.1f (%.1f TPS)\nActive: %d/%d\nWall: %d  Particle: %d  Both: %d\nKE: %.1f\nSim: %.2f ms",
			ebiten.ActualFPS(), tps, st.Active, g.state.Capacity(),
			st.Wall, st.Particle, st.WallParticle, st.KineticEnergy,
			g.lastSimDuration.Seconds()*1000)
		if g.projector != nil {
			msg += "\nProjection: " + g.projector.DeviceName()
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return windowWidth, windowHeight }

func collisionColor(c sim.CollisionState) color.Color {
	switch c {
	case sim.CollisionWall:
		return particleWallColor
	case sim.CollisionParticle:
		return particleHitColor
	case sim.CollisionWallAndParticle:
		return particleWallHitColor
	default:
		return particleColor
	}
}

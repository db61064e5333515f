package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"fluid16/sim"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	gridStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	ledOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	ledOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	statsStyle  = lipgloss.NewStyle().Padding(0, 2).Width(40)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// renderGrid draws the matrix row by row with row 0 at the top.
func renderGrid(g sim.Grid) string {
	var b strings.Builder
	for row := 0; row < sim.GridSize; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < sim.GridSize; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			if g[col][row] {
				b.WriteString(ledOnStyle.Render("●"))
			} else {
				b.WriteString(ledOffStyle.Render("·"))
			}
		}
	}
	return b.String()
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func renderStats(r traceResult) string {
	lines := []string{
		statLine("Steps", fmt.Sprintf("%d", r.Steps)),
		statLine("Final tilt", fmt.Sprintf("%.3f rad", r.Tilt)),
		statLine("Active", fmt.Sprintf("%d/%d", r.Final.Active, r.Capacity)),
		statLine("Lit LEDs", fmt.Sprintf("%d", r.Grid.Count())),
		statLine("Wall", fmt.Sprintf("%d (total %d)", r.Final.Wall, r.Totals.Wall)),
		statLine("Particle", fmt.Sprintf("%d (total %d)", r.Final.Particle, r.Totals.Particle)),
		statLine("Both", fmt.Sprintf("%d (total %d)", r.Final.WallParticle, r.Totals.WallParticle)),
		statLine("Kinetic E", fmt.Sprintf("%.2f", r.Final.KineticEnergy)),
	}
	return statsStyle.Render(strings.Join(lines, "\n"))
}

// renderReport lays the grid beside the statistics and plots kinetic energy
// underneath.
func renderReport(r traceResult, plotWidth int) string {
	header := headerStyle.Render("fluid16 trace")
	body := lipgloss.JoinHorizontal(lipgloss.Top, gridStyle.Render(renderGrid(r.Grid)), renderStats(r))
	parts := []string{header, body}
	if len(r.Energy) > 0 {
		chart := asciigraph.Plot(r.Energy,
			asciigraph.Height(8),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("Kinetic energy per step"))
		parts = append(parts, graphStyle.Render(chart))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderCSV writes one line per step for plotting elsewhere.
func renderCSV(r traceResult) string {
	var b strings.Builder
	b.WriteString("step,kinetic_energy,lit\n")
	for i, e := range r.Energy {
		fmt.Fprintf(&b, "%d,%.6f,%d\n", i, e, r.Lit[i])
	}
	return b.String()
}

package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"
)

// PlotTrack charts the true x and y pose histories against the step number.
func PlotTrack(xs, ys []float64, height int) string {
	if len(xs) == 0 || len(ys) == 0 {
		return labelStyle.Render("no track data") + "\n"
	}
	if height <= 0 {
		height = 10
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("x vs step"))
	b.WriteByte('\n')
	b.WriteString(graphStyle.Render(asciigraph.Plot(xs, asciigraph.Height(height))))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("y vs step"))
	b.WriteByte('\n')
	b.WriteString(graphStyle.Render(asciigraph.Plot(ys, asciigraph.Height(height))))
	b.WriteByte('\n')

	return b.String()
}

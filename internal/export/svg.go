// Package export writes one generation's Pareto front to CSV, JSON,
// SVG, or PNG.
package export

import (
	"fmt"
	"strings"

	"github.com/mvail/paretoscope/internal/dataset"
	"github.com/mvail/paretoscope/internal/viz"
)

// ScatterSVG renders the series as an SVG scatter plot, one <g> per
// series in its palette color, circular markers, no connecting lines.
func ScatterSVG(series []dataset.Series, width, height int) string {
	minX, maxX, minY, maxY, ok := viz.Bounds(series)
	if !ok {
		return ""
	}
	minX, maxX, minY, maxY = viz.PadBounds(minX, maxX, minY, maxY)
	rangeX := maxX - minX
	rangeY := maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for si, s := range series {
		color := viz.SeriesHexColors[si%len(viz.SeriesHexColors)]
		sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", color))
		for i := range s.X {
			cx := (s.X[i] - minX) / rangeX * float64(width)
			cy := float64(height) - (s.Y[i]-minY)/rangeY*float64(height)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5"/>
`, cx, cy))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

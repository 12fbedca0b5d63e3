package viz

import (
	"fmt"
	"strings"

	"github.com/mvail/paretoscope/internal/dataset"
)

const labelWidth = 9

// Bounds returns the data extent across all series. ok is false when
// there are no points at all.
func Bounds(series []dataset.Series) (minX, maxX, minY, maxY float64, ok bool) {
	for _, s := range series {
		for i := range s.X {
			if !ok {
				minX, maxX = s.X[i], s.X[i]
				minY, maxY = s.Y[i], s.Y[i]
				ok = true
				continue
			}
			if s.X[i] < minX {
				minX = s.X[i]
			}
			if s.X[i] > maxX {
				maxX = s.X[i]
			}
			if s.Y[i] < minY {
				minY = s.Y[i]
			}
			if s.Y[i] > maxY {
				maxY = s.Y[i]
			}
		}
	}
	return minX, maxX, minY, maxY, ok
}

// PadBounds widens an extent by 10% per side, substituting a unit
// range for degenerate axes so single points still land mid-plot.
func PadBounds(minX, maxX, minY, maxY float64) (float64, float64, float64, float64) {
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	return minX - rangeX*0.1, maxX + rangeX*0.1, minY - rangeY*0.1, maxY + rangeY*0.1
}

// Scatter renders the series of one generation as a framed scatter
// plot, width x height character cells of plot area. Each series is
// drawn as circular point markers in its palette color, in input
// order. No points yields an empty frame.
func Scatter(series []dataset.Series, width, height int, styled bool) string {
	c := NewCanvas(width, height)

	minX, maxX, minY, maxY, ok := Bounds(series)
	if ok {
		minX, maxX, minY, maxY = PadBounds(minX, maxX, minY, maxY)
		cw, ch := width*2, height*4
		for si, s := range series {
			for i := range s.X {
				px := int((s.X[i] - minX) / (maxX - minX) * float64(cw-2))
				py := int((s.Y[i] - minY) / (maxY - minY) * float64(ch-2))
				py = ch - 2 - py // flip y-axis
				c.Marker(px, py, si)
			}
		}
	}

	var plot string
	if styled {
		plot = c.Render(SeriesPalette)
	} else {
		plot = c.String()
	}
	return frame(plot, width, height, minX, maxX, minY, maxY, ok, styled)
}

// frame wraps rendered canvas rows in a box with axis labels.
func frame(plot string, width, height int, minX, maxX, minY, maxY float64, labeled, styled bool) string {
	style := func(s string) string {
		if styled {
			return frameStyle.Render(s)
		}
		return s
	}
	yLabel := func(row int) string {
		if !labeled {
			return strings.Repeat(" ", labelWidth)
		}
		switch row {
		case 0:
			return fmt.Sprintf("%*.2f", labelWidth-1, maxY) + " "
		case height / 2:
			return fmt.Sprintf("%*.2f", labelWidth-1, (maxY+minY)/2) + " "
		case height - 1:
			return fmt.Sprintf("%*.2f", labelWidth-1, minY) + " "
		}
		return strings.Repeat(" ", labelWidth)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth) + style("┌"+strings.Repeat("─", width)+"┐") + "\n")
	rows := strings.Split(strings.TrimRight(plot, "\n"), "\n")
	for i, row := range rows {
		b.WriteString(yLabel(i) + style("│") + row + style("│") + "\n")
	}
	b.WriteString(strings.Repeat(" ", labelWidth) + style("└"+strings.Repeat("─", width)+"┘") + "\n")
	if labeled {
		left := fmt.Sprintf("%.2f", minX)
		right := fmt.Sprintf("%.2f", maxX)
		gap := width + 2 - len(left) - len(right)
		if gap < 1 {
			gap = 1
		}
		b.WriteString(strings.Repeat(" ", labelWidth) + left + strings.Repeat(" ", gap) + right + "\n")
	}
	return b.String()
}

// Legend lists the series file names in their palette colors.
func Legend(series []dataset.Series, styled bool) string {
	if len(series) == 0 {
		return ""
	}
	parts := make([]string, 0, len(series))
	for i, s := range series {
		name := fmt.Sprintf("● %s (%d)", s.Name, s.Len())
		if styled {
			name = SeriesPalette[i%len(SeriesPalette)].Render(name)
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, "  ")
}

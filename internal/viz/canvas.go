package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille patterns: 2x4 dots per character cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-cell pixel grid with one series tag per cell.
// Sub-pixel resolution is (Width*2) x (Height*4). When series overlap
// in a cell the last writer's color wins; the dots themselves merge.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	cellSeries    [][]int // series index + 1, 0 = unset
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:      w,
		Height:     h,
		Grid:       make([][]rune, h),
		cellSeries: make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.cellSeries[i] = make([]int, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // empty braille char
		}
	}
	return c
}

// Set turns on the sub-pixel at (x, y) and tags its cell with series.
func (c *Canvas) Set(x, y, series int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.cellSeries[row][col] = series + 1
}

// Marker stamps a circular point marker (a 2x2 dot cluster) centered
// at the sub-pixel coordinate.
func (c *Canvas) Marker(x, y, series int) {
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			c.Set(x+dx, y+dy, series)
		}
	}
}

// Clear resets all dots and series tags.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.cellSeries[i][j] = 0
		}
	}
}

// SeriesAt returns the series index tagged at cell (col, row), or -1.
func (c *Canvas) SeriesAt(col, row int) int {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return -1
	}
	return c.cellSeries[row][col] - 1
}

// String renders the grid without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render renders the grid, coloring each cell with the style of the
// series that owns it. Runs of same-series cells share one style call
// to keep the output compact.
func (c *Canvas) Render(palette []lipgloss.Style) string {
	if len(palette) == 0 {
		return c.String()
	}
	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		col := 0
		for col < c.Width {
			series := c.cellSeries[row][col]
			end := col
			for end < c.Width && c.cellSeries[row][end] == series {
				end++
			}
			run := string(c.Grid[row][col:end])
			if series == 0 {
				b.WriteString(run)
			} else {
				b.WriteString(palette[(series-1)%len(palette)].Render(run))
			}
			col = end
		}
		b.WriteString("\n")
	}
	return b.String()
}

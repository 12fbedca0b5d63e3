package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// SeriesPalette colors scatter series in draw order, cycling when a
// generation has more files than colors.
var SeriesPalette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
}

// SeriesHexColors mirrors SeriesPalette for file exports that need
// real color values instead of terminal styles.
var SeriesHexColors = []string{
	"#5fffd7",
	"#ff87ff",
	"#ffd700",
	"#5fff00",
	"#ff8700",
	"#5f5fff",
	"#ff5f5f",
	"#00d7ff",
}

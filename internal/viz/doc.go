// Package viz renders Pareto-front generations in the terminal.
//
// The package implements an interactive browser using the Bubble Tea
// framework:
//
//   - [Viewer]: steps through generations with the arrow keys
//   - [Canvas]: braille-cell pixel grid with per-series coloring
//   - [Scatter]: one-shot framed scatter plot of a generation
//
// # Key Bindings
//
//	Right - next generation
//	Left  - previous generation (stops at 0)
//	Q     - quit
//
// Navigating to a generation with no data files leaves the previous
// plot on screen; there is no upper bound on the generation cursor.
package viz

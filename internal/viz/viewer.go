package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvail/paretoscope/internal/dataset"
	"github.com/mvail/paretoscope/internal/registry"
)

const (
	defaultPlotWidth  = 70
	defaultPlotHeight = 20
)

// RescanMsg triggers a registry rebuild in follow mode.
type RescanMsg time.Time

// Options configures a Viewer.
type Options struct {
	Width    int
	Height   int
	StartGen int
	Follow   bool
	Interval time.Duration
	Pattern  string
	Styled   bool
}

// Viewer is the interactive generation browser. The right and left
// keys move the generation cursor (clamped below at 0, unbounded
// above); rendering a generation with no files keeps the previous
// frame on screen.
type Viewer struct {
	reg      *registry.Registry
	pattern  string
	cursor   int
	shown    int    // generation currently in frame, -1 when blank
	frame    string // last rendered plot
	legend   string
	plotW    int
	plotH    int
	styled   bool
	follow   bool
	interval time.Duration
	err      error
}

// NewViewer builds a viewer over reg and renders the starting
// generation immediately. A parse failure in the starting generation's
// files is returned here, before the event loop starts.
func NewViewer(reg *registry.Registry, opts Options) (Viewer, error) {
	if opts.Width <= 0 {
		opts.Width = defaultPlotWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultPlotHeight
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Pattern == "" {
		opts.Pattern = registry.DefaultPattern
	}
	v := Viewer{
		reg:      reg,
		pattern:  opts.Pattern,
		cursor:   opts.StartGen,
		shown:    -1,
		plotW:    opts.Width,
		plotH:    opts.Height,
		styled:   opts.Styled,
		follow:   opts.Follow,
		interval: opts.Interval,
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	v.frame = Scatter(nil, v.plotW, v.plotH, v.styled) // blank plot
	if err := v.render(); err != nil {
		return v, err
	}
	return v, nil
}

// Err returns the error that stopped the event loop, if any.
func (v Viewer) Err() error { return v.err }

// render redraws the frame for the cursor generation. An absent
// generation is a no-op: the previous frame stays. A parse failure is
// returned and fatal to the caller.
func (v *Viewer) render() error {
	if !v.reg.Has(v.cursor) {
		return nil
	}
	series, err := dataset.LoadAll(v.reg.Dir(), v.reg.Files(v.cursor))
	if err != nil {
		return err
	}
	v.frame = Scatter(series, v.plotW, v.plotH, v.styled)
	v.legend = Legend(series, v.styled)
	v.shown = v.cursor
	return nil
}

func (v Viewer) tick() tea.Cmd {
	return tea.Tick(v.interval, func(t time.Time) tea.Msg { return RescanMsg(t) })
}

func (v Viewer) Init() tea.Cmd {
	if v.follow {
		return v.tick()
	}
	return nil
}

// Update handles navigation keys and follow-mode rescans.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right":
			v.cursor++
			return v.rerender()
		case "left":
			if v.cursor > 0 {
				v.cursor--
			}
			return v.rerender()
		case "q", "ctrl+c":
			return v, tea.Quit
		}
	case tea.WindowSizeMsg:
		w := msg.Width - labelWidth - 4
		h := msg.Height - 7
		if w >= 20 && h >= 8 {
			v.plotW, v.plotH = w, h
			return v.rerender()
		}
	case RescanMsg:
		prevMax := v.reg.MaxGeneration()
		reg, err := registry.ScanPattern(v.reg.Dir(), v.pattern)
		if err != nil {
			v.err = err
			return v, tea.Quit
		}
		v.reg = reg
		// Track a live optimizer: if the cursor sat on the newest
		// generation, jump to whatever is newest now.
		if v.cursor == prevMax && reg.MaxGeneration() > prevMax {
			v.cursor = reg.MaxGeneration()
		}
		m, cmd := v.rerender()
		if cmd != nil {
			return m, cmd // parse failure, quitting
		}
		return m, m.(Viewer).tick()
	}
	return v, nil
}

func (v Viewer) rerender() (tea.Model, tea.Cmd) {
	if err := v.render(); err != nil {
		v.err = err
		return v, tea.Quit
	}
	return v, nil
}

// View renders header, plot frame, legend, and key help.
func (v Viewer) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("PARETO FRONT") + " " + dimStyle.Render(v.reg.Dir()) + "\n")
	b.WriteString(v.statusLine() + "\n\n")
	b.WriteString(v.frame)
	if v.legend != "" {
		b.WriteString(v.legend + "\n")
	}
	b.WriteString(helpStyle.Render("←/→: generation  q: quit"))
	return b.String()
}

func (v Viewer) statusLine() string {
	max := v.reg.MaxGeneration()
	s := statusStyle.Render(fmt.Sprintf("generation %d", v.cursor))
	if max >= 0 {
		s += dimStyle.Render(fmt.Sprintf(" / %d", max))
	}
	if v.shown != v.cursor {
		if v.shown < 0 {
			s += warnStyle.Render("  (no data)")
		} else {
			s += warnStyle.Render(fmt.Sprintf("  (no data, showing %d)", v.shown))
		}
	} else if v.reg.Has(v.cursor) {
		files := v.reg.Files(v.cursor)
		s += dimStyle.Render(fmt.Sprintf("  ·  %d file(s)", len(files)))
	}
	if v.follow {
		s += dimStyle.Render("  ·  follow")
	}
	return s
}

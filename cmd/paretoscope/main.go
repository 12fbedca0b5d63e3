package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mvail/paretoscope/internal/config"
	"github.com/mvail/paretoscope/internal/dataset"
	"github.com/mvail/paretoscope/internal/export"
	"github.com/mvail/paretoscope/internal/front"
	"github.com/mvail/paretoscope/internal/registry"
	"github.com/mvail/paretoscope/internal/viz"
)

var (
	dataDir    string
	configFile string
	startGen   int
	follow     bool
	interval   time.Duration
	plotWidth  int
	plotHeight int
	refX       float64
	refY       float64
	outFile    string
)

// main registers commands and flags; the bare command opens the
// interactive viewer on the data directory.
func main() {
	rootCmd := &cobra.Command{
		Use:   "paretoscope",
		Short: "browse pareto front generations in the terminal",
		RunE:  runView,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".", "directory holding pareto_<gen>_<id>.dat files")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive generation viewer",
		RunE:  runView,
	}
	addViewFlags := func(cmd *cobra.Command) {
		cmd.Flags().IntVar(&startGen, "gen", 0, "starting generation")
		cmd.Flags().BoolVar(&follow, "follow", false, "rescan the directory for new generations")
		cmd.Flags().DurationVar(&interval, "interval", time.Second, "rescan interval in follow mode")
		cmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width in cells")
		cmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height in cells")
	}
	addViewFlags(rootCmd)
	addViewFlags(viewCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list generations",
		RunE:  runList,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [generation]",
		Short: "print one generation as an ascii scatter plot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width in cells")
	plotCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height in cells")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "front metrics across all generations",
		RunE:  runStats,
	}
	statsCmd.Flags().Float64Var(&refX, "ref-x", 0, "hypervolume reference x (0 = derive from data)")
	statsCmd.Flags().Float64Var(&refY, "ref-y", 0, "hypervolume reference y (0 = derive from data)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [generation]",
		Short: "export a generation's points to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [generation]",
		Short: "export a generation's points to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [generation]",
		Short: "render a generation to an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default pareto_<gen>.svg)")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [generation]",
		Short: "render a generation to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	exportPNGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default pareto_<gen>.png)")

	rootCmd.AddCommand(viewCmd, listCmd, plotCmd, statsCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, exportPNGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// effectiveConfig merges defaults, the optional config file, and any
// flags the user actually set.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("width") {
		cfg.Plot.Width = plotWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Plot.Height = plotHeight
	}
	if cmd.Flags().Changed("interval") {
		cfg.FollowInterval = config.Duration(interval)
	}
	if cmd.Flags().Changed("ref-x") {
		cfg.Reference.X = refX
	}
	if cmd.Flags().Changed("ref-y") {
		cfg.Reference.Y = refY
	}
	return cfg, nil
}

func scan(cfg *config.Config) (*registry.Registry, error) {
	return registry.ScanPattern(cfg.DataDir, cfg.Pattern)
}

func loadGeneration(reg *registry.Registry, gen int) ([]dataset.Series, error) {
	return dataset.LoadAll(reg.Dir(), reg.Files(gen))
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := scan(cfg)
	if err != nil {
		return err
	}

	v, err := viz.NewViewer(reg, viz.Options{
		Width:    cfg.Plot.Width,
		Height:   cfg.Plot.Height,
		StartGen: startGen,
		Follow:   follow,
		Interval: time.Duration(cfg.FollowInterval),
		Pattern:  cfg.Pattern,
		Styled:   true,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(v)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fv, ok := final.(viz.Viewer); ok && fv.Err() != nil {
		return fv.Err()
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := scan(cfg)
	if err != nil {
		return err
	}

	gens := reg.Generations()
	if len(gens) == 0 {
		fmt.Println("no generations found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GEN\tFILES\tPOINTS\tX-RANGE\tY-RANGE")
	for _, gen := range gens {
		series, err := loadGeneration(reg, gen)
		if err != nil {
			return err
		}
		points := front.Merge(series)
		s := front.Summarize(points)
		fmt.Fprintf(w, "%d\t%d\t%d\t[%.3f, %.3f]\t[%.3f, %.3f]\n",
			gen, len(series), s.Count, s.MinX, s.MaxX, s.MinY, s.MaxY)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := scan(cfg)
	if err != nil {
		return err
	}

	gen := 0
	if len(args) > 0 {
		if gen, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid generation %q", args[0])
		}
	}
	if !reg.Has(gen) {
		fmt.Printf("no data for generation %d\n", gen)
		return nil
	}

	series, err := loadGeneration(reg, gen)
	if err != nil {
		return err
	}
	fmt.Printf("generation %d (%d files, %d points)\n\n", gen, len(series), dataset.PointCount(series))
	fmt.Print(viz.Scatter(series, cfg.Plot.Width, cfg.Plot.Height, false))
	fmt.Println(viz.Legend(series, false))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := scan(cfg)
	if err != nil {
		return err
	}

	gens := reg.Generations()
	if len(gens) == 0 {
		fmt.Println("no generations found")
		return nil
	}

	perGen := make(map[int][]front.Point, len(gens))
	for _, gen := range gens {
		series, err := loadGeneration(reg, gen)
		if err != nil {
			return err
		}
		perGen[gen] = front.Merge(series)
	}

	ref := front.Point{X: cfg.Reference.X, Y: cfg.Reference.Y}
	if ref.X == 0 && ref.Y == 0 {
		ref = deriveReference(perGen)
		fmt.Printf("reference point (derived): (%.3f, %.3f)\n\n", ref.X, ref.Y)
	}

	sizes := make([]float64, 0, len(gens))
	hvs := make([]float64, 0, len(gens))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GEN\tPOINTS\tNONDOM\tHYPERVOL\tSPACING\tBEST-X\tBEST-Y")
	for _, gen := range gens {
		points := perGen[gen]
		nd := front.Nondominated(points)
		hv := front.Hypervolume2D(points, ref)
		s := front.Summarize(points)
		fmt.Fprintf(w, "%d\t%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			gen, len(points), len(nd), hv, front.Spacing(nd), s.MinX, s.MinY)
		sizes = append(sizes, float64(len(nd)))
		hvs = append(hvs, hv)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(gens) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(sizes,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("non-dominated points per generation"),
		))
		fmt.Println()
		fmt.Println(asciigraph.Plot(hvs,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption("hypervolume per generation"),
		))
	}
	return nil
}

// deriveReference picks a hypervolume reference just outside the worst
// observed values, so every point can contribute.
func deriveReference(perGen map[int][]front.Point) front.Point {
	ref := front.Point{}
	first := true
	for _, points := range perGen {
		for _, p := range points {
			if first {
				ref = p
				first = false
				continue
			}
			if p.X > ref.X {
				ref.X = p.X
			}
			if p.Y > ref.Y {
				ref.Y = p.Y
			}
		}
	}
	return front.Point{X: ref.X + 0.1*absOrOne(ref.X), Y: ref.Y + 0.1*absOrOne(ref.Y)}
}

func absOrOne(v float64) float64 {
	if v < 0 {
		v = -v
	}
	if v == 0 {
		return 1
	}
	return v
}

func requireGeneration(cmd *cobra.Command, args []string) (int, []dataset.Series, error) {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return 0, nil, err
	}
	reg, err := scan(cfg)
	if err != nil {
		return 0, nil, err
	}
	gen, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid generation %q", args[0])
	}
	if !reg.Has(gen) {
		return 0, nil, fmt.Errorf("no data for generation %d", gen)
	}
	series, err := loadGeneration(reg, gen)
	if err != nil {
		return 0, nil, err
	}
	return gen, series, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, series, err := requireGeneration(cmd, args)
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, series)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	gen, series, err := requireGeneration(cmd, args)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, gen, series)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	gen, series, err := requireGeneration(cmd, args)
	if err != nil {
		return err
	}
	path := outFile
	if path == "" {
		path = fmt.Sprintf("pareto_%d.svg", gen)
	}
	if err := os.WriteFile(path, []byte(export.ScatterSVG(series, 800, 600)), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	gen, series, err := requireGeneration(cmd, args)
	if err != nil {
		return err
	}
	path := outFile
	if path == "" {
		path = fmt.Sprintf("pareto_%d.png", gen)
	}
	if err := export.WritePNG(path, gen, series); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

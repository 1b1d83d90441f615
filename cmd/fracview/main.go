package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fracview/internal/config"
	"github.com/san-kum/fracview/internal/export"
	"github.com/san-kum/fracview/internal/mandel"
	"github.com/san-kum/fracview/internal/palette"
	"github.com/san-kum/fracview/internal/render"
	"github.com/san-kum/fracview/internal/storage"
	"github.com/san-kum/fracview/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	width      int
	height     int
	maxIter    int
	palName    string
	xMin       float64
	xMax       float64
	yMin       float64
	yMax       float64
	outFile    string
)

// main registers commands and flags and launches the interactive
// explorer when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "fracview",
		Short: "interactive escape-time fractal explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg, storage.New(dataDir))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fracview", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "grid width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "grid height in pixels")
	rootCmd.PersistentFlags().IntVar(&maxIter, "iters", config.DefaultMaxIter, "iteration budget")
	rootCmd.PersistentFlags().StringVar(&palName, "palette", config.DefaultPalette, "palette name")
	rootCmd.PersistentFlags().Float64Var(&xMin, "xmin", 0, "region x min")
	rootCmd.PersistentFlags().Float64Var(&xMax, "xmax", 0, "region x max")
	rootCmd.PersistentFlags().Float64Var(&yMin, "ymin", 0, "region y min")
	rootCmd.PersistentFlags().Float64Var(&yMax, "ymax", 0, "region y max")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a region to PNG",
		RunE:  renderRegion,
	}
	renderCmd.Flags().StringVar(&outFile, "out", "", "write PNG here instead of the snapshot store")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved snapshots",
		RunE:  listSnapshots,
	}

	regionsCmd := &cobra.Command{
		Use:   "regions",
		Short: "list named regions and presets",
		RunE:  listRegions,
	}

	histCmd := &cobra.Command{
		Use:   "histogram",
		Short: "plot the escape-count distribution of a region",
		RunE:  plotHistogram,
	}

	exportCmd := &cobra.Command{
		Use:   "export [snapshot_id]",
		Short: "export snapshot metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSnapshot,
	}

	rootCmd.AddCommand(renderCmd, listCmd, regionsCmd, histCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, and CLI flags, with flags
// winning when explicitly set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("iters") {
		cfg.MaxIter = maxIter
	}
	if cmd.Flags().Changed("palette") {
		cfg.Palette = palName
	}
	if cmd.Flags().Changed("xmin") || cmd.Flags().Changed("xmax") ||
		cmd.Flags().Changed("ymin") || cmd.Flags().Changed("ymax") {
		cfg.SetRegion(mandel.Region{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax})
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newComposer(cfg *config.Config) (*render.Composer, error) {
	pal, err := palette.ByName(cfg.Palette)
	if err != nil {
		return nil, err
	}
	return render.New(cfg.Width, cfg.Height, cfg.MaxIter, pal)
}

func renderRegion(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	comp, err := newComposer(cfg)
	if err != nil {
		return err
	}

	region := cfg.GetRegion()
	fmt.Printf("rendering %dx%d, %d iters...\n", cfg.Width, cfg.Height, cfg.MaxIter)
	start := time.Now()

	frame, err := comp.Render(region)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))

	if outFile != "" {
		if err := export.WritePNG(outFile, frame); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(frame, cfg.MaxIter, cfg.Palette, region)
	if err != nil {
		return err
	}
	fmt.Printf("snapshot id: %s\n", id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tITERS\tPALETTE\tREGION")

	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%s\t[%.4g,%.4g]x[%.4g,%.4g]\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Width, s.Height,
			s.MaxIter,
			s.Palette,
			s.Region.XMin, s.Region.XMax, s.Region.YMin, s.Region.YMax,
		)
	}

	return w.Flush()
}

func listRegions(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tITERS\tPALETTE\tREGION")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		r := p.GetRegion()
		fmt.Fprintf(w, "%s\t%d\t%s\t[%.4g,%.4g]x[%.4g,%.4g]\n",
			name, p.MaxIter, p.Palette, r.XMin, r.XMax, r.YMin, r.YMax)
	}

	return w.Flush()
}

func plotHistogram(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	comp, err := newComposer(cfg)
	if err != nil {
		return err
	}

	counts, err := comp.Counts(cfg.GetRegion())
	if err != nil {
		return err
	}

	hist := make([]float64, cfg.MaxIter)
	interior := 0
	for _, n := range counts {
		if n < cfg.MaxIter {
			hist[n]++
		} else {
			interior++
		}
	}

	// trim the empty tail so the plot shows the populated range
	last := len(hist) - 1
	for last > 0 && hist[last] == 0 {
		last--
	}

	graph := asciigraph.Plot(hist[:last+1],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("escape count distribution"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("pixels: %d\n", len(counts))
	fmt.Printf("interior (never escaped): %d\n", interior)
	return nil
}

func exportSnapshot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

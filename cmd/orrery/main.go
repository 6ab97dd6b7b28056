package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/engine"
	"github.com/san-kum/orrery/internal/ephem"
	"github.com/san-kum/orrery/internal/store"
	"github.com/san-kum/orrery/internal/viz"
)

var (
	dataDir    string
	configFile string
	bodiesFile string

	startStr      string
	speed         float64
	planetScale   float64
	universeScale float64
	frameRate     int

	durationDays float64
	strideHours  float64
	runName      string

	atStr    string
	plotBody string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orrery",
		Short: "interactive orbital simulation of a star system",
		RunE:  runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orrery", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&bodiesFile, "bodies", "", "body table path (yaml, default: built-in star system)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "propagate the system headless and save the sampled poses",
		RunE:  runPropagation,
	}
	runCmd.Flags().Float64Var(&durationDays, "days", 365.25, "simulated span in days")
	runCmd.Flags().Float64Var(&strideHours, "stride", 24, "sample stride in simulated hours")
	runCmd.Flags().StringVar(&startStr, "start", "", "simulated start time (RFC 3339, default: now)")
	runCmd.Flags().StringVar(&runName, "name", "sol", "run name prefix")
	runCmd.Flags().Float64Var(&planetScale, "planet-scale", 0, "planet visual scale (0: from config)")
	runCmd.Flags().Float64Var(&universeScale, "universe-scale", 0, "universe distance scale (0: from config)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the live orbital map",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&startStr, "start", "", "simulated start time (RFC 3339, default: now)")
	liveCmd.Flags().Float64Var(&speed, "speed", 0, "clock speed multiplier (0: from config)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate (0: from config)")

	poseCmd := &cobra.Command{
		Use:   "pose",
		Short: "print the pose table at a timestamp",
		RunE:  printPoses,
	}
	poseCmd.Flags().StringVar(&atStr, "at", "", "timestamp (RFC 3339, default: now)")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the configured bodies",
		RunE:  listBodies,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "validate a body table file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := body.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: ok, %d bodies\n", args[0], t.Count())
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's heliocentric distance across a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotBody, "body", "earth", "body name")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "dump a run's pose samples as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return store.New(dataDir).ExportCSV(args[0], os.Stdout)
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, poseCmd, bodiesCmd, validateCmd, listCmd, plotCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

func loadTable(cfg *config.Config) (*body.Table, error) {
	path := bodiesFile
	if path == "" {
		path = cfg.BodiesFile
	}
	if path == "" {
		return body.Sol(), nil
	}
	return body.Load(path)
}

func resolveStart(cfg *config.Config) (time.Time, error) {
	if startStr != "" {
		t, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid start time %q: %w", startStr, err)
		}
		return t, nil
	}
	return cfg.StartTime()
}

func resolveSettings(cfg *config.Config) engine.Settings {
	s := engine.Settings{PlanetScale: cfg.PlanetScale, UniverseScale: cfg.UniverseScale}
	if planetScale > 0 {
		s.PlanetScale = planetScale
	}
	if universeScale > 0 {
		s.UniverseScale = universeScale
	}
	return s
}

func runPropagation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}
	start, err := resolveStart(cfg)
	if err != nil {
		return err
	}
	if strideHours <= 0 {
		return fmt.Errorf("stride must be positive, got %g", strideHours)
	}
	if durationDays <= 0 {
		return fmt.Errorf("days must be positive, got %g", durationDays)
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	eng := engine.New(table)
	set := resolveSettings(cfg)
	stride := time.Duration(strideHours * float64(time.Hour))
	samples := int(durationDays*24/strideHours) + 1

	fmt.Printf("propagating %d bodies over %.1f days...\n", table.Count(), durationDays)
	wall := time.Now()

	times := make([]float64, 0, samples)
	frames := make([][]engine.BodyPose, 0, samples)
	at := start
	for i := 0; i < samples; i++ {
		times = append(times, ephem.ToJulianDate(at))
		frames = append(frames, eng.Tick(at, set))
		at = at.Add(stride)
	}

	runID, err := st.Save(runName, start, strideHours, set, times, frames)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(wall))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(frames))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}
	start, err := resolveStart(cfg)
	if err != nil {
		return err
	}

	clockSpeed := cfg.Speed
	if speed != 0 {
		clockSpeed = speed
	}
	fps := cfg.FrameRate
	if frameRate > 0 {
		fps = frameRate
	}

	clock := engine.NewClock(start, clockSpeed)
	m := viz.NewModel(engine.New(table), clock, resolveSettings(cfg), fps)

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func printPoses(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	at := time.Now()
	if atStr != "" {
		if at, err = time.Parse(time.RFC3339, atStr); err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", atStr, err)
		}
	}

	poses := engine.New(table).Tick(at, resolveSettings(cfg))

	fmt.Printf("jd: %.5f\n\n", ephem.ToJulianDate(at))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tPARENT\tX\tY\tZ\tROT_Y\tSCALE")
	for _, p := range poses {
		fmt.Fprintf(w, "%s\t%s\t%.5f\t%.5f\t%.5f\t%.4f\t%.5f\n",
			p.Name, p.Parent,
			p.Position.X, p.Position.Y, p.Position.Z,
			p.RotationY, p.Scale,
		)
	}
	return w.Flush()
}

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tRADIUS\tROT_H\tA\tE\tI\tSATS")
	var write func(b *body.Body, depth int)
	write = func(b *body.Body, depth int) {
		indent := ""
		for i := 0; i < depth; i++ {
			indent += "  "
		}
		fmt.Fprintf(w, "%s%s\t%.4f\t%.2f\t%.5f\t%.5f\t%.3f\t%d\n",
			indent, b.Name, b.Radius, b.RotPeriod,
			b.Elements.A, b.Elements.E, b.Elements.I, len(b.Satellites),
		)
		for i := range b.Satellites {
			write(&b.Satellites[i], depth+1)
		}
	}
	for i := range table.Bodies {
		write(&table.Bodies[i], 0)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSAVED\tSTART\tSTRIDE_H\tBODIES\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Start.UTC().Format("2006-01-02 15:04"),
			run.StrideHours,
			run.Bodies,
			run.Samples,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := store.New(dataDir)

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	times, positions, err := st.LoadSeries(runID, plotBody)
	if err != nil {
		return err
	}

	data := make([]float64, len(positions))
	for i, p := range positions {
		data[i] = p.Norm()
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("body: %s, samples: %d, jd %.2f..%.2f\n\n", plotBody, len(data), times[0], times[len(times)-1])

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s distance from origin (world units)", plotBody)),
	)
	fmt.Println(graph)
	return nil
}

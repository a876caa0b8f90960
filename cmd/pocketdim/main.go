package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/san-kum/pocketdim/internal/config"
	"github.com/san-kum/pocketdim/internal/engine"
	"github.com/san-kum/pocketdim/internal/experiment"
	"github.com/san-kum/pocketdim/internal/export"
	"github.com/san-kum/pocketdim/internal/lattice"
	"github.com/san-kum/pocketdim/internal/logging"
	"github.com/san-kum/pocketdim/internal/sim"
	"github.com/san-kum/pocketdim/internal/storage"
)

var (
	dataDir    string
	logLevel   string
	dimension  int
	rounds     int
	workers    int
	engineName string
	dims       []int
	configFile string
	preset     string
	save       bool
	verify     bool
	// offsets command
	listVectors bool
	// export command
	exportFormat string
)

// main is the entry point for the pocketdim CLI; it registers commands and
// flags and executes the root command, exiting with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pocketdim",
		Short:        "n-dimensional cellular automaton simulator",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (info, debug, trace)")

	runCmd := &cobra.Command{
		Use:   "run [grid-file|-]",
		Short: "run simulation on a grid file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&dimension, "dim", config.DefaultDimension, "number of spatial dimensions")
	runCmd.Flags().IntVar(&rounds, "rounds", config.DefaultRounds, "generations to simulate")
	runCmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "candidate evaluation workers")
	runCmd.Flags().StringVar(&engineName, "engine", experiment.DefaultEngine, "engine (dense, parallel, sequential)")
	runCmd.Flags().IntSliceVar(&dims, "dims", nil, "run every listed dimension concurrently, e.g. 3,4")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&save, "save", false, "record the run in the data directory")
	runCmd.Flags().BoolVar(&verify, "verify", false, "cross-check every generation against the dense evaluator")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population per generation",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run record as JSON or population chart as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json, svg)")

	benchCmd := &cobra.Command{
		Use:   "bench [grid-file|-]",
		Short: "benchmark worker counts",
		Args:  cobra.ExactArgs(1),
		RunE:  benchEngine,
	}
	benchCmd.Flags().IntVar(&dimension, "dim", 4, "number of spatial dimensions")
	benchCmd.Flags().IntVar(&rounds, "rounds", config.DefaultRounds, "generations to simulate")

	offsetsCmd := &cobra.Command{
		Use:   "offsets [dim]",
		Short: "show the neighbour offset table of a dimension",
		Args:  cobra.ExactArgs(1),
		RunE:  showOffsets,
	}
	offsetsCmd.Flags().BoolVar(&listVectors, "list", false, "print every offset vector")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIM\tROUNDS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\n", name, p.Dimension, p.Rounds)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, benchCmd, offsetsCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers preset, config file and explicitly set flags, in
// that order of increasing precedence.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, errors.Wrapf(lattice.ErrConfig, "unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dim") {
		cfg.Dimension = dimension
	}
	if flags.Changed("rounds") {
		cfg.Rounds = rounds
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("verify") {
		cfg.Verify = verify
	}
	if cmd.Root().PersistentFlags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cmd.Root().PersistentFlags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if cfg.Input == "" {
		return nil, errors.Wrap(lattice.ErrConfig, "no grid given: pass a file, '-' for stdin, or set input in the config")
	}

	return cfg, cfg.Validate()
}

func readGrid(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read grid %s", path)
	}
	return string(data), nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

	grid, err := readGrid(cmd, cfg.Input)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(dims) > 0 {
		return runSweep(ctx, cmd, cfg, grid, logger)
	}

	exp := experiment.New(experiment.Config{
		Grid:      grid,
		Dimension: cfg.Dimension,
		Rounds:    cfg.Rounds,
		Workers:   cfg.Workers,
		Engine:    engineName,
		Verify:    cfg.Verify,
	})
	if err := exp.Setup(experiment.NewRegistry(), logger); err != nil {
		return err
	}

	start := time.Now()
	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, valueStyle.Render(fmt.Sprintf("%d", result.ActiveCount())))
	logger.Info("result",
		"dimension", cfg.Dimension,
		"rounds", cfg.Rounds,
		"active", result.ActiveCount(),
		"peak", result.Metrics["peak_population"])

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Input:     cfg.Input,
			Dimension: cfg.Dimension,
			Rounds:    cfg.Rounds,
			Workers:   cfg.Workers,
			Elapsed:   elapsed,
		}, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved: %s\n", runID)
	}

	return nil
}

func runSweep(ctx context.Context, cmd *cobra.Command, cfg *config.Config, grid string, logger *slog.Logger) error {
	for _, d := range dims {
		if err := lattice.CheckDimension(d); err != nil {
			return err
		}
	}

	registry := experiment.NewRegistry()
	if _, err := registry.GetEngine(engineName, cfg.Workers); err != nil {
		return err
	}
	newSim := func() *sim.Simulator {
		stepper, _ := registry.GetEngine(engineName, cfg.Workers)
		s := sim.New(stepper)
		s.SetLogger(logger)
		for _, m := range registry.DefaultMetrics() {
			s.AddMetric(m)
		}
		return s
	}

	simCfg := sim.Config{Rounds: cfg.Rounds}
	if cfg.Verify {
		simCfg.Reference = sim.StepFunc(engine.AdvanceDense)
	}

	start := time.Now()
	results, err := sim.NewSweep(newSim, dims...).Run(ctx, grid, simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIM\tROUNDS\tACTIVE")
	for i, res := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\n", dims[i], cfg.Rounds, res.ActiveCount())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !save {
		return nil
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	for i, res := range results {
		runID, err := st.Save(storage.RunMetadata{
			Input:     cfg.Input,
			Dimension: dims[i],
			Rounds:    cfg.Rounds,
			Workers:   cfg.Workers,
			Elapsed:   elapsed,
		}, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "saved: %s\n", runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, subtleStyle.Render("no runs found"))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDIM\tROUNDS\tACTIVE\tELAPSED\tINPUT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dimension,
			run.Rounds,
			run.ActiveCount,
			run.Elapsed.Round(time.Microsecond),
			run.Input,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pops, err := st.LoadPopulations(runID)
	if err != nil {
		return err
	}

	if len(pops) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("run:"), meta.ID)
	fmt.Fprintf(out, "%s %d\n", labelStyle.Render("dimension:"), meta.Dimension)
	fmt.Fprintf(out, "%s %d\n\n", labelStyle.Render("generations:"), len(pops)-1)

	data := make([]float64, len(pops))
	for i, p := range pops {
		data[i] = float64(p)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Caption("active cells per generation"))
	fmt.Fprintln(out, graph)

	return nil
}

func benchEngine(cmd *cobra.Command, args []string) error {
	grid, err := readGrid(cmd, args[0])
	if err != nil {
		return err
	}

	initial, err := lattice.ParseGrid(grid, dimension)
	if err != nil {
		return err
	}
	if err := lattice.CheckRounds(rounds); err != nil {
		return err
	}

	counts := []int{1, 2, 4, runtime.NumCPU()}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("benchmarking %d-D, %d rounds", dimension, rounds)))
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKERS\tACTIVE\tTIME\tGEN/SEC")

	for _, n := range counts {
		eng := engine.New(engine.WithWorkers(n))
		s := sim.New(eng)

		start := time.Now()
		result, err := s.Run(cmd.Context(), initial, sim.Config{Rounds: rounds})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		genPerSec := 0.0
		if elapsed > 0 {
			genPerSec = float64(rounds) / elapsed.Seconds()
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%.1f\n", eng.Workers(), result.ActiveCount(), elapsed.Round(time.Microsecond), genPerSec)
	}

	return w.Flush()
}

func showOffsets(cmd *cobra.Command, args []string) error {
	var d int
	if _, err := fmt.Sscanf(args[0], "%d", &d); err != nil {
		return errors.Wrapf(lattice.ErrConfig, "dimension %q is not an integer", args[0])
	}
	if d < 1 || d > lattice.MaxDimension {
		return errors.Wrapf(lattice.ErrConfig, "dimension must be in [1, %d], got %d", lattice.MaxDimension, d)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("neighbours:"), valueStyle.Render(fmt.Sprintf("%d", lattice.NeighbourCount(d))))

	if listVectors {
		parts := make([]string, 0, lattice.NeighbourCount(d))
		for _, o := range lattice.Offsets(d) {
			parts = append(parts, o.String())
		}
		fmt.Fprintln(out, strings.Join(parts, "\n"))
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	switch exportFormat {
	case "json":
		return store.Export(cmd.OutOrStdout(), args[0])
	case "svg":
		pops, err := store.LoadPopulations(args[0])
		if err != nil {
			return err
		}
		return export.WritePopulationSVG(cmd.OutOrStdout(), pops)
	default:
		return errors.Wrapf(lattice.ErrConfig, "unknown export format %q", exportFormat)
	}
}

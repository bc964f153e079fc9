package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/schelling/config"
	"github.com/katalvlaran/schelling/internal/logging"
	"github.com/katalvlaran/schelling/schelling"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schelling",
		Short: "Schelling segregation model on a toroidal lattice",
		Long: `schelling runs the Schelling segregation model: agents of several types
live on an L×L torus and move to a random empty cell whenever too few of
their neighbors share their type. A run ends when nobody moves or after
max_iter passes, and reports the segregation index of the final layout.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schelling version %s\n", version)
			return nil
		},
	}
}

// runReport is the outcome of one run as printed by the run command.
type runReport struct {
	RunID    string                 `json:"run_id"`
	Status   string                 `json:"status"`
	Config   *config.RunConfig      `json:"config"`
	Clusters schelling.ClusterStats `json:"clusters"`
	schelling.Result
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation",
		Long: `Run one simulation and print the number of passes, whether the layout
converged and its segregation index.

Parameters come from the defaults, then --config, then SCHELLING_SEED,
SCHELLING_MAX_ITER and SCHELLING_LOG_LEVEL, then explicit flags.`,
		Example: `  schelling run
  schelling run --size 50 --per-type 1000 --types 2 --threshold 0.5
  schelling run --thresholds 0.3,0.7 --types 2 --alone-happy=false --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			report, err := runSimulation(cmd, cfg)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().String("config", "", "Path to a YAML run configuration")
	cmd.Flags().Int("size", 0, "Lattice side length L")
	cmd.Flags().Int("per-type", 0, "Agents of each type")
	cmd.Flags().Int("types", 0, "Number of agent types")
	cmd.Flags().Int("max-iter", 0, "Maximum number of passes")
	cmd.Flags().Float64("threshold", 0, "Satisfaction threshold for every type")
	cmd.Flags().Float64Slice("thresholds", nil, "Per-type satisfaction thresholds")
	cmd.Flags().Int("layers", 0, "Relocation neighborhood radius")
	cmd.Flags().Bool("alone-happy", true, "Agents without occupied neighbors stay")
	cmd.Flags().Int64("seed", 0, "Random seed")
	cmd.Flags().String("log-level", "", "Log verbosity: info, debug or trace")

	return cmd
}

// applyFlags copies every explicitly set flag onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.RunConfig) error {
	flags := cmd.Flags()
	var err error
	set := func(name string, apply func() error) {
		if err == nil && flags.Changed(name) {
			err = apply()
		}
	}

	set("size", func() (e error) { cfg.Size, e = flags.GetInt("size"); return })
	set("per-type", func() (e error) { cfg.PerType, e = flags.GetInt("per-type"); return })
	set("types", func() (e error) { cfg.Types, e = flags.GetInt("types"); return })
	set("max-iter", func() (e error) { cfg.MaxIter, e = flags.GetInt("max-iter"); return })
	set("threshold", func() (e error) {
		cfg.Threshold, e = flags.GetFloat64("threshold")
		cfg.Thresholds = nil
		return
	})
	set("thresholds", func() (e error) { cfg.Thresholds, e = flags.GetFloat64Slice("thresholds"); return })
	set("layers", func() (e error) { cfg.Layers, e = flags.GetInt("layers"); return })
	set("alone-happy", func() (e error) { cfg.AloneHappy, e = flags.GetBool("alone-happy"); return })
	set("seed", func() (e error) { cfg.Seed, e = flags.GetInt64("seed"); return })
	set("log-level", func() (e error) { cfg.Logging.Level, e = flags.GetString("log-level"); return })

	if err != nil {
		return fmt.Errorf("reading flags: %w", err)
	}
	return nil
}

// runSimulation builds a model from cfg, runs it and returns the report.
// Logs go to the command's stderr tagged with a fresh run ID.
func runSimulation(cmd *cobra.Command, cfg *config.RunConfig) (*runReport, error) {
	runID := uuid.NewString()
	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()).With("run_id", runID)

	m, err := schelling.New(cfg.Size, cfg.PerType, cfg.Types,
		schelling.WithSeed(cfg.Seed),
		schelling.WithLogger(logger),
		schelling.WithObserver(schelling.NewLogObserver(logger, logging.LevelTrace)),
	)
	if err != nil {
		return nil, fmt.Errorf("creating model: %w", err)
	}

	res, err := m.Run(cfg.MaxIter, cfg.ThresholdList(),
		schelling.WithLayers(cfg.Layers),
		schelling.WithAloneHappy(cfg.AloneHappy),
	)
	if err != nil {
		return nil, fmt.Errorf("running model: %w", err)
	}

	return &runReport{
		RunID:    runID,
		Status:   m.Status().String(),
		Config:   cfg,
		Clusters: m.ClusterStats(),
		Result:   res,
	}, nil
}

func printReport(cmd *cobra.Command, r *runReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s\n", r.RunID)
	fmt.Fprintf(out, "  lattice:           %dx%d, %d types x %d agents\n",
		r.Config.Size, r.Config.Size, r.Config.Types, r.Config.PerType)
	fmt.Fprintf(out, "  thresholds:        %v\n", r.Config.ThresholdList())
	fmt.Fprintf(out, "  status:            %s\n", r.Status)
	fmt.Fprintf(out, "  cycles:            %d\n", r.Cycles)
	fmt.Fprintf(out, "  converged:         %t\n", r.Converged)
	fmt.Fprintf(out, "  segregation index: %.4f\n", r.SegregationIndex)
	fmt.Fprintf(out, "  clusters:          %d (largest %d, mean %.1f)\n",
		r.Clusters.Count, r.Clusters.Largest, r.Clusters.MeanSize)
}

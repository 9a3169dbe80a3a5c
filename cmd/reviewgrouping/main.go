// Command reviewgrouping assigns review participants into balanced groups
// from a roster file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	grouping "github.com/g101418/ReviewGrouping"
	"github.com/g101418/ReviewGrouping/harness"
	"github.com/g101418/ReviewGrouping/internal/logging"
	"github.com/g101418/ReviewGrouping/internal/seed"
	"github.com/g101418/ReviewGrouping/render"
	"github.com/g101418/ReviewGrouping/source"
	"github.com/g101418/ReviewGrouping/types"
)

var (
	solveSeed     int64
	solveAttempts int
	solveParallel int
	solveMarker   string
	solveVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "reviewgrouping",
	Short: "Assign review participants into balanced groups",
	Long: `reviewgrouping reads a roster of group leaders, external specialists and
general members and searches for an assignment that satisfies per-group
capacity bounds, external-specialist quotas and province exclusions.

Rosters may be given in the line-based text format or as YAML (files ending
in .yaml or .yml).`,
	SilenceUsage: true,
}

var solveCmd = &cobra.Command{
	Use:   "solve <roster-file>",
	Short: "Solve a roster and print the assignment",
	Long: `Solve loads the roster, derives the capacity and quota bounds, and runs
the three-phase backtracking search, retrying with successive seeds until an
assignment validates or the attempt budget runs out.

When --seed is not given, the starting seed is derived deterministically
from the roster content, so repeated runs on the same file reproduce the
same assignment.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

var limitsCmd = &cobra.Command{
	Use:   "limits <roster-file>",
	Short: "Print the derived capacity and quota bounds for a roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runLimits,
}

func init() {
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Starting seed (default: derived from roster content)")
	solveCmd.Flags().IntVar(&solveAttempts, "attempts", 300, "Number of seeds to try before giving up")
	solveCmd.Flags().IntVar(&solveParallel, "parallel", 1, "Number of concurrent solve attempts")
	solveCmd.Flags().StringVar(&solveMarker, "marker", source.DefaultMarker, "External-specialist marker token in text rosters")
	solveCmd.PersistentFlags().BoolVarP(&solveVerbose, "verbose", "v", false, "Enable debug logging")

	limitsCmd.Flags().StringVar(&solveMarker, "marker", source.DefaultMarker, "External-specialist marker token in text rosters")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(limitsCmd)
}

// loadRoster picks a source by file extension and parses the roster.
func loadRoster(path string) (types.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Roster{}, fmt.Errorf("reading roster file: %w", err)
	}

	var src types.RosterSource
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		src = source.NewYAML(data)
	} else {
		txt := source.NewText(string(data))
		txt.Marker = solveMarker
		src = txt
	}

	return src.LoadRoster()
}

func newLogger() types.Logger {
	level := slog.LevelInfo
	if solveVerbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return logging.NewSlog(slog.New(handler))
}

func runSolve(cmd *cobra.Command, args []string) error {
	roster, err := loadRoster(args[0])
	if err != nil {
		return err
	}

	log := newLogger()
	solver, err := grouping.New(roster, grouping.WithLogger(log))
	if err != nil {
		return err
	}

	startSeed := solveSeed
	if !cmd.Flags().Changed("seed") {
		startSeed = seed.FromRoster(&roster)
	}

	cfg := harness.Config{
		StartSeed:   startSeed,
		MaxAttempts: solveAttempts,
		Parallelism: solveParallel,
	}
	runner, err := harness.NewRunner(solver, cfg, harness.WithLogger(log))
	if err != nil {
		return err
	}

	result, err := runner.RunParallel(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Assignment found with seed %d after %d attempt(s)\n\n", result.Seed, result.Attempts)

	return render.Fprint(os.Stdout, result.Table)
}

func runLimits(_ *cobra.Command, args []string) error {
	roster, err := loadRoster(args[0])
	if err != nil {
		return err
	}

	limits := types.ComputeLimits(roster.M(), roster.N(), roster.ExternalCount())
	fmt.Printf("groups:               %d\n", roster.M())
	fmt.Printf("members:              %d\n", roster.N())
	fmt.Printf("externals:            %d\n", roster.ExternalCount())
	fmt.Printf("size bounds:          [%d, %d]\n", limits.Lower, limits.Upper)
	fmt.Printf("external upper:       %d\n", limits.ExternalUpper)
	fmt.Printf("touch quota size:     %d\n", limits.TouchQuotaSize)
	fmt.Printf("touch quota external: %d\n", limits.TouchQuotaExternal)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

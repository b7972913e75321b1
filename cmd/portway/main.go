// Command portway reads a city connectivity instance, computes the
// minimum-cost plan, and prints it.
//
// Input comes from stdin or from a file argument, as whitespace-separated
// integers: n_cities, then n_ports with (city_id, port_cost) pairs, then
// n_highways with (city_a, city_b, cost) triples. Output goes to stdout:
// "Impossible", or the total cost followed by "ports highways". All
// diagnostics go to stderr, so stdout stays machine-readable.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/portway/citynet"
	"github.com/katalvlaran/portway/kruskal_boruvka"
	"github.com/katalvlaran/portway/planio"
)

type flags struct {
	method      string
	dotPath     string
	maxCities   int
	maxHighways int
	verbose     bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	var f flags
	rootCmd := &cobra.Command{
		Use:           "portway [instance-file]",
		Short:         "portway plans the minimum-cost port and highway network for a set of cities.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), &f, args)
		},
	}
	rootCmd.Flags().StringVar(&f.method, "method", kruskal_boruvka.MethodKruskal,
		"selection strategy: kruskal or boruvka")
	rootCmd.Flags().StringVar(&f.dotPath, "dot", "",
		"write a Graphviz dump of the instance and the selected plan to this file")
	rootCmd.Flags().IntVar(&f.maxCities, "max-cities", citynet.DefaultOptions().MaxCities,
		"reject instances declaring more cities (0 disables the ceiling)")
	rootCmd.Flags().IntVar(&f.maxHighways, "max-highways", citynet.DefaultOptions().MaxHighways,
		"reject instances declaring more highways (0 disables the ceiling)")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false,
		"log planning details to stderr")
	rootCmd.SetOut(os.Stdout)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "portway:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, f *flags, args []string) error {
	logger, err := newLogger(f.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Resolve the input stream: file argument or stdin.
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	opts := citynet.Options{MaxCities: f.maxCities, MaxHighways: f.maxHighways}
	inst, err := planio.ReadInstance(in, opts)
	if err != nil {
		return err
	}
	logger.Debug("instance parsed",
		zap.Int("cities", inst.NumCities()),
		zap.Int("ports", inst.Ports()),
		zap.Int("highways", inst.NumHighways()),
	)

	// The read may have blocked on a pipe for a while; honor a pending
	// interrupt before computing.
	if err := ctx.Err(); err != nil {
		return err
	}

	res, picked, err := kruskal_boruvka.Compute(inst, kruskal_boruvka.PlanOptions{Method: f.method})
	if err != nil {
		return err
	}
	logger.Debug("plan computed",
		zap.Bool("feasible", res.Feasible),
		zap.Int64("total_cost", res.TotalCost),
		zap.Int("highways_used", res.HighwaysUsed),
	)

	if f.dotPath != "" {
		if err := os.WriteFile(f.dotPath, []byte(inst.DOT(picked)), 0o644); err != nil {
			return err
		}
		logger.Debug("dot dump written", zap.String("path", f.dotPath))
	}

	return planio.WriteResult(os.Stdout, res)
}

// newLogger builds a stderr-only zap logger; verbose enables debug detail.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

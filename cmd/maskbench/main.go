// Package main provides the CLI entry point for maskbench, a
// comparative benchmarking harness for wordlist-generation tools.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/avelardi/maskbench/bench"
	"github.com/avelardi/maskbench/harness"
	"github.com/avelardi/maskbench/report"
	"github.com/avelardi/maskbench/tool"
	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "maskbench",
		Short: "Benchmark wordlist-generation tools against mask scenarios",
		Long: `Maskbench times wordlist generators (cracken, maskprocessor, crunch)
against a fixed matrix of mask scenarios, running each (tool, benchmark) pair
repeatedly until a per-pair time budget is spent, and writes every timed run
to a JSON results file.

Tool executables are expected in the current working directory; a missing or
crashing tool is recorded as a failed run for that pair and the matrix
continues.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		budget  time.Duration
		output  string
		tools   []string
		benches []string
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark matrix",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBenchmarks(logger, runConfig{
				budget:  budget,
				output:  output,
				tools:   tools,
				benches: benches,
				summary: summary,
			})
		},
	}

	flags := cmd.Flags()
	flags.DurationVar(&budget, "budget", harness.DefaultBudget,
		"Time budget per (tool, benchmark) pair")
	flags.StringVar(&output, "output", "results.json",
		"Path of the JSON results file (overwritten)")
	flags.StringSliceVar(&tools, "tools", nil,
		fmt.Sprintf("Tools to benchmark (default all: %v)", tool.Names()))
	flags.StringSliceVar(&benches, "benches", nil,
		fmt.Sprintf("Benchmarks to run (default all: %v)", bench.Names()))
	flags.BoolVar(&summary, "summary", false,
		"Print a markdown summary table after the run")

	return cmd
}

type runConfig struct {
	budget  time.Duration
	output  string
	tools   []string
	benches []string
	summary bool
}

func runBenchmarks(logger *slog.Logger, cfg runConfig) error {
	selectedTools, err := tool.Select(cfg.tools)
	if err != nil {
		return err
	}

	selectedBenches, err := bench.Select(cfg.benches)
	if err != nil {
		return err
	}

	logger.Info("starting benchmarks",
		slog.Int("benches", len(selectedBenches)),
		slog.Int("tools", len(selectedTools)),
		slog.Duration("budget", cfg.budget),
		slog.String("output", cfg.output),
	)

	runner := harness.NewRunner(os.Stdout, os.Stderr, logger)
	runner.Budget = cfg.budget

	results := runner.RunMatrix(selectedBenches, selectedTools)
	fmt.Println()

	if err := report.WriteFile(cfg.output, results.Records()); err != nil {
		return fmt.Errorf("persist results: %w", err)
	}

	logger.Info("results written",
		slog.String("path", cfg.output),
		slog.Int("records", results.Len()),
	)

	if cfg.summary {
		if err := report.Summary(os.Stdout, results.Records()); err != nil {
			return fmt.Errorf("generate summary: %w", err)
		}
	}

	return nil
}

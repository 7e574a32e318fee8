package harness

import (
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"github.com/avelardi/maskbench/bench"
	"github.com/avelardi/maskbench/tool"
)

// DefaultBudget is the cumulative time allotted to repeated runs of one
// (tool, benchmark) pair before the harness moves on.
const DefaultBudget = 120 * time.Second

// Executor runs one shell-interpreted command to completion and
// reports its wall-clock duration. The duration is meaningful even when
// an error is returned.
type Executor interface {
	Run(command string) (time.Duration, error)
}

type shellExecutor struct {
	stderr io.Writer
}

// NewShellExecutor returns an Executor that runs commands through
// /bin/sh. Stdout of the child is left to the command's own redirect
// (the runner appends one); stderr goes to the given writer so tool
// diagnostics stay visible.
func NewShellExecutor(stderr io.Writer) Executor {
	return &shellExecutor{stderr: stderr}
}

func (e *shellExecutor) Run(command string) (time.Duration, error) {
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.Stderr = e.stderr

	start := time.Now()
	err := cmd.Run()

	return time.Since(start), err
}

// Runner executes the benchmark matrix sequentially, one subprocess at
// a time. Progress receives the human-readable stream (one line per
// command, one marker per iteration, failure notices); Logger gets
// structured lifecycle events.
type Runner struct {
	Budget   time.Duration
	Exec     Executor
	Progress io.Writer
	Logger   *slog.Logger
}

// NewRunner creates a Runner with the default budget and a /bin/sh
// executor whose child stderr goes to stderr.
func NewRunner(progress, stderr io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		Budget:   DefaultBudget,
		Exec:     NewShellExecutor(stderr),
		Progress: progress,
		Logger:   logger,
	}
}

// RunMatrix benchmarks every (definition, tool) pair, definitions
// outer, tools inner, and returns the accumulated results. A failed
// pair stops only that pair; the matrix always runs to completion.
func (r *Runner) RunMatrix(defs []bench.Definition, tools []tool.Tool) *ResultSet {
	results := &ResultSet{}

	for _, def := range defs {
		for _, t := range tools {
			r.RunPair(def, t, results)
		}
	}

	return results
}

// RunPair repeatedly executes one tool against one benchmark, timing
// each run, until the cumulative elapsed time reaches the budget or a
// run fails. Every attempt is appended to results before its outcome
// is known; the budget is checked only between iterations, so the run
// that crosses it is still recorded in full.
func (r *Runner) RunPair(def bench.Definition, t tool.Tool, results *ResultSet) {
	command := t.Command(def.Mask, def.MinLen, def.MaxLen) + " >/dev/null"

	fmt.Fprintf(r.Progress, "\nrunning %q\n", command)
	r.Logger.Info("benchmarking pair",
		slog.String("tool", t.Name()),
		slog.String("bench", def.Name),
		slog.Duration("budget", r.Budget),
	)

	var cumulative time.Duration

	for iter := 0; cumulative < r.Budget; iter++ {
		fmt.Fprint(r.Progress, ".")

		rec := &Record{Tool: t.Name(), Bench: def.Name, Iter: iter}
		results.Append(rec)

		elapsed, err := r.Exec.Run(command)
		if err != nil {
			fmt.Fprintln(r.Progress, "\ncmd failed")
			r.Logger.Error("run failed",
				slog.String("tool", t.Name()),
				slog.String("bench", def.Name),
				slog.Int("iter", iter),
				slog.String("error", err.Error()),
			)

			return
		}

		took := elapsed.Seconds()
		rec.Ok = true
		rec.Took = &took

		cumulative += elapsed
	}

	r.Logger.Info("pair finished",
		slog.String("tool", t.Name()),
		slog.String("bench", def.Name),
		slog.Duration("cumulative", cumulative),
	)
}

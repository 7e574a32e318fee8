// Package report persists benchmark records and formats them into a
// comparison table.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/avelardi/maskbench/harness"
)

// WriteJSON writes the full record sequence as an indented JSON array.
func WriteJSON(w io.Writer, records []*harness.Record) error {
	if records == nil {
		records = []*harness.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")

	return enc.Encode(records)
}

// WriteFile overwrites path with the JSON form of records. The write
// is wholesale; there is no appending to prior results.
func WriteFile(path string, records []*harness.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := WriteJSON(f, records); err != nil {
		f.Close()

		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}

// pairKey identifies one (tool, benchmark) pair.
type pairKey struct {
	tool  string
	bench string
}

type pairSummary struct {
	iterations int
	total      float64
	failed     bool
}

// Summary writes a markdown table with one row per (tool, benchmark)
// pair: completed iterations, cumulative time, and status. Rows appear
// in first-seen order, which is matrix run order.
func Summary(w io.Writer, records []*harness.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no results to report")
	}

	order := make([]pairKey, 0)
	pairs := make(map[pairKey]*pairSummary)

	for _, rec := range records {
		key := pairKey{tool: rec.Tool, bench: rec.Bench}

		s, seen := pairs[key]
		if !seen {
			s = &pairSummary{}
			pairs[key] = s
			order = append(order, key)
		}

		if !rec.Ok {
			s.failed = true

			continue
		}

		s.iterations++
		if rec.Took != nil {
			s.total += *rec.Took
		}
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Bench | Tool | Iterations | Total Time | Status |")
	fmt.Fprintln(w, "|-------|------|------------|------------|--------|")

	for _, key := range order {
		s := pairs[key]

		status := "ok"
		if s.failed {
			status = "FAILED"
		}

		fmt.Fprintf(w, "| %s | %s | %d | %s | %s |\n",
			key.bench, key.tool, s.iterations, formatSeconds(s.total), status)
	}

	return nil
}

func formatSeconds(s float64) string {
	if s < 1 {
		return fmt.Sprintf("%.0fms", s*1000)
	}

	return fmt.Sprintf("%.2fs", s)
}

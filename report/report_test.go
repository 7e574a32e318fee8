package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avelardi/maskbench/harness"
)

func took(s float64) *float64 { return &s }

func TestWriteJSON(t *testing.T) {
	records := []*harness.Record{
		{Tool: "cracken", Bench: "9digits", Iter: 0, Ok: true, Took: took(1.5)},
		{Tool: "crunch", Bench: "9digits", Iter: 0, Ok: false},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, records); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var parsed []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(parsed) != 2 {
		t.Fatalf("expected 2 records, got %d", len(parsed))
	}

	if parsed[0]["took"] != 1.5 {
		t.Errorf("took = %v, want 1.5", parsed[0]["took"])
	}

	if _, present := parsed[1]["took"]; present {
		t.Error("took present on failed record")
	}
	if parsed[1]["ok"] != false {
		t.Errorf("ok = %v, want false", parsed[1]["ok"])
	}
}

func TestWriteJSONKeyOrderAndIndent(t *testing.T) {
	records := []*harness.Record{
		{Tool: "cracken", Bench: "9digits", Iter: 3, Ok: true, Took: took(2.0)},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, records); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	out := buf.String()

	keys := []string{`"bench"`, `"iter"`, `"ok"`, `"took"`, `"tool"`}

	last := -1
	for _, key := range keys {
		idx := strings.Index(out, key)

		if idx < 0 {
			t.Fatalf("key %s missing from output:\n%s", key, out)
		}
		if idx < last {
			t.Errorf("key %s out of sorted order:\n%s", key, out)
		}

		last = idx
	}

	if !strings.Contains(out, "\n    {") {
		t.Errorf("output is not 4-space indented:\n%s", out)
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty set serialized as %q, want []", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	records := []*harness.Record{
		{Tool: "cracken", Bench: "9digits", Iter: 0, Ok: true, Took: took(1.0)},
	}

	if err := WriteFile(path, records); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Overwrite wholesale with a shorter set.
	if err := WriteFile(path, records[:0]); err != nil {
		t.Fatalf("second WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	var parsed []map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}

	if len(parsed) != 0 {
		t.Errorf("expected overwritten file with 0 records, got %d",
			len(parsed))
	}
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "results.json"), nil)
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestSummary(t *testing.T) {
	records := []*harness.Record{
		{Tool: "cracken", Bench: "9digits", Iter: 0, Ok: true, Took: took(40)},
		{Tool: "cracken", Bench: "9digits", Iter: 1, Ok: true, Took: took(40)},
		{Tool: "cracken", Bench: "9digits", Iter: 2, Ok: true, Took: took(40)},
		{Tool: "crunch", Bench: "9digits", Iter: 0, Ok: false},
	}

	var buf bytes.Buffer
	if err := Summary(&buf, records); err != nil {
		t.Fatalf("Summary failed: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "| 9digits | cracken | 3 | 120.00s | ok |") {
		t.Errorf("missing cracken row in:\n%s", out)
	}
	if !strings.Contains(out, "| 9digits | crunch | 0 |") {
		t.Errorf("missing crunch row in:\n%s", out)
	}
	if !strings.Contains(out, "FAILED") {
		t.Errorf("missing FAILED status in:\n%s", out)
	}
}

func TestSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Summary(&buf, nil); err == nil {
		t.Error("expected error for empty results")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0ms"},
		{0.5, "500ms"},
		{1, "1.00s"},
		{61.5, "61.50s"},
	}

	for _, tt := range tests {
		got := formatSeconds(tt.input)
		if got != tt.want {
			t.Errorf("formatSeconds(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Package harness drives the benchmark matrix: it synthesizes each
// tool's command, executes it repeatedly as a timed subprocess until
// the per-pair budget is spent, and accumulates one record per run.
package harness

// Record is one observation of a single timed execution attempt. It is
// appended to the ResultSet when the attempt starts and populated when
// the subprocess exits; Took is set only on success. Fields are
// declared in key order so the persisted JSON keys come out sorted.
type Record struct {
	Bench string   `json:"bench"`
	Iter  int      `json:"iter"`
	Ok    bool     `json:"ok"`
	Took  *float64 `json:"took,omitempty"`
	Tool  string   `json:"tool"`
}

// ResultSet is the append-only, ordered sequence of records for one
// harness run. It is owned by the orchestrator; records are never
// removed or reordered.
type ResultSet struct {
	records []*Record
}

// Append adds a record to the end of the sequence.
func (s *ResultSet) Append(r *Record) {
	s.records = append(s.records, r)
}

// Records returns the accumulated records in append order.
func (s *ResultSet) Records() []*Record {
	return s.records
}

// Len returns the number of accumulated records.
func (s *ResultSet) Len() int {
	return len(s.records)
}

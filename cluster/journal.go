package cluster

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// JournalStep records one clusterer-visible event: a seed choice, an
// iteration's assignment/update pass, or the reason clustering converged.
type JournalStep struct {
	Phase      string `json:"phase"`
	Detail     string `json:"detail,omitempty"`
	Count      int    `json:"count"`
	DurationMs int64  `json:"duration_ms"`
}

// JournalRun is the record of one Clusterer.Cluster call.
type JournalRun struct {
	Timestamp   time.Time     `json:"timestamp"`
	Description string        `json:"description"`
	Steps       []JournalStep `json:"steps"`
	Outcome     string        `json:"outcome,omitempty"`
}

// Journal is a mutex-guarded, file-backed log of a single clustering run's
// state transitions: start a run, add steps as the state machine
// progresses, finish with an outcome, and the run is appended as one JSON
// line to the configured path.
//
// A nil *Journal is a valid, inert no-op: every method on it is safe to
// call and does nothing. This lets RoundRobin and KMeans accept an
// *optional* journal field without a separate "journal present" check at
// every call site.
type Journal struct {
	mu      sync.Mutex
	path    string
	current *JournalRun
}

// NewJournal returns a Journal that appends completed runs to path.
func NewJournal(path string) *Journal {
	return &Journal{path: path}
}

// Start begins a new run.
func (j *Journal) Start(description string) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.current = &JournalRun{
		Timestamp:   time.Now(),
		Description: description,
	}
}

// AddStep records one state-machine transition against the current run.
func (j *Journal) AddStep(phase, detail string, count int, duration time.Duration) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.current == nil {
		return
	}
	j.current.Steps = append(j.current.Steps, JournalStep{
		Phase:      phase,
		Detail:     detail,
		Count:      count,
		DurationMs: duration.Milliseconds(),
	})
}

// Finish records the run's outcome and appends it to the journal file as
// one JSON line. Unlike the logger this package's journal style is
// modeled on, a write failure is returned to the caller rather than
// swallowed: the cluster package's error-propagation policy surfaces every
// failure immediately.
func (j *Journal) Finish(outcome string) error {
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.current == nil {
		return nil
	}
	j.current.Outcome = outcome

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cluster: failed to open journal %s: %w", j.path, err)
	}
	defer f.Close()

	data, err := json.Marshal(j.current)
	if err != nil {
		return fmt.Errorf("cluster: failed to marshal journal run: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cluster: failed to write journal %s: %w", j.path, err)
	}

	j.current = nil
	return nil
}

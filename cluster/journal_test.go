package cluster

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestJournalNilIsNoOp(t *testing.T) {
	var j *Journal
	j.Start("nothing")
	j.AddStep("phase", "detail", 1, 0)
	if err := j.Finish("ok"); err != nil {
		t.Errorf("Finish() on nil journal error = %v, want nil", err)
	}
}

func TestJournalWritesOneLinePerRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.json")
	j := NewJournal(path)

	j.Start("KMeans Clusterer")
	j.AddStep("seed", "", 2, 0)
	j.AddStep("assign", "", 4, 0)
	if err := j.Finish("converged"); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	j.Start("KMeans Clusterer")
	j.AddStep("seed", "", 2, 0)
	if err := j.Finish("max_iters"); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	lines := bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("journal file has %d lines, want 2", len(lines))
	}

	var first JournalRun
	if err := json.Unmarshal(lines[0], &first); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if first.Description != "KMeans Clusterer" || first.Outcome != "converged" || len(first.Steps) != 2 {
		t.Errorf("first run = %+v, want description=KMeans Clusterer outcome=converged 2 steps", first)
	}
}

func TestJournalFinishWithoutStartIsNoOp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.json")
	j := NewJournal(path)

	if err := j.Finish("ok"); err != nil {
		t.Fatalf("Finish() without Start error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("journal file should not be created when Finish is called without Start")
	}
}

package corpus

import (
	"testing"

	"github.com/fenwick-search/doccluster/cluster"
)

func TestMemoryCorpusDrain(t *testing.T) {
	mc := NewMemoryCorpus([]RawDocument{
		{ID: "a", Text: "cats and dogs"},
		{ID: "b", Text: "dogs and birds"},
	})

	if mc.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", mc.Size())
	}

	docs, err := cluster.Drain(mc, mc.Size())
	if err != nil {
		t.Fatalf("Drain() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("Drain() returned %d documents, want 2", len(docs))
	}
	if docs[0].ID() != "a" || docs[1].ID() != "b" {
		t.Errorf("Drain() ids = [%s, %s], want [a, b]", docs[0].ID(), docs[1].ID())
	}
	if !mc.AtEnd() {
		t.Errorf("AtEnd() = false after draining all documents")
	}
}

func TestMemoryCorpusNextPastEndErrors(t *testing.T) {
	mc := NewMemoryCorpus([]RawDocument{{ID: "a", Text: "hello world"}})
	if _, err := mc.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if _, err := mc.Next(); err == nil {
		t.Errorf("Next() past end error = nil, want error")
	}
}

func TestMemoryCorpusTokenizesAtConstruction(t *testing.T) {
	mc := NewMemoryCorpus([]RawDocument{{ID: "a", Text: "the cat sat"}})
	d, err := mc.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	terms := d.Terms()
	for _, wdf := range terms {
		if wdf.Term == "the" {
			t.Errorf("document retained stopword %q", wdf.Term)
		}
	}
	if len(terms) != 2 {
		t.Errorf("Terms() = %v, want 2 terms (cat, sat)", terms)
	}
}

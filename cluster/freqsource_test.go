package cluster

import (
	"math"
	"testing"
)

func TestTermListGroupCountsDistinctTermsPerDocument(t *testing.T) {
	mset := []Document{
		NewDocument("d0", []WDF{{Term: "a", Freq: 3}, {Term: "a", Freq: 1}, {Term: "b", Freq: 1}}),
		NewDocument("d1", []WDF{{Term: "a", Freq: 1}}),
	}
	tlg := NewTermListGroup(mset)

	// "a" appears (however many times) in both documents: df == 2, not 3
	// (one per entry) or 5 (summed wdf).
	if got := tlg.TermFreq("a"); got != 2 {
		t.Errorf("TermFreq(a) = %d, want 2", got)
	}
	if got := tlg.TermFreq("b"); got != 1 {
		t.Errorf("TermFreq(b) = %d, want 1", got)
	}
	if got := tlg.DocCount(); got != 2 {
		t.Errorf("DocCount() = %d, want 2", got)
	}
}

func TestTermListGroupUnseenTermIsZero(t *testing.T) {
	tlg := NewTermListGroup(nil)
	if got := tlg.TermFreq("ghost"); got != 0 {
		t.Errorf("TermFreq(ghost) = %d, want 0", got)
	}
	if got := tlg.DocCount(); got != 0 {
		t.Errorf("DocCount() = %d, want 0", got)
	}
}

func TestTermListGroupIDFBounds(t *testing.T) {
	mset := []Document{
		NewDocument("d0", []WDF{{Term: "a", Freq: 1}}),
		NewDocument("d1", []WDF{{Term: "a", Freq: 1}, {Term: "b", Freq: 1}}),
		NewDocument("d2", []WDF{{Term: "b", Freq: 1}}),
	}
	tlg := NewTermListGroup(mset)
	n := float64(tlg.DocCount())

	for _, term := range []string{"a", "b"} {
		df := tlg.TermFreq(term)
		if df == 0 || df > tlg.DocCount() {
			t.Fatalf("TermFreq(%q) = %d out of [1, doccount]", term, df)
		}
		idf := math.Log(n / float64(df))
		if idf < 0 {
			t.Errorf("idf(%q) = %v, want >= 0", term, idf)
		}
	}
}

func TestDummyFreqSource(t *testing.T) {
	d := NewDummyFreqSource()
	if got := d.TermFreq("anything"); got != 1 {
		t.Errorf("TermFreq(anything) = %d, want 1", got)
	}
	if got := d.DocCount(); got != 1 {
		t.Errorf("DocCount() = %d, want 1", got)
	}
}

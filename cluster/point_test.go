package cluster

import (
	"math"
	"testing"
)

func sumSquares(p PointType) float64 {
	var sum float64
	for _, entry := range p.TermList() {
		v := p.GetValue(entry.Term)
		sum += v * v
	}
	return sum
}

func TestCentroidMagnitudeInvariant(t *testing.T) {
	c := NewCentroid()
	c.SetValue("a", 2)
	c.AddValue("b", 3)
	c.AddValue("a", 1) // a now 3

	if got, want := c.GetMagnitude(), sumSquares(c); math.Abs(got-want) > 1e-12 {
		t.Errorf("GetMagnitude() = %v, want %v", got, want)
	}

	c.SetValue("c", -4)
	if got, want := c.GetMagnitude(), sumSquares(c); math.Abs(got-want) > 1e-12 {
		t.Errorf("after SetValue: GetMagnitude() = %v, want %v", got, want)
	}
}

func TestCentroidGetValueAbsent(t *testing.T) {
	c := NewCentroid()
	if got := c.GetValue("missing"); got != 0.0 {
		t.Errorf("GetValue(missing) = %v, want 0", got)
	}
	if c.Contains("missing") {
		t.Errorf("Contains(missing) = true, want false")
	}
}

func TestCentroidDivideDoesNotRecalcMagnitude(t *testing.T) {
	c := NewCentroid()
	c.SetValue("a", 4)
	before := c.GetMagnitude()

	c.Divide(2)
	if got := c.GetMagnitude(); got != before {
		t.Errorf("Divide must not change magnitude on its own; got %v, want unchanged %v", got, before)
	}

	c.RecalcMagnitude()
	if got, want := c.GetMagnitude(), sumSquares(c); math.Abs(got-want) > 1e-12 {
		t.Errorf("after RecalcMagnitude: GetMagnitude() = %v, want %v", got, want)
	}
	if got := c.GetValue("a"); got != 2 {
		t.Errorf("GetValue(a) after Divide(2) = %v, want 2", got)
	}
}

func TestCentroidClear(t *testing.T) {
	c := NewCentroid()
	c.SetValue("a", 1)
	c.Clear()

	if c.TermListSize() != 0 {
		t.Errorf("TermListSize() after Clear() = %d, want 0", c.TermListSize())
	}
	if c.GetMagnitude() != 0 {
		t.Errorf("GetMagnitude() after Clear() = %v, want 0", c.GetMagnitude())
	}
}

func TestNewPointTFIDFWeights(t *testing.T) {
	mset := []Document{
		NewDocument("d0", []WDF{{Term: "x", Freq: 3}, {Term: "y", Freq: 1}}),
		NewDocument("d1", []WDF{{Term: "z", Freq: 2}, {Term: "w", Freq: 4}}),
	}
	tlg := NewTermListGroup(mset)

	p := NewPoint(tlg, mset[0])
	// N = 2, df(x) = 1, so idf(x) = ln(2/1) = ln(2).
	wantX := (1 + math.Log(3)) * math.Log(2)
	if got := p.GetValue("x"); math.Abs(got-wantX) > 1e-9 {
		t.Errorf("GetValue(x) = %v, want %v", got, wantX)
	}
	if got, want := p.GetMagnitude(), sumSquares(p); math.Abs(got-want) > 1e-9 {
		t.Errorf("GetMagnitude() = %v, want %v", got, want)
	}
}

func TestNewPointTermSeenByEveryDocumentHasZeroWeight(t *testing.T) {
	mset := []Document{
		NewDocument("d0", []WDF{{Term: "common", Freq: 1}, {Term: "only-in-d0", Freq: 2}}),
		NewDocument("d1", []WDF{{Term: "common", Freq: 1}}),
	}
	tlg := NewTermListGroup(mset)
	if got, want := tlg.TermFreq("common"), tlg.DocCount(); got != want {
		t.Fatalf("TermFreq(common) = %d, want %d (doccount)", got, want)
	}

	p := NewPoint(tlg, mset[0])
	if got := p.GetValue("common"); got != 0 {
		t.Errorf("GetValue(common) = %v, want 0 (idf should be 0)", got)
	}

	other := (1 + math.Log(2)) * math.Log(2.0/1.0)
	if got, want := p.GetMagnitude(), other*other; math.Abs(got-want) > 1e-9 {
		t.Errorf("GetMagnitude() = %v, want %v (only the non-universal term should contribute)", got, want)
	}
}

func TestNewPointUnseenTermHasZeroIDF(t *testing.T) {
	tlg := NewTermListGroup(nil)
	doc := NewDocument("d0", []WDF{{Term: "ghost", Freq: 1}})
	p := NewPoint(tlg, doc)

	if got := p.GetValue("ghost"); got != 0 {
		t.Errorf("GetValue(ghost) = %v, want 0 when df == 0", got)
	}
}

func TestCentroidSetToPoint(t *testing.T) {
	mset := []Document{NewDocument("d0", []WDF{{Term: "a", Freq: 2}})}
	tlg := NewTermListGroup(mset)
	p := NewPoint(tlg, mset[0])

	c := NewCentroid()
	c.SetToPoint(p)

	if got, want := c.GetMagnitude(), p.GetMagnitude(); got != want {
		t.Errorf("GetMagnitude() = %v, want %v", got, want)
	}
	if got, want := c.GetValue("a"), p.GetValue("a"); got != want {
		t.Errorf("GetValue(a) = %v, want %v", got, want)
	}
}

func TestTermIteratorSkipTo(t *testing.T) {
	c := NewCentroid()
	c.SetValue("a", 1)
	c.SetValue("b", 2)
	c.SetValue("c", 3)

	it := c.Iterator()
	it.SkipTo("b")
	if got := it.Term(); got != "b" {
		t.Errorf("Term() after SkipTo(b) = %q, want %q", got, "b")
	}
}

func TestTermIteratorUnimplemented(t *testing.T) {
	c := NewCentroid()
	c.SetValue("a", 1)
	it := c.Iterator()
	it.Next()

	if _, err := it.Positions(); !IsUnimplemented(err) {
		t.Errorf("Positions() error = %v, want Unimplemented", err)
	}
	if _, err := it.TermFreq(); !IsUnimplemented(err) {
		t.Errorf("TermFreq() error = %v, want Unimplemented", err)
	}
}

func TestTermIteratorSkipToPanicsWhenMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("SkipTo on a missing term should panic")
		}
	}()

	c := NewCentroid()
	c.SetValue("a", 1)
	it := c.Iterator()
	it.SkipTo("nope")
}

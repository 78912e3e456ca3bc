package cluster

import "math"

// TermEntry is one entry of a PointType's termlist: the term and the wdf
// stored for it (always 1 for Point/Centroid termlists — see NewPoint).
type TermEntry struct {
	Term string
	Wdf  int
}

// PointType is the sparse term->weight vector shared by Point and Centroid.
// Both specialize pointType rather than reimplementing it, so similarity
// metrics and centroid arithmetic can operate on the interface alone.
type PointType interface {
	GetValue(term string) float64
	SetValue(term string, weight float64)
	AddValue(term string, weight float64)
	Contains(term string) bool
	TermList() []TermEntry
	TermListSize() int
	GetMagnitude() float64
	RecalcMagnitude()
	Iterator() *TermIterator
}

// pointType is the concrete sparse-vector value embedded by both Point and
// Centroid. It is deliberately unexported: callers interact with it through
// the PointType interface or through the Point/Centroid methods it
// promotes.
type pointType struct {
	weights   map[string]float64
	termlist  []string
	magnitude float64
}

func newPointType() pointType {
	return pointType{weights: make(map[string]float64)}
}

func (p *pointType) GetValue(term string) float64 {
	return p.weights[term]
}

func (p *pointType) SetValue(term string, weight float64) {
	if _, ok := p.weights[term]; !ok {
		p.termlist = append(p.termlist, term)
	}
	p.weights[term] = weight
	p.RecalcMagnitude()
}

func (p *pointType) AddValue(term string, weight float64) {
	if _, ok := p.weights[term]; !ok {
		p.termlist = append(p.termlist, term)
	}
	p.weights[term] += weight
	p.RecalcMagnitude()
}

func (p *pointType) Contains(term string) bool {
	_, ok := p.weights[term]
	return ok
}

func (p *pointType) TermList() []TermEntry {
	entries := make([]TermEntry, len(p.termlist))
	for i, t := range p.termlist {
		entries[i] = TermEntry{Term: t, Wdf: 1}
	}
	return entries
}

func (p *pointType) TermListSize() int {
	return len(p.termlist)
}

func (p *pointType) GetMagnitude() float64 {
	return p.magnitude
}

// RecalcMagnitude resets magnitude to the sum of squared current weights.
// SetValue and AddValue call this themselves; it is exported on the
// interface because Centroid.Divide deliberately leaves magnitude stale and
// callers that rely on it afterward (K-Means) must call it explicitly.
func (p *pointType) RecalcMagnitude() {
	var m float64
	for _, w := range p.weights {
		m += w * w
	}
	p.magnitude = m
}

func (p *pointType) clear() {
	p.weights = make(map[string]float64)
	p.termlist = nil
	p.magnitude = 0
}

// Iterator returns a forward iterator over the termlist in insertion order.
func (p *pointType) Iterator() *TermIterator {
	return &TermIterator{entries: p.TermList(), pos: -1}
}

// TermIterator walks a PointType's termlist in insertion order. It carries
// forward the iterator shape of the system this package was ported from,
// where the same iterator interface is shared between document-backed
// iterators (which support position lists and term frequency) and
// point-backed iterators (which do not).
type TermIterator struct {
	entries []TermEntry
	pos     int
}

// Next advances the iterator and reports whether a term is available.
func (it *TermIterator) Next() bool {
	it.pos++
	return it.pos < len(it.entries)
}

// Term returns the term at the iterator's current position. Next must have
// returned true before calling Term.
func (it *TermIterator) Term() string {
	return it.entries[it.pos].Term
}

// SkipTo advances the iterator to the first entry equal to term. The
// precondition is that term is present at or after the current position;
// SkipTo panics if it runs off the end without finding it, since that
// indicates a caller bug rather than recoverable input.
func (it *TermIterator) SkipTo(term string) {
	start := it.pos
	if start < 0 {
		start = 0
	}
	for i := start; i < len(it.entries); i++ {
		if it.entries[i].Term == term {
			it.pos = i
			return
		}
	}
	panic("cluster: TermIterator.SkipTo: term not found at or after current position")
}

// Positions is carried over from the source iterator contract but is not
// supported on point-backed iterators: a Point's termlist has no
// association with in-document positions.
func (it *TermIterator) Positions() ([]int, error) {
	return nil, unimplementedf("TermIterator.Positions is not supported on point-backed iterators")
}

// TermFreq is carried over from the source iterator contract but is not
// supported on point-backed iterators: the only "frequency" a PointType
// stores is the TF-IDF weight, already available via TermList.
func (it *TermIterator) TermFreq() (int, error) {
	return 0, unimplementedf("TermIterator.TermFreq is not supported on point-backed iterators")
}

// Point is a PointType associated with the Document it was built from. Its
// weights are fixed at construction time by NewPoint; nothing mutates a
// Point afterward during normal clustering (the core only ever writes to
// Centroids).
type Point struct {
	pointType
	doc Document
}

// NewPoint computes the TF-IDF vector for doc against tlg:
//
//	wdf' = max(wdf, 1)
//	tf   = 1 + ln(wdf')
//	df   = tlg.TermFreq(term)
//	idf  = ln(N/df) when df > 0, else 0
//	w    = tf * idf
//
// A df of 0 (the term was never observed while building tlg) is treated as
// idf = 0 rather than propagating a division by zero, per the numeric
// error policy in §7: substitute, never produce NaN or Inf.
func NewPoint(tlg FreqSource, doc Document) *Point {
	p := &Point{pointType: newPointType(), doc: doc}
	n := float64(tlg.DocCount())

	for _, wdf := range doc.Terms() {
		freq := wdf.Freq
		if freq < 1 {
			freq = 1
		}
		tf := 1 + math.Log(float64(freq))

		df := tlg.TermFreq(wdf.Term)
		var idf float64
		if df > 0 {
			idf = math.Log(n / float64(df))
		}

		w := tf * idf
		p.weights[wdf.Term] = w
		p.termlist = append(p.termlist, wdf.Term)
		p.magnitude += w * w
	}

	return p
}

// Document returns the Document handle this Point was built from.
func (p *Point) Document() Document { return p.doc }

// Centroid is a PointType with no associated document: the arithmetic mean
// of a cluster's points, or an explicit copy of one Point (used to seed
// K-Means).
type Centroid struct {
	pointType
}

// NewCentroid returns an empty Centroid.
func NewCentroid() *Centroid {
	return &Centroid{pointType: newPointType()}
}

// SetToPoint copies every (term, weight) from p into the centroid and sets
// the centroid's magnitude equal to p's. Used to seed K-Means from a Point.
func (c *Centroid) SetToPoint(p *Point) {
	c.clear()
	for _, term := range p.termlist {
		c.weights[term] = p.weights[term]
		c.termlist = append(c.termlist, term)
	}
	c.magnitude = p.magnitude
}

// Divide divides every stored weight by n. It deliberately does not
// recompute magnitude; a caller that needs an up-to-date magnitude
// afterward (K-Means does, for the similarity comparisons in the next
// Assign step) must call RecalcMagnitude.
func (c *Centroid) Divide(n int) {
	if n == 0 {
		return
	}
	for _, term := range c.termlist {
		c.weights[term] /= float64(n)
	}
}

// Clear empties the weight map, termlist, and magnitude.
func (c *Centroid) Clear() {
	c.clear()
}

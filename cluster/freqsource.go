package cluster

// FreqSource maps a term to the number of documents in some corpus that
// contain it, plus the size of that corpus.
type FreqSource interface {
	// TermFreq returns the document frequency of term, or 0 if the term
	// was never seen.
	TermFreq(term string) int
	// DocCount returns the number of documents the source was built from.
	DocCount() int
}

// DummyFreqSource is a FreqSource that treats every term as occurring in
// exactly one document out of one. Every idf computed against it is
// ln(1/1) = 0, so a Point that NewPoint builds from it gives every term a
// weight of 0 and has magnitude 0.
type DummyFreqSource struct{}

// NewDummyFreqSource returns a FreqSource with doccount 1 and termfreq 1
// for every term.
func NewDummyFreqSource() DummyFreqSource { return DummyFreqSource{} }

// TermFreq always returns 1.
func (DummyFreqSource) TermFreq(string) int { return 1 }

// DocCount always returns 1.
func (DummyFreqSource) DocCount() int { return 1 }

// TermListGroup aggregates document frequency across an MSet: for every
// document, every distinct term it contains increments that term's count
// by exactly one, regardless of the term's wdf within the document.
type TermListGroup struct {
	freq     map[string]int
	doccount int
}

// NewTermListGroup scans mset and builds a TermListGroup. Construction is
// the only time the frequency map is written; it is read-only afterward.
func NewTermListGroup(mset []Document) *TermListGroup {
	tlg := &TermListGroup{freq: make(map[string]int)}
	seen := make(map[string]bool)
	for _, doc := range mset {
		for k := range seen {
			delete(seen, k)
		}
		for _, wdf := range doc.Terms() {
			if seen[wdf.Term] {
				continue
			}
			seen[wdf.Term] = true
			tlg.freq[wdf.Term]++
		}
		tlg.doccount++
	}
	return tlg
}

// TermFreq returns the number of documents term occurred in, or 0 if the
// term was never seen. Unlike a bare map index this never mutates the
// underlying map.
func (tlg *TermListGroup) TermFreq(term string) int {
	return tlg.freq[term]
}

// DocCount returns the number of documents scanned during construction.
func (tlg *TermListGroup) DocCount() int {
	return tlg.doccount
}

package cluster

// WDF pairs a term with its within-document frequency. wdf is always >= 1;
// a term that does not occur in a document simply has no entry.
type WDF struct {
	Term string
	Freq int
}

// Document is an opaque handle into whatever storage produced it, plus the
// distinct (term, wdf) pairs the document contains. Construction of a
// Document (tokenizing raw text, reading index postings, ...) is entirely
// up to the DocumentSource that produces it; the clustering core only ever
// reads Terms().
type Document struct {
	id    string
	terms []WDF
}

// NewDocument builds a Document handle from a pre-tokenized term list. This
// is the seam reference DocumentSource implementations (corpus.SQLiteCorpus,
// corpus.MemoryCorpus) use; callers with their own document storage can use
// it directly instead of implementing DocumentSource at all when they
// already have a flat []Document in hand.
func NewDocument(id string, terms []WDF) Document {
	return Document{id: id, terms: terms}
}

// ID returns the opaque document identifier.
func (d Document) ID() string { return d.id }

// Terms returns the document's distinct (term, wdf) pairs. Enumeration is
// deterministic per document: repeated calls return the same sequence.
func (d Document) Terms() []WDF { return d.terms }

// DocumentSource is a finite, non-restartable lazy sequence of documents.
// The index/search engine that produced the ranked result set is expected
// to implement this; corpus.SQLiteCorpus and corpus.MemoryCorpus are
// reference adapters shipped alongside the core for testing and demos.
type DocumentSource interface {
	// Next returns the next document. Precondition: !AtEnd().
	Next() (Document, error)
	// AtEnd reports whether the source is exhausted.
	AtEnd() bool
	// Size is an upper bound on remaining-plus-already-produced items.
	Size() int
}

// Drain pulls documents out of src, in order, calling Next
// min(src.Size(), maxItems) times on a source that has not been read yet;
// it stops early if src reports AtEnd. A maxItems of 0 means no cap.
func Drain(src DocumentSource, maxItems int) ([]Document, error) {
	limit := src.Size()
	if maxItems > 0 && maxItems < limit {
		limit = maxItems
	}

	docs := make([]Document, 0, limit)
	for i := 0; i < limit && !src.AtEnd(); i++ {
		doc, err := src.Next()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// DocumentSet is an ordered collection of Document handles, as returned by
// Cluster.GetDocuments.
type DocumentSet []Document

package corpus

import (
	"fmt"

	"github.com/fenwick-search/doccluster/cluster"
)

// RawDocument is an untokenized document: an identifier and its text.
// Both MemoryCorpus and SQLiteCorpus tokenize RawDocuments into
// cluster.Documents with Tokenize.
type RawDocument struct {
	ID   string
	Text string
}

// MemoryCorpus is a DocumentSource over an in-memory slice of
// RawDocuments, tokenized once at construction. It exists for tests and
// for CLI demos that should not require a SQLite file.
type MemoryCorpus struct {
	docs []cluster.Document
	pos  int
}

// NewMemoryCorpus tokenizes raw and returns a DocumentSource over it.
func NewMemoryCorpus(raw []RawDocument) *MemoryCorpus {
	docs := make([]cluster.Document, len(raw))
	for i, r := range raw {
		docs[i] = cluster.NewDocument(r.ID, Tokenize(r.Text))
	}
	return &MemoryCorpus{docs: docs}
}

var _ cluster.DocumentSource = (*MemoryCorpus)(nil)

// Next returns the next document. Precondition: !AtEnd().
func (m *MemoryCorpus) Next() (cluster.Document, error) {
	if m.AtEnd() {
		return cluster.Document{}, fmt.Errorf("corpus: Next called on an exhausted MemoryCorpus")
	}
	d := m.docs[m.pos]
	m.pos++
	return d, nil
}

// AtEnd reports whether every document has been produced.
func (m *MemoryCorpus) AtEnd() bool { return m.pos >= len(m.docs) }

// Size returns the total number of documents in the corpus.
func (m *MemoryCorpus) Size() int { return len(m.docs) }

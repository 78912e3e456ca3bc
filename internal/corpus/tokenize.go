// Package corpus provides reference DocumentSource implementations
// (SQLite-backed and in-memory) so the cluster package's core can be
// exercised end to end without the caller having to write their own
// tokenizer. They are adapters, not part of the clustering contract.
package corpus

import (
	"strings"

	"github.com/fenwick-search/doccluster/cluster"
)

// stopwords filters common low-information words out of a document's term
// stream before it ever reaches the clusterer, the same role the
// teacher's TF-IDF engine's stopword set plays before scoring.
var stopwords = buildStopwords()

func buildStopwords() map[string]bool {
	words := []string{
		"the", "a", "an", "is", "are", "was", "were", "be", "been", "being",
		"to", "of", "in", "on", "at", "by", "for", "with", "from", "and",
		"or", "but", "if", "then", "than", "so", "as", "it", "its", "this",
		"that", "these", "those", "do", "does", "did", "can", "will",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Tokenize lowercases text, strips punctuation, drops stopwords and
// single-character tokens, and aggregates the remainder into within-
// document frequency counts. It returns terms in first-occurrence order,
// matching the deterministic-per-document enumeration the cluster package
// requires of a DocumentSource.
func Tokenize(text string) []cluster.WDF {
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '\t' || r == '\n':
			return r
		default:
			return ' '
		}
	}, text)

	tokens := strings.Fields(text)

	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if len(tok) < 2 || stopwords[tok] {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	wdfs := make([]cluster.WDF, len(order))
	for i, term := range order {
		wdfs[i] = cluster.WDF{Term: term, Freq: counts[term]}
	}
	return wdfs
}

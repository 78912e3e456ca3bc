package cluster

import "math"

// Similarity scores how alike two PointTypes are. Higher is more similar;
// K-Means assignment picks the cluster whose centroid maximizes this value.
type Similarity interface {
	Similarity(a, b PointType) float64
	Description() string
}

// CosineDistance computes cosine similarity (a·b) / (|a|·|b|). Despite the
// name it is a similarity, not a distance: the result lies in [0, 1] for
// non-negative weights, and larger means closer.
type CosineDistance struct{}

// Description returns the literal string "Cosine Similarity".
func (CosineDistance) Description() string { return "Cosine Similarity" }

// Similarity returns the cosine similarity of a and b, substituting 0 when
// either operand has zero magnitude rather than dividing by zero.
func (CosineDistance) Similarity(a, b PointType) float64 {
	magA := a.GetMagnitude()
	magB := b.GetMagnitude()
	if magA == 0 || magB == 0 {
		return 0
	}

	// Iterate the shorter termlist and look each term up in the other,
	// so the cost tracks the sparser of the two vectors.
	small, large := a, b
	if b.TermListSize() < a.TermListSize() {
		small, large = b, a
	}

	var dot float64
	for _, entry := range small.TermList() {
		if large.Contains(entry.Term) {
			dot += small.GetValue(entry.Term) * large.GetValue(entry.Term)
		}
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

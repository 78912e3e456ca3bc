package cluster

// RoundRobin distributes documents into K clusters by position: the
// document at MSet index i always lands in cluster i % K. It never
// computes centroids; a caller that needs them calls
// ClusterSet.RecalculateCentroids afterward.
type RoundRobin struct {
	K int

	// Journal, if set, receives one step describing the distribution.
	Journal *Journal
}

// Description returns the literal string "Round Robin Clusterer".
func (RoundRobin) Description() string { return "Round Robin Clusterer" }

// Cluster partitions mset into r.K clusters by position.
func (r RoundRobin) Cluster(mset []Document) (*ClusterSet, error) {
	if r.K == 0 {
		return nil, invalidArgumentf("k must be greater than 0")
	}
	if len(mset) == 0 {
		return nil, invalidArgumentf("mset must not be empty")
	}

	r.Journal.Start(r.Description())

	cs := NewClusterSet()
	for i := 0; i < r.K; i++ {
		cs.AddCluster(NewCluster())
	}

	tlg := NewTermListGroup(mset)
	for i, doc := range mset {
		p := NewPoint(tlg, doc)
		if err := cs.AddToCluster(p, i%r.K); err != nil {
			return nil, err
		}
	}

	r.Journal.AddStep("distribute", "", len(mset), 0)
	if err := r.Journal.Finish("done"); err != nil {
		return nil, err
	}

	return cs, nil
}

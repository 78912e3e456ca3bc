package cluster

// kmeansHardCap bounds K-Means iterations regardless of the caller's
// MaxIters, so a misconfigured "no cap" clusterer cannot run forever on
// pathological input that never settles.
const kmeansHardCap = 100

// Seeder chooses k initial centroids from the full set of points built for
// a clustering run. The default, FirstKSeeder, is deterministic; a caller
// may substitute a random-with-seed strategy.
type Seeder func(points []*Point, k int) ([]*Centroid, error)

// FirstKSeeder seeds with the first k points of the mset, in order. It is
// the default because it is the simplest deterministic policy available
// without inventing a random-seeding algorithm this module has no
// grounded reference for (see DESIGN.md).
func FirstKSeeder(points []*Point, k int) ([]*Centroid, error) {
	centroids := make([]*Centroid, k)
	for i := 0; i < k; i++ {
		c := NewCentroid()
		c.SetToPoint(points[i])
		centroids[i] = c
	}
	return centroids, nil
}

// KMeans clusters an MSet by iteratively assigning points to their nearest
// centroid (by Similarity, highest wins, ties to the lowest index) and
// then recomputing centroids as the mean of their assigned points, until
// either no point changes cluster or the iteration cap is reached.
type KMeans struct {
	K        int
	MaxIters int // 0 means "use the hard cap"

	// Seeder chooses the initial centroids. Defaults to FirstKSeeder.
	Seeder Seeder
	// Similarity scores point-to-centroid closeness. Defaults to
	// CosineDistance.
	Similarity Similarity
	// Journal, if set, receives one step per state-machine transition.
	Journal *Journal
}

// Description returns the literal string "KMeans Clusterer".
func (KMeans) Description() string { return "KMeans Clusterer" }

// Cluster runs the Init -> Seed -> Assign -> Update -> ... -> Done state
// machine described in the package's design notes.
func (km KMeans) Cluster(mset []Document) (*ClusterSet, error) {
	if km.K == 0 {
		return nil, invalidArgumentf("k must be greater than 0")
	}
	if len(mset) == 0 {
		return nil, invalidArgumentf("mset must not be empty")
	}
	if km.K > len(mset) {
		return nil, invalidArgumentf("k (%d) must not exceed mset size (%d)", km.K, len(mset))
	}

	km.Journal.Start(km.Description())

	// Init: build one Point per document against a TermListGroup scanning
	// the whole mset.
	tlg := NewTermListGroup(mset)
	points := make([]*Point, len(mset))
	for i, doc := range mset {
		points[i] = NewPoint(tlg, doc)
	}

	// Seed.
	seeder := km.Seeder
	if seeder == nil {
		seeder = FirstKSeeder
	}
	centroids, err := seeder(points, km.K)
	if err != nil {
		return nil, err
	}
	km.Journal.AddStep("seed", "", km.K, 0)

	sim := km.Similarity
	if sim == nil {
		sim = CosineDistance{}
	}

	cs := NewClusterSet()
	for _, c := range centroids {
		cl := NewCluster()
		cl.SetCentroid(c)
		cs.AddCluster(cl)
	}

	iterCap := km.MaxIters
	if iterCap <= 0 || iterCap > kmeansHardCap {
		iterCap = kmeansHardCap
	}

	// assignment[i] is the cluster index point i was assigned to in the
	// previous iteration; -1 means "not yet assigned", which guarantees
	// the first Assign pass is never mistaken for convergence.
	assignment := make([]int, len(points))
	for i := range assignment {
		assignment[i] = -1
	}

	outcome := "max_iters"
	for iter := 0; iter < iterCap; iter++ {
		// Assign: every point goes to the cluster with maximum
		// similarity to its current centroid; all prior assignments are
		// discarded first.
		cs.ClearClusters()
		newAssignment := make([]int, len(points))
		changed := false

		for pi, p := range points {
			best := 0
			bestScore := -1.0
			for ci := 0; ci < cs.Size(); ci++ {
				c, err := cs.GetCluster(ci)
				if err != nil {
					return nil, err
				}
				score := sim.Similarity(p, c.GetCentroid())
				if score > bestScore {
					bestScore = score
					best = ci
				}
			}
			newAssignment[pi] = best
			if newAssignment[pi] != assignment[pi] {
				changed = true
			}
			if err := cs.AddToCluster(p, best); err != nil {
				return nil, err
			}
		}
		km.Journal.AddStep("assign", "", len(points), 0)

		// Update: recompute centroids from the new assignment. Unlike
		// ClusterSet.RecalculateCentroids, an empty cluster here keeps
		// its previous centroid rather than being cleared to zero.
		for ci := 0; ci < cs.Size(); ci++ {
			c, err := cs.GetCluster(ci)
			if err != nil {
				return nil, err
			}
			if c.Size() > 0 {
				c.Recalculate()
			}
		}
		km.Journal.AddStep("update", "", cs.Size(), 0)

		assignment = newAssignment
		if !changed {
			outcome = "converged"
			break
		}
	}

	if err := km.Journal.Finish(outcome); err != nil {
		return nil, err
	}
	return cs, nil
}

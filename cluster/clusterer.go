package cluster

// Clusterer partitions an MSet into a ClusterSet. It is a one-shot
// strategy object: calling Cluster twice on the same instance is
// idempotent in its inputs, since the result depends only on the mset
// argument.
type Clusterer interface {
	Cluster(mset []Document) (*ClusterSet, error)
	Description() string
}

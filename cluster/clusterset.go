package cluster

// Cluster owns one Centroid and the ordered list of Points assigned to it.
type Cluster struct {
	centroid *Centroid
	points   []*Point
}

// NewCluster returns an empty Cluster with an empty Centroid.
func NewCluster() *Cluster {
	return &Cluster{centroid: NewCentroid()}
}

// AddPoint appends p to the cluster's ordered point list.
func (c *Cluster) AddPoint(p *Point) {
	c.points = append(c.points, p)
}

// Clear empties the point list. The centroid is left untouched: clearing a
// cluster between K-Means iterations must not lose its last-known center.
func (c *Cluster) Clear() {
	c.points = nil
}

// Size returns the number of points currently assigned to the cluster.
func (c *Cluster) Size() int {
	return len(c.points)
}

// GetIndex returns the i'th assigned point in insertion order.
func (c *Cluster) GetIndex(i int) (*Point, error) {
	if i < 0 || i >= len(c.points) {
		return nil, outOfRangef("point index %d out of range (size %d)", i, len(c.points))
	}
	return c.points[i], nil
}

// GetDocuments returns the Document handles of every assigned point, in
// insertion order.
func (c *Cluster) GetDocuments() DocumentSet {
	docs := make(DocumentSet, len(c.points))
	for i, p := range c.points {
		docs[i] = p.Document()
	}
	return docs
}

// GetCentroid returns the cluster's current centroid.
func (c *Cluster) GetCentroid() *Centroid {
	return c.centroid
}

// SetCentroid replaces the cluster's centroid outright.
func (c *Cluster) SetCentroid(centroid *Centroid) {
	c.centroid = centroid
}

// Recalculate rebuilds the centroid as the component-wise arithmetic mean
// of the cluster's current points: clear the centroid, accumulate every
// point's weights into it, divide by the point count, then refresh
// magnitude. An empty cluster is left with a cleared centroid (magnitude
// 0) rather than erroring.
func (c *Cluster) Recalculate() {
	c.centroid.Clear()
	if len(c.points) == 0 {
		return
	}

	for _, p := range c.points {
		for _, entry := range p.TermList() {
			c.centroid.AddValue(entry.Term, p.GetValue(entry.Term))
		}
	}
	c.centroid.Divide(len(c.points))
	c.centroid.RecalcMagnitude()
}

// ClusterSet is an ordered, index-addressable collection of Clusters. It
// has no uniqueness invariant: the same Point may legitimately appear in
// more than one Cluster across calls.
type ClusterSet struct {
	clusters []*Cluster
}

// NewClusterSet returns an empty ClusterSet.
func NewClusterSet() *ClusterSet {
	return &ClusterSet{}
}

// Size returns the number of clusters in the set.
func (cs *ClusterSet) Size() int {
	return len(cs.clusters)
}

// AddCluster appends c to the set.
func (cs *ClusterSet) AddCluster(c *Cluster) {
	cs.clusters = append(cs.clusters, c)
}

// GetCluster returns the i'th cluster, or an OutOfRange error when
// i >= Size().
func (cs *ClusterSet) GetCluster(i int) (*Cluster, error) {
	if i < 0 || i >= len(cs.clusters) {
		return nil, outOfRangef("cluster index %d out of range (size %d)", i, len(cs.clusters))
	}
	return cs.clusters[i], nil
}

// AddToCluster appends p to the points of cluster i.
func (cs *ClusterSet) AddToCluster(p *Point, i int) error {
	c, err := cs.GetCluster(i)
	if err != nil {
		return err
	}
	c.AddPoint(p)
	return nil
}

// ClearClusters clears the point list of every cluster, retaining each
// cluster's centroid.
func (cs *ClusterSet) ClearClusters() {
	for _, c := range cs.clusters {
		c.Clear()
	}
}

// RecalculateCentroids invokes Recalculate on every cluster in the set.
func (cs *ClusterSet) RecalculateCentroids() {
	for _, c := range cs.clusters {
		c.Recalculate()
	}
}

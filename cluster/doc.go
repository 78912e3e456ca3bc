// Package cluster partitions a ranked set of retrieved documents into a
// requested number of groups, each represented by a centroid in a
// term-weighted vector space, using TF-IDF weights and cosine similarity.
//
// The package is single-threaded and synchronous: apart from Journal, which
// guards its state with a mutex, no type here is safe for concurrent
// mutation from more than one goroutine at a time.
package cluster

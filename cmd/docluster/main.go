package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/fenwick-search/doccluster/cluster"
	"github.com/fenwick-search/doccluster/internal/config"
	"github.com/fenwick-search/doccluster/internal/corpus"
)

var (
	version    = "1.0.0"
	configPath string
	k          int
	maxIters   int
	strategy   string

	showVersion bool
)

func init() {
	flag.StringVar(&configPath, "config", config.GetConfigPath(), "Path to configuration file")
	flag.IntVar(&k, "k", 0, "Number of clusters (overrides config, 0 = use config)")
	flag.IntVar(&maxIters, "max-iters", 0, "Maximum K-Means iterations (0 = use config)")
	flag.StringVar(&strategy, "strategy", "", "Clustering strategy: kmeans or roundrobin (overrides config)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("docluster v%s\n", version)
		fmt.Println("Document clustering over TF-IDF weighted documents")
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if k != 0 {
		cfg.K = k
	}
	if maxIters != 0 {
		cfg.MaxIters = maxIters
	}
	if strategy != "" {
		cfg.Strategy = strategy
	}

	src, err := openCorpus(cfg)
	if err != nil {
		log.Fatalf("Failed to open corpus: %v", err)
	}

	mset, err := cluster.Drain(src, src.Size())
	if err != nil {
		log.Fatalf("Failed to read corpus: %v", err)
	}
	if len(mset) == 0 {
		fmt.Println("Corpus is empty, nothing to cluster.")
		return
	}

	journal := cluster.NewJournal(cfg.JournalPath)

	clusterer, err := buildClusterer(cfg, journal)
	if err != nil {
		log.Fatalf("Failed to build clusterer: %v", err)
	}

	fmt.Printf("Running %s over %d documents...\n", clusterer.Description(), len(mset))

	cs, err := clusterer.Cluster(mset)
	if err != nil {
		log.Fatalf("Clustering failed: %v", err)
	}

	printSummary(cs)
}

// openCorpus opens the DocumentSource named by cfg.CorpusKind. A memory
// corpus with no configured path falls back to a small built-in fixture,
// so the CLI can be exercised without a SQLite file on disk.
func openCorpus(cfg *config.Config) (cluster.DocumentSource, error) {
	switch cfg.CorpusKind {
	case "memory":
		if cfg.CorpusPath == "" {
			return corpus.NewMemoryCorpus(sampleDocuments()), nil
		}
		return nil, fmt.Errorf("memory corpus does not support loading from a path (%s); leave corpus_path empty", cfg.CorpusPath)
	case "sqlite", "":
		return corpus.NewSQLiteCorpus(cfg.CorpusPath)
	default:
		return nil, fmt.Errorf("unknown corpus_kind %q", cfg.CorpusKind)
	}
}

func buildClusterer(cfg *config.Config, journal *cluster.Journal) (cluster.Clusterer, error) {
	switch cfg.Strategy {
	case "roundrobin":
		if cfg.K <= 0 {
			return nil, fmt.Errorf("k must be positive, got %d", cfg.K)
		}
		return &cluster.RoundRobin{K: cfg.K, Journal: journal}, nil
	case "kmeans", "":
		if cfg.K <= 0 {
			return nil, fmt.Errorf("k must be positive, got %d", cfg.K)
		}
		return &cluster.KMeans{K: cfg.K, MaxIters: cfg.MaxIters, Journal: journal}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", cfg.Strategy)
	}
}

// printSummary reports each cluster's size and the highest-weighted
// terms of its centroid.
func printSummary(cs *cluster.ClusterSet) {
	for i := 0; i < cs.Size(); i++ {
		c, err := cs.GetCluster(i)
		if err != nil {
			log.Fatalf("Failed to read cluster %d: %v", i, err)
		}
		fmt.Printf("\nCluster %d (%d documents)\n", i, c.Size())

		centroid := c.GetCentroid()
		terms := centroid.TermList()
		sort.Slice(terms, func(a, b int) bool {
			return centroid.GetValue(terms[a].Term) > centroid.GetValue(terms[b].Term)
		})

		limit := 5
		if len(terms) < limit {
			limit = len(terms)
		}
		for _, t := range terms[:limit] {
			fmt.Printf("  %-20s %.4f\n", t.Term, centroid.GetValue(t.Term))
		}
	}
}

func sampleDocuments() []corpus.RawDocument {
	return []corpus.RawDocument{
		{ID: "1", Text: "cats and dogs are popular household pets"},
		{ID: "2", Text: "dogs bark and cats meow, both make good pets"},
		{ID: "3", Text: "stock markets rose sharply after the earnings report"},
		{ID: "4", Text: "investors watched quarterly earnings and market trends"},
	}
}

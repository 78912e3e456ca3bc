package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration for a clustering run:
// which corpus to read, which clustering strategy to run, and where to
// write the run journal.
type Config struct {
	CorpusKind  string `yaml:"corpus_kind"` // "sqlite" | "memory"
	CorpusPath  string `yaml:"corpus_path"`
	K           int    `yaml:"k"`
	MaxIters    int    `yaml:"max_iters"`
	Strategy    string `yaml:"strategy"`    // "kmeans" | "roundrobin"
	SeedPolicy  string `yaml:"seed_policy"` // "first" | "random"
	RandomSeed  int64  `yaml:"random_seed"`
	JournalPath string `yaml:"journal_path"`
}

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		CorpusKind:  "sqlite",
		CorpusPath:  filepath.Join(homeDir, ".docluster", "corpus.db"),
		K:           3,
		MaxIters:    0,
		Strategy:    "kmeans",
		SeedPolicy:  "first",
		RandomSeed:  0,
		JournalPath: filepath.Join(homeDir, ".docluster", "run_journal.json"),
	}
}

// Load reads configuration from file, creating with defaults if it doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, create it with defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.Save(path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	// Read existing file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default() // Start with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".docluster", "config.yaml")
}

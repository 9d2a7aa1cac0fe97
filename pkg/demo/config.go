package demo

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/lazy_series/pkg/series"
)

// MaxRange bounds Range so the Range^4 products fit in memory.
const MaxRange = 32

// Config holds all parameters for a demo run.
type Config struct {
	Range   int    `yaml:"range" json:"range"`     // each of a, b, c, d runs over [0, Range)
	Terms   int    `yaml:"terms" json:"terms"`     // terms rendered per series
	Workers int    `yaml:"workers" json:"workers"` // parallel product evaluations
	Format  string `yaml:"format" json:"format"`   // "text" or "json"
}

// DefaultConfig returns the configuration of the reference enumeration.
func DefaultConfig() Config {
	return Config{
		Range:   3,
		Terms:   series.DefaultTerms,
		Workers: runtime.NumCPU(),
		Format:  "text",
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Fields absent
// from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Range < 1 || c.Range > MaxRange {
		return fmt.Errorf("range must be in [1, %d], got %d", MaxRange, c.Range)
	}
	if c.Terms < 1 {
		return fmt.Errorf("terms must be at least 1, got %d", c.Terms)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q (available: text, json)", c.Format)
	}
	return nil
}

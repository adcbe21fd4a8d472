package sched

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml
type Config struct {
	Quantum    int64    `yaml:"quantum"`    // 2 (by default)
	Algorithms []string `yaml:"algorithms"` // fcfs, rr, srtf (by default)
	Parallel   bool     `yaml:"parallel"`   // run algorithms concurrently
	TraceCSV   string   `yaml:"trace_csv"`  // event trace output, empty = off
	Gantt      bool     `yaml:"gantt"`      // render gantt charts
	LogLevel   string   `yaml:"log_level"`  // debug, info, warn, error
	LogFormat  string   `yaml:"log_format"` // text or json
}

// DefaultConfig is used when the config file is not found.
func DefaultConfig() Config {
	return Config{
		Quantum:    DefaultQuantum,
		Algorithms: []string{string(AlgorithmFCFS), string(AlgorithmRR), string(AlgorithmSRTF)},
		Gantt:      true,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads YAML and overrides defaults; empty path or missing file = defaults only.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	cfg.clamp()
	return cfg, nil
}

// clamp puts out-of-range values back to their defaults.
func (c *Config) clamp() {
	def := DefaultConfig()
	if c.Quantum <= 0 {
		c.Quantum = def.Quantum
	}
	if len(c.Algorithms) == 0 {
		c.Algorithms = def.Algorithms
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
}

// ParsedAlgorithms resolves the configured names, dropping duplicates.
func (c Config) ParsedAlgorithms() ([]Algorithm, error) {
	seen := make(map[Algorithm]bool, len(c.Algorithms))
	out := make([]Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		alg, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if seen[alg] {
			continue
		}
		seen[alg] = true
		out = append(out, alg)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: none configured", ErrUnknownAlgorithm)
	}
	return out, nil
}

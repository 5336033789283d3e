package counsel

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the engine configuration. It can
// be populated from JSON or YAML. The zero-value is useful – all nested
// fields inherit their package defaults.

type Config struct {
	// DatasetURL points directly at the rank-interval dataset; when empty the
	// dataset location is resolved through IndirectionURL.
	DatasetURL string `json:"datasetURL" yaml:"datasetURL"`
	// IndirectionURL points at a file whose first line is the dataset URL.
	IndirectionURL string        `json:"indirectionURL" yaml:"indirectionURL"`
	Tracing        TracingConfig `json:"tracing" yaml:"tracing"`
}

type TracingConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	OutputFile string `json:"outputFile" yaml:"outputFile"`
}

// DefaultConfig returns a Config populated with the conventional defaults.
// Callers may modify the returned struct before passing it to New.
func DefaultConfig() *Config {
	return &Config{
		IndirectionURL: "data.txt",
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.DatasetURL == "" && c.IndirectionURL == "" {
		return fmt.Errorf("either datasetURL or indirectionURL must be set")
	}
	return nil
}

// LoadConfig reads a YAML config from the supplied URL, layered on top of
// DefaultConfig.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("cannot open %v: %w", URL, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	return config, nil
}

// Package config loads distgrid settings. Values are layered: built-in
// defaults, then an optional TOML or YAML file, then DISTGRID_* environment
// variables, then command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/distgrid/distance"
)

var (
	// ErrUnsupportedFormat indicates a config file extension other than
	// .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalidConfig indicates a value that failed validation.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "DISTGRID_"

// Config is the resolved runtime configuration.
type Config struct {
	// Strict rejects tokens that are not plain unsigned integers.
	Strict bool `toml:"strict" yaml:"strict"`
	// Order is the worklist discipline: lifo, fifo or random.
	Order string `toml:"order" yaml:"order"`
	// Summary prints per-case statistics after each distance grid.
	Summary bool `toml:"summary" yaml:"summary"`
	// HeatmapDir, when set, receives one HTML heatmap per case.
	HeatmapDir string `toml:"heatmap_dir" yaml:"heatmap_dir"`
	// MaxLineBytes caps a single input line; 0 keeps the reader default.
	MaxLineBytes int `toml:"max_line_bytes" yaml:"max_line_bytes"`
	// Color enables ANSI styling of headers and faults on streams that are
	// terminals; redirected output is never styled.
	Color bool `toml:"color" yaml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Order: distance.LIFO.String(),
		Color: true,
	}
}

// Load reads path over the defaults. The extension selects the codec.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	var unmarshal func([]byte, any) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		unmarshal = toml.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overlays DISTGRID_STRICT, DISTGRID_ORDER, DISTGRID_SUMMARY and
// DISTGRID_HEATMAP_DIR. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "STRICT"); ok {
		b, err := parseBool("STRICT", v)
		if err != nil {
			return err
		}
		c.Strict = b
	}
	if v, ok := lookup(EnvPrefix + "ORDER"); ok {
		c.Order = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvPrefix + "SUMMARY"); ok {
		b, err := parseBool("SUMMARY", v)
		if err != nil {
			return err
		}
		c.Summary = b
	}
	if v, ok := lookup(EnvPrefix + "HEATMAP_DIR"); ok {
		c.HeatmapDir = v
	}

	return nil
}

func parseBool(key, v string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalidConfig, EnvPrefix, key, v)
	}
	return b, nil
}

// Validate checks Order and MaxLineBytes.
func (c *Config) Validate() error {
	if _, err := distance.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("%w: order %q", ErrInvalidConfig, c.Order)
	}
	if c.MaxLineBytes < 0 {
		return fmt.Errorf("%w: max_line_bytes %d is negative", ErrInvalidConfig, c.MaxLineBytes)
	}
	return nil
}

// DistanceOrder returns Order as a distance.Order. Unknown names fall back
// to LIFO; call Validate first to reject them.
func (c *Config) DistanceOrder() distance.Order {
	o, err := distance.ParseOrder(c.Order)
	if err != nil {
		return distance.LIFO
	}
	return o
}

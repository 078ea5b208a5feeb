// SPDX-License-Identifier: MIT
// Package config loads the settings of the w33 command: numeric tolerances,
// the Jacobi iteration cap, whether to run the group stage, the catalog
// location and logging. Values come from defaults, an optional YAML file and
// W33_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/w33/logging"
	"github.com/katalvlaran/w33/numeric"
)

// envPrefix maps nested keys like "tolerance.jacobi" to W33_TOLERANCE_JACOBI.
const envPrefix = "W33"

// ErrInvalid reports a configuration that fails Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Tolerance groups the numeric thresholds.
type Tolerance struct {
	Orthogonality float64 `mapstructure:"orthogonality" yaml:"orthogonality"`
	Jacobi        float64 `mapstructure:"jacobi" yaml:"jacobi"`
	Spectrum      float64 `mapstructure:"spectrum" yaml:"spectrum"`
}

// Eigen configures the Jacobi solver.
type Eigen struct {
	MaxIterations int `mapstructure:"max_iterations" yaml:"max_iterations"`
}

// Group toggles the automorphism stage.
type Group struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Catalog locates the on-disk report store.
type Catalog struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// Config is the full command configuration.
type Config struct {
	Tolerance Tolerance      `mapstructure:"tolerance" yaml:"tolerance"`
	Eigen     Eigen          `mapstructure:"eigen" yaml:"eigen"`
	Group     Group          `mapstructure:"group" yaml:"group"`
	Catalog   Catalog        `mapstructure:"catalog" yaml:"catalog"`
	Log       logging.Config `mapstructure:"log" yaml:"log"`
}

// Defaults.
const (
	DefaultMaxIterations = 100000
	DefaultLogLevel      = "info"
	DefaultLogFormat     = logging.FormatConsole
)

// newViper returns a viper instance with YAML type, the W33_ env prefix and
// every key registered with its default, so env overrides reach Unmarshal
// even without a file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("tolerance.orthogonality", numeric.OrthogonalityEps)
	v.SetDefault("tolerance.jacobi", numeric.JacobiEps)
	v.SetDefault("tolerance.spectrum", numeric.SpectrumEps)
	v.SetDefault("eigen.max_iterations", DefaultMaxIterations)
	v.SetDefault("group.enabled", true)
	v.SetDefault("catalog.path", DefaultCatalogPath())
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})
	return v
}

// Load reads the YAML file at path (skipped when path is empty), applies
// W33_* overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultCatalogPath is <user cache dir>/w33/catalog, or the same under the
// temp dir when no cache dir can be determined.
func DefaultCatalogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "w33", "catalog")
}

// Default returns the configuration Load produces with no file and no
// environment overrides.
func Default() *Config {
	return &Config{
		Tolerance: Tolerance{
			Orthogonality: numeric.OrthogonalityEps,
			Jacobi:        numeric.JacobiEps,
			Spectrum:      numeric.SpectrumEps,
		},
		Eigen:   Eigen{MaxIterations: DefaultMaxIterations},
		Group:   Group{Enabled: true},
		Catalog: Catalog{Path: DefaultCatalogPath()},
		Log:     logging.Config{Level: DefaultLogLevel, Format: DefaultLogFormat, OutputPaths: []string{"stderr"}},
	}
}

// Validate checks every field and reports the first violation wrapped in
// ErrInvalid.
func (c *Config) Validate() error {
	tols := []struct {
		name string
		val  float64
	}{
		{"tolerance.orthogonality", c.Tolerance.Orthogonality},
		{"tolerance.jacobi", c.Tolerance.Jacobi},
		{"tolerance.spectrum", c.Tolerance.Spectrum},
	}
	for _, t := range tols {
		if !numeric.ValidTolerance(t.val) {
			return fmt.Errorf("%w: %s = %g must be positive and finite", ErrInvalid, t.name, t.val)
		}
	}
	if c.Eigen.MaxIterations <= 0 {
		return fmt.Errorf("%w: eigen.max_iterations = %d must be > 0", ErrInvalid, c.Eigen.MaxIterations)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("%w: catalog.path must not be empty", ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "", logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

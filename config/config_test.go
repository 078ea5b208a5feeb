package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/w33/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w33.yaml")
	yaml := `
tolerance:
  jacobi: 1.0e-12
eigen:
  max_iterations: 5000
group:
  enabled: false
catalog:
  path: /tmp/w33-catalog
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("W33_TOLERANCE_SPECTRUM", "1e-5")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1e-12, cfg.Tolerance.Jacobi)
	assert.Equal(t, 1e-5, cfg.Tolerance.Spectrum)
	assert.Equal(t, 1e-10, cfg.Tolerance.Orthogonality)
	assert.Equal(t, 5000, cfg.Eigen.MaxIterations)
	assert.False(t, cfg.Group.Enabled)
	assert.Equal(t, "/tmp/w33-catalog", cfg.Catalog.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestDefaultCatalogPathIsOnDisk(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)
	t.Setenv("HOME", cache)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultCatalogPath(), cfg.Catalog.Path)
	assert.True(t, filepath.IsAbs(cfg.Catalog.Path))
	assert.Equal(t, filepath.Join("w33", "catalog"),
		filepath.Join(filepath.Base(filepath.Dir(cfg.Catalog.Path)), filepath.Base(cfg.Catalog.Path)))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero orthogonality", func(c *config.Config) { c.Tolerance.Orthogonality = 0 }},
		{"negative jacobi", func(c *config.Config) { c.Tolerance.Jacobi = -1 }},
		{"zero spectrum", func(c *config.Config) { c.Tolerance.Spectrum = 0 }},
		{"no iterations", func(c *config.Config) { c.Eigen.MaxIterations = 0 }},
		{"bad level", func(c *config.Config) { c.Log.Level = "chatty" }},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"no catalog path", func(c *config.Config) { c.Catalog.Path = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
	require.NoError(t, config.Default().Validate())
}

func TestEnvRejectedByValidate(t *testing.T) {
	t.Setenv("W33_EIGEN_MAX_ITERATIONS", "-3")
	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalid)
}

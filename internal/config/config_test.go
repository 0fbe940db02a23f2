package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/multiply"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, multiply.KindParallel, cfg.Kind())
	assert.Equal(t, int64(math.MinInt32), cfg.Generate.Min)
	assert.Equal(t, int64(math.MaxInt32), cfg.Generate.Max)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matmul.yaml")
	content := `multiply:
  kind: serial
  workers: 3
generate:
  rows: 10
  inner: 4
  cols: 6
  min: -5
  max: 5
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("MATMUL_GENERATE_SEED", "99")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, multiply.KindSerial, cfg.Kind())
	assert.Equal(t, 3, cfg.Multiply.Workers)
	assert.Equal(t, 10, cfg.Generate.Rows)
	assert.Equal(t, 4, cfg.Generate.Inner)
	assert.Equal(t, 6, cfg.Generate.Cols)
	assert.Equal(t, int64(-5), cfg.Generate.Min)
	assert.Equal(t, int64(5), cfg.Generate.Max)
	assert.Equal(t, uint64(99), cfg.Generate.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("multiply:\n  kind: gpu\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, multiply.ErrUnknownKind)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Generate.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Generate.Cols = -1 }},
		{"min above max", func(c *Config) { c.Generate.Min, c.Generate.Max = 3, 2 }},
		{"max beyond int32", func(c *Config) { c.Generate.Max = math.MaxInt32 + 1 }},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

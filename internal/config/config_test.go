package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lightcurve/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("lcsim", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// TestLoad_Defaults resolves the built-in values with nothing set.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

// TestLoad_EnvOverridesDefaults reads LCSIM_* variables, nested keys included.
func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("LCSIM_N", "512")
	t.Setenv("LCSIM_MODEL", "slow")
	t.Setenv("LCSIM_PARAMS", "1,0.01,0,2,0")
	t.Setenv("LCSIM_LOG_FORMAT", "json")

	cfg, err := config.Load(newFlags(t), "")
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.N)
	assert.Equal(t, "slow", cfg.Model)
	assert.Equal(t, "1,0.01,0,2,0", cfg.Params)
	assert.Equal(t, "json", cfg.Log.Format)
}

// TestLoad_FlagsOverrideEnv checks flag priority.
func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("LCSIM_N", "512")
	t.Setenv("LCSIM_LOG_LEVEL", "warn")

	cfg, err := config.Load(newFlags(t, "--n", "64", "--seed", "9", "--summary", "--log-level", "debug"), "")
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.N)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.True(t, cfg.Summary)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestLoad_ConfigFile reads a YAML file below env and flags.
func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcsim.yaml")
	body := "n: 2048\ndt: 0.5\nmodel: sharp\nparams: \"2,0.1,1,3,0.01\"\ncount: 3\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(newFlags(t, "--count", "5"), path)
	require.NoError(t, err)
	assert.Equal(t, 2048, cfg.N)
	assert.Equal(t, 0.5, cfg.Dt)
	assert.Equal(t, "sharp", cfg.Model)
	assert.Equal(t, 5, cfg.Count, "flag beats file")
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset nested key keeps its default")
}

// TestLoad_MissingConfigFile reports the path.
func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := config.Load(nil, filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// TestParseParams covers spacing, blanks and bad numbers.
func TestParseParams(t *testing.T) {
	p, err := config.ParseParams(" 1, 0.01 ,2,0 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.01, 2, 0}, p)

	p, err = config.ParseParams("")
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = config.ParseParams("1,x,3")
	assert.ErrorContains(t, err, "params[1]")
}

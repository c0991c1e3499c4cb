// Package config resolves the settings of the lcsim command from, in
// increasing priority: built-in defaults, an optional config file, LCSIM_*
// environment variables (a .env file in the working directory is loaded
// first when present) and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. LCSIM_MODEL.
const EnvPrefix = "LCSIM"

// Keys shared by flags, environment variables and config files.
const (
	KeyN         = "n"
	KeyDt        = "dt"
	KeyMean      = "mean"
	KeyModel     = "model"
	KeyParams    = "params"
	KeySeed      = "seed"
	KeyCount     = "count"
	KeyWorkers   = "workers"
	KeySummary   = "summary"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// Config is the fully resolved command configuration.
type Config struct {
	N       int       `mapstructure:"n"`
	Dt      float64   `mapstructure:"dt"`
	Mean    float64   `mapstructure:"mean"`
	Model   string    `mapstructure:"model"`
	Params  string    `mapstructure:"params"` // comma-separated, e.g. "1,0.01,0,2,0"
	Seed    int64     `mapstructure:"seed"`   // 0 = process-wide generator
	Count   int       `mapstructure:"count"`
	Workers int       `mapstructure:"workers"`
	Summary bool      `mapstructure:"summary"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text or json
}

// Defaults returns the built-in configuration: a 1024-point unbroken
// β=2 power law sampled once per second around a mean of 0.
func Defaults() Config {
	return Config{
		N:      1024,
		Dt:     1.0,
		Mean:   0.0,
		Model:  "unbroken",
		Params: "1,0.01,2,0",
		Count:  1,
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// RegisterFlags declares one flag per key on flags, with Defaults as values.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.Int(KeyN, d.N, "number of samples in each light curve (>= 2)")
	flags.Float64(KeyDt, d.Dt, "sampling interval in seconds (> 0)")
	flags.Float64(KeyMean, d.Mean, "mean of the light curve")
	flags.String(KeyModel, d.Model, "power spectrum model: unbroken, sharp or slow")
	flags.String(KeyParams, d.Params, "comma-separated model parameters (4 for unbroken, 5 otherwise)")
	flags.Int64(KeySeed, d.Seed, "random seed; 0 draws from the process-wide generator")
	flags.Int(KeyCount, d.Count, "number of independent light curves")
	flags.Int(KeyWorkers, d.Workers, "concurrent curves when count > 1; 0 = GOMAXPROCS")
	flags.Bool(KeySummary, d.Summary, "log mean, standard deviation, min and max of each curve")
	flags.String("log-level", d.Log.Level, "log level: debug, info, warn, error")
	flags.String("log-format", d.Log.Format, "log format: text or json")
}

// Load resolves the configuration. flags may be nil; file may be empty.
func Load(flags *pflag.FlagSet, file string) (Config, error) {
	// A missing .env is normal; any other failure is reported.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	d := Defaults()
	v.SetDefault(KeyN, d.N)
	v.SetDefault(KeyDt, d.Dt)
	v.SetDefault(KeyMean, d.Mean)
	v.SetDefault(KeyModel, d.Model)
	v.SetDefault(KeyParams, d.Params)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyCount, d.Count)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeySummary, d.Summary)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	if flags != nil {
		for _, key := range []string{KeyN, KeyDt, KeyMean, KeyModel, KeyParams, KeySeed, KeyCount, KeyWorkers, KeySummary} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind --%s: %w", key, err)
				}
			}
		}
		for key, name := range map[string]string{KeyLogLevel: "log-level", KeyLogFormat: "log-format"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// ParseParams splits a comma-separated list of numbers. Blank input yields
// an empty slice; the model decides whether the count is right.
func ParseParams(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []float64{}, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("config: params[%d]=%q: %w", i, f, err)
		}
		out = append(out, x)
	}

	return out, nil
}

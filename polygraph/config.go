// SPDX-License-Identifier: MIT
package polygraph

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config manages analysis configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Walk matrix parameters
	v.SetDefault("walk.max_power", 0) // 0 selects the degree-based heuristic
	v.SetDefault("walk.sparse", false)
	v.SetDefault("walk.exact", false)
	v.SetDefault("walk.eigen_decimals", 10)
	v.SetDefault("walk.safe_power", DefaultSafePower)

	// Linear program parameters
	v.SetDefault("lp.epsilon", 1e-10)
	v.SetDefault("lp.tolerance", 1e-10)

	// Diagnostics
	v.SetDefault("diagnostics.max_classes", 12)

	// Logging parameters
	v.SetDefault("logging.level", "warn")

	v.SetEnvPrefix("POLYGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Getters for walk parameters
func (c *Config) MaxPower() int      { return c.v.GetInt("walk.max_power") }
func (c *Config) Sparse() bool       { return c.v.GetBool("walk.sparse") }
func (c *Config) Exact() bool        { return c.v.GetBool("walk.exact") }
func (c *Config) EigenDecimals() int { return c.v.GetInt("walk.eigen_decimals") }
func (c *Config) SafePower() int     { return c.v.GetInt("walk.safe_power") }

// Getters for linear program parameters
func (c *Config) Epsilon() float64     { return c.v.GetFloat64("lp.epsilon") }
func (c *Config) LPTolerance() float64 { return c.v.GetFloat64("lp.tolerance") }

func (c *Config) DiagnosticsMaxClasses() int { return c.v.GetInt("diagnostics.max_classes") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Viper exposes the underlying store for flag binding.
func (c *Config) Viper() *viper.Viper { return c.v }

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	return c.CreateLoggerTo(os.Stderr)
}

// CreateLoggerTo is CreateLogger with an explicit destination.
func (c *Config) CreateLoggerTo(out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "polygraph").Logger()
}

// orDefault returns cfg, or a default Config when cfg is nil.
func orDefault(cfg *Config) *Config {
	if cfg == nil {
		return NewConfig()
	}

	return cfg
}

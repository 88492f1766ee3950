// Package config reads server settings from the environment, an optional
// .env file and an optional YAML file.
package config

import (
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the runtime settings. Content is not configurable; it lives in
// source.
type Config struct {
	Port       string `mapstructure:"port"`
	GinMode    string `mapstructure:"gin_mode"`
	DateFormat string `mapstructure:"date_format"`
	ExportDir  string `mapstructure:"export_dir"`
}

// Defaults applied when neither env nor file sets a value.
const (
	DefaultPort       = "8080"
	DefaultDateFormat = "D/M/Y"
	DefaultExportDir  = "dist"
)

// New returns a viper instance with the defaults registered and environment
// lookup enabled (PORT, GIN_MODE, DATE_FORMAT, EXPORT_DIR).
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("gin_mode", "")
	v.SetDefault("date_format", DefaultDateFormat)
	v.SetDefault("export_dir", DefaultExportDir)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and unmarshals everything into a
// Config.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file: %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	switch c.GinMode {
	case "", "debug", "release", "test":
	default:
		return errors.Errorf("unknown gin_mode %q (want debug, release or test)", c.GinMode)
	}
	if c.ExportDir == "" {
		c.ExportDir = DefaultExportDir
	}
	return nil
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

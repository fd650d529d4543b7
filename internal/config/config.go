// Package config loads the service configuration from defaults, an optional
// config file and WARDROBE_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WARDROBE_HTTP_PORT.
const EnvPrefix = "WARDROBE"

// HTTPConfig configures the JSON API listener.
type HTTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns host:port for net/http.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggerConfig configures zap.
type LoggerConfig struct {
	Mode       string `mapstructure:"mode"` // "production" or "development"
	FileEnable bool   `mapstructure:"file_enable"`
	Filename   string `mapstructure:"filename"`
}

// RetentionConfig configures the out-of-stock sweep.
type RetentionConfig struct {
	Units int64 `mapstructure:"units"`
}

// SweepConfig schedules the sweep. An empty schedule disables it.
type SweepConfig struct {
	Schedule string `mapstructure:"schedule"`
}

// Config is the whole service configuration.
type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Retention RetentionConfig `mapstructure:"retention"`
	Sweep     SweepConfig     `mapstructure:"sweep"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.file_enable", false)
	v.SetDefault("logger.filename", "logs/wardrobe.log")
	v.SetDefault("retention.units", 3)
	v.SetDefault("sweep.schedule", "")
}

// Load reads config.yaml (or .json/.toml) from the given directories if one
// exists. A missing file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the service cannot start with.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: http.port %d out of range", c.HTTP.Port)
	}
	if c.Retention.Units < 0 {
		return fmt.Errorf("config: retention.units must not be negative, got %d", c.Retention.Units)
	}
	switch c.Logger.Mode {
	case "production", "development":
	default:
		return fmt.Errorf("config: unknown logger.mode %q", c.Logger.Mode)
	}
	return nil
}

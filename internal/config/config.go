// Package config loads the service configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/inovacc/routeguide/internal/application"
	"github.com/spf13/viper"
)

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Features FeaturesConfig `mapstructure:"features"`
}

// ServerConfig controls the gRPC listener and its lifecycle.
type ServerConfig struct {
	// Port the gRPC server listens on.
	Port int `mapstructure:"port"`
	// GracePeriod bounds how long in-flight calls may run after a shutdown
	// signal before the server is stopped forcibly.
	GracePeriod time.Duration `mapstructure:"grace_period"`
	// IdleTimeout shuts the server down after this long without a request.
	// Zero disables idle shutdown.
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	// MetricsAddr, when non-empty, serves prometheus metrics on this
	// address under /metrics.
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// FeaturesConfig locates the feature catalog.
type FeaturesConfig struct {
	// Database is the path to the JSON feature database loaded at startup.
	Database string `mapstructure:"database"`
}

// Load reads routeguide.yaml from the application config directory or the
// working directory, then applies ROUTEGUIDE_* environment overrides. A
// missing config file is fine; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("routeguide")
	v.SetConfigType("yaml")

	if dir, err := application.GetApplicationDirectory(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetDefault("server.port", 8980)
	v.SetDefault("server.grace_period", 30*time.Second)
	v.SetDefault("server.idle_timeout", time.Duration(0))
	v.SetDefault("server.metrics_addr", "")
	v.SetDefault("features.database", "testdata/route_guide_db.json")

	v.SetEnvPrefix("ROUTEGUIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

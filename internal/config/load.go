package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SANMEI"

// Default values applied before files and environment variables.
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultDaiunSteps       = 10
	DefaultNenunYears       = 100
	DefaultBatchMaxItems    = 100
	DefaultBatchConcurrency = 8
	DefaultCacheSize        = 1024
)

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence over values
// from config files. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	return load("")
}

// LoadFile behaves like Load but reads the given config file instead of
// searching the working directory. The file must exist.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path is empty")
	}
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about; binding each
	// one explicitly lets Unmarshal see variables without a file or default.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"engine.daiun_steps",
		"engine.nenun_years",
		"engine.solar_term_overrides_file",
		"batch.max_items",
		"batch.concurrency",
		"cache.size",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("engine.daiun_steps", DefaultDaiunSteps)
	v.SetDefault("engine.nenun_years", DefaultNenunYears)
	v.SetDefault("engine.solar_term_overrides_file", "")
	v.SetDefault("batch.max_items", DefaultBatchMaxItems)
	v.SetDefault("batch.concurrency", DefaultBatchConcurrency)
	v.SetDefault("cache.size", DefaultCacheSize)
}

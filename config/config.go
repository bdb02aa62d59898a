package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every server setting read from the environment,
// e.g. AI_PROXY_LISTEN_ADDRESS.
const EnvPrefix = "AI_PROXY"

// The global, read-only config variable.
var (
	cfg  *Config
	once sync.Once
)

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() {
	_ = godotenv.Load()
}

// LoadConfig reads the optional config file and the environment, and initializes
// the global cfg variable. It ensures that the configuration is set only once.
func LoadConfig(configFile string) (*Config, error) {
	var err error
	once.Do(func() {
		LoadEnv()
		var configuration *Config
		configuration, err = load(viper.New(), configFile)
		if err != nil {
			return
		}
		cfg = configuration
	})

	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errors.New("configuration was not set")
	}

	return cfg, nil
}

func load(v *viper.Viper, configFile string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("listen_address", "0.0.0.0:8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("mode", "release")
	v.SetDefault("metrics_path", "/metrics")

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validation
	if configuration.ListenAddress == "" {
		return nil, errors.New("listen_address is required")
	}
	if !strings.HasPrefix(configuration.MetricsPath, "/") {
		return nil, fmt.Errorf("metrics_path must start with '/': %q", configuration.MetricsPath)
	}
	switch configuration.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("log_format must be text or json: %q", configuration.LogFormat)
	}

	return &configuration, nil
}

// GetConfig returns the loaded configuration.
// It panics if the configuration has not been set.
func GetConfig() *Config {
	if cfg == nil {
		panic("Config has not been set! Call LoadConfig first.")
	}
	return cfg
}

// GetEnv gets an environment variable with a fallback value.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

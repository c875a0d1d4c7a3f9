package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// GeneratorConfig holds game generation settings
type GeneratorConfig struct {
	NumGames int    `mapstructure:"num_games"`
	Seed     int64  `mapstructure:"seed"`
	Workers  int    `mapstructure:"workers"`
	Output   string `mapstructure:"output"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Generator defaults. Seed 0 means "derive from wall clock" and is
	// resolved by the caller, not here.
	v.SetDefault("generator.num_games", 10)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.workers", 1)
	v.SetDefault("generator.output", "othello_games.txt")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("OTHELLO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Generator.NumGames <= 0 {
		return fmt.Errorf("generator.num_games must be positive")
	}
	if c.Generator.Workers < 1 {
		return fmt.Errorf("generator.workers must be at least 1")
	}
	if c.Generator.Output == "" {
		return fmt.Errorf("generator.output must not be empty")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	return nil
}

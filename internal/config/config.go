package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ConfigPathEnv names the environment variable holding an explicit config file
const ConfigPathEnv = "CORONET_CONFIG_PATH"

// Config holds all configuration for the planner
type Config struct {
	Catalog    CatalogConfig
	Validation ValidationConfig
	Log        LogConfig
}

// CatalogConfig selects where catalogs come from. An empty DBPath means the
// built-in catalogs.
type CatalogConfig struct {
	DBPath    string
	BatchSize int
}

// ValidationConfig holds the opt-in checks the planning form does not enforce
type ValidationConfig struct {
	RequireCOMSECKeyDate bool
	CheckTotalAircraft   bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from config file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("catalog.db_path", "")
	v.SetDefault("catalog.batch_size", 500)
	v.SetDefault("validation.require_comsec_key_date", false)
	v.SetDefault("validation.check_total_aircraft", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath("/etc/coronet")
	v.AddConfigPath(".")

	if configPath := os.Getenv(ConfigPathEnv); configPath != "" {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error occurred
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK - defaults + env vars apply
	}

	v.SetEnvPrefix("CORONET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Catalog: CatalogConfig{
			DBPath:    v.GetString("catalog.db_path"),
			BatchSize: v.GetInt("catalog.batch_size"),
		},
		Validation: ValidationConfig{
			RequireCOMSECKeyDate: v.GetBool("validation.require_comsec_key_date"),
			CheckTotalAircraft:   v.GetBool("validation.check_total_aircraft"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.Catalog.BatchSize <= 0 {
		return fmt.Errorf("catalog.batch_size must be greater than 0")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}

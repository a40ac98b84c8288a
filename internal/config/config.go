package config

import (
	"os"
	"strconv"

	"gotrial/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database   DatabaseConfig `validate:"required"`
	Server     ServerConfig   `validate:"required"`
	Results    ResultsConfig
	Experiment ExperimentConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string `validate:"required"`
	User     string
	Password string
	Name     string
	Host     string
	Port     int
	SSLMode  string
}

// ServerConfig holds participant-facing web server settings
type ServerConfig struct {
	Port    string `validate:"required"`
	GinMode string
}

// ResultsConfig holds the researcher results server settings
type ResultsConfig struct {
	Port    string
	Enabled bool
}

// ExperimentConfig holds access codes and session settings
type ExperimentConfig struct {
	ControlledCode string
	PilotCode      string
	CookieName     string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}
	config.Database = *dbConfig

	config.Server = *loadServerConfig()
	config.Results = *loadResultsConfig()
	config.Experiment = *loadExperimentConfig()

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	return &DatabaseConfig{
		URL:      url,
		User:     getEnvOrDefault("DB_USER", ""),
		Password: getEnvOrDefault("DB_PASS", ""),
		Name:     getEnvOrDefault("DB_NAME", ""),
		Host:     getEnvOrDefault("DB_HOST", ""),
		Port:     getEnvIntOrDefault("DB_PORT", 5432),
		SSLMode:  getEnvOrDefault("SSL_MODE", "disable"),
	}, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadResultsConfig() *ResultsConfig {
	return &ResultsConfig{
		Port:    getEnvOrDefault("RESULTS_PORT", "8081"),
		Enabled: getEnvBoolOrDefault("RESULTS_ENABLED", true),
	}
}

func loadExperimentConfig() *ExperimentConfig {
	return &ExperimentConfig{
		ControlledCode: getEnvOrDefault("CONTROLLED_CODE", "experimentLUSEM2025"),
		PilotCode:      getEnvOrDefault("PILOT_CODE", "pilotLUSEM2025"),
		CookieName:     getEnvOrDefault("SESSION_COOKIE", "participant_id"),
	}
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("database URL is required")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Results.Enabled && config.Results.Port == config.Server.Port {
		return errors.ConfigInvalid("results port must differ from server port")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Package config provides configuration management for the EERIS client.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Debug   bool
}

// APIConfig represents EERIS backend API configuration.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StorageConfig represents local data storage configuration.
type StorageConfig struct {
	DataRoot       string
	DBPath         string
	ExportsDir     string
	CategoriesFile string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	// Load .env file
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	timeoutSeconds, err := parseIntEnv("EERIS_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid EERIS_TIMEOUT_SECONDS: %w", err)
	}

	config := &Config{
		API: APIConfig{
			BaseURL: getEnvOrDefault("EERIS_API_URL", "http://127.0.0.1:5000"),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		Storage: StorageConfig{
			DataRoot:       getEnvOrDefault("EERIS_DATA_ROOT", "./eeris-data"),
			DBPath:         os.Getenv("EERIS_DB_PATH"),
			ExportsDir:     os.Getenv("EERIS_EXPORTS_DIR"),
			CategoriesFile: os.Getenv("EERIS_CATEGORIES_FILE"),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate validates the configuration.
// It checks if all required fields are set.
func (c *Config) Validate(required ...[]string) error {
	var missing []string

	for _, path := range required {
		if len(path) < 2 {
			continue
		}

		var value string
		switch path[0] {
		case "api":
			switch path[1] {
			case "baseUrl":
				value = c.API.BaseURL
			case "timeout":
				if c.API.Timeout > 0 {
					value = "set"
				}
			}
		case "storage":
			switch path[1] {
			case "dataRoot":
				value = c.Storage.DataRoot
			case "dbPath":
				value = c.Storage.DBPath
			case "exportsDir":
				value = c.Storage.ExportsDir
			case "categoriesFile":
				value = c.Storage.CategoriesFile
			}
		}

		if value == "" {
			missing = append(missing, joinPath(path))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntEnv parses an int from an environment variable.
// Returns defaultValue if the environment variable is not set.
func parseIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %s", key, value)
	}

	return parsed, nil
}

// joinPath joins a path slice into a dot-separated string.
func joinPath(path []string) string {
	result := ""
	for i, p := range path {
		if i > 0 {
			result += "."
		}
		result += p
	}
	return result
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// port the server listens on when FLASK_PORT is not set
	defaultPort = 5001
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have a .env file
	}

	port := defaultPort

	// a set-but-empty FLASK_PORT is a configuration error, only absence falls back
	if raw, ok := os.LookupEnv("FLASK_PORT"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("FLASK_PORT must be an integer, got %q", raw)
		}

		if parsed < 1 || parsed > 65535 {
			return nil, fmt.Errorf("FLASK_PORT must be between 1 and 65535, got %d", parsed)
		}

		port = parsed
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	return &Config{
		Port:        port,
		Environment: environment,
	}, nil
}

package params

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Log struct {
	// File is an optional path for a JSON log file written alongside console
	// output. Empty means console only.
	File    string
	Verbose bool
}

type Config struct {
	Log Log
}

func Default() Config {
	return Config{
		Log: Log{
			File:    "",
			Verbose: false,
		},
	}
}

// LoadFromEnv loads configuration from .env file (if exists) and environment variables
// Priority: ENV > .env file > defaults
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	// Try to load .env file (optional - won't fail if not exists)
	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load() // loads .env from current directory
	}

	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Verbose = b
		}
	}

	return cfg
}

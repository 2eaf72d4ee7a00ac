package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultOutput is the archive path used when neither flag nor environment
// supplies one.
const DefaultOutput = "comparison_results.zip"

// Config holds environment-driven defaults for the compare command.
type Config struct {
	Output string // default archive path
	LabelA string // default display name for the first file
	LabelB string // default display name for the second file
}

// Load reads defaults from the environment, optionally seeded from a .env
// file. A missing .env file is not an error; the environment alone suffices.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("load env file %s: %w", envFile, err)
			}
		}
	}
	return &Config{
		Output: getEnv("LINEDIFF_OUTPUT", DefaultOutput),
		LabelA: getEnv("LINEDIFF_LABEL_A", ""),
		LabelB: getEnv("LINEDIFF_LABEL_B", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultDotEnv is the dotenv file read from the working directory.
const DefaultDotEnv = ".env"

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv copies variables from dotenv files into the process environment.
// Missing files are skipped and variables already set in the environment are
// never overwritten.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load dotenv %s: %w", path, err)
		}
	}
	return nil
}

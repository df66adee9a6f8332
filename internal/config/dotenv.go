package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadDotEnv loads dir/.env and then dir/.local.env into the process environment.
// Variables already set in the environment win over .env; .local.env overrides both.
func LoadDotEnv(dir string) error {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	if err := godotenv.Overload(filepath.Join(dir, ".local.env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .local.env: %w", err)
	}
	return nil
}

// Dump renders the effective configuration as YAML with secrets redacted.
func Dump(c Config) ([]byte, error) {
	if c.Kafka.SASLPass != "" {
		c.Kafka.SASLPass = "********"
	}
	return yaml.Marshal(c)
}

// DumpTo writes Dump(c) to path, or stdout when path is empty.
func DumpTo(c Config, path string) error {
	b, err := Dump(c)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	SupportedSchema = "v1"
	EnvPrefix       = "KBRIDGE__"
)

type Retry struct {
	Initial    time.Duration `koanf:"initial" yaml:"initial"`
	Max        time.Duration `koanf:"max" yaml:"max"`
	MaxElapsed time.Duration `koanf:"max_elapsed" yaml:"max_elapsed"`
}

// Kafka is the ambient connection profile every client and admin handle is built from.
type Kafka struct {
	Brokers     []string      `koanf:"brokers" yaml:"brokers"`
	ClientID    string        `koanf:"client_id" yaml:"client_id"`
	Version     string        `koanf:"version" yaml:"version"`
	TLSEn       bool          `koanf:"tls_enabled" yaml:"tls_enabled"`
	SASLUser    string        `koanf:"sasl_user" yaml:"sasl_user"`
	SASLPass    string        `koanf:"sasl_pass" yaml:"sasl_pass"`
	DialTimeout time.Duration `koanf:"dial_timeout" yaml:"dial_timeout"`
	Retry       Retry         `koanf:"retry" yaml:"retry"`
}

type Executor struct {
	IOWorkers      int64 `koanf:"io_workers" yaml:"io_workers"`           // send, flush, next
	GeneralWorkers int64 `koanf:"general_workers" yaml:"general_workers"` // everything else
}

type SmartModule struct {
	EngineAddr string        `koanf:"engine_addr" yaml:"engine_addr"` // empty = smart modules disabled
	Timeout    time.Duration `koanf:"timeout" yaml:"timeout"`
}

type Transport struct {
	Listen string `koanf:"listen" yaml:"listen"`
}

type Telemetry struct {
	MetricsAddr string `koanf:"metrics_addr" yaml:"metrics_addr"` // empty = no endpoint
}

type Log struct {
	Level      string `koanf:"level" yaml:"level"`
	JSON       bool   `koanf:"json" yaml:"json"`
	File       string `koanf:"file" yaml:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days" yaml:"max_age_days"`
}

type Config struct {
	SchemaVersion string      `koanf:"schema_version" yaml:"schema_version"`
	Kafka         Kafka       `koanf:"kafka" yaml:"kafka"`
	Executor      Executor    `koanf:"executor" yaml:"executor"`
	SmartModule   SmartModule `koanf:"smartmodule" yaml:"smartmodule"`
	Transport     Transport   `koanf:"transport" yaml:"transport"`
	Telemetry     Telemetry   `koanf:"telemetry" yaml:"telemetry"`
	Log           Log         `koanf:"log" yaml:"log"`
}

// ---------------------------------------------------------------------------
// Loader
// ---------------------------------------------------------------------------

// Load merges YAML (if present) with env-vars
// (prefix `KBRIDGE__`, nesting delimiter `__`).
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	// schema version check (only when YAML is present)
	sv := k.String("schema_version")
	if sv != "" && sv != SupportedSchema {
		return Config{}, fmt.Errorf("config schema_version %q not supported (want %s)", sv, SupportedSchema)
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return Config{}, fmt.Errorf("config env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, cfg.Validate()
}

// KBRIDGE__KAFKA__SASL_USER -> kafka.sasl_user
func envValue(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ReplaceAll(strings.ToLower(key), "__", ".")
	if key == "kafka.brokers" {
		var out []string
		for _, b := range strings.Split(value, ",") {
			if b = strings.TrimSpace(b); b != "" {
				out = append(out, b)
			}
		}
		return key, out
	}
	return key, value
}

// ---------------------------------------------------------------------------
// defaults
// ---------------------------------------------------------------------------

func applyDefaults(c *Config) {
	if c.SchemaVersion == "" {
		c.SchemaVersion = SupportedSchema
	}
	if len(c.Kafka.Brokers) == 0 {
		c.Kafka.Brokers = []string{"localhost:9092"}
	}
	if c.Kafka.ClientID == "" {
		c.Kafka.ClientID = "kbridge"
	}
	if c.Kafka.Version == "" {
		c.Kafka.Version = "2.8.0"
	}
	if c.Kafka.DialTimeout == 0 {
		c.Kafka.DialTimeout = 10 * time.Second
	}
	if c.Kafka.Retry.Initial == 0 {
		c.Kafka.Retry.Initial = 200 * time.Millisecond
	}
	if c.Kafka.Retry.Max == 0 {
		c.Kafka.Retry.Max = 2 * time.Second
	}
	if c.Kafka.Retry.MaxElapsed == 0 {
		c.Kafka.Retry.MaxElapsed = 10 * time.Second
	}
	if c.Executor.IOWorkers == 0 {
		c.Executor.IOWorkers = 64
	}
	if c.Executor.GeneralWorkers == 0 {
		c.Executor.GeneralWorkers = 16
	}
	if c.SmartModule.Timeout == 0 {
		c.SmartModule.Timeout = 5 * time.Second
	}
	if c.Transport.Listen == "" {
		c.Transport.Listen = "127.0.0.1:7070"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 100
	}
}

func (c Config) Validate() error {
	if c.Executor.IOWorkers < 0 || c.Executor.GeneralWorkers < 0 {
		return fmt.Errorf("executor worker counts must be positive")
	}
	for _, b := range c.Kafka.Brokers {
		if !strings.Contains(b, ":") {
			return fmt.Errorf("kafka broker %q: want host:port", b)
		}
	}
	if c.Kafka.SASLUser != "" && c.Kafka.SASLPass == "" {
		return fmt.Errorf("kafka sasl_user set without sasl_pass")
	}
	return nil
}

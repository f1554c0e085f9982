// Package config holds the settings of the animals server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvAddr            = "ANIMALS_ADDR"
	EnvLogLevel        = "ANIMALS_LOG_LEVEL"
	EnvTracingExporter = "ANIMALS_TRACING_EXPORTER"
	EnvOTLPEndpoint    = "ANIMALS_OTLP_ENDPOINT"
)

// Tracing exporters.
const (
	ExporterNone        = "none"
	ExporterStdout      = "stdout"
	ExporterOTLP        = "otlp"
	ExporterOpenTracing = "opentracing"
)

type Config struct {
	Addr            string        `yaml:"addr" validate:"required"`
	Endpoint        string        `yaml:"endpoint" validate:"required,startswith=/"`
	GraphiQL        bool          `yaml:"graphiql"`
	Pretty          bool          `yaml:"pretty"`
	Introspection   bool          `yaml:"introspection"`
	MaxDepth        int           `yaml:"maxDepth" validate:"gte=0"`
	MaxParallelism  int           `yaml:"maxParallelism" validate:"gte=1"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" validate:"gt=0"`
	RateLimit       RateLimit     `yaml:"rateLimit"`
	Log             Log           `yaml:"log"`
	Tracing         Tracing       `yaml:"tracing"`
	Metrics         Metrics       `yaml:"metrics"`
}

// RateLimit configures the query token bucket. A zero rate disables limiting.
type RateLimit struct {
	RequestsPerSecond float64 `yaml:"requestsPerSecond" validate:"gte=0"`
	Burst             int     `yaml:"burst" validate:"gte=0"`
}

type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

type Tracing struct {
	Exporter    string `yaml:"exporter" validate:"oneof=none stdout otlp opentracing"`
	Endpoint    string `yaml:"endpoint" validate:"required_if=Exporter otlp"`
	ServiceName string `yaml:"serviceName" validate:"required"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path" validate:"omitempty,startswith=/"`
}

func Default() *Config {
	return &Config{
		Addr:            ":4000",
		Endpoint:        "/graphql",
		GraphiQL:        true,
		Introspection:   true,
		MaxDepth:        50,
		MaxParallelism:  10,
		ShutdownTimeout: 5 * time.Second,
		Log: Log{
			Level: "info",
		},
		Tracing: Tracing{
			Exporter:    ExporterNone,
			ServiceName: "animals",
		},
		Metrics: Metrics{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	c.applyEnv(os.LookupEnv)
	return c, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAddr); ok {
		c.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvTracingExporter); ok {
		c.Tracing.Exporter = v
	}
	if v, ok := lookup(EnvOTLPEndpoint); ok {
		c.Tracing.Endpoint = v
	}
}

// SetPort points Addr at port on all interfaces.
func (c *Config) SetPort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("config: invalid port %q", port)
	}
	c.Addr = ":" + strconv.Itoa(n)
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

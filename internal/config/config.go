// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Pipeline PipelineConfig
	Server   ServerConfig
	Logging  LoggingConfig
}

// PipelineConfig holds section build settings.
type PipelineConfig struct {
	// DataDir is the directory holding the survey exports (default: data)
	DataDir string `env:"SURVEY_DATA_DIR" envAlt:"DATA_DIR" default:"data"`

	// OutputPath is where the sections dataset is written (default: data/sections.json)
	OutputPath string `env:"SURVEY_OUTPUT_PATH" default:"data/sections.json"`

	// Workers is the number of files processed in parallel (default: 4)
	Workers int `env:"PIPELINE_WORKERS" default:"4"`

	// ExtractSource is the catalog source used for program extraction (default: oma_csv_13)
	ExtractSource string `env:"EXTRACT_SOURCE" default:"oma_csv_13"`

	// ProgramsPath is where the extracted program list is written (default: data/majors.json)
	ProgramsPath string `env:"PROGRAMS_OUTPUT_PATH" default:"data/majors.json"`
}

// ServerConfig holds HTTP server settings for the read API.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 15s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"15s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`

	// TrustedProxies lists the proxy CIDRs whose X-Real-IP and X-Forwarded-For
	// headers are believed. Comma-separated; empty means none.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string
	problems = append(problems, c.Pipeline.validate()...)
	problems = append(problems, c.Server.validate()...)
	problems = append(problems, c.Logging.validate()...)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  - %s", strings.Join(problems, "\n  - "))
}

func (p PipelineConfig) validate() []string {
	var out []string
	if strings.TrimSpace(p.DataDir) == "" {
		out = append(out, "SURVEY_DATA_DIR must not be empty")
	}
	if strings.TrimSpace(p.OutputPath) == "" {
		out = append(out, "SURVEY_OUTPUT_PATH must not be empty")
	}
	if p.Workers <= 0 {
		out = append(out, fmt.Sprintf("PIPELINE_WORKERS (%d) must be positive", p.Workers))
	}
	return out
}

func (s ServerConfig) validate() []string {
	var out []string
	if s.Port <= 0 || s.Port > 65535 {
		out = append(out, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", s.Port))
	}
	for _, t := range []struct {
		name string
		d    time.Duration
	}{
		{"SERVER_READ_TIMEOUT", s.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", s.WriteTimeout},
		{"SERVER_IDLE_TIMEOUT", s.IdleTimeout},
	} {
		if t.d < 0 {
			out = append(out, t.name+" must be non-negative")
		}
	}
	if s.ShutdownTimeout <= 0 {
		out = append(out, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if s.RequestTimeout <= 0 {
		out = append(out, "SERVER_REQUEST_TIMEOUT must be positive")
	}
	return out
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

func (l LoggingConfig) validate() []string {
	var out []string
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		out = append(out, fmt.Sprintf("LOG_LEVEL (%q) must be one of: %s", l.Level, strings.Join(logLevels, ", ")))
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		out = append(out, fmt.Sprintf("LOG_FORMAT (%q) must be one of: %s", l.Format, strings.Join(logFormats, ", ")))
	}
	return out
}

// String returns a compact, single-line summary for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Pipeline: {DataDir: %q, OutputPath: %q, Workers: %d}, Server: {Host: %q, Port: %d}, Logging: {Level: %q, Format: %q}}",
		c.Pipeline.DataDir, c.Pipeline.OutputPath, c.Pipeline.Workers,
		c.Server.Host, c.Server.Port,
		c.Logging.Level, c.Logging.Format)
}

// Package config loads service configuration from config.yaml with
// environment variable overrides. Secrets only ever come from the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for kintai-engine.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// MaxUploadBytes caps the size of an uploaded workbook.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES" env-default:"16777216"`

	// AI holds the LLM collaborator configuration.
	AI AIConfig `yaml:"ai"`
}

// AIConfig selects and configures the LLM provider. The pipeline runs
// without it; findings and reports then come from local validation only.
type AIConfig struct {
	// Provider is "openai" (any OpenAI-compatible endpoint) or "anthropic".
	Provider string `yaml:"provider" env:"AI_PROVIDER" env-default:"openai"`

	// BaseURL overrides the endpoint for OpenAI-compatible providers.
	BaseURL string `yaml:"base_url" env:"AI_BASE_URL" env-default:""`

	Model  string `yaml:"model" env:"AI_MODEL" env-default:""`
	APIKey string `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML

	MaxTokens      int `yaml:"max_tokens" env:"AI_MAX_TOKENS" env-default:"4096"`
	TimeoutSeconds int `yaml:"timeout_seconds" env:"AI_TIMEOUT_SECONDS" env-default:"60"`
}

// IsAvailable returns true if an LLM collaborator is configured.
func (c *AIConfig) IsAvailable() bool {
	return c.Provider != "" && c.Model != ""
}

// Timeout returns the per-call timeout as a duration.
func (c *AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from config.yaml with environment variable
// overrides, falling back to environment variables alone when the file
// does not exist. The version parameter is injected at build time and set
// on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	err := cleanenv.ReadConfig("config.yaml", cfg)
	if errors.Is(err, os.ErrNotExist) {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("max_upload_bytes must be positive, got %d", cfg.MaxUploadBytes)
	}

	return cfg, nil
}

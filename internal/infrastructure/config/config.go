package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Classifier providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Classifier prompting modes
const (
	ModeFewShot   = "few-shot"
	ModeFineTuned = "fine-tuned"
)

// ErrMissingAPIKey is returned by Load when no provider credential is set.
// The service refuses to start without one.
var ErrMissingAPIKey = errors.New("classifier API key is not set")

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Classifier ClassifierConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" env-default:"8080"`
	Mode string `env:"GIN_MODE" env-default:"debug"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// ClassifierConfig holds the sentiment provider configuration
type ClassifierConfig struct {
	Provider       string `env:"CLASSIFIER_PROVIDER" env-default:"openai"`
	Mode           string `env:"CLASSIFIER_MODE" env-default:"few-shot"`
	Model          string `env:"CLASSIFIER_MODEL" env-default:"gpt-4o-mini"`
	APIKey         string `env:"CLASSIFIER_API_KEY"`
	BaseURL        string `env:"CLASSIFIER_BASE_URL"`
	ExamplesCSV    string `env:"CLASSIFIER_EXAMPLES_CSV" env-default:"reviews.csv"`
	TimeoutSeconds int    `env:"CLASSIFIER_TIMEOUT_SECONDS" env-default:"30"`
}

// Timeout returns the upstream call timeout as a duration
func (c *ClassifierConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from the environment and validates it.
// A missing credential or an unknown provider/mode is fatal.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Classifier.APIKey == "" {
		return ErrMissingAPIKey
	}

	switch c.Classifier.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown classifier provider %q", c.Classifier.Provider)
	}

	switch c.Classifier.Mode {
	case ModeFewShot, ModeFineTuned:
	default:
		return fmt.Errorf("unknown classifier mode %q", c.Classifier.Mode)
	}

	if c.Classifier.TimeoutSeconds <= 0 {
		return fmt.Errorf("classifier timeout must be positive, got %d", c.Classifier.TimeoutSeconds)
	}

	return nil
}

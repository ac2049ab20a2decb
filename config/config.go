package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/medassist/internal/providers/llm"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type GoogleOptions struct {
	APIKey    string `env:"GOOGLE_API_KEY,required,notEmpty"`
	ProjectID string `env:"GOOGLE_CLOUD_PROJECT,required,notEmpty"`
	Location  string `env:"GOOGLE_CLOUD_LOCATION" envDefault:"us-central1"`
}

type ModelOptions struct {
	Name            string        `env:"NAME" envDefault:"gemini-1.5-pro"`
	Temperature     float32       `env:"TEMPERATURE" envDefault:"1"`
	TopP            float32       `env:"TOP_P" envDefault:"0.95"`
	TopK            int32         `env:"TOP_K" envDefault:"40"`
	MaxOutputTokens int32         `env:"MAX_OUTPUT_TOKENS" envDefault:"8192"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

type StoreOptions struct {
	Backend   string        `env:"CONVERSATION_STORE" envDefault:"memory"`
	TTL       time.Duration `env:"CONVERSATION_TTL" envDefault:"24h"`
	RedisAddr string        `env:"REDIS_ADDR"`
	RedisURL  string        `env:"REDIS_URL"`
}

// Redis returns the configured address or URL, address first.
func (s StoreOptions) Redis() string {
	if s.RedisAddr != "" {
		return s.RedisAddr
	}
	return s.RedisURL
}

type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	GinMode        string   `env:"GIN_MODE" envDefault:"release"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	SecureCookies  bool     `env:"SECURE_COOKIES" envDefault:"false"`

	Google GoogleOptions
	Model  ModelOptions `envPrefix:"MODEL_"`
	Store  StoreOptions
}

// Load reads an optional .env file, then the process environment.
// A missing model credential is an error; callers treat it as fatal.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: reading .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("config: unknown GIN_MODE %q (want debug, release or test)", cfg.GinMode)
	}

	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	switch cfg.Store.Backend {
	case StoreMemory:
	case StoreRedis:
		if cfg.Store.Redis() == "" {
			return nil, errors.New("config: REDIS_ADDR (or REDIS_URL) is required when CONVERSATION_STORE=redis")
		}
	default:
		return nil, fmt.Errorf("config: unknown CONVERSATION_STORE %q", cfg.Store.Backend)
	}
	return cfg, nil
}

func (c *Config) LLMOptions() llm.Options {
	return llm.Options{
		ProjectID:       c.Google.ProjectID,
		Location:        c.Google.Location,
		APIKey:          c.Google.APIKey,
		Model:           c.Model.Name,
		Temperature:     c.Model.Temperature,
		TopP:            c.Model.TopP,
		TopK:            c.Model.TopK,
		MaxOutputTokens: c.Model.MaxOutputTokens,
		Timeout:         c.Model.Timeout,
	}
}

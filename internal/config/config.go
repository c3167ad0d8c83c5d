// Package config loads the assistant's runtime configuration from the
// environment.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"

	"github.com/jonathan/icebutcher-assistant/internal/llm"
)

// Config holds every setting read from the environment
type Config struct {
	// HTTP listener
	Port int    `env:"PORT" envDefault:"5000"`
	Host string `env:"HOST"`

	// Providers
	OpenAIAPIKey  string       `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string       `env:"OPENAI_BASE_URL"`
	GeminiAPIKey  string       `env:"GEMINI_API_KEY"`
	Provider      llm.Provider `env:"LLM_PROVIDER" envDefault:"openai"`
	ChatModel     string       `env:"CHAT_MODEL" envDefault:"gpt-4o"`
	VisionModel   string       `env:"VISION_MODEL" envDefault:"gpt-4o"`
	ImageModel    string       `env:"IMAGE_MODEL" envDefault:"dall-e-3"`
	ImageSize     string       `env:"IMAGE_SIZE" envDefault:"1024x1024"`
	ImageQuality  string       `env:"IMAGE_QUALITY" envDefault:"hd"`

	// Knowledge assets
	FAQPath     string `env:"FAQ_PATH" envDefault:"faq.json"`
	CatalogPath string `env:"CATALOG_PATH" envDefault:"images2.json"`
	MatchLimit  int    `env:"MATCH_LIMIT" envDefault:"100"`

	// Uploads and static files
	UploadDir      string `env:"UPLOAD_DIR"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`
	StaticDir      string `env:"STATIC_DIR" envDefault:"static"`

	// Chatbot behavior
	CannedImageURL string        `env:"CANNED_IMAGE_URL" envDefault:"img.PNG"`
	DesignMarker   string        `env:"DESIGN_MARKER" envDefault:"https://theicebutcher.com/request/"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"0s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load reads .env if present, then parses the environment into Config.
func Load() (*Config, error) {
	// A missing .env is not an error
	_ = godotenv.Load()

	return Parse()
}

// Parse parses the current environment without touching .env
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges and the credentials required by the provider.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'PORT' must be between 1 and 65535, got %d", c.Port)
	}
	if c.MatchLimit < 0 {
		return fmt.Errorf("config error: 'MATCH_LIMIT' must be non-negative")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: 'MAX_UPLOAD_BYTES' must be positive")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config error: 'REQUEST_TIMEOUT' must be non-negative")
	}
	if c.FAQPath == "" || c.CatalogPath == "" {
		return fmt.Errorf("config error: 'FAQ_PATH' and 'CATALOG_PATH' are required")
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config error: 'LOG_FORMAT' must be console or json, got %q", c.LogFormat)
	}

	// Images are always generated through OpenAI
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("config error: 'OPENAI_API_KEY' is required")
	}

	switch c.Provider {
	case llm.ProviderOpenAI:
	case llm.ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("config error: 'GEMINI_API_KEY' is required when LLM_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("config error: unsupported 'LLM_PROVIDER' %q", c.Provider)
	}

	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LLMConfig builds the model configuration for the chat/vision provider.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.ConfigFor(c.Provider)
	if c.Provider == llm.ProviderOpenAI {
		cfg = cfg.WithModel(llm.TierChat, c.ChatModel).WithModel(llm.TierVision, c.VisionModel)
		cfg.BaseURL = c.OpenAIBaseURL
	}
	return c.withImageSettings(cfg)
}

// ImageConfig builds the OpenAI configuration used for image generation.
func (c *Config) ImageConfig() *llm.Config {
	cfg := llm.DefaultOpenAIConfig()
	cfg.BaseURL = c.OpenAIBaseURL
	return c.withImageSettings(cfg)
}

func (c *Config) withImageSettings(cfg *llm.Config) *llm.Config {
	cfg = cfg.WithModel(llm.TierImage, c.ImageModel)
	cfg.ImageSize = c.ImageSize
	cfg.ImageQuality = c.ImageQuality
	return cfg
}

// Keys returns the provider credentials
func (c *Config) Keys() llm.Keys {
	return llm.Keys{OpenAI: c.OpenAIAPIKey, Gemini: c.GeminiAPIKey}
}

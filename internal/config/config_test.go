package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/icebutcher-assistant/internal/llm"
)

func validConfig() *Config {
	return &Config{
		Port:           5000,
		OpenAIAPIKey:   "sk-test",
		Provider:       llm.ProviderOpenAI,
		ChatModel:      "gpt-4o",
		VisionModel:    "gpt-4o",
		ImageModel:     "dall-e-3",
		ImageSize:      "1024x1024",
		ImageQuality:   "hd",
		FAQPath:        "faq.json",
		CatalogPath:    "images2.json",
		MatchLimit:     100,
		MaxUploadBytes: 10 << 20,
		LogFormat:      "console",
	}
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, llm.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.ChatModel)
	assert.Equal(t, "dall-e-3", cfg.ImageModel)
	assert.Equal(t, "faq.json", cfg.FAQPath)
	assert.Equal(t, "images2.json", cfg.CatalogPath)
	assert.Equal(t, 100, cfg.MatchLimit)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "img.PNG", cfg.CannedImageURL)
	assert.Equal(t, "https://theicebutcher.com/request/", cfg.DesignMarker)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("MATCH_LIMIT", "5")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, llm.ProviderGemini, cfg.Provider)
	assert.Equal(t, 5, cfg.MatchLimit)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_InvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	_, err := Parse()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port too low", func(c *Config) { c.Port = 0 }, "'PORT'"},
		{"port too high", func(c *Config) { c.Port = 70000 }, "'PORT'"},
		{"negative limit", func(c *Config) { c.MatchLimit = -1 }, "'MATCH_LIMIT'"},
		{"zero limit allowed", func(c *Config) { c.MatchLimit = 0 }, ""},
		{"zero upload size", func(c *Config) { c.MaxUploadBytes = 0 }, "'MAX_UPLOAD_BYTES'"},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }, "'REQUEST_TIMEOUT'"},
		{"missing catalog path", func(c *Config) { c.CatalogPath = "" }, "'CATALOG_PATH'"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "'LOG_FORMAT'"},
		{"missing openai key", func(c *Config) { c.OpenAIAPIKey = "" }, "'OPENAI_API_KEY'"},
		{"gemini without key", func(c *Config) { c.Provider = llm.ProviderGemini }, "'GEMINI_API_KEY'"},
		{"gemini with key", func(c *Config) {
			c.Provider = llm.ProviderGemini
			c.GeminiAPIKey = "g-test"
		}, ""},
		{"unknown provider", func(c *Config) { c.Provider = "anthropic" }, "'LLM_PROVIDER'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, ":5000", cfg.Addr())

	cfg.Host = "127.0.0.1"
	cfg.Port = 8080
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}

func TestLLMConfig(t *testing.T) {
	t.Run("openai uses configured models", func(t *testing.T) {
		cfg := validConfig()
		cfg.ChatModel = "gpt-4o-mini"
		cfg.OpenAIBaseURL = "http://proxy.local/v1/"
		cfg.ImageQuality = "standard"

		got := cfg.LLMConfig()
		assert.Equal(t, llm.ProviderOpenAI, got.Provider)
		assert.Equal(t, "gpt-4o-mini", got.GetModel(llm.TierChat))
		assert.Equal(t, "gpt-4o", got.GetModel(llm.TierVision))
		assert.Equal(t, "http://proxy.local/v1/", got.BaseURL)
		assert.Equal(t, "standard", got.ImageQuality)
	})

	t.Run("gemini keeps its own chat models", func(t *testing.T) {
		cfg := validConfig()
		cfg.Provider = llm.ProviderGemini

		got := cfg.LLMConfig()
		assert.Equal(t, llm.ProviderGemini, got.Provider)
		assert.Equal(t, "gemini-2.5-flash", got.GetModel(llm.TierChat))
		assert.Empty(t, got.BaseURL)
	})
}

func TestImageConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Provider = llm.ProviderGemini
	cfg.ImageModel = "dall-e-2"
	cfg.ImageSize = "512x512"

	got := cfg.ImageConfig()
	assert.Equal(t, llm.ProviderOpenAI, got.Provider)
	assert.Equal(t, "dall-e-2", got.GetModel(llm.TierImage))
	assert.Equal(t, "512x512", got.ImageSize)
}

func TestKeys(t *testing.T) {
	cfg := validConfig()
	cfg.GeminiAPIKey = "g"
	assert.Equal(t, llm.Keys{OpenAI: "sk-test", Gemini: "g"}, cfg.Keys())
}

// Package llm provides centralized model configuration and client abstractions
// over the chat, vision and image-generation providers.
package llm

// ModelTier names the job a model is used for
type ModelTier string

const (
	// TierChat answers conversational prompts
	TierChat ModelTier = "chat"
	// TierVision describes uploaded images
	TierVision ModelTier = "vision"
	// TierImage generates images from text
	TierImage ModelTier = "image"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider (chat and vision only)
	ProviderGemini Provider = "gemini"
)

// Image generation defaults
const (
	DefaultImageSize    = "1024x1024"
	DefaultImageQuality = "hd"
)

// Config holds the model configuration for the application
type Config struct {
	Provider     Provider
	Models       map[ModelTier]string
	ImageSize    string
	ImageQuality string
	// BaseURL overrides the OpenAI endpoint, e.g. for a compatible proxy
	BaseURL string
}

// DefaultConfig returns the default configuration (currently OpenAI)
func DefaultConfig() *Config {
	return DefaultOpenAIConfig()
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierChat:   "gpt-4o",
			TierVision: "gpt-4o",
			TierImage:  "dall-e-3",
		},
		ImageSize:    DefaultImageSize,
		ImageQuality: DefaultImageQuality,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration. Images are
// still generated through OpenAI.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierChat:   "gemini-2.5-flash",
			TierVision: "gemini-2.5-flash",
			TierImage:  "dall-e-3",
		},
		ImageSize:    DefaultImageSize,
		ImageQuality: DefaultImageQuality,
	}
}

// ConfigFor returns the default configuration for a provider
func ConfigFor(provider Provider) *Config {
	if provider == ProviderGemini {
		return DefaultGeminiConfig()
	}
	return DefaultOpenAIConfig()
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok && model != "" {
		return model
	}
	// Vision falls back to the chat model
	if tier == TierVision {
		if model, ok := c.Models[TierChat]; ok {
			return model
		}
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := *c
	newConfig.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return &newConfig
}

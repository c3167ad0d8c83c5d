package llm

import (
	"context"
	"fmt"
)

// Image is an uploaded picture handed to a vision model
type Image struct {
	Data     []byte
	MIMEType string
}

// Client is an abstraction over chat and vision providers
type Client interface {
	// GenerateContent answers a text prompt using the model for tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// DescribeImage answers an instruction about an image using the model for tier
	DescribeImage(ctx context.Context, instruction string, img Image, tier ModelTier) (string, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// ImageGenerator produces an image from a text prompt and returns its URL
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Keys carries the provider credentials
type Keys struct {
	OpenAI string
	Gemini string
}

// NewClient creates the chat/vision client selected by config.Provider
func NewClient(ctx context.Context, config *Config, keys Keys) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(config, keys.OpenAI)
	case ProviderGemini:
		return NewGeminiClient(ctx, config, keys.Gemini)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

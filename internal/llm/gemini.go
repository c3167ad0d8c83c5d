package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &ExternalServiceError{Provider: ProviderGemini, Op: "client setup", Message: "API key is required"}
	}
	if config == nil {
		config = DefaultGeminiConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &ExternalServiceError{Provider: ProviderGemini, Op: "client setup", Cause: err}
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	model, err := c.model(tier)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &ExternalServiceError{Provider: ProviderGemini, Op: "generate content", Cause: err}
	}

	return extractTextFromResponse(resp, "generate content")
}

// DescribeImage sends the instruction and the image as one multimodal request
func (c *GeminiClient) DescribeImage(ctx context.Context, instruction string, img Image, tier ModelTier) (string, error) {
	model, err := c.model(tier)
	if err != nil {
		return "", err
	}

	mime := img.MIMEType
	if !strings.HasPrefix(mime, "image/") {
		mime = "image/jpeg"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(instruction), genai.Blob{MIMEType: mime, Data: img.Data})
	if err != nil {
		return "", &ExternalServiceError{Provider: ProviderGemini, Op: "describe image", Cause: err}
	}

	return extractTextFromResponse(resp, "describe image")
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *GeminiClient) model(tier ModelTier) (*genai.GenerativeModel, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return nil, &ExternalServiceError{
			Provider: ProviderGemini,
			Op:       "model selection",
			Message:  fmt.Sprintf("no model configured for tier %s", tier),
		}
	}
	return c.client.GenerativeModel(modelName), nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse, op string) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &ExternalServiceError{Provider: ProviderGemini, Op: op, Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ExternalServiceError{Provider: ProviderGemini, Op: op, Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &ExternalServiceError{Provider: ProviderGemini, Op: op, Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}

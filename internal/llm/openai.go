package llm

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient implements Client and ImageGenerator for OpenAI
type OpenAIClient struct {
	client openai.Client
	config *Config
}

// NewOpenAIClient creates a new OpenAI client. Requests are never retried.
func NewOpenAIClient(config *Config, apiKey string, opts ...option.RequestOption) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, &ExternalServiceError{Provider: ProviderOpenAI, Op: "client setup", Message: "API key is required"}
	}
	if config == nil {
		config = DefaultOpenAIConfig()
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(config.BaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	return &OpenAIClient{
		client: openai.NewClient(reqOpts...),
		config: config,
	}, nil
}

// GenerateContent sends prompt as a single user message
func (c *OpenAIClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.config.GetModel(tier)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}

	return c.complete(ctx, "chat completion", params)
}

// DescribeImage sends the instruction and the image, inlined as a base64
// data URL, in one user message
func (c *OpenAIClient) DescribeImage(ctx context.Context, instruction string, img Image, tier ModelTier) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.config.GetModel(tier)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfArrayOfContentParts: []openai.ChatCompletionContentPartUnionParam{
							{OfText: &openai.ChatCompletionContentPartTextParam{
								Text: instruction,
							}},
							{OfImageURL: &openai.ChatCompletionContentPartImageParam{
								ImageURL: openai.ChatCompletionContentPartImageImageURLParam{
									URL: DataURL(img),
								},
							}},
						},
					},
				},
			},
		},
	}

	return c.complete(ctx, "vision completion", params)
}

// GenerateImage requests one image and returns its URL
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:  prompt,
		Model:   openai.ImageModel(c.config.GetModel(TierImage)),
		N:       openai.Int(1),
		Size:    openai.ImageGenerateParamsSize(c.config.ImageSize),
		Quality: openai.ImageGenerateParamsQuality(c.config.ImageQuality),
	})
	if err != nil {
		return "", &ExternalServiceError{Provider: ProviderOpenAI, Op: "image generation", Cause: err}
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", &ExternalServiceError{Provider: ProviderOpenAI, Op: "image generation", Message: "no image URL in response"}
	}

	return resp.Data[0].URL, nil
}

// GetModel returns the model name for a tier
func (c *OpenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the HTTP transport is shared
func (c *OpenAIClient) Close() error {
	return nil
}

func (c *OpenAIClient) complete(ctx context.Context, op string, params openai.ChatCompletionNewParams) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", &ExternalServiceError{Provider: ProviderOpenAI, Op: op, Cause: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ExternalServiceError{Provider: ProviderOpenAI, Op: op, Message: "no choices in response"}
	}

	return resp.Choices[0].Message.Content, nil
}

// DataURL encodes an image as a data: URL. Unknown types are sent as JPEG.
func DataURL(img Image) string {
	mime := img.MIMEType
	if !strings.HasPrefix(mime, "image/") {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

package chatbot

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jonathan/icebutcher-assistant/internal/llm"
)

type mockAssistant struct {
	mock.Mock
}

func (m *mockAssistant) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	args := m.Called(ctx, prompt, tier)
	return args.String(0), args.Error(1)
}

func (m *mockAssistant) DescribeImage(ctx context.Context, instruction string, img llm.Image, tier llm.ModelTier) (string, error) {
	args := m.Called(ctx, instruction, img, tier)
	return args.String(0), args.Error(1)
}

func (m *mockAssistant) GetModel(tier llm.ModelTier) string {
	return "mock-" + string(tier)
}

func (m *mockAssistant) Close() error {
	return nil
}

type mockImages struct {
	mock.Mock
}

func (m *mockImages) GenerateImage(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

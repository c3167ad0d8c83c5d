// Package composer assembles the text prompts sent to the assistant and to
// the image generator.
package composer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jonathan/icebutcher-assistant/internal/knowledge"
	"github.com/jonathan/icebutcher-assistant/internal/prompts"
)

// Compose builds the conversational prompt: policy preamble, the full FAQ
// document, the matched catalog entries and the user's message, in that order.
// The result depends only on its arguments.
func Compose(userInput string, faq knowledge.FAQ, matches []knowledge.Item) (string, error) {
	faqText, err := faq.Indented()
	if err != nil {
		return "", fmt.Errorf("failed to serialize FAQ document: %w", err)
	}

	if matches == nil {
		matches = []knowledge.Item{}
	}
	sculptures, err := indentJSON(matches)
	if err != nil {
		return "", fmt.Errorf("failed to serialize catalog matches: %w", err)
	}

	return prompts.Format(prompts.MustGet(prompts.Chatbot, "conversation-context"), map[string]string{
		"Preamble":   Preamble(),
		"FAQ":        faqText,
		"Sculptures": sculptures,
		"Input":      userInput,
	}), nil
}

// Preamble returns the fixed role and link policy instructions.
func Preamble() string {
	return prompts.MustGet(prompts.Chatbot, "conversation-preamble")
}

// VisionInstruction is sent alongside an uploaded image.
func VisionInstruction() string {
	return prompts.MustGet(prompts.Chatbot, "vision-instruction")
}

// VisionGenerationPrompt turns an image description into a generation prompt.
func VisionGenerationPrompt(description string) string {
	return prompts.Format(prompts.MustGet(prompts.Chatbot, "vision-generation"), map[string]string{
		"Description": description,
	})
}

// KeywordGenerationPrompt wraps raw user text in the engraving style template.
func KeywordGenerationPrompt(userInput string) string {
	return prompts.Format(prompts.MustGet(prompts.Chatbot, "keyword-generation"), map[string]string{
		"Input": userInput,
	})
}

// ImageCaption accompanies a generated image URL.
func ImageCaption() string {
	return prompts.MustGet(prompts.Chatbot, "image-caption")
}

// indentJSON marshals v with two-space indentation and without HTML escaping.
func indentJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

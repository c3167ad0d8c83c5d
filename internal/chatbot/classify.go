// Package chatbot routes one chat request to vision analysis, direct image
// generation or the conversational assistant.
package chatbot

import (
	"io"
	"strings"
)

// GenerateKeyword sends a message straight to image generation when it
// starts the normalized text.
const GenerateKeyword = "generate"

// Mode is the handling path chosen for a request
type Mode int

const (
	// ModeConversational answers with text from the assistant
	ModeConversational Mode = iota
	// ModeDirectGeneration turns the message itself into an image prompt
	ModeDirectGeneration
	// ModeVisionAnalysis describes an uploaded image and generates from that
	ModeVisionAnalysis
)

func (m Mode) String() string {
	switch m {
	case ModeConversational:
		return "conversational"
	case ModeDirectGeneration:
		return "direct_generation"
	case ModeVisionAnalysis:
		return "vision_analysis"
	default:
		return "unknown"
	}
}

// Attachment is an image uploaded with a message
type Attachment struct {
	Filename string
	Content  io.Reader
}

// Input is one chat request as received from the form
type Input struct {
	Text  string
	Image *Attachment
}

// Normalized returns the text trimmed and lowercased
func (in Input) Normalized() string {
	return NormalizeText(in.Text)
}

// NormalizeText trims surrounding whitespace and lowercases s
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Classify picks the mode for in. An attached image always wins over the
// generate keyword.
func Classify(in Input) Mode {
	if in.Image != nil {
		return ModeVisionAnalysis
	}
	if strings.HasPrefix(in.Normalized(), GenerateKeyword) {
		return ModeDirectGeneration
	}
	return ModeConversational
}

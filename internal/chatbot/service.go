package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/icebutcher-assistant/internal/composer"
	"github.com/jonathan/icebutcher-assistant/internal/knowledge"
	"github.com/jonathan/icebutcher-assistant/internal/llm"
	"github.com/jonathan/icebutcher-assistant/internal/matching"
	"github.com/jonathan/icebutcher-assistant/internal/metrics"
)

// Defaults for Options fields left empty
const (
	DefaultDesignMarker   = "https://theicebutcher.com/request/"
	DefaultCannedImageURL = "img.PNG"
)

// Options tunes the routing behavior
type Options struct {
	// MatchLimit is the number of distinct catalog names put in the prompt
	MatchLimit int
	// DesignMarker in a vision description means the assistant pointed at the
	// custom-order page instead of describing the image
	DesignMarker string
	// CannedImageURL is returned when DesignMarker is seen
	CannedImageURL string
	// UploadDir holds uploaded images while they are processed
	UploadDir string
	// MaxUploadBytes caps the stored image size; zero means no cap
	MaxUploadBytes int64
}

// DefaultOptions returns the options the service runs with out of the box
func DefaultOptions() Options {
	return Options{
		MatchLimit:     matching.DefaultLimit,
		DesignMarker:   DefaultDesignMarker,
		CannedImageURL: DefaultCannedImageURL,
	}
}

type handlerFunc func(ctx context.Context, in Input) (Reply, error)

// Service answers chat requests. It holds no per-request state and is safe
// for concurrent use.
type Service struct {
	assistant llm.Client
	images    llm.ImageGenerator
	kb        *knowledge.Base
	index     *matching.Index
	opts      Options
	handlers  map[Mode]handlerFunc
}

// NewService builds the catalog index from kb and wires the mode handlers.
func NewService(assistant llm.Client, images llm.ImageGenerator, kb *knowledge.Base, opts Options) (*Service, error) {
	if assistant == nil || images == nil {
		return nil, fmt.Errorf("chatbot: assistant and image generator are required")
	}
	if kb == nil {
		return nil, fmt.Errorf("chatbot: knowledge base is required")
	}
	if opts.MatchLimit < 0 {
		return nil, &matching.ValidationError{Message: fmt.Sprintf("limit must be non-negative, got %d", opts.MatchLimit)}
	}

	index, err := matching.NewIndex(kb.Catalog)
	if err != nil {
		return nil, err
	}

	s := &Service{
		assistant: assistant,
		images:    images,
		kb:        kb,
		index:     index,
		opts:      opts,
	}
	s.handlers = map[Mode]handlerFunc{
		ModeVisionAnalysis:   s.handleVision,
		ModeDirectGeneration: s.handleDirectGeneration,
		ModeConversational:   s.handleConversation,
	}
	return s, nil
}

// Handle classifies in and runs the matching handler.
func (s *Service) Handle(ctx context.Context, in Input) (Reply, error) {
	mode := Classify(in)
	metrics.ChatbotRequests.WithLabelValues(mode.String()).Inc()

	zerolog.Ctx(ctx).Debug().Str("mode", mode.String()).Msg("routing chatbot request")

	reply, err := s.handlers[mode](ctx, in)
	if err != nil {
		metrics.ChatbotFailures.WithLabelValues(mode.String()).Inc()
		return Reply{}, err
	}
	return reply, nil
}

func (s *Service) handleVision(ctx context.Context, in Input) (Reply, error) {
	var description string
	err := withUpload(s.opts.UploadDir, s.opts.MaxUploadBytes, in.Image, func(img llm.Image) error {
		start := time.Now()
		var err error
		description, err = s.assistant.DescribeImage(ctx, composer.VisionInstruction(), img, llm.TierVision)
		metrics.ObserveExternalCall("describe_image", start, err)
		return err
	})
	if err != nil {
		return Reply{}, err
	}

	if s.opts.DesignMarker != "" && strings.Contains(description, s.opts.DesignMarker) {
		zerolog.Ctx(ctx).Info().Msg("vision description points at an existing design")
		return Reply{ImageURL: s.opts.CannedImageURL}, nil
	}

	return s.generate(ctx, composer.VisionGenerationPrompt(description))
}

func (s *Service) handleDirectGeneration(ctx context.Context, in Input) (Reply, error) {
	return s.generate(ctx, composer.KeywordGenerationPrompt(in.Normalized()))
}

func (s *Service) handleConversation(ctx context.Context, in Input) (Reply, error) {
	text := in.Normalized()

	matches, err := s.index.Match(text, s.opts.MatchLimit)
	if err != nil {
		return Reply{}, err
	}
	zerolog.Ctx(ctx).Debug().Int("matches", len(matches)).Msg("matched catalog entries")

	prompt, err := composer.Compose(text, s.kb.FAQ, matches)
	if err != nil {
		return Reply{}, err
	}

	start := time.Now()
	answer, err := s.assistant.GenerateContent(ctx, prompt, llm.TierChat)
	metrics.ObserveExternalCall("chat", start, err)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Response: answer}, nil
}

func (s *Service) generate(ctx context.Context, prompt string) (Reply, error) {
	start := time.Now()
	url, err := s.images.GenerateImage(ctx, prompt)
	metrics.ObserveExternalCall("generate_image", start, err)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Response: composer.ImageCaption(), ImageURL: url}, nil
}

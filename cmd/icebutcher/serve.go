package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/icebutcher-assistant/internal/chatbot"
	"github.com/jonathan/icebutcher-assistant/internal/config"
	"github.com/jonathan/icebutcher-assistant/internal/knowledge"
	"github.com/jonathan/icebutcher-assistant/internal/llm"
	"github.com/jonathan/icebutcher-assistant/internal/logging"
	"github.com/jonathan/icebutcher-assistant/internal/server"
)

var (
	servePort    int
	serveCatalog string
	serveFAQ     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chatbot HTTP server",
	Long:  `Load the catalog and FAQ, connect to the model providers and serve the chat page and the /chatbot endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from PORT, else 5000)")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to the sculpture catalog JSON (default from CATALOG_PATH)")
	serveCmd.Flags().StringVar(&serveFAQ, "faq", "", "Path to the FAQ JSON (default from FAQ_PATH)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveCatalog != "" {
		cfg.CatalogPath = serveCatalog
	}
	if serveFAQ != "" {
		cfg.FAQPath = serveFAQ
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	ctx := log.Logger.WithContext(cmd.Context())

	kb, err := knowledge.Load(ctx, cfg.CatalogPath, cfg.FAQPath)
	if err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}

	assistant, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.Keys())
	if err != nil {
		return fmt.Errorf("failed to create assistant client: %w", err)
	}
	defer func() { _ = assistant.Close() }()

	images, err := llm.NewOpenAIClient(cfg.ImageConfig(), cfg.OpenAIAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create image client: %w", err)
	}

	opts := chatbot.DefaultOptions()
	opts.MatchLimit = cfg.MatchLimit
	opts.DesignMarker = cfg.DesignMarker
	opts.CannedImageURL = cfg.CannedImageURL
	opts.UploadDir = cfg.UploadDir
	opts.MaxUploadBytes = cfg.MaxUploadBytes

	bot, err := chatbot.NewService(assistant, images, kb, opts)
	if err != nil {
		return fmt.Errorf("failed to create chatbot: %w", err)
	}

	log.Info().
		Str("provider", string(cfg.Provider)).
		Str("chat_model", assistant.GetModel(llm.TierChat)).
		Int("catalog_items", len(kb.Catalog)).
		Msg("chatbot ready")

	srv := server.New(server.Config{
		Addr:           cfg.Addr(),
		StaticDir:      cfg.StaticDir,
		MaxUploadBytes: cfg.MaxUploadBytes,
		RequestTimeout: cfg.RequestTimeout,
	}, bot)

	return srv.Start(ctx)
}

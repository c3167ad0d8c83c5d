package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/icebutcher-assistant/internal/chatbot"
	"github.com/jonathan/icebutcher-assistant/internal/composer"
	"github.com/jonathan/icebutcher-assistant/internal/knowledge"
	"github.com/jonathan/icebutcher-assistant/internal/matching"
	"github.com/jonathan/icebutcher-assistant/internal/observability"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <message>",
	Short: "Print the prompt the chatbot would send for a message",
	Long: `Builds the prompt for a chat message without calling any model: the
conversational context prompt by default, or the image generation prompt when
the message starts with "generate".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrompt,
}

var (
	promptCatalog string
	promptFAQ     string
	promptLimit   int
	promptSummary bool
)

func init() {
	promptCmd.Flags().StringVar(&promptCatalog, "catalog", "", "Path to the sculpture catalog JSON (default from CATALOG_PATH)")
	promptCmd.Flags().StringVar(&promptFAQ, "faq", "", "Path to the FAQ JSON (default from FAQ_PATH)")
	promptCmd.Flags().IntVarP(&promptLimit, "limit", "n", matching.DefaultLimit, "Number of distinct catalog names to include")
	promptCmd.Flags().BoolVar(&promptSummary, "summary", false, "Print a size summary to stderr")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	in := chatbot.Input{Text: strings.Join(args, " ")}
	text := in.Normalized()

	var prompt string
	matched := 0

	switch chatbot.Classify(in) {
	case chatbot.ModeDirectGeneration:
		prompt = composer.KeywordGenerationPrompt(text)
	default:
		catalogPath, faqPath, err := assetPaths(promptCatalog, promptFAQ)
		if err != nil {
			return err
		}

		kb, err := knowledge.Load(cmd.Context(), catalogPath, faqPath)
		if err != nil {
			return err
		}

		matches, err := matching.Match(text, kb.Catalog, promptLimit)
		if err != nil {
			return err
		}
		matched = len(matches)

		prompt, err = composer.Compose(text, kb.FAQ, matches)
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), prompt); err != nil {
		return err
	}
	if promptSummary {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintPromptSummary(prompt, matched)
	}
	return nil
}

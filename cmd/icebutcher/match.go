package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/icebutcher-assistant/internal/chatbot"
	"github.com/jonathan/icebutcher-assistant/internal/knowledge"
	"github.com/jonathan/icebutcher-assistant/internal/matching"
	"github.com/jonathan/icebutcher-assistant/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match <query>",
	Short: "Rank catalog sculptures against a query",
	Long:  "Scores every distinct catalog name against the query the same way the chatbot does and prints the ranking, or the matched entries as JSON.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMatch,
}

var (
	matchCatalog string
	matchLimit   int
	matchAll     bool
	matchJSON    bool
)

func init() {
	matchCmd.Flags().StringVar(&matchCatalog, "catalog", "", "Path to the sculpture catalog JSON (default from CATALOG_PATH)")
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "n", matching.DefaultLimit, "Number of distinct names to keep")
	matchCmd.Flags().BoolVar(&matchAll, "all", false, "List every ranked name")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print the matched catalog entries as JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	catalogPath, _, err := assetPaths(matchCatalog, "")
	if err != nil {
		return err
	}

	items, err := knowledge.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	index, err := matching.NewIndex(items)
	if err != nil {
		return err
	}

	query := chatbot.NormalizeText(strings.Join(args, " "))

	if matchJSON {
		matches, err := index.Match(query, matchLimit)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal matches to JSON: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	}

	ranked, err := index.Rank(query, matchLimit)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintRanking(query, ranked, matchAll)
	return nil
}

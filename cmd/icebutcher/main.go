// Package main provides the entry point for the Ice Butcher assistant.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "icebutcher",
	Short: "Ice Butcher customer-support and sculpture-visualization assistant",
	Long:  "Serves the Ice Butcher chatbot: FAQ and catalog aware answers, image analysis and ice sculpture image generation.",
	// Errors are printed once by main
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "weather-ai",
	Short: "Weather AI - Sportscaster weather forecasts",
	Long: `Weather AI turns a location into a five day weather forecast delivered
as energetic play-by-play sports commentary.

It serves forecasts over HTTP or prints them straight to the terminal,
using an LLM to call each day like the big game it is.`,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

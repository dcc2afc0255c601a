package cmd

import (
	"context"
	"fmt"

	"github.com/brianleepetros/weather-ai/internal/forecast"
	"github.com/brianleepetros/weather-ai/internal/llm"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var forecastModel string

var forecastCmd = &cobra.Command{
	Use:   "forecast [location]",
	Short: "Print a five day forecast for a location",
	Long: `Generate a five day weather forecast for a location, delivered as
energetic play-by-play sports commentary.

Required environment variables:
  OPENAI_API_KEY - OpenAI API key for the completion client

Examples:
  weather-ai forecast "Buenos Aires"
  weather-ai forecast Reykjavik --model gpt-4o`,
	Args: cobra.ExactArgs(1),
	RunE: runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
	forecastCmd.Flags().StringVar(&forecastModel, "model", "", "Model id to use (overrides OPENAI_MODEL)")
}

func runForecast(cmd *cobra.Command, args []string) error {
	location := args[0]
	ctx := context.Background()

	config, err := completionConfigFromEnv()
	if err != nil {
		return err
	}
	if forecastModel != "" {
		config.Model = forecastModel
	}

	client, err := llm.NewOpenAIClient(config)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}

	// Styling
	var (
		headerColor   = lipgloss.Color("#F780FF") // Bright pink
		locationColor = lipgloss.Color("#8BE9FD") // Cyan
		dayColor      = lipgloss.Color("#BD93F9") // Purple
		textColor     = lipgloss.Color("#E9E9F4") // Light purple/white
	)

	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true)

	locationStyle := lipgloss.NewStyle().
		Foreground(locationColor).
		Italic(true)

	dayStyle := lipgloss.NewStyle().
		Foreground(dayColor).
		Bold(true)

	textStyle := lipgloss.NewStyle().
		Foreground(textColor)

	fmt.Println()
	fmt.Println(headerStyle.Render("Forecast:"))
	fmt.Println(locationStyle.Render(location))
	fmt.Println()

	generator := forecast.NewGenerator(client)
	f, err := generator.Generate(ctx, location)
	if err != nil {
		return fmt.Errorf("forecast failed: %w", err)
	}

	for i, commentary := range f.Days() {
		fmt.Println(dayStyle.Render(fmt.Sprintf("Day %d", i+1)))
		fmt.Println(textStyle.Render(commentary))
		fmt.Println()
	}

	return nil
}

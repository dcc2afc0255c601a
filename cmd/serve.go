package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/brianleepetros/weather-ai/internal/forecast"
	"github.com/brianleepetros/weather-ai/internal/llm"
	"github.com/brianleepetros/weather-ai/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the forecast HTTP server",
	Long: `Start the HTTP server that turns locations into five day forecasts.

Endpoints:
  POST /forecast  - {"location": "<place>"} in, {"result": {"day1".."day5"}} out
  GET  /healthz   - liveness probe

Required environment variables:
  OPENAI_API_KEY     - OpenAI API key for the completion client

Optional environment variables:
  PORT               - listen port (default: 3001)
  OPENAI_MODEL       - model id (default: gpt-4o-mini)
  OPENAI_BASE_URL    - alternate API endpoint, e.g. a local proxy
  OPENAI_JSON_OUTPUT - "1" or "true" to request JSON mode from the provider

Examples:
  weather-ai serve
  weather-ai serve --port 8080
  PORT=8080 weather-ai serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := completionConfigFromEnv()
	if err != nil {
		return err
	}

	client, err := llm.NewOpenAIClient(config)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}

	generator := forecast.NewGenerator(client)
	srv := server.NewServer(generator)

	port := servePort
	if port == 0 {
		port = listenPort()
	}

	// The write window covers an initial model call plus one repair call.
	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("[server] listening on :%d (model %s)", port, config.Model)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[server] listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("[server] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(ctx)
}

// listenPort resolves the port from the PORT environment variable,
// falling back to 3001.
func listenPort() int {
	raw := os.Getenv("PORT")
	if raw == "" {
		return 3001
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port <= 0 {
		log.Printf("[server] ignoring invalid PORT %q, using 3001", raw)
		return 3001
	}
	return port
}

// completionConfigFromEnv assembles the completion client configuration from
// the environment. A missing API key is an error, so the process refuses to
// start instead of failing on the first request.
func completionConfigFromEnv() (llm.Config, error) {
	config := llm.DefaultConfig()

	config.APIKey = os.Getenv("OPENAI_API_KEY")
	if config.APIKey == "" {
		return llm.Config{}, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		config.Model = model
	}
	config.BaseURL = os.Getenv("OPENAI_BASE_URL")

	switch strings.ToLower(os.Getenv("OPENAI_JSON_OUTPUT")) {
	case "1", "true", "yes":
		config.JSONOutput = true
	}

	return config, nil
}

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient implements the Completer interface using OpenAI's API.
type OpenAIClient struct {
	client openai.Client
	config Config
}

// NewOpenAIClient creates an OpenAI-backed completer.
// Returns an error if the API key is missing or the model name is empty.
func NewOpenAIClient(config Config) (*OpenAIClient, error) {
	// Use config API key or fall back to environment variable
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key (set OPENAI_API_KEY or provide in config)", ErrInvalidConfig)
	}
	if config.Model == "" {
		return nil, fmt.Errorf("%w: missing model name", ErrInvalidConfig)
	}
	config.APIKey = apiKey

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		config: config,
	}, nil
}

// Complete sends the prompt to OpenAI and returns the raw completion.
func (o *OpenAIClient) Complete(ctx context.Context, prompt string) (Completion, error) {
	if prompt == "" {
		return Completion{}, fmt.Errorf("%w: prompt cannot be empty", ErrInvalidConfig)
	}

	// Bound the round trip unless the caller already set a deadline.
	if _, ok := ctx.Deadline(); !ok && o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(float64(o.config.Temperature)),
	}
	if o.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(o.config.MaxTokens))
	}
	if o.config.JSONOutput {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	// Call the OpenAI API
	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return Completion{}, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	// Validate the response
	if len(completion.Choices) == 0 {
		return Completion{}, fmt.Errorf("%w: no response generated", ErrCompletionFailed)
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)

	// With JSON output enabled the provider promises a bare object; hand
	// consumers the decoded form when the promise holds.
	if o.config.JSONOutput {
		var obj map[string]any
		if err := json.Unmarshal([]byte(content), &obj); err == nil {
			return StructuredCompletion(obj), nil
		}
	}

	return TextCompletion(content), nil
}

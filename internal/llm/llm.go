// Package llm provides the completion client used to generate forecasts.
// It defines a provider-agnostic Completer interface with a concrete
// implementation for OpenAI and a deterministic mock for testing. Raw model
// output is carried as a tagged Completion so downstream parsing can resolve
// the text and pre-decoded forms explicitly.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrCompletionFailed = errors.New("completion request failed")
	ErrInvalidConfig    = errors.New("invalid completion configuration")
)

// Completer defines the interface for requesting model completions.
// Implementations must be stateless and safe for concurrent use.
type Completer interface {
	// Complete sends a prompt to the configured model and returns its raw
	// output. Provider failures wrap ErrCompletionFailed and are not retried.
	Complete(ctx context.Context, prompt string) (Completion, error)
}

// CompletionKind tags the two forms a raw model response can take.
type CompletionKind int

const (
	// CompletionText is plain response text that still needs decoding.
	CompletionText CompletionKind = iota

	// CompletionStructured is a response the client already decoded into an
	// object, e.g. when provider-side JSON output was requested.
	CompletionStructured
)

// Completion is the raw model output before any schema validation. Consumers
// switch on Kind rather than type-asserting; exactly one of Text or Object is
// meaningful. A Completion lives only for the request that produced it.
type Completion struct {
	Kind   CompletionKind
	Text   string
	Object map[string]any
}

// TextCompletion wraps plain model text.
func TextCompletion(text string) Completion {
	return Completion{Kind: CompletionText, Text: text}
}

// StructuredCompletion wraps a pre-decoded response object.
func StructuredCompletion(obj map[string]any) Completion {
	return Completion{Kind: CompletionStructured, Object: obj}
}

// String renders the completion as text, re-encoding the structured arm.
// Used when quoting prior model output back to the model.
func (c Completion) String() string {
	if c.Kind == CompletionStructured {
		b, err := json.Marshal(c.Object)
		if err != nil {
			return fmt.Sprintf("%v", c.Object)
		}
		return string(b)
	}
	return c.Text
}

// Config holds common configuration options for completion providers.
type Config struct {
	// Model specifies the model identifier (e.g., "gpt-4o-mini")
	Model string

	// Temperature controls randomness; 0 selects the provider's
	// least-random sampling and is always sent, never treated as unset
	Temperature float32

	// MaxTokens limits the response length (0 = use provider default)
	MaxTokens int

	// APIKey is the authentication key for the provider
	APIKey string

	// BaseURL overrides the provider endpoint, e.g. for a proxy
	BaseURL string

	// Timeout bounds each provider round trip when the caller's context
	// carries no deadline (0 = unbounded)
	Timeout time.Duration

	// JSONOutput asks the provider for a bare JSON object response and
	// lets the client pre-decode it into the structured completion arm
	JSONOutput bool
}

// DefaultConfig returns sensible defaults for forecast generation.
func DefaultConfig() Config {
	return Config{
		Model:       "gpt-4o-mini",
		Temperature: 0,
		MaxTokens:   1024,
		Timeout:     30 * time.Second,
	}
}

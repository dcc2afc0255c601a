package llm

import "context"

// MockCompleter is a deterministic Completer implementation for testing.
// Responses are served in call order, with the last one repeating once the
// queue runs out, so multi-call flows like repair can be scripted.
type MockCompleter struct {
	// Responses are returned by successive Complete calls.
	Responses []Completion

	// Err, if set, is returned by every Complete call instead of a response.
	Err error

	// Errs, if set, are per-call errors: call i fails with Errs[i] when
	// that entry is non-nil. Lets a later call fail after earlier successes.
	Errs []error

	// Prompts records every prompt passed to Complete, in call order.
	Prompts []string
}

// NewMockCompleter creates a mock that always returns the given text.
func NewMockCompleter(text string) *MockCompleter {
	return &MockCompleter{Responses: []Completion{TextCompletion(text)}}
}

// NewMockCompleterWithError creates a mock whose calls always fail.
func NewMockCompleterWithError(err error) *MockCompleter {
	return &MockCompleter{Err: err}
}

// Complete returns the next scripted response or error.
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (Completion, error) {
	i := len(m.Prompts)
	m.Prompts = append(m.Prompts, prompt)

	if m.Err != nil {
		return Completion{}, m.Err
	}
	if i < len(m.Errs) && m.Errs[i] != nil {
		return Completion{}, m.Errs[i]
	}
	if len(m.Responses) == 0 {
		return TextCompletion(""), nil
	}
	if i >= len(m.Responses) {
		i = len(m.Responses) - 1
	}
	return m.Responses[i], nil
}

// LastPrompt returns the most recent prompt, or "" before any call.
func (m *MockCompleter) LastPrompt() string {
	if len(m.Prompts) == 0 {
		return ""
	}
	return m.Prompts[len(m.Prompts)-1]
}

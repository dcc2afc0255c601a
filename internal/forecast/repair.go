package forecast

import (
	"context"
	"fmt"
	"log"

	"github.com/brianleepetros/weather-ai/internal/llm"
)

// Validator drives the parse-then-repair step of the pipeline. When the
// direct parse fails it asks the model exactly once to reformat its own
// prior output, then gives up.
type Validator struct {
	parser       *Parser
	completer    llm.Completer
	instructions string
}

// NewValidator creates a validator that repairs through the given completer,
// using the same model configuration as the original call.
func NewValidator(parser *Parser, completer llm.Completer, instructions string) *Validator {
	return &Validator{
		parser:       parser,
		completer:    completer,
		instructions: instructions,
	}
}

// ValidateOrRepair parses raw model output against the forecast schema,
// issuing at most one repair call when the direct parse fails. A provider
// failure during the repair call surfaces as that provider error; a second
// parse failure surfaces as the final parse error.
func (v *Validator) ValidateOrRepair(ctx context.Context, raw llm.Completion) (*Forecast, error) {
	f, parseErr := v.parser.Parse(raw)
	if parseErr == nil {
		return f, nil
	}

	log.Printf("[forecast] direct parse failed, attempting repair: %v", parseErr)

	prompt := BuildRepairPrompt(raw.String(), parseErr.Error(), v.instructions)
	repaired, err := v.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("repair call failed: %w", err)
	}

	f, err = v.parser.Parse(repaired)
	if err != nil {
		return nil, fmt.Errorf("output still malformed after repair: %w", err)
	}

	log.Printf("[forecast] repair produced a conforming forecast")
	return f, nil
}

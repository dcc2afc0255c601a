package forecast

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/brianleepetros/weather-ai/internal/llm"
)

// ErrGenerationFailed indicates the forecast pipeline could not produce a
// conforming forecast. The underlying cause is wrapped and remains reachable
// through errors.Is.
var ErrGenerationFailed = errors.New("forecast generation failed")

// Generator runs the full pipeline for one location: build the prompt, call
// the model, validate the output, repair once if needed.
type Generator struct {
	completer    llm.Completer
	schema       Schema
	instructions string
	validator    *Validator
}

// NewGenerator creates a generator backed by the given completion client.
// The same client serves both the initial call and the repair call.
func NewGenerator(completer llm.Completer) *Generator {
	schema := DefaultSchema()
	instructions := schema.FormatInstructions()
	return &Generator{
		completer:    completer,
		schema:       schema,
		instructions: instructions,
		validator:    NewValidator(NewParser(schema), completer, instructions),
	}
}

// Generate produces a five day forecast for the given location.
func (g *Generator) Generate(ctx context.Context, location string) (*Forecast, error) {
	if g.completer == nil {
		return nil, fmt.Errorf("%w: no completion client configured", ErrGenerationFailed)
	}

	prompt := BuildPrompt(location, g.instructions)

	log.Printf("[forecast] requesting forecast for %q", location)
	raw, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	f, err := g.validator.ValidateOrRepair(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	log.Printf("[forecast] forecast for %q ready", location)
	return f, nil
}

package forecast

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/brianleepetros/weather-ai/internal/llm"
)

var (
	ErrUnparsableOutput = errors.New("model output is not valid JSON")
)

// Parser decodes raw completions against a forecast schema. It resolves the
// two completion arms explicitly: structured output is validated directly,
// text output is decoded as JSON first.
type Parser struct {
	schema Schema
}

// NewParser creates a parser for the given schema.
func NewParser(schema Schema) *Parser {
	return &Parser{schema: schema}
}

// Parse validates a raw completion and returns the conforming forecast.
// Undecodable text wraps ErrUnparsableOutput; a decoded object that misses
// required keys or carries non-string values wraps ErrSchemaViolation.
func (p *Parser) Parse(raw llm.Completion) (*Forecast, error) {
	switch raw.Kind {
	case llm.CompletionStructured:
		return p.schema.Validate(raw.Object)
	case llm.CompletionText:
		obj, err := decodeObject(raw.Text)
		if err != nil {
			return nil, err
		}
		return p.schema.Validate(obj)
	default:
		return nil, fmt.Errorf("%w: unknown completion kind %d", ErrUnparsableOutput, raw.Kind)
	}
}

// decodeObject extracts a JSON object from free-form model text. Models
// sometimes wrap the object in markdown fences or surrounding prose despite
// the format instructions, so the outermost brace span is sliced out before
// decoding.
func decodeObject(text string) (map[string]any, error) {
	s := stripFences(strings.TrimSpace(text))

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object found", ErrUnparsableOutput)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(s[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableOutput, err)
	}
	return obj, nil
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(s string) string {
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Package forecast implements the forecast generation pipeline: a fixed
// output schema, prompt assembly, parsing of raw model output, a single
// repair pass for nonconforming output, and the generator that ties the
// stages together. Everything here is immutable after construction and safe
// for concurrent use.
package forecast

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSchemaViolation = errors.New("output does not match the forecast schema")
)

// Forecast is a validated five-day forecast. Each day holds free-form
// commentary text that opens with that day's calendar date and day of week.
type Forecast struct {
	Day1 string `json:"day1"`
	Day2 string `json:"day2"`
	Day3 string `json:"day3"`
	Day4 string `json:"day4"`
	Day5 string `json:"day5"`
}

// Days returns the five commentary entries in day order.
func (f *Forecast) Days() []string {
	return []string{f.Day1, f.Day2, f.Day3, f.Day4, f.Day5}
}

// Field is one required entry in a forecast schema.
type Field struct {
	Name        string
	Description string
}

// Schema declares the required shape of a generated forecast: a JSON object
// carrying exactly these string-valued keys. Additional keys in model output
// are tolerated and dropped during validation.
type Schema struct {
	fields []Field
}

// DefaultSchema returns the fixed five-day forecast schema.
func DefaultSchema() Schema {
	ordinals := []string{"first", "second", "third", "fourth", "fifth"}

	fields := make([]Field, len(ordinals))
	for i, ord := range ordinals {
		fields[i] = Field{
			Name: fmt.Sprintf("day%d", i+1),
			Description: fmt.Sprintf(
				"forecast commentary for the %s day, opening with its calendar date and day of the week", ord),
		}
	}
	return Schema{fields: fields}
}

// Fields returns the schema's required fields in order.
func (s Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// FormatInstructions renders the schema as natural-language formatting
// instructions suitable for embedding in a prompt, so the model is told how
// to shape its answer.
func (s Schema) FormatInstructions() string {
	var b strings.Builder

	b.WriteString("Respond with a JSON object and nothing else. ")
	b.WriteString("The object must contain exactly the following keys, each holding a string value:\n\n")
	b.WriteString("{\n")
	for i, field := range s.fields {
		b.WriteString(fmt.Sprintf("  %q: %q", field.Name, field.Description))
		if i < len(s.fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
	b.WriteString("Do not wrap the JSON in markdown code fences and do not add any text before or after it.")

	return b.String()
}

// Validate checks that the candidate object carries every required key with
// a string value and returns the resulting Forecast.
func (s Schema) Validate(obj map[string]any) (*Forecast, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: no object to validate", ErrSchemaViolation)
	}

	values := make(map[string]string, len(s.fields))
	for _, field := range s.fields {
		v, ok := obj[field.Name]
		if !ok {
			return nil, fmt.Errorf("%w: missing required key %q", ErrSchemaViolation, field.Name)
		}
		text, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: key %q holds %T, want string", ErrSchemaViolation, field.Name, v)
		}
		values[field.Name] = text
	}

	return &Forecast{
		Day1: values["day1"],
		Day2: values["day2"],
		Day3: values["day3"],
		Day4: values["day4"],
		Day5: values["day5"],
	}, nil
}

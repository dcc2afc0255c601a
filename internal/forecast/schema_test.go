package forecast

import (
	"errors"
	"strings"
	"testing"
)

func validObject() map[string]any {
	return map[string]any{
		"day1": "Monday, June 2nd: sunshine takes the field!",
		"day2": "Tuesday brings the clouds off the bench.",
		"day3": "Wednesday: rain delay in the third!",
		"day4": "Thursday clears up for the home stretch.",
		"day5": "Friday finishes strong at 25 degrees!",
	}
}

func TestDefaultSchema_Fields(t *testing.T) {
	fields := DefaultSchema().Fields()

	if len(fields) != 5 {
		t.Fatalf("expected 5 fields, got %d", len(fields))
	}

	want := []string{"day1", "day2", "day3", "day4", "day5"}
	for i, field := range fields {
		if field.Name != want[i] {
			t.Errorf("field %d: expected name %s, got %s", i, want[i], field.Name)
		}
		if field.Description == "" {
			t.Errorf("field %s has no description", field.Name)
		}
		if !strings.Contains(field.Description, "date") {
			t.Errorf("field %s description should ask for the calendar date", field.Name)
		}
	}
}

func TestSchema_FormatInstructions(t *testing.T) {
	instructions := DefaultSchema().FormatInstructions()

	for _, key := range []string{"day1", "day2", "day3", "day4", "day5"} {
		if n := strings.Count(instructions, `"`+key+`"`); n != 1 {
			t.Errorf("expected key %s to appear once, found %d times", key, n)
		}
	}

	if !strings.Contains(instructions, "JSON object") {
		t.Error("instructions should demand a JSON object")
	}
	if !strings.Contains(instructions, "code fences") {
		t.Error("instructions should forbid markdown fences")
	}
}

func TestSchema_Validate_Success(t *testing.T) {
	f, err := DefaultSchema().Validate(validObject())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f == nil {
		t.Fatal("forecast is nil")
	}

	days := f.Days()
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}
	if days[0] != "Monday, June 2nd: sunshine takes the field!" {
		t.Errorf("day order wrong, got %q first", days[0])
	}
	if f.Day5 != "Friday finishes strong at 25 degrees!" {
		t.Errorf("unexpected day5: %q", f.Day5)
	}
}

func TestSchema_Validate_ExtraKeysTolerated(t *testing.T) {
	obj := validObject()
	obj["day6"] = "bonus day"
	obj["confidence"] = 0.9

	f, err := DefaultSchema().Validate(obj)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Day1 == "" {
		t.Error("day1 lost during validation")
	}
}

func TestSchema_Validate_Failures(t *testing.T) {
	missing := validObject()
	delete(missing, "day3")

	wrongType := validObject()
	wrongType["day2"] = 42

	tests := []struct {
		name    string
		obj     map[string]any
		wantKey string
	}{
		{name: "nil object", obj: nil},
		{name: "missing key", obj: missing, wantKey: "day3"},
		{name: "non-string value", obj: wrongType, wantKey: "day2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultSchema().Validate(tt.obj)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !errors.Is(err, ErrSchemaViolation) {
				t.Errorf("expected ErrSchemaViolation, got %v", err)
			}
			if tt.wantKey != "" && !strings.Contains(err.Error(), tt.wantKey) {
				t.Errorf("error should name the offending key %q: %v", tt.wantKey, err)
			}
		})
	}
}

package unity

import (
	"errors"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/gjson"
)

var (
	// ErrEmptyInput is returned by Parse when the text is empty or only whitespace.
	ErrEmptyInput = errors.New("input is null or empty")

	// ErrUnexpectedStart is returned by Parse when the trimmed text does not open an array or an object.
	ErrUnexpectedStart = errors.New("JSON must start with '[' or '{'")
)

// SyntaxError describes text that starts like JSON but is not well formed.
type SyntaxError struct {
	Wrapped error
}

func (e *SyntaxError) Error() string {
	if e.Wrapped == nil {
		return "malformed JSON document"
	}
	return e.Wrapped.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Wrapped
}

// Parse routes text by its first non-blank character and parses it into a Value.
// Only text that begins with '[' or '{' is handed to the JSON parser.
func Parse(text string) (Value, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Value{}, ErrEmptyInput
	}

	switch trimmed[0] {
	case '[', '{':
	default:
		return Value{}, ErrUnexpectedStart
	}

	if !gjson.Valid(trimmed) {
		return Value{}, diagnose(trimmed)
	}
	return fromGJSON(gjson.Parse(trimmed)), nil
}

// diagnose re-reads malformed text with a decoding parser to recover a message
// that names the offending character.
func diagnose(text string) *SyntaxError {
	if _, err := jsonschema.UnmarshalJSON(strings.NewReader(text)); err != nil {
		return &SyntaxError{Wrapped: err}
	}
	return &SyntaxError{}
}

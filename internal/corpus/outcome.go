package corpus

import (
	"github.com/andyballingall/unity-markup/internal/unity"
)

// Outcome is the result of validating one document.
type Outcome struct {
	Document
	Result    *unity.Result // nil when the document could not be read
	Err       error         // read failure
	SchemaErr error         // disagreement with the Unity JSON Schema, when checked
}

// Valid reports whether the document was read and is valid Unity markup.
func (o *Outcome) Valid() bool {
	return o.Err == nil && o.Result != nil && o.Result.IsValid()
}

// Passed reports whether the document met its expectation.
func (o *Outcome) Passed() bool {
	if o.Err != nil || o.Result == nil {
		return false
	}
	return o.Valid() == (o.Expect == ExpectValid)
}

// Label returns a human-readable label for the outcome.
func (o *Outcome) Label() string {
	if o.Err != nil || o.Result == nil {
		return "unreadable"
	}
	if o.Expect == ExpectValid {
		if o.Valid() {
			return "valid"
		}
		return "invalid"
	}
	if o.Valid() {
		return "valid, when expected invalid"
	}
	return "invalid, as expected"
}

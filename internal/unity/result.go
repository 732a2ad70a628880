package unity

import (
	"slices"
	"strconv"
	"strings"
)

// ErrorKind classifies a validation error.
type ErrorKind string

const (
	// KindInput covers empty input and text that does not start an array or object.
	KindInput ErrorKind = "input"
	// KindParse covers malformed JSON.
	KindParse ErrorKind = "parse"
	// KindShape covers values in a position the grammar does not allow.
	KindShape ErrorKind = "shape"
	// KindName covers element and attribute names that are not XML Names.
	KindName ErrorKind = "name"
	// KindUnexpected covers value kinds outside the JSON model.
	KindUnexpected ErrorKind = "unexpected"
)

// Error is a single nonconformance, located by a path of [i] and .key steps.
type Error struct {
	Path    string    `json:"path"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"kind"`
}

func (e Error) String() string {
	return e.Path + ": " + e.Message
}

// Result collects the errors of one validation run in the order they were found.
// A Result is not safe for concurrent writes; once returned by Validate it is read only.
type Result struct {
	errs []Error
}

// NewResult returns an empty, valid Result.
func NewResult() *Result {
	return &Result{}
}

// Add appends an error. Errors are never merged or reordered.
func (r *Result) Add(kind ErrorKind, path, message string) {
	r.errs = append(r.errs, Error{Path: path, Message: message, Kind: kind})
}

// IsValid reports whether no errors were collected.
func (r *Result) IsValid() bool {
	return len(r.errs) == 0
}

// Len returns the number of errors.
func (r *Result) Len() int {
	return len(r.errs)
}

// Errors returns a copy of the collected errors.
func (r *Result) Errors() []Error {
	return slices.Clone(r.errs)
}

func (r *Result) String() string {
	if r.IsValid() {
		return "Valid Unity markup"
	}
	var sb strings.Builder
	sb.WriteString("Invalid Unity markup (")
	sb.WriteString(strconv.Itoa(len(r.errs)))
	sb.WriteString(" error(s)):\n")
	for _, e := range r.errs {
		sb.WriteString("  - ")
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Package corpus finds Unity markup documents on disk, validates them in
// parallel and collects the outcomes into a report.
package corpus

import (
	"path/filepath"

	"github.com/andyballingall/unity-markup/internal/fs"
)

// Expectation is the validity a document is required to have.
type Expectation int

const (
	ExpectValid Expectation = iota
	ExpectInvalid
)

func (e Expectation) String() string {
	if e == ExpectInvalid {
		return "invalid"
	}
	return "valid"
}

// Mode controls how expectations are assigned to discovered documents.
type Mode int

const (
	// ModeValidate expects every document to be valid.
	ModeValidate Mode = iota
	// ModeTest takes the expectation from the nearest parent directory named
	// pass or fail. Documents under neither are skipped.
	ModeTest
)

const (
	PassDir = "pass"
	FailDir = "fail"
)

// StdinName is the document path reported for standard input.
const StdinName = "<stdin>"

// Document is a file queued for validation.
type Document struct {
	Path   string
	Expect Expectation
}

// expectationFor finds the nearest ancestor of path named pass or fail.
func expectationFor(path string) (Expectation, bool) {
	abs, err := fs.Abs(path)
	if err != nil {
		abs = path
	}
	dir := filepath.Dir(abs)
	for {
		switch filepath.Base(dir) {
		case PassDir:
			return ExpectValid, true
		case FailDir:
			return ExpectInvalid, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ExpectValid, false
		}
		dir = parent
	}
}

package corpus

import (
	"errors"
	"fmt"
)

// ErrStopRun signals that a run stopped at its first failing document.
var ErrStopRun = errors.New("stopping after first failing document")

type TargetNotFoundError struct {
	Path string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("path does not exist: %s", e.Path)
}

// FailedDocumentsError is returned by commands when at least one document
// did not meet its expectation.
type FailedDocumentsError struct {
	Count int
}

func (e *FailedDocumentsError) Error() string {
	return fmt.Sprintf("%d document(s) failed validation", e.Count)
}

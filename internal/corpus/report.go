package corpus

import (
	"io"
	"slices"
	"strings"
	"sync"
	"time"
)

// Reporter defines the interface for creating formatted run reports.
type Reporter interface {
	Write(w io.Writer, report *Report) error
}

// Report collects the outcomes of a run. It is safe for concurrent use.
type Report struct {
	mu sync.Mutex

	StartTime time.Time
	EndTime   time.Time
	outcomes  []*Outcome
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add records an outcome.
func (r *Report) Add(o *Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, o)
}

// Outcomes returns the outcomes in the order they were recorded.
func (r *Report) Outcomes() []*Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.outcomes)
}

// Sorted returns the outcomes ordered by document path.
func (r *Report) Sorted() []*Outcome {
	out := r.Outcomes()
	slices.SortStableFunc(out, func(a, b *Outcome) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}

// Counts returns the number of documents that met and missed their expectation.
func (r *Report) Counts() (passed, failed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.outcomes {
		if o.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

package corpus

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andyballingall/unity-markup/internal/validator"
)

// Runner validates the documents found by a Finder.
type Runner struct {
	logger *slog.Logger

	// Run options
	failFast   bool
	numWorkers int
	cache      *Cache
	schema     validator.Validator
}

// NewRunner creates a runner that uses GOMAXPROCS workers, keeps going after
// failures, and has no cache.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{
		logger:     logger.With("component", "runner"),
		numWorkers: runtime.GOMAXPROCS(0),
	}
}

// SetFailFast controls whether the run stops at the first failing document.
func (r *Runner) SetFailFast(b bool) {
	r.failFast = b
}

// SetNumWorkers sets the number of documents validated concurrently.
// Values below 1 select GOMAXPROCS.
func (r *Runner) SetNumWorkers(n int) {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	r.numWorkers = n
}

// SetCache installs a result cache. A nil cache disables caching.
func (r *Runner) SetCache(c *Cache) {
	r.cache = c
}

// SetSchemaValidator enables the secondary check against the Unity JSON Schema.
func (r *Runner) SetSchemaValidator(v validator.Validator) {
	r.schema = v
}

// Run validates every document f yields. A walk error stops the run and is
// returned. Cancellation of ctx returns ctx.Err() together with the partial report.
func (r *Runner) Run(ctx context.Context, f *Finder) (*Report, error) {
	report := NewReport()
	report.StartTime = time.Now()
	defer func() { report.EndTime = time.Now() }()

	g, runCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.numWorkers)

	for res := range f.Documents(runCtx) {
		if res.Err != nil {
			walkErr := res.Err
			g.Go(func() error { return walkErr })
			continue
		}

		doc := res.Document
		g.Go(func() error {
			if runCtx.Err() != nil {
				return nil
			}
			o := r.check(doc)
			report.Add(o)
			if r.failFast && !o.Passed() {
				return ErrStopRun
			}
			return nil
		})
	}

	err := g.Wait()

	if ctx.Err() != nil {
		return report, ctx.Err()
	}
	if err != nil && !errors.Is(err, ErrStopRun) {
		return report, err
	}
	return report, nil
}

// RunReader validates a single stream, such as standard input.
func (r *Runner) RunReader(name string, rd io.Reader) *Report {
	report := NewReport()
	report.StartTime = time.Now()
	defer func() { report.EndTime = time.Now() }()

	doc := Document{Path: name, Expect: ExpectValid}
	data, err := io.ReadAll(rd)
	if err != nil {
		report.Add(&Outcome{Document: doc, Err: err})
		return report
	}
	report.Add(r.validate(doc, data))
	return report
}

func (r *Runner) check(doc Document) *Outcome {
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		r.logger.Debug("Document unreadable", "path", doc.Path, "error", err)
		return &Outcome{Document: doc, Err: err}
	}
	return r.validate(doc, data)
}

func (r *Runner) validate(doc Document, data []byte) *Outcome {
	res, hit := r.cache.Validate(data)
	o := &Outcome{Document: doc, Result: res}

	if r.schema != nil {
		o.SchemaErr = validator.ValidateJSON(r.schema, data)
	}

	r.logger.Debug("Document validated",
		"path", doc.Path,
		"expect", doc.Expect.String(),
		"errors", res.Len(),
		"cached", hit,
	)
	return o
}

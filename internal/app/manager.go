package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/andyballingall/unity-markup/internal/config"
	"github.com/andyballingall/unity-markup/internal/corpus"
	"github.com/andyballingall/unity-markup/internal/report"
	"github.com/andyballingall/unity-markup/internal/unity"
	"github.com/andyballingall/unity-markup/internal/validator"
)

// RunOptions controls a validation run and its report.
type RunOptions struct {
	Format      config.OutputFormat
	Verbose     bool
	UseColour   bool
	FailFast    bool
	SchemaCheck bool
	Workers     int
}

// Manager defines the business logic behind the unity commands.
type Manager interface {
	Config() *config.Config
	Validate(ctx context.Context, targets []string, opts RunOptions) error
	ValidateReader(ctx context.Context, name string, r io.Reader, opts RunOptions) error
	Watch(ctx context.Context, targets []string, opts RunOptions, readyChan chan<- struct{}) error
	Test(ctx context.Context, targets []string, opts RunOptions) error
	Schema(ctx context.Context) ([]byte, error)
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner   Manager
	closers []io.Closer
}

// AddCloser registers a resource opened while hydrating, such as the log file.
func (l *LazyManager) AddCloser(c io.Closer) {
	l.closers = append(l.closers, c)
}

// Close releases every registered resource. It is safe to call more than once.
func (l *LazyManager) Close() error {
	var errs []error
	for _, c := range l.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.closers = nil
	return errors.Join(errs...)
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) Config() *config.Config {
	return l.check().Config()
}

func (l *LazyManager) Validate(ctx context.Context, targets []string, opts RunOptions) error {
	return l.check().Validate(ctx, targets, opts)
}

func (l *LazyManager) ValidateReader(ctx context.Context, name string, r io.Reader, opts RunOptions) error {
	return l.check().ValidateReader(ctx, name, r, opts)
}

func (l *LazyManager) Watch(ctx context.Context, targets []string, opts RunOptions,
	readyChan chan<- struct{},
) error {
	return l.check().Watch(ctx, targets, opts, readyChan)
}

func (l *LazyManager) Test(ctx context.Context, targets []string, opts RunOptions) error {
	return l.check().Test(ctx, targets, opts)
}

func (l *LazyManager) Schema(ctx context.Context) ([]byte, error) {
	return l.check().Schema(ctx)
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger         *slog.Logger
	cfg            *config.Config
	compiler       validator.Compiler
	cache          *corpus.Cache
	reporterWriter io.Writer
}

func NewCLIManager(
	l *slog.Logger,
	cfg *config.Config,
	c validator.Compiler,
	cache *corpus.Cache,
	w io.Writer,
) *CLIManager {
	if w == nil {
		w = os.Stdout
	}
	return &CLIManager{
		logger:         l,
		cfg:            cfg,
		compiler:       c,
		cache:          cache,
		reporterWriter: w,
	}
}

func (m *CLIManager) Config() *config.Config {
	return m.cfg
}

func (m *CLIManager) Validate(ctx context.Context, targets []string, opts RunOptions) error {
	m.logger.Debug("validating documents", "targets", targets, "format", opts.Format,
		"failFast", opts.FailFast, "workers", opts.Workers, "schemaCheck", opts.SchemaCheck)
	return m.runAndReport(ctx, targets, corpus.ModeValidate, opts)
}

func (m *CLIManager) Test(ctx context.Context, targets []string, opts RunOptions) error {
	m.logger.Debug("testing corpus", "targets", targets, "format", opts.Format,
		"failFast", opts.FailFast, "workers", opts.Workers, "schemaCheck", opts.SchemaCheck)
	return m.runAndReport(ctx, targets, corpus.ModeTest, opts)
}

func (m *CLIManager) ValidateReader(_ context.Context, name string, r io.Reader, opts RunOptions) error {
	m.logger.Debug("validating stream", "name", name)

	runner, err := m.newRunner(opts)
	if err != nil {
		return err
	}
	return m.writeReport(runner.RunReader(name, r), opts)
}

// Watch validates targets once, then again for every document that changes.
// If you want to know when the watcher is ready to start listening to changes,
// pass a non-nil readyChan to be notified.
func (m *CLIManager) Watch(ctx context.Context, targets []string, opts RunOptions,
	readyChan chan<- struct{},
) error {
	m.logger.Debug("watching documents", "targets", targets, "format", opts.Format)

	if err := m.runAndReport(ctx, targets, corpus.ModeValidate, opts); err != nil {
		var failed *corpus.FailedDocumentsError
		if !errors.As(err, &failed) {
			return err
		}
	}

	runner, err := m.newRunner(opts)
	if err != nil {
		return err
	}
	watcher := corpus.NewWatcher(m.cfg, m.logger)

	// Debounced callbacks can overlap; reports are written one at a time.
	var mu sync.Mutex
	callback := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		m.logger.Info("Document changed:", "path", path)

		finder, fErr := corpus.NewFinder([]string{path}, corpus.ModeValidate, m.cfg)
		if fErr != nil {
			m.logger.Error("Validation failed", "error", fErr)
			return
		}
		rep, rErr := runner.Run(ctx, finder)
		if rErr != nil {
			m.logger.Error("Validation failed", "error", rErr)
			return
		}
		if wErr := m.writeReport(rep, opts); wErr != nil {
			var failed *corpus.FailedDocumentsError
			if !errors.As(wErr, &failed) {
				m.logger.Error("Failed to write report", "error", wErr)
			}
		}
	}

	if readyChan != nil {
		done := make(chan struct{})
		defer close(done)
		go forwardReady(watcher.Ready, readyChan, done)
	}

	return watcher.Watch(ctx, targets, callback)
}

// forwardReady sends one value on out once ready is closed. It gives up when
// done is closed first, which happens if the watch fails before it starts.
func forwardReady(ready <-chan struct{}, out chan<- struct{}, done <-chan struct{}) {
	select {
	case <-ready:
	case <-done:
		return
	}
	select {
	case out <- struct{}{}:
	case <-done:
	}
}

// Schema compiles the embedded Unity JSON Schema and returns its source.
func (m *CLIManager) Schema(_ context.Context) ([]byte, error) {
	m.logger.Debug("exporting schema", "id", unity.SchemaID)

	m.compiler.Clear()
	if _, err := validator.NewUnityValidator(m.compiler); err != nil {
		return nil, err
	}
	return unity.JSONSchema(), nil
}

func (m *CLIManager) runAndReport(ctx context.Context, targets []string, mode corpus.Mode, opts RunOptions) error {
	finder, err := corpus.NewFinder(targets, mode, m.cfg)
	if err != nil {
		return err
	}

	runner, err := m.newRunner(opts)
	if err != nil {
		return err
	}

	rep, err := runner.Run(ctx, finder)
	if err != nil {
		return err
	}

	if len(rep.Outcomes()) == 0 {
		m.logger.Warn("No documents found", "targets", targets)
	}
	return m.writeReport(rep, opts)
}

func (m *CLIManager) newRunner(opts RunOptions) (*corpus.Runner, error) {
	runner := corpus.NewRunner(m.logger)
	runner.SetFailFast(opts.FailFast)
	runner.SetNumWorkers(opts.Workers)
	runner.SetCache(m.cache)

	if opts.SchemaCheck {
		m.compiler.Clear()
		v, err := validator.NewUnityValidator(m.compiler)
		if err != nil {
			return nil, err
		}
		runner.SetSchemaValidator(v)
	}
	return runner, nil
}

// writeReport renders rep and reports any failed documents as an error.
func (m *CLIManager) writeReport(rep *corpus.Report, opts RunOptions) error {
	var reporter corpus.Reporter
	switch opts.Format {
	case config.OutputJSON:
		reporter = &report.JSONReporter{}
	default:
		reporter = &report.TextReporter{Verbose: opts.Verbose, UseColour: opts.UseColour}
	}

	if err := reporter.Write(m.reporterWriter, rep); err != nil {
		return err
	}

	if _, failed := rep.Counts(); failed > 0 {
		return &corpus.FailedDocumentsError{Count: failed}
	}
	return nil
}

package corpus

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	ufs "github.com/andyballingall/unity-markup/internal/fs"
)

// Filter decides which paths take part in directory walks.
// *config.Config satisfies it.
type Filter interface {
	HasExtension(path string) bool
	IsExcluded(path string) bool
}

// FindResult is a result from a search for documents.
type FindResult struct {
	Document Document
	Err      error
}

// Finder walks a set of files and directories and streams the documents it finds.
type Finder struct {
	targets []string
	mode    Mode
	filter  Filter
}

// NewFinder checks that every target exists. Targets that resolve to the same
// canonical path are walked once. Files named directly are always yielded;
// directories are walked and filtered.
func NewFinder(targets []string, mode Mode, filter Filter) (*Finder, error) {
	seen := make(map[string]bool, len(targets))
	unique := make([]string, 0, len(targets))
	for _, t := range targets {
		canonical, err := ufs.CanonicalPath(t)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &TargetNotFoundError{Path: t}
			}
			return nil, err
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		unique = append(unique, t)
	}
	return &Finder{
		targets: unique,
		mode:    mode,
		filter:  filter,
	}, nil
}

// Documents walks the targets in order and streams each document over the
// returned channel, which is closed when the walk ends or ctx is cancelled.
func (f *Finder) Documents(ctx context.Context) <-chan FindResult {
	resC := make(chan FindResult, 1)

	if f == nil {
		go func() {
			defer close(resC)
			resC <- FindResult{Err: errors.New("finder is nil")}
		}()
		return resC
	}

	go func() {
		defer close(resC)

		for _, target := range f.targets {
			if err := f.walk(ctx, target, resC); err != nil {
				select {
				case <-ctx.Done():
				case resC <- FindResult{Err: err}:
				}
				return
			}
		}
	}()

	return resC
}

func (f *Finder) walk(ctx context.Context, root string, resC chan<- FindResult) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && f.filter.IsExcluded(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if path != root && (f.filter.IsExcluded(path) || !f.filter.HasExtension(path)) {
			return nil
		}

		doc := Document{Path: path, Expect: ExpectValid}
		if f.mode == ModeTest {
			expect, ok := expectationFor(path)
			if !ok {
				return nil
			}
			doc.Expect = expect
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case resC <- FindResult{Document: doc}:
		}
		return nil
	})
}

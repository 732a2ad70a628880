package corpus

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testFilter mirrors the default configuration.
type testFilter struct{}

func (testFilter) HasExtension(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".json" || ext == ".unity"
}

func (testFilter) IsExcluded(path string) bool {
	base := filepath.Base(path)
	return base == "node_modules" || (len(base) > 1 && base[0] == '.' && base != "..")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeTree writes files, keyed by slash-separated relative path, under a new temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func collect(t *testing.T, f *Finder) ([]Document, error) {
	t.Helper()
	var docs []Document
	for res := range f.Documents(context.Background()) {
		if res.Err != nil {
			return docs, res.Err
		}
		docs = append(docs, res.Document)
	}
	return docs, nil
}

func rel(t *testing.T, root string, docs []Document) map[string]Expectation {
	t.Helper()
	out := make(map[string]Expectation, len(docs))
	for _, d := range docs {
		r, err := filepath.Rel(root, d.Path)
		require.NoError(t, err)
		out[filepath.ToSlash(r)] = d.Expect
	}
	return out
}

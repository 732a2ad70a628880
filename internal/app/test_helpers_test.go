package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/unity-markup/internal/config"
)

type MockManager struct {
	mock.Mock
	cfg *config.Config
}

func (m *MockManager) Config() *config.Config {
	if m.cfg == nil {
		return config.Default()
	}
	return m.cfg
}

func (m *MockManager) Validate(ctx context.Context, targets []string, opts RunOptions) error {
	args := m.Called(ctx, targets, opts)
	return args.Error(0)
}

func (m *MockManager) ValidateReader(ctx context.Context, name string, r io.Reader, opts RunOptions) error {
	args := m.Called(ctx, name, r, opts)
	return args.Error(0)
}

func (m *MockManager) Watch(ctx context.Context, targets []string, opts RunOptions,
	readyChan chan<- struct{},
) error {
	args := m.Called(ctx, targets, opts, readyChan)
	return args.Error(0)
}

func (m *MockManager) Test(ctx context.Context, targets []string, opts RunOptions) error {
	args := m.Called(ctx, targets, opts)
	return args.Error(0)
}

func (m *MockManager) Schema(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]byte)
	return res, args.Error(1)
}

// defaultOptions are the RunOptions produced by the default config with no flags.
func defaultOptions() RunOptions {
	return RunOptions{Format: config.OutputText, UseColour: true}
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

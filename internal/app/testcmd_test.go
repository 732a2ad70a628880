package app

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/unity-markup/internal/config"
)

func TestTestCmd(t *testing.T) {
	t.Parallel()

	setup := func(cfg *config.Config) (*MockManager, *cobra.Command) {
		mgr := &MockManager{cfg: cfg}
		cmd := NewTestCmd(mgr)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.Flags().Bool("nocolour", false, "")
		return mgr, cmd
	}

	t.Run("directories", func(t *testing.T) {
		t.Parallel()
		mgr, cmd := setup(nil)
		mgr.On("Test", mock.Anything, []string{"corpus"}, defaultOptions()).Return(nil).Once()

		cmd.SetArgs([]string{"corpus"})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
		mgr.AssertExpectations(t)
	})

	t.Run("config supplies defaults", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		cfg.FailFast = true
		cfg.Output = config.OutputJSON
		mgr, cmd := setup(cfg)
		want := RunOptions{Format: config.OutputJSON, UseColour: true, FailFast: true}
		mgr.On("Test", mock.Anything, []string{"a", "b"}, want).Return(nil).Once()

		cmd.SetArgs([]string{"a", "b"})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
		mgr.AssertExpectations(t)
	})

	t.Run("needs a directory", func(t *testing.T) {
		t.Parallel()
		_, cmd := setup(nil)
		cmd.SetArgs([]string{})
		require.Error(t, cmd.ExecuteContext(context.Background()))
	})
}

package app

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/unity-markup/internal/config"
	"github.com/andyballingall/unity-markup/internal/corpus"
)

func TestValidateCmd(t *testing.T) {
	t.Parallel()

	setup := func() (*MockManager, *cobra.Command) {
		mgr := &MockManager{}
		cmd := NewValidateCmd(mgr)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		// Add the persistent flags that NewValidateCmd expects from root
		cmd.Flags().Bool("nocolour", false, "")
		return mgr, cmd
	}

	t.Run("paths", func(t *testing.T) {
		t.Parallel()
		mgr, cmd := setup()
		mgr.On("Validate", mock.Anything, []string{"a.json", "docs"}, defaultOptions()).Return(nil).Once()

		cmd.SetArgs([]string{"a.json", "docs"})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
		mgr.AssertExpectations(t)
	})

	t.Run("no args reads stdin", func(t *testing.T) {
		t.Parallel()
		mgr, cmd := setup()
		in := strings.NewReader(`["a"]`)
		cmd.SetIn(in)
		mgr.On("ValidateReader", mock.Anything, corpus.StdinName, in, defaultOptions()).Return(nil).Once()

		cmd.SetArgs([]string{})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
		mgr.AssertExpectations(t)
	})

	t.Run("dash reads stdin", func(t *testing.T) {
		t.Parallel()
		mgr, cmd := setup()
		mgr.On("ValidateReader", mock.Anything, corpus.StdinName, mock.Anything, defaultOptions()).Return(nil).Once()

		cmd.SetArgs([]string{"-"})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
		mgr.AssertExpectations(t)
	})

	t.Run("dash with paths", func(t *testing.T) {
		t.Parallel()
		_, cmd := setup()
		cmd.SetArgs([]string{"-", "a.json"})
		err := cmd.ExecuteContext(context.Background())

		var target *StdinWithPathsError
		require.ErrorAs(t, err, &target)
	})

	t.Run("watch", func(t *testing.T) {
		t.Parallel()
		mgr, cmd := setup()
		mgr.On("Watch", mock.Anything, []string{"docs"}, defaultOptions(), (chan<- struct{})(nil)).Return(nil).Once()

		cmd.SetArgs([]string{"--watch", "docs"})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
		mgr.AssertExpectations(t)
	})

	t.Run("watch needs paths", func(t *testing.T) {
		t.Parallel()
		_, cmd := setup()
		cmd.SetArgs([]string{"-w"})
		err := cmd.ExecuteContext(context.Background())

		var target *WatchStdinError
		require.ErrorAs(t, err, &target)
	})

	t.Run("flags", func(t *testing.T) {
		t.Parallel()
		mgr, cmd := setup()
		want := RunOptions{
			Format:      config.OutputJSON,
			Verbose:     true,
			UseColour:   false,
			FailFast:    true,
			SchemaCheck: true,
			Workers:     2,
		}
		mgr.On("Validate", mock.Anything, []string{"docs"}, want).Return(nil).Once()

		cmd.SetArgs([]string{"-o", "json", "-v", "-F", "-j", "2", "--schema-check", "--nocolour", "docs"})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
		mgr.AssertExpectations(t)
	})

	t.Run("invalid output format", func(t *testing.T) {
		t.Parallel()
		_, cmd := setup()
		cmd.SetArgs([]string{"-o", "xml", "docs"})
		err := cmd.ExecuteContext(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be 'text' or 'json'")
	})

	t.Run("manager error is returned", func(t *testing.T) {
		t.Parallel()
		mgr, cmd := setup()
		failed := &corpus.FailedDocumentsError{Count: 2}
		mgr.On("Validate", mock.Anything, []string{"docs"}, defaultOptions()).Return(failed).Once()

		cmd.SetArgs([]string{"docs"})
		err := cmd.ExecuteContext(context.Background())
		require.ErrorIs(t, err, failed)
		assert.EqualError(t, err, "2 document(s) failed validation")
	})
}

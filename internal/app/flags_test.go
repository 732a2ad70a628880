package app

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/unity-markup/internal/config"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	f := formatValue("text")
	assert.Equal(t, "text", f.String())
	assert.Equal(t, "<format>", f.Type())

	t.Run("valid values", func(t *testing.T) {
		t.Parallel()
		err := f.Set("json")
		require.NoError(t, err)
		assert.Equal(t, "json", f.String())

		err = f.Set("text")
		require.NoError(t, err)
		assert.Equal(t, "text", f.String())
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		g := formatValue("text")
		err := g.Set("invalid")
		require.Error(t, err)
		assert.EqualError(t, err, "must be 'text' or 'json'")
		assert.Equal(t, "text", g.String())
	})
}

func TestPathValue(t *testing.T) {
	t.Parallel()

	p := pathValue("")
	assert.Empty(t, p.String())
	assert.Equal(t, "<path>", p.Type())

	t.Run("set value", func(t *testing.T) {
		t.Parallel()
		err := p.Set("/some/path")
		require.NoError(t, err)
		assert.Equal(t, "/some/path", p.String())
	})
}

func TestRunFlagsOptions(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Output = config.OutputJSON
	cfg.FailFast = true
	cfg.Workers = 3
	cfg.SchemaCheck = true
	cfg.Colour = false

	tests := []struct {
		name string
		cfg  *config.Config
		args []string
		want RunOptions
	}{
		{
			name: "defaults",
			args: []string{},
			want: RunOptions{Format: config.OutputText, UseColour: true},
		},
		{
			name: "config values",
			cfg:  cfg,
			args: []string{},
			want: RunOptions{Format: config.OutputJSON, FailFast: true, Workers: 3, SchemaCheck: true},
		},
		{
			name: "flags override config",
			cfg:  cfg,
			args: []string{"-o", "text", "--fail-fast=false", "-j", "8", "--schema-check=false", "-v"},
			want: RunOptions{Format: config.OutputText, Workers: 8, Verbose: true},
		},
		{
			name: "nocolour wins over config",
			args: []string{"--nocolour"},
			want: RunOptions{Format: config.OutputText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var f runFlags
			var got RunOptions
			cmd := &cobra.Command{
				Use: "x",
				RunE: func(cmd *cobra.Command, _ []string) error {
					got = f.options(cmd, tt.cfg)
					return nil
				},
			}
			f.register(cmd)
			cmd.Flags().Bool("nocolour", false, "")
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, got)
		})
	}
}

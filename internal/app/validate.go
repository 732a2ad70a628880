package app

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/andyballingall/unity-markup/internal/corpus"
)

const stdinArg = "-"

func NewValidateCmd(mgr Manager) *cobra.Command {
	var flags runFlags
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate [path|-]...",
		Short: "Validate Unity markup documents",
		Long: `Validate Unity markup documents.

Each path may be a file or a directory. Directories are searched recursively
for files with a configured extension (.json and .unity by default). With no
paths, or with '-', a single document is read from standard input.`,
		Example: `
  unity validate page.json
  unity validate docs/ templates/header.unity
  cat page.json | unity validate
  unity validate -o json -F docs/
  unity validate --watch docs/`,
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch for changes and revalidate")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := flags.options(cmd, mgr.Config())
		useStdin := len(args) == 0 || slices.Contains(args, stdinArg)

		if useStdin {
			if watch {
				return &WatchStdinError{}
			}
			if len(args) > 1 {
				return &StdinWithPathsError{}
			}
			return mgr.ValidateReader(cmd.Context(), corpus.StdinName, cmd.InOrStdin(), opts)
		}

		if watch {
			return mgr.Watch(cmd.Context(), args, opts, nil)
		}
		return mgr.Validate(cmd.Context(), args, opts)
	}

	return cmd
}

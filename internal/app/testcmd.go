package app

import (
	"github.com/spf13/cobra"
)

func NewTestCmd(mgr Manager) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "test <dir>...",
		Short: "Check a corpus of documents that must pass or fail",
		Long: `Check a corpus of test documents.

Documents below a directory named 'pass' must be valid Unity markup; documents
below a directory named 'fail' must be invalid. The nearest such directory
decides. Documents under neither are ignored.`,
		Example: `
  unity test testdata/
  unity test -v corpus/elements corpus/attributes`,
		Args: cobra.MinimumNArgs(1),
	}

	flags.register(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return mgr.Test(cmd.Context(), args, flags.options(cmd, mgr.Config()))
	}

	return cmd
}

package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andyballingall/unity-markup/internal/xmlname"
)

func NewNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   NameCmdName + " <name>...",
		Short: "Check whether strings are valid XML names",
		Example: `
  unity name p xlink:href 1x`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, n := range args {
				verdict := "valid"
				if !xmlname.IsValidName(n) {
					verdict = "invalid"
					invalid++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", strconv.Quote(n), verdict)
			}
			if invalid > 0 {
				return &InvalidNamesError{Count: invalid}
			}
			return nil
		},
	}
}

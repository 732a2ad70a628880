package app

import (
	"github.com/spf13/cobra"
)

func NewSchemaCmd(mgr Manager) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the Unity JSON Schema for editor integration",
		Long: `Print a JSON Schema (draft 2020-12) describing Unity markup.

Editors can use it for completion and inline checks. It approximates the
validator: use 'unity validate' for the authoritative result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := mgr.Schema(cmd.Context())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

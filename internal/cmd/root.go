// Package cmd implements the pitmydoro command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pitmydoro/backend/internal/version"
)

// RootCmd is the top-level pitmydoro command.
var RootCmd = NewRootCmd()

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pitmydoro",
		Short: "Pit My Doro account tools",
		Long: `pitmydoro bundles command line tools for the Pit My Doro backend.

The strength command scores a password with the same rules the
registration form and the API apply.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("format", "f", "text", "Output format (text, json, yaml)")

	root.AddCommand(newStrengthCmd())
	root.AddCommand(newVersionCmd())

	return root
}
